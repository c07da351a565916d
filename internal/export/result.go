// Package export renders ranked tables for the terminal and writes them to
// CSV or XLSX files.
package export

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/nborank/internal/rank"
	"github.com/KaramelBytes/nborank/internal/table"
)

// DefaultFileName is the export written when no output path is configured.
const DefaultFileName = "top_sorted_result.csv"

// Result bundles a ranked table with the options that produced it.
type Result struct {
	Source   string
	Table    *table.Table
	Filter   rank.FilterSpec
	Request  rank.Request
	Loaded   int
	Filtered int
	Summary  *rank.Summary
	Warnings []string
}

// Markdown renders the result as sectioned text suitable for a terminal or a
// notes file.
func (r *Result) Markdown() string {
	var b strings.Builder
	b.WriteString("[RANKED RESULT]\n")
	if r.Source != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.Source))
	}
	b.WriteString(fmt.Sprintf("Rows: %d loaded, %d after filtering, %d shown\n", r.Loaded, r.Filtered, r.Table.Len()))
	b.WriteString(fmt.Sprintf("Order: %s %d by %s\n\n", r.Request.Direction, r.Table.Len(), r.Table.Schema.EnergyColumn))

	b.WriteString("[FILTER]\n")
	b.WriteString(fmt.Sprintf("- exclude: %s\n", listOrNone(r.Filter.Exclude)))
	b.WriteString(fmt.Sprintf("- include: %s\n", listOrNone(r.Filter.Include)))
	if r.Filter.AnyColumn {
		b.WriteString("- match: any column\n")
	} else {
		b.WriteString(fmt.Sprintf("- match: %s column\n", r.Table.Schema.LabelColumn))
	}
	b.WriteString("\n")

	b.WriteString("[ROWS]\n")
	b.WriteString("| # | ")
	b.WriteString(strings.Join(mapStrings(r.Table.Columns, safeVal), " | "))
	b.WriteString(" |\n|---|")
	b.WriteString(strings.Repeat("---|", len(r.Table.Columns)))
	b.WriteString("\n")
	for i, rec := range r.Table.Records {
		b.WriteString(fmt.Sprintf("| %d | ", i+1))
		b.WriteString(strings.Join(mapStrings(rec.Values, safeVal), " | "))
		b.WriteString(" |\n")
	}

	if s := r.Summary; s != nil {
		b.WriteString("\n[ENERGY SUMMARY]\n")
		b.WriteString(fmt.Sprintf("- n=%d, min %.4g, max %.4g, mean %.4g, median %.4g, std %.4g\n", s.Count, s.Min, s.Max, s.Mean, s.Median, s.StdDev))
	}
	if len(r.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range r.Warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func listOrNone(v []string) string {
	if len(v) == 0 {
		return "(none)"
	}
	return strings.Join(v, ", ")
}

func mapStrings(in []string, fn func(string) string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = fn(s)
	}
	return out
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
