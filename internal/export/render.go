package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Format selects how a result is printed.
type Format string

const (
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
)

// ParseFormat accepts table|markdown|md|json|csv.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported --format: %s (use table|markdown|json|csv)", s)
	}
}

// Render writes res to w in the requested format.
func Render(w io.Writer, res *Result, f Format) error {
	switch f {
	case FormatMarkdown:
		_, err := io.WriteString(w, res.Markdown())
		return err
	case FormatJSON:
		return renderJSON(w, res)
	case FormatCSV:
		return EncodeCSV(w, res.Table, ',')
	default:
		return renderGrid(w, res)
	}
}

func renderGrid(w io.Writer, res *Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\t%s\n", strings.Join(res.Table.Columns, "\t"))
	for i, rec := range res.Table.Records {
		fmt.Fprintf(tw, "%d\t%s\n", i+1, strings.Join(mapStrings(rec.Values, oneLine), "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if s := res.Summary; s != nil {
		_, err := fmt.Fprintf(w, "\n%s: max %.4g, min %.4g, mean %.4g over %d filtered rows\n",
			res.Table.Schema.EnergyColumn, s.Max, s.Min, s.Mean, s.Count)
		return err
	}
	return nil
}

type jsonResult struct {
	Source    string              `json:"source,omitempty"`
	Direction string              `json:"direction"`
	Loaded    int                 `json:"loaded"`
	Filtered  int                 `json:"filtered"`
	Columns   []string            `json:"columns"`
	Rows      []map[string]string `json:"rows"`
	Summary   any                 `json:"summary,omitempty"`
}

func renderJSON(w io.Writer, res *Result) error {
	out := jsonResult{
		Source:    res.Source,
		Direction: res.Request.Direction.String(),
		Loaded:    res.Loaded,
		Filtered:  res.Filtered,
		Columns:   res.Table.Columns,
		Rows:      make([]map[string]string, 0, res.Table.Len()),
	}
	for _, rec := range res.Table.Records {
		row := make(map[string]string, len(rec.Values))
		for i, c := range res.Table.Columns {
			row[c] = rec.Values[i]
		}
		out.Rows = append(out.Rows, row)
	}
	if res.Summary != nil {
		out.Summary = res.Summary
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func oneLine(s string) string {
	return strings.NewReplacer("\n", " ", "\t", " ").Replace(s)
}
