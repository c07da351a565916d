package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/KaramelBytes/nborank/internal/export"
	"github.com/KaramelBytes/nborank/internal/loader"
	"github.com/KaramelBytes/nborank/internal/rank"
	"github.com/KaramelBytes/nborank/internal/table"
	"github.com/spf13/cobra"
)

// selection holds the flags shared by every command that filters a table.
type selection struct {
	exclude      []string
	include      []string
	anyColumn    bool
	top          int
	bottom       int
	count        int
	direction    string
	labelColumn  string
	energyColumn string
	delimiter    string
	sheet        string
}

func (s *selection) bind(cmd *cobra.Command, withRanking bool) {
	f := cmd.Flags()
	f.StringSliceVarP(&s.exclude, "exclude", "x", nil, "orbital label substrings to drop, case-insensitive (e.g. CR,LP,RY*)")
	f.StringSliceVarP(&s.include, "include", "i", nil, "keep only these exact orbital labels (applied after --exclude)")
	f.BoolVar(&s.anyColumn, "any-column", false, "match --exclude against every cell, not just the label column")
	f.StringVar(&s.labelColumn, "label-column", "", "column holding the orbital label (default from config: Orbital)")
	f.StringVar(&s.energyColumn, "energy-column", "", "numeric column used for ranking (default from config: kcal/mol)")
	f.StringVar(&s.delimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	f.StringVar(&s.sheet, "sheet", "", "XLSX: sheet name to read (default first sheet)")
	if withRanking {
		f.IntVar(&s.top, "top", 0, "keep the N rows with the highest energy")
		f.IntVar(&s.bottom, "bottom", 0, "keep the N rows with the lowest energy")
		f.IntVarP(&s.count, "count", "n", 0, "number of rows to keep (default from config)")
		f.StringVar(&s.direction, "direction", "", "top|bottom (default from config)")
		cmd.MarkFlagsMutuallyExclusive("top", "bottom", "direction")
	}
}

func (s *selection) loadOptions() (loader.Options, error) {
	c := effectiveConfig()
	opt := loader.DefaultOptions()
	opt.Schema = table.Schema{LabelColumn: c.LabelColumn, EnergyColumn: c.EnergyColumn}
	if s.labelColumn != "" {
		opt.Schema.LabelColumn = s.labelColumn
	}
	if s.energyColumn != "" {
		opt.Schema.EnergyColumn = s.energyColumn
	}
	delim := c.Delimiter
	if s.delimiter != "" {
		delim = s.delimiter
	}
	d, err := loader.ParseDelimiter(delim)
	if err != nil {
		return opt, err
	}
	opt.Delimiter = d
	opt.Sheet = s.sheet
	return opt, nil
}

func (s *selection) filterSpec(cmd *cobra.Command) rank.FilterSpec {
	c := effectiveConfig()
	exclude := s.exclude
	if !cmd.Flags().Changed("exclude") {
		exclude = c.DefaultExclude
	}
	warnUnknownLabels(c.Vocabulary, exclude, "exclude")
	warnUnknownLabels(c.Vocabulary, s.include, "include")
	return rank.FilterSpec{
		Exclude:   append([]string(nil), exclude...),
		Include:   append([]string(nil), s.include...),
		AnyColumn: s.anyColumn,
	}
}

func (s *selection) request(cmd *cobra.Command) (rank.Request, error) {
	c := effectiveConfig()
	flags := cmd.Flags()
	for _, name := range []string{"top", "bottom", "count"} {
		if !flags.Changed(name) {
			continue
		}
		if v, _ := flags.GetInt(name); v < 1 {
			return rank.Request{}, table.Invalid("--%s must be at least 1, got %d", name, v)
		}
	}
	dirName := c.Direction
	if s.direction != "" {
		dirName = s.direction
	}
	dir, err := rank.ParseDirection(dirName)
	if err != nil {
		return rank.Request{}, err
	}
	n := c.DefaultN
	if flags.Changed("count") {
		n = s.count
	}
	switch {
	case flags.Changed("top"):
		dir, n = rank.Top, s.top
	case flags.Changed("bottom"):
		dir, n = rank.Bottom, s.bottom
	}
	if n < 1 {
		return rank.Request{}, table.Invalid("row count must be at least 1, got %d", n)
	}
	return rank.Request{Direction: dir, N: n}, nil
}

// rankFile loads path and runs the filter/rank pipeline, returning the
// display-ready result. Nothing is written to disk here.
func (s *selection) rankFile(cmd *cobra.Command, path string, withSummary bool) (*export.Result, error) {
	opt, err := s.loadOptions()
	if err != nil {
		return nil, err
	}
	req, err := s.request(cmd)
	if err != nil {
		return nil, err
	}
	spec := s.filterSpec(cmd)

	t, err := loader.LoadFile(path, opt)
	if err != nil {
		return nil, err
	}
	filtered, err := rank.Filter(t, spec)
	if err != nil {
		return nil, err
	}
	out, err := rank.Rank(filtered, rank.FilterSpec{}, req)
	if err != nil {
		return nil, err
	}
	res := &export.Result{
		Source:   path,
		Table:    out,
		Filter:   spec,
		Request:  req,
		Loaded:   t.Len(),
		Filtered: filtered.Len(),
	}
	if req.N > filtered.Len() {
		res.Warnings = append(res.Warnings, fmt.Sprintf("requested %d rows, only %d remain after filtering", req.N, filtered.Len()))
	}
	if withSummary {
		sum, err := rank.Summarize(filtered)
		if err != nil {
			return nil, err
		}
		res.Summary = &sum
	}
	slog.Debug("ranked", "file", path, "loaded", res.Loaded, "filtered", res.Filtered, "returned", out.Len(), "direction", req.Direction.String())
	return res, nil
}

func warnUnknownLabels(vocab, tokens []string, flag string) {
	if len(vocab) == 0 {
		return
	}
	known := make(map[string]struct{}, len(vocab))
	for _, v := range vocab {
		known[strings.ToUpper(strings.TrimSpace(v))] = struct{}{}
	}
	for _, tok := range tokens {
		if _, ok := known[strings.ToUpper(strings.TrimSpace(tok))]; !ok {
			slog.Warn("label not in vocabulary", "flag", flag, "label", tok)
		}
	}
}
