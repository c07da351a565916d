// Package rank filters NBO interaction tables by orbital label and orders
// the survivors by stabilization energy.
package rank

import (
	"sort"
	"strings"

	"github.com/KaramelBytes/nborank/internal/table"
)

// Direction selects which end of the energy ordering is kept.
type Direction int

const (
	// Top keeps the highest energies (descending order).
	Top Direction = iota
	// Bottom keeps the lowest energies (ascending order).
	Bottom
)

func (d Direction) String() string {
	if d == Bottom {
		return "bottom"
	}
	return "top"
}

// ParseDirection accepts top|desc|descending and bottom|asc|ascending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "top", "desc", "descending":
		return Top, nil
	case "bottom", "asc", "ascending":
		return Bottom, nil
	default:
		return Top, table.Invalid("unsupported direction %q (use top or bottom)", s)
	}
}

// FilterSpec selects which records survive before ranking.
type FilterSpec struct {
	// Exclude drops a record whose label contains any token, ignoring case.
	Exclude []string
	// Include, when non-empty, keeps only labels equal to one of its values.
	Include []string
	// AnyColumn tests exclusion tokens against every cell instead of the label.
	AnyColumn bool
}

// Request controls ordering and size of the result.
type Request struct {
	Direction Direction
	// N is clamped to [1, number of filtered records].
	N int
}

// Rank filters t, sorts the survivors by energy and keeps the first N.
// Equal energies keep their input order. t is never modified.
func Rank(t *table.Table, f FilterSpec, r Request) (*table.Table, error) {
	filtered, err := Filter(t, f)
	if err != nil {
		return nil, err
	}
	recs := append([]table.Record(nil), filtered.Records...)
	if r.Direction == Bottom {
		sort.SliceStable(recs, func(i, j int) bool { return recs[i].Energy < recs[j].Energy })
	} else {
		sort.SliceStable(recs, func(i, j int) bool { return recs[i].Energy > recs[j].Energy })
	}
	return t.Derive(recs[:Clamp(r.N, len(recs))]), nil
}

// Filter applies exclusion then inclusion. It fails with a ValidationError
// for an unusable table and an EmptyResultError when nothing survives.
func Filter(t *table.Table, f FilterSpec) (*table.Table, error) {
	if err := validate(t); err != nil {
		return nil, err
	}
	exclude := normalizeTokens(f.Exclude, strings.ToLower)
	include := map[string]struct{}{}
	for _, v := range normalizeTokens(f.Include, nil) {
		include[v] = struct{}{}
	}

	kept := make([]table.Record, 0, t.Len())
	for _, rec := range t.Records {
		if excluded(rec, exclude, f.AnyColumn) {
			continue
		}
		if len(include) > 0 {
			if _, ok := include[rec.Label]; !ok {
				continue
			}
		}
		kept = append(kept, rec)
	}
	if len(kept) == 0 {
		return nil, &table.EmptyResultError{Total: t.Len(), Exclude: f.Exclude, Include: f.Include}
	}
	return t.Derive(kept), nil
}

// Clamp bounds n to [1, size]. size must be positive.
func Clamp(n, size int) int {
	if n < 1 {
		n = 1
	}
	if n > size {
		n = size
	}
	return n
}

func validate(t *table.Table) error {
	if t == nil {
		return table.Invalid("no table loaded")
	}
	for _, col := range []string{t.Schema.LabelColumn, t.Schema.EnergyColumn} {
		if strings.TrimSpace(col) == "" || !t.HasColumn(col) {
			return &table.ValidationError{Msg: "missing required column", Column: col}
		}
	}
	if !t.Resolved() {
		return table.Invalid("table columns do not match its schema")
	}
	if t.Len() == 0 {
		return table.Invalid("table has no rows")
	}
	return nil
}

func excluded(rec table.Record, tokens []string, anyColumn bool) bool {
	if len(tokens) == 0 {
		return false
	}
	cells := []string{rec.Label}
	if anyColumn {
		cells = rec.Values
	}
	for _, c := range cells {
		lc := strings.ToLower(c)
		for _, tok := range tokens {
			if strings.Contains(lc, tok) {
				return true
			}
		}
	}
	return false
}

func normalizeTokens(in []string, fold func(string) string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if fold != nil {
			v = fold(v)
		}
		out = append(out, v)
	}
	return out
}
