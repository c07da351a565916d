package table

import (
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultLabelColumn holds the orbital type label in NBO exports.
	DefaultLabelColumn = "Orbital"
	// DefaultEnergyColumn holds the stabilization energy used for ranking.
	DefaultEnergyColumn = "kcal/mol"
)

// Schema names the two columns every table must carry.
type Schema struct {
	LabelColumn  string
	EnergyColumn string
}

// DefaultSchema returns the column names produced by common NBO tabulations.
func DefaultSchema() Schema {
	return Schema{LabelColumn: DefaultLabelColumn, EnergyColumn: DefaultEnergyColumn}
}

func (s Schema) withDefaults() Schema {
	if strings.TrimSpace(s.LabelColumn) == "" {
		s.LabelColumn = DefaultLabelColumn
	}
	if strings.TrimSpace(s.EnergyColumn) == "" {
		s.EnergyColumn = DefaultEnergyColumn
	}
	return s
}

// Record is one row. Values keep the cells exactly as loaded, in header order;
// Label and Energy are the typed views of the schema columns.
type Record struct {
	Values []string
	Label  string
	Energy float64
	// Index is the position of the row in the originally loaded table.
	Index int
}

// Table is an immutable, validated sequence of records sharing one header.
type Table struct {
	Columns []string
	Records []Record
	Schema  Schema

	labelIdx  int
	energyIdx int
}

// New validates the header, resolves the schema columns and parses every
// energy cell. Any problem fails the whole table; nothing is coerced.
func New(columns []string, rows [][]string, schema Schema) (*Table, error) {
	schema = schema.withDefaults()
	if len(columns) == 0 {
		return nil, Invalid("file could not be parsed: missing header row")
	}
	cols := make([]string, len(columns))
	seen := make(map[string]struct{}, len(columns))
	for i, c := range columns {
		name := strings.TrimSpace(strings.TrimPrefix(c, "\ufeff"))
		if name == "" {
			return nil, &ValidationError{Msg: "empty column name at position " + strconv.Itoa(i+1)}
		}
		if _, dup := seen[name]; dup {
			return nil, &ValidationError{Msg: "duplicate column", Column: name}
		}
		seen[name] = struct{}{}
		cols[i] = name
	}
	labelIdx := ColumnIndex(cols, schema.LabelColumn)
	if labelIdx < 0 {
		return nil, &ValidationError{Msg: "missing required column", Column: schema.LabelColumn}
	}
	energyIdx := ColumnIndex(cols, schema.EnergyColumn)
	if energyIdx < 0 {
		return nil, &ValidationError{Msg: "missing required column", Column: schema.EnergyColumn}
	}
	// Keep the header's own spelling for later lookups.
	schema.LabelColumn = cols[labelIdx]
	schema.EnergyColumn = cols[energyIdx]

	t := &Table{
		Columns:   cols,
		Records:   make([]Record, 0, len(rows)),
		Schema:    schema,
		labelIdx:  labelIdx,
		energyIdx: energyIdx,
	}
	for i, row := range rows {
		if len(row) > len(cols) {
			return nil, &ValidationError{Msg: "file could not be parsed: too many fields", Row: i + 1}
		}
		vals := make([]string, len(cols))
		copy(vals, row)
		raw := strings.TrimSpace(vals[energyIdx])
		// ParseFloat accepts NaN and Inf spellings; neither can be ranked.
		energy, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(energy) || math.IsInf(energy, 0) {
			return nil, &ValidationError{Msg: "non-numeric energy value " + strconv.Quote(raw) + " in column", Column: cols[energyIdx], Row: i + 1}
		}
		t.Records = append(t.Records, Record{
			Values: vals,
			Label:  strings.TrimSpace(vals[labelIdx]),
			Energy: energy,
			Index:  i,
		})
	}
	return t, nil
}

// ColumnIndex finds name among cols, exact match first, then ignoring case.
func ColumnIndex(cols []string, name string) int {
	name = strings.TrimSpace(name)
	for i, c := range cols {
		if c == name {
			return i
		}
	}
	for i, c := range cols {
		if strings.EqualFold(c, name) {
			return i
		}
	}
	return -1
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// HasColumn reports whether name resolves to a column of t.
func (t *Table) HasColumn(name string) bool {
	return t != nil && ColumnIndex(t.Columns, name) >= 0
}

// Resolved reports whether both schema columns are present in the header.
func (t *Table) Resolved() bool {
	if t == nil {
		return false
	}
	return t.labelIdx >= 0 && t.labelIdx < len(t.Columns) &&
		t.energyIdx >= 0 && t.energyIdx < len(t.Columns) &&
		t.Columns[t.labelIdx] == t.Schema.LabelColumn &&
		t.Columns[t.energyIdx] == t.Schema.EnergyColumn
}

// Derive returns a new table with the same header and schema holding recs.
// The record slice is copied; t is left untouched.
func (t *Table) Derive(recs []Record) *Table {
	out := &Table{
		Columns:   append([]string(nil), t.Columns...),
		Records:   append([]Record(nil), recs...),
		Schema:    t.Schema,
		labelIdx:  t.labelIdx,
		energyIdx: t.energyIdx,
	}
	return out
}

// Rows returns the raw cell values of every record, in order.
func (t *Table) Rows() [][]string {
	out := make([][]string, 0, t.Len())
	for _, r := range t.Records {
		out = append(out, append([]string(nil), r.Values...))
	}
	return out
}

// Energies returns the typed energy column.
func (t *Table) Energies() []float64 {
	out := make([]float64, 0, t.Len())
	for _, r := range t.Records {
		out = append(out, r.Energy)
	}
	return out
}

// Labels returns the distinct labels in first-seen order.
func (t *Table) Labels() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range t.Records {
		if _, ok := seen[r.Label]; ok {
			continue
		}
		seen[r.Label] = struct{}{}
		out = append(out, r.Label)
	}
	return out
}
