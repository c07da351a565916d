package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KaramelBytes/nborank/internal/rank"
	"github.com/KaramelBytes/nborank/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult(t *testing.T) *Result {
	t.Helper()
	tbl, err := table.New(
		[]string{"Donor", "Orbital", "kcal/mol"},
		[][]string{{"BD C1-C2", "BD", "12.3"}, {"CR C1", "CR", "50.0"}, {"LP O5", "LP", "40.0"}, {"BD C2-H6", "BD", "8.1"}},
		table.DefaultSchema(),
	)
	require.NoError(t, err)
	spec := rank.FilterSpec{Exclude: []string{"CR", "LP"}}
	filtered, err := rank.Filter(tbl, spec)
	require.NoError(t, err)
	req := rank.Request{Direction: rank.Top, N: 1}
	out, err := rank.Rank(tbl, spec, req)
	require.NoError(t, err)
	sum, err := rank.Summarize(filtered)
	require.NoError(t, err)
	return &Result{
		Source:   "nbo.csv",
		Table:    out,
		Filter:   spec,
		Request:  req,
		Loaded:   tbl.Len(),
		Filtered: filtered.Len(),
		Summary:  &sum,
	}
}

func TestMarkdownSections(t *testing.T) {
	md := sampleResult(t).Markdown()
	for _, want := range []string{
		"[RANKED RESULT]",
		"File: nbo.csv",
		"Rows: 4 loaded, 2 after filtering, 1 shown",
		"Order: top 1 by kcal/mol",
		"- exclude: CR, LP",
		"- include: (none)",
		"| 1 | BD C1-C2 | BD | 12.3 |",
		"[ENERGY SUMMARY]",
		"max 12.3",
	} {
		assert.Contains(t, md, want)
	}
	assert.NotContains(t, md, "[NOTES]")
}

func TestRenderFormats(t *testing.T) {
	res := sampleResult(t)

	var grid bytes.Buffer
	require.NoError(t, Render(&grid, res, FormatTable))
	lines := strings.Split(grid.String(), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "#"))
	assert.Contains(t, lines[1], "12.3")
	assert.Contains(t, grid.String(), "kcal/mol: max 12.3")

	var js bytes.Buffer
	require.NoError(t, Render(&js, res, FormatJSON))
	var decoded struct {
		Direction string              `json:"direction"`
		Rows      []map[string]string `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Equal(t, "top", decoded.Direction)
	require.Len(t, decoded.Rows, 1)
	assert.Equal(t, "12.3", decoded.Rows[0]["kcal/mol"])

	var c bytes.Buffer
	require.NoError(t, Render(&c, res, FormatCSV))
	assert.Equal(t, "Donor,Orbital,kcal/mol\nBD C1-C2,BD,12.3\n", c.String())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("MD")
	require.NoError(t, err)
	assert.Equal(t, FormatMarkdown, f)
	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatTable, f)
	_, err = ParseFormat("html")
	assert.Error(t, err)
}

func TestWriteFileTSV(t *testing.T) {
	res := sampleResult(t)
	p := filepath.Join(t.TempDir(), "out.tsv")
	require.NoError(t, WriteFile(p, res.Table))
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "Donor\tOrbital\tkcal/mol\nBD C1-C2\tBD\t12.3\n", string(b))
}

func TestManifestSaveLoad(t *testing.T) {
	res := sampleResult(t)
	m := NewManifest(res, DefaultFileName)
	require.NotEmpty(t, m.ID)
	p := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, m.Save(p))

	back, err := LoadManifest(p)
	require.NoError(t, err)
	assert.Equal(t, m.ID, back.ID)
	assert.Equal(t, "top", back.Direction)
	assert.Equal(t, []string{"CR", "LP"}, back.Filter.Exclude)
	assert.Equal(t, []string{}, back.Filter.Include)
	assert.Equal(t, ManifestRows{Loaded: 4, Filtered: 2, Returned: 1}, back.Rows)
	require.NotNil(t, back.Summary)
	assert.Equal(t, 12.3, back.Summary.Max)

	_, err = LoadManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestManifestRecordsRequestedCount(t *testing.T) {
	res := sampleResult(t)
	res.Request.N = 10
	m := NewManifest(res, "")
	assert.Equal(t, 10, m.N)
	assert.Equal(t, 1, m.Rows.Returned)
}
