package table

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsesEnergyAndKeepsRawValues(t *testing.T) {
	tbl, err := New(
		[]string{"Donor", " Orbital ", "kcal/mol"},
		[][]string{
			{"C1-C2", "BD", " 12.30 "},
			{"O3", "LP", "40"},
		},
		DefaultSchema(),
	)
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"Donor", "Orbital", "kcal/mol"}, tbl.Columns)
	assert.Equal(t, 12.3, tbl.Records[0].Energy)
	assert.Equal(t, " 12.30 ", tbl.Records[0].Values[2], "cells are not rewritten")
	assert.Equal(t, "LP", tbl.Records[1].Label)
	assert.Equal(t, 1, tbl.Records[1].Index)
	assert.True(t, tbl.Resolved())
}

func TestNewMatchesColumnsIgnoringCase(t *testing.T) {
	tbl, err := New([]string{"orbital", "KCAL/MOL"}, [][]string{{"BD", "1"}}, DefaultSchema())
	require.NoError(t, err)
	assert.Equal(t, "orbital", tbl.Schema.LabelColumn)
	assert.Equal(t, "KCAL/MOL", tbl.Schema.EnergyColumn)
}

func TestNewMissingColumn(t *testing.T) {
	_, err := New([]string{"Orbital", "Energy"}, [][]string{{"BD", "1"}}, DefaultSchema())
	require.Error(t, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "kcal/mol", ve.Column)
	assert.Contains(t, err.Error(), "missing required column")
}

func TestNewRejectsBadEnergy(t *testing.T) {
	_, err := New([]string{"Orbital", "kcal/mol"}, [][]string{{"BD", "1.0"}, {"LP", "n/a"}}, DefaultSchema())
	require.Error(t, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, 2, ve.Row)
	assert.Contains(t, err.Error(), `"n/a"`)

	for _, raw := range []string{"NaN", "nan", "Inf", "-inf", "+Infinity"} {
		_, err := New([]string{"Orbital", "kcal/mol"}, [][]string{{"BD", "1.0"}, {"LP", raw}}, DefaultSchema())
		require.Error(t, err, raw)
		require.True(t, errors.As(err, &ve), raw)
		assert.Equal(t, 2, ve.Row, raw)
		assert.Contains(t, err.Error(), "non-numeric energy value", raw)
	}
}

func TestNewRejectsMalformedHeaderAndRows(t *testing.T) {
	_, err := New([]string{"Orbital", "Orbital", "kcal/mol"}, nil, DefaultSchema())
	assert.True(t, IsValidation(err), "duplicate header")

	_, err = New([]string{"Orbital", "", "kcal/mol"}, nil, DefaultSchema())
	assert.True(t, IsValidation(err), "blank header")

	_, err = New([]string{"Orbital", "kcal/mol"}, [][]string{{"BD", "1", "extra"}}, DefaultSchema())
	assert.True(t, IsValidation(err), "too many fields")
}

func TestNewPadsShortRows(t *testing.T) {
	tbl, err := New([]string{"kcal/mol", "Orbital", "Note"}, [][]string{{"3.5", "RY*"}}, DefaultSchema())
	require.NoError(t, err)
	assert.Equal(t, []string{"3.5", "RY*", ""}, tbl.Records[0].Values)
}

func TestDeriveDoesNotAlias(t *testing.T) {
	tbl, err := New([]string{"Orbital", "kcal/mol"}, [][]string{{"BD", "1"}, {"CR", "2"}}, DefaultSchema())
	require.NoError(t, err)
	d := tbl.Derive(tbl.Records[1:])
	d.Records[0].Label = "changed"
	d.Columns[0] = "changed"
	assert.Equal(t, "CR", tbl.Records[1].Label)
	assert.Equal(t, "Orbital", tbl.Columns[0])
	assert.Equal(t, []string{"BD", "CR"}, tbl.Labels())
	assert.Equal(t, []float64{1, 2}, tbl.Energies())
}

func TestEmptyResultErrorIs(t *testing.T) {
	err := error(&EmptyResultError{Total: 3, Exclude: []string{"CR"}})
	assert.True(t, errors.Is(err, ErrEmptyResult))
	assert.Contains(t, err.Error(), "no data left after filtering")
	assert.Contains(t, err.Error(), "exclude=CR")
	assert.False(t, IsValidation(err))
}
