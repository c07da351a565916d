package rank

import (
	"fmt"

	"github.com/KaramelBytes/nborank/internal/table"
	"github.com/montanaflynn/stats"
)

// Summary describes the energy column of a table.
type Summary struct {
	Count  int     `json:"count" yaml:"count"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
	StdDev float64 `json:"std_dev" yaml:"std_dev"`
}

// Summarize computes descriptive statistics over the energy column.
func Summarize(t *table.Table) (Summary, error) {
	if t.Len() == 0 {
		return Summary{}, &table.EmptyResultError{}
	}
	data := stats.Float64Data(t.Energies())
	var (
		s   = Summary{Count: data.Len()}
		err error
	)
	if s.Min, err = data.Min(); err != nil {
		return Summary{}, fmt.Errorf("min: %w", err)
	}
	if s.Max, err = data.Max(); err != nil {
		return Summary{}, fmt.Errorf("max: %w", err)
	}
	if s.Mean, err = data.Mean(); err != nil {
		return Summary{}, fmt.Errorf("mean: %w", err)
	}
	if s.Median, err = data.Median(); err != nil {
		return Summary{}, fmt.Errorf("median: %w", err)
	}
	if s.StdDev, err = data.StandardDeviation(); err != nil {
		return Summary{}, fmt.Errorf("std dev: %w", err)
	}
	return s, nil
}

// MaxEnergy returns the largest energy in t.
func MaxEnergy(t *table.Table) (float64, error) {
	if t.Len() == 0 {
		return 0, &table.EmptyResultError{}
	}
	return stats.Max(t.Energies())
}
