package export

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/KaramelBytes/nborank/internal/rank"
	"github.com/KaramelBytes/nborank/internal/utils"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Manifest records how an export was produced.
type Manifest struct {
	ID        string         `yaml:"id"`
	Source    string         `yaml:"source"`
	Output    string         `yaml:"output,omitempty"`
	CreatedAt time.Time      `yaml:"created_at"`
	Columns   []string       `yaml:"columns"`
	Filter    ManifestFilter `yaml:"filter"`
	Direction string         `yaml:"direction"`
	N         int            `yaml:"n"`
	Rows      ManifestRows   `yaml:"rows"`
	Summary   *rank.Summary  `yaml:"summary,omitempty"`
}

type ManifestFilter struct {
	Exclude   []string `yaml:"exclude"`
	Include   []string `yaml:"include"`
	AnyColumn bool     `yaml:"any_column"`
}

type ManifestRows struct {
	Loaded   int `yaml:"loaded"`
	Filtered int `yaml:"filtered"`
	Returned int `yaml:"returned"`
}

// NewManifest describes res. output is the export path, if any.
func NewManifest(res *Result, output string) *Manifest {
	return &Manifest{
		ID:        uuid.NewString(),
		Source:    res.Source,
		Output:    output,
		CreatedAt: time.Now().UTC(),
		Columns:   append([]string(nil), res.Table.Columns...),
		Filter: ManifestFilter{
			Exclude:   nonNil(res.Filter.Exclude),
			Include:   nonNil(res.Filter.Include),
			AnyColumn: res.Filter.AnyColumn,
		},
		Direction: res.Request.Direction.String(),
		N:         res.Request.N,
		Rows: ManifestRows{
			Loaded:   res.Loaded,
			Filtered: res.Filtered,
			Returned: res.Table.Len(),
		},
		Summary: res.Summary,
	}
}

// Save writes the manifest as YAML using an atomic write.
func (m *Manifest) Save(path string) error {
	if m == nil {
		return errors.New("manifest is nil")
	}
	b, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	return utils.SafeWriteFile(path, b)
}

// LoadManifest reads a manifest written by Save.
func LoadManifest(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("manifest not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return append([]string(nil), v...)
}
