// Package loader turns user-provided files into validated tables.
package loader

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/KaramelBytes/nborank/internal/table"
)

// Options controls how a file is read.
type Options struct {
	Schema table.Schema
	// Delimiter for CSV. If 0, chosen from the file extension.
	Delimiter rune
	// Sheet selects an XLSX worksheet by name; empty means the first sheet.
	Sheet string
}

// DefaultOptions returns options for comma-separated NBO exports.
func DefaultOptions() Options {
	return Options{Schema: table.DefaultSchema()}
}

// Loader reads one file format.
type Loader interface {
	CanLoad(filename string) bool
	Load(name string, content []byte, opt Options) (*table.Table, error)
}

var registry []Loader

// Register adds a loader implementation to the registry.
func Register(l Loader) {
	registry = append(registry, l)
}

// LoadFile selects a loader based on filename and returns the parsed table.
// Files with an unknown extension are read as CSV.
func LoadFile(path string, opt Options) (*table.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Load(path, data, opt)
}

// Load parses content already in memory, using name to pick the format.
func Load(name string, content []byte, opt Options) (*table.Table, error) {
	var l Loader = csvLoader{}
	for _, candidate := range registry {
		if candidate.CanLoad(name) {
			l = candidate
			break
		}
	}
	t, err := l.Load(name, content, opt)
	if err != nil {
		return nil, err
	}
	slog.Debug("table loaded", "file", name, "rows", t.Len(), "columns", len(t.Columns))
	return t, nil
}

// ParseDelimiter maps flag spellings to a CSV delimiter rune.
func ParseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "":
		return 0, nil
	case ",", "comma":
		return ',', nil
	case ";", "semicolon":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported delimiter: %s (use ','|';'|'tab')", s)
	}
}

func hasSuffixFold(name string, exts ...string) bool {
	lower := strings.ToLower(name)
	for _, e := range exts {
		if strings.HasSuffix(lower, e) {
			return true
		}
	}
	return false
}

func isZip(content []byte) bool {
	return bytes.HasPrefix(content, []byte("PK\x03\x04"))
}

func init() {
	Register(csvLoader{})
	Register(xlsxLoader{})
}
