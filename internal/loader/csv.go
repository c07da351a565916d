package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"

	"github.com/KaramelBytes/nborank/internal/table"
)

type csvLoader struct{}

func (csvLoader) CanLoad(filename string) bool {
	return hasSuffixFold(filename, ".csv", ".tsv", ".txt")
}

// Load reads the header and every row before building the table, so a parse
// error anywhere yields no partial result.
func (csvLoader) Load(name string, content []byte, opt Options) (*table.Table, error) {
	if isZip(content) {
		return nil, table.Invalid("file could not be parsed: %s looks like a spreadsheet, not CSV", name)
	}
	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(name)
	}
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = delim

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, table.Invalid("file could not be parsed: %s is empty", name)
		}
		return nil, &table.ValidationError{Msg: "file could not be parsed", Err: err}
	}
	var rows [][]string
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &table.ValidationError{Msg: "file could not be parsed", Row: len(rows) + 1, Err: err}
		}
		if blankRow(rec) {
			continue
		}
		rows = append(rows, rec)
	}
	return table.New(header, rows, opt.Schema)
}

func sniffDelimiter(path string) rune {
	if hasSuffixFold(path, ".tsv") {
		return '\t'
	}
	return ','
}

func blankRow(rec []string) bool {
	for _, v := range rec {
		if v != "" {
			return false
		}
	}
	return true
}
