package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/nborank/internal/table"
	"github.com/KaramelBytes/nborank/internal/utils"
	"github.com/xuri/excelize/v2"
)

// ResultSheet is the worksheet name used for XLSX exports.
const ResultSheet = "Result"

// EncodeCSV writes the header and every record exactly as loaded.
func EncodeCSV(w io.Writer, t *table.Table, delim rune) error {
	cw := csv.NewWriter(w)
	if delim != 0 {
		cw.Comma = delim
	}
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, rec := range t.Records {
		if err := cw.Write(rec.Values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile exports t to path. A .xlsx extension produces a workbook, a
// .tsv extension tab-separated text, anything else CSV. The file is
// replaced atomically.
func WriteFile(path string, t *table.Table) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		data, err = encodeXLSX(t)
	case ".tsv":
		var buf bytes.Buffer
		err = EncodeCSV(&buf, t, '\t')
		data = buf.Bytes()
	default:
		var buf bytes.Buffer
		err = EncodeCSV(&buf, t, ',')
		data = buf.Bytes()
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return utils.SafeWriteFile(path, data)
}

// encodeXLSX writes the energy column as numbers and every other cell as text.
func encodeXLSX(t *table.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", ResultSheet); err != nil {
		return nil, err
	}
	header := make([]any, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(ResultSheet, "A1", &header); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(ResultSheet, 1, 1, bold); err != nil {
		return nil, err
	}
	energyIdx := table.ColumnIndex(t.Columns, t.Schema.EnergyColumn)
	for i, rec := range t.Records {
		row := make([]any, len(rec.Values))
		for j, v := range rec.Values {
			row[j] = v
		}
		if energyIdx >= 0 {
			row[energyIdx] = rec.Energy
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(ResultSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
