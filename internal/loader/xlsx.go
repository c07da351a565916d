package loader

import (
	"bytes"
	"fmt"

	"github.com/KaramelBytes/nborank/internal/table"
	"github.com/xuri/excelize/v2"
)

type xlsxLoader struct{}

func (xlsxLoader) CanLoad(filename string) bool {
	return hasSuffixFold(filename, ".xlsx", ".xlsm")
}

// Load reads the selected sheet; the first non-empty row is the header.
func (xlsxLoader) Load(name string, content []byte, opt Options) (*table.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, &table.ValidationError{Msg: "file could not be parsed", Err: err}
	}
	defer f.Close()

	sheet := opt.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, table.Invalid("file could not be parsed: %s has no sheets", name)
		}
		sheet = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, table.Invalid("sheet %q not found in %s", sheet, name)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &table.ValidationError{Msg: fmt.Sprintf("file could not be parsed: read sheet %q", sheet), Err: err}
	}
	for len(rows) > 0 && blankRow(rows[0]) {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, table.Invalid("file could not be parsed: sheet %q is empty", sheet)
	}
	body := make([][]string, 0, len(rows)-1)
	for _, r := range rows[1:] {
		if blankRow(r) {
			continue
		}
		body = append(body, r)
	}
	return table.New(rows[0], body, opt.Schema)
}
