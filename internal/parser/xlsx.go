package parser

import (
	"fmt"

	"github.com/KaramelBytes/inflammation-cli/internal/models"
	"github.com/xuri/excelize/v2"
)

type xlsxLoader struct{}

func (xlsxLoader) CanLoad(filename string) bool {
	return hasSuffix(filename, ".xlsx")
}

// Load reads every row of the selected sheet. The sheet must hold numbers
// only, without a header row.
func (xlsxLoader) Load(path string, opt Options) (models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet := opt.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: workbook has no sheets", path)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	t, err := models.ParseRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("%s (sheet: %s): %w", path, sheet, err)
	}
	return t, nil
}
