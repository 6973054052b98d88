package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const excelSheet = "Report"

// ExcelExporter renders datasets into a single-sheet XLSX workbook.
type ExcelExporter struct{}

// NewExcelExporter constructs an Excel exporter.
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Render produces XLSX bytes with headers on the first row.
func (e *ExcelExporter) Render(data Dataset) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("xlsx requires at least one header")
	}

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	index, err := f.NewSheet(excelSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for col, header := range data.Headers {
		if err := setCell(f, col+1, 1, header); err != nil {
			return nil, err
		}
	}
	for r, row := range data.Rows {
		for c := range data.Headers {
			value := ""
			if c < len(row) {
				value = row[c]
			}
			if err := setCell(f, c+1, r+2, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for XLSX output.
func (e *ExcelExporter) Extension() string {
	return "xlsx"
}

func setCell(f *excelize.File, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("resolve cell: %w", err)
	}
	if err := f.SetCellValue(excelSheet, cell, value); err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}
	return nil
}
