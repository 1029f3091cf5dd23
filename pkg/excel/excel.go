// Package excel renders report data into downloadable spreadsheets.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Cell is a typed spreadsheet value
type Cell = interface{}

// Table is a generic sheet definition: a title row, a header row and data
// rows. Reports translate their result structs into tables before rendering.
type Table struct {
	Sheet   string
	Title   string
	Headers []string
	Rows    [][]Cell
	// Footer rows appear after a blank row, left-labelled (totals etc.)
	Footer [][]Cell
}

// Build renders one or more tables into a workbook, one sheet per table
func Build(tables ...Table) (*excelize.File, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("no tables to render")
	}

	f := excelize.NewFile()

	for i, t := range tables {
		sheet := t.Sheet
		if sheet == "" {
			sheet = fmt.Sprintf("Sheet%d", i+1)
		}

		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, err
			}
		}

		if err := writeTable(f, sheet, t); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeTable(f *excelize.File, sheet string, t Table) error {
	row := 1

	if t.Title != "" {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(sheet, cell, t.Title); err != nil {
			return err
		}
		titleStyle, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Size: 14},
		})
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, titleStyle); err != nil {
			return err
		}
		row += 2
	}

	if len(t.Headers) > 0 {
		headerStyle, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E2EFDA"}},
		})
		if err != nil {
			return err
		}
		for col, h := range t.Headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, h); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
				return err
			}
		}
		row++
	}

	for _, r := range t.Rows {
		for col, v := range r {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		row++
	}

	if len(t.Footer) > 0 {
		row++
		boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return err
		}
		for _, r := range t.Footer {
			for col, v := range r {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return err
				}
				if err := f.SetCellStyle(sheet, cell, cell, boldStyle); err != nil {
					return err
				}
			}
			row++
		}
	}

	// Reasonable default widths; exact sizing is not worth per-report tuning
	if len(t.Headers) > 0 {
		endCol, _ := excelize.ColumnNumberToName(len(t.Headers))
		if err := f.SetColWidth(sheet, "A", endCol, 18); err != nil {
			return err
		}
	}

	return nil
}
