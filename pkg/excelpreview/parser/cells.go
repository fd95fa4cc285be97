// Package parser converts workbook and delimited text sources into cell matrices.
package parser

import (
	"strconv"

	"github.com/ukaji3/excelpreview-go/pkg/excelpreview/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells extracts the cell matrix of a sheet.
// Values are read raw (no number formats applied) and typed per cell:
// numeric cells stay numeric, text stays text, empty cells are missing.
func ExtractCells(f *excelize.File, sheetName string) ([]models.Row, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	result := make([]models.Row, 0, len(rows))
	for rowIdx, row := range rows {
		cells := make(models.Row, len(row))
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			cells[colIdx] = typedValue(raw, cellType)
		}
		result = append(result, cells.TrimRight())
	}

	return result, nil
}

// typedValue converts a raw cell value to a Cell according to its stored type.
// Cells without an explicit type attribute are numeric in OOXML.
func typedValue(raw string, cellType excelize.CellType) models.Cell {
	switch cellType {
	case excelize.CellTypeUnset, excelize.CellTypeNumber, excelize.CellTypeDate:
		return parseValue(raw)
	case excelize.CellTypeBool:
		if raw == "1" || raw == "TRUE" || raw == "true" {
			return models.Text("true")
		}
		return models.Text("false")
	default:
		return models.Text(raw)
	}
}

// parseValue attempts to parse a string value as a number.
// Returns a numeric cell on success, otherwise a text cell.
func parseValue(s string) models.Cell {
	if s == "" {
		return models.Missing()
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.Number(f)
	}
	return models.Text(s)
}
