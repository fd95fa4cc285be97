package parser

import (
	"fmt"

	"github.com/ukaji3/excelpreview-go/pkg/excelpreview/models"
	"github.com/xuri/excelize/v2"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// DetectTables detects a table-like region in an extracted cell matrix.
// Returns a list of cell ranges (e.g., "A1:D10") that likely represent tables.
func DetectTables(rows []models.Row, params TableDetectionParams) []string {
	if len(rows) == 0 {
		return nil
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmptyCells := countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)
	if nonEmptyCells < params.MinNonemptyCells {
		return nil
	}

	density := float64(nonEmptyCells) / float64(totalCells)
	if density < params.DensityMin {
		return nil
	}

	startCell, err := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	if err != nil {
		return nil
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	if err != nil {
		return nil
	}

	return []string{fmt.Sprintf("%s:%s", startCell, endCell)}
}

// ExtractDefinedTables lists the Excel tables defined on a sheet as "Name (Range)".
func ExtractDefinedTables(f *excelize.File, sheetName string) ([]string, error) {
	tables, err := f.GetTables(sheetName)
	if err != nil {
		return nil, err
	}

	var result []string
	for _, tbl := range tables {
		result = append(result, fmt.Sprintf("%s (%s)", tbl.Name, tbl.Range))
	}
	return result, nil
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows []models.Row) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell.IsMissing() {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// TrimToUsedRange drops the blank rows above and the blank columns left of
// the first non-empty cell, so row 0 is the first row holding data. Blank
// rows and cells inside the used range are kept. A matrix with no data
// yields nil.
func TrimToUsedRange(rows []models.Row) []models.Row {
	minRow, _, minCol, _ := findDataBounds(rows)
	if minRow < 0 {
		return nil
	}

	trimmed := make([]models.Row, 0, len(rows)-minRow)
	for _, row := range rows[minRow:] {
		if len(row) <= minCol {
			trimmed = append(trimmed, models.Row{})
			continue
		}
		trimmed = append(trimmed, row[minCol:])
	}
	return trimmed
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows []models.Row, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if !row[colIdx].IsMissing() {
				count++
			}
		}
	}
	return count
}
