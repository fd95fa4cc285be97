package excelpreview

import (
	"os"
	"path/filepath"

	"github.com/ukaji3/excelpreview-go/pkg/excelpreview/models"
	"github.com/ukaji3/excelpreview-go/pkg/excelpreview/parser"
	"github.com/xuri/excelize/v2"
	"gitlab.com/tozd/go/errors"
)

// Extractor turns a classified file into a Workbook.
type Extractor interface {
	Extract(path string, kind models.SourceKind) (*models.Workbook, error)
}

// FileExtractor reads workbooks with excelize and delimited text with encoding/csv.
type FileExtractor struct {
	opts Options
}

var _ Extractor = (*FileExtractor)(nil)

// NewExtractor creates a FileExtractor.
func NewExtractor(opts Options) *FileExtractor {
	return &FileExtractor{opts: opts}
}

// Extract extracts structured data from a file after classifying it.
func Extract(path string, opts Options) (*models.Workbook, error) {
	return NewExtractor(opts).Extract(path, Classify(path))
}

// Extract reads every sheet of the file. On failure no Workbook is returned.
func (e *FileExtractor) Extract(path string, kind models.SourceKind) (*models.Workbook, error) {
	switch kind {
	case models.SourceWorkbook:
		return e.extractWorkbook(path)
	case models.SourceDelimitedText:
		return e.extractDelimited(path)
	default:
		return nil, errors.Errorf("%w: %s", ErrUnsupportedType, path)
	}
}

func (e *FileExtractor) extractWorkbook(path string) (*models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewExtractionError(path, "", "open", err)
	}
	defer f.Close()

	wb := newWorkbook(path, models.SourceWorkbook)

	// Print areas are workbook-level defined names
	var printAreas map[string][]models.PrintArea
	if e.opts.ShouldIncludePrintAreas() {
		printAreas = parser.ExtractPrintAreas(f)
	}

	for _, sheetName := range f.GetSheetList() {
		rows, err := parser.ExtractCells(f, sheetName)
		if err != nil {
			return nil, NewExtractionError(path, sheetName, "cells", err)
		}

		sheet := &models.Sheet{
			Name:       sheetName,
			Rows:       parser.TrimToUsedRange(rows),
			PrintAreas: printAreas[sheetName],
		}

		// Table metadata is best effort. Candidates use the untrimmed
		// matrix so their ranges keep sheet coordinates.
		if e.opts.ShouldIncludeTables() {
			if tables, err := parser.ExtractDefinedTables(f, sheetName); err == nil {
				sheet.Tables = tables
			}
			sheet.TableCandidates = parser.DetectTables(rows, parser.DefaultTableParams())
		}

		addSheet(wb, sheet)
	}

	if len(wb.SheetNames) == 0 {
		return nil, NewExtractionError(path, "", "open", errors.New("workbook has no sheets"))
	}

	return wb, nil
}

func (e *FileExtractor) extractDelimited(path string) (*models.Workbook, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, NewExtractionError(path, "", "open", err)
	}
	defer file.Close()

	rows, err := parser.ReadDelimited(file)
	if err != nil {
		return nil, NewExtractionError(path, models.DefaultSheetName, "delimited", err)
	}

	wb := newWorkbook(path, models.SourceDelimitedText)
	addSheet(wb, &models.Sheet{
		Name: models.DefaultSheetName,
		Rows: rows,
	})

	return wb, nil
}

func newWorkbook(path string, kind models.SourceKind) *models.Workbook {
	return &models.Workbook{
		Path:     path,
		BookName: filepath.Base(path),
		Kind:     kind,
		Sheets:   make(map[string]*models.Sheet),
	}
}

// addSheet appends a sheet, keeping source order.
func addSheet(wb *models.Workbook, s *models.Sheet) {
	wb.SheetNames = append(wb.SheetNames, s.Name)
	wb.Sheets[s.Name] = s
}
