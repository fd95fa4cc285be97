package excelpreview

import (
	"path/filepath"
	"strings"

	"github.com/ukaji3/excelpreview-go/pkg/excelpreview/models"
)

// workbookExts are the OOXML spreadsheet extensions excelize can open.
var workbookExts = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

const delimitedTextExt = ".csv"

// Classify determines the source kind of a path from its extension.
// Matching ignores case, so "REPORT.XLSX" is a workbook. It performs no I/O.
func Classify(path string) models.SourceKind {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case workbookExts[ext]:
		return models.SourceWorkbook
	case ext == delimitedTextExt:
		return models.SourceDelimitedText
	default:
		return models.SourceUnsupported
	}
}
