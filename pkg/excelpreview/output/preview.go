// Package output renders extracted workbooks as text previews.
package output

import (
	"fmt"
	"strings"

	"github.com/ukaji3/excelpreview-go/pkg/excelpreview/models"
	"github.com/xuri/excelize/v2"
)

// MaxPreviewRows is the maximum number of data rows shown below the header.
const MaxPreviewRows = 10

const (
	headerSeparator = ", "
	rowSeparator    = " | "
	sheetSeparator  = ", "
	endMarker       = "---"

	followUpHint = "💬 Ask a follow-up question in natural language to explore this data further."
)

// Preview is the display-ready content of a report.
type Preview struct {
	Kind       models.SourceKind `json:"kind"`
	Path       string            `json:"path"`
	SheetNames []string          `json:"sheet_names"`
	Sheet      string            `json:"sheet"`
	Tables     []string          `json:"tables,omitempty"`
	PrintAreas []string          `json:"print_areas,omitempty"`
	Header     []string          `json:"header"`
	Rows       [][]string        `json:"rows"`
}

// SelectSheet picks the requested sheet if the workbook has it, otherwise the
// first sheet in source order. Delimited text always yields its single sheet.
func SelectSheet(wb *models.Workbook, requested string) *models.Sheet {
	if wb.Kind != models.SourceDelimitedText && requested != "" {
		if s, ok := wb.Sheet(requested); ok {
			return s
		}
	}
	return wb.FirstSheet()
}

// BuildPreview derives the header and up to MaxPreviewRows data rows of the selected sheet.
func BuildPreview(wb *models.Workbook, requested string) Preview {
	p := Preview{
		Kind:       wb.Kind,
		Path:       wb.Path,
		SheetNames: wb.SheetNames,
		Header:     []string{},
		Rows:       [][]string{},
	}

	sheet := SelectSheet(wb, requested)
	if sheet == nil {
		return p
	}

	p.Sheet = sheet.Name
	p.Header = sheet.Header().Strings()
	for _, row := range sheet.DataRows(MaxPreviewRows) {
		p.Rows = append(p.Rows, row.Strings())
	}
	p.Tables = append(p.Tables, sheet.Tables...)
	p.Tables = append(p.Tables, sheet.TableCandidates...)
	for _, area := range sheet.PrintAreas {
		if ref, ok := areaRef(area); ok {
			p.PrintAreas = append(p.PrintAreas, ref)
		}
	}

	return p
}

// Render formats a preview as the text report returned to callers.
func Render(p Preview) string {
	var lines []string

	if p.Kind == models.SourceDelimitedText {
		lines = append(lines, fmt.Sprintf("📄 Delimited text file: %s (sheet: %s)", p.Path, p.Sheet))
	} else {
		lines = append(lines,
			fmt.Sprintf("📄 Detected sheets: %s", strings.Join(p.SheetNames, sheetSeparator)),
			fmt.Sprintf("🔹 Selected sheet: %s", p.Sheet),
		)
		if len(p.Tables) > 0 {
			lines = append(lines, fmt.Sprintf("📐 Tables: %s", strings.Join(p.Tables, sheetSeparator)))
		}
		if len(p.PrintAreas) > 0 {
			lines = append(lines, fmt.Sprintf("🖨 Print areas: %s", strings.Join(p.PrintAreas, sheetSeparator)))
		}
	}

	lines = append(lines,
		"Header: "+strings.Join(p.Header, headerSeparator),
		fmt.Sprintf("First %d rows:", len(p.Rows)),
	)
	for _, row := range p.Rows {
		lines = append(lines, strings.Join(row, rowSeparator))
	}
	lines = append(lines, endMarker, followUpHint)

	return strings.Join(lines, "\n")
}

// RenderPreview selects a sheet and renders its preview.
func RenderPreview(wb *models.Workbook, requested string) string {
	return Render(BuildPreview(wb, requested))
}

// areaRef formats a print area as an A1-style range.
func areaRef(a models.PrintArea) (string, bool) {
	from, err := excelize.CoordinatesToCellName(a.C1, a.R1)
	if err != nil {
		return "", false
	}
	to, err := excelize.CoordinatesToCellName(a.C2, a.R2)
	if err != nil {
		return "", false
	}
	return from + ":" + to, true
}
