package parser

import (
	"strings"

	"github.com/ukaji3/excelpreview-go/pkg/excelpreview/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// ExtractPrintAreas returns the print areas of a workbook keyed by sheet name.
func ExtractPrintAreas(f *excelize.File) map[string][]models.PrintArea {
	result := make(map[string][]models.PrintArea)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if dn.Scope != "" && dn.Scope != "Workbook" {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result
}

// parsePrintAreaReference parses 'Sheet Name'!$A$1:$D$10[,Sheet!$F$1:$G$4].
// The sheet name of the first part wins.
func parsePrintAreaReference(ref string) (string, []models.PrintArea) {
	var (
		sheetName string
		areas     []models.PrintArea
	)

	for _, part := range strings.Split(ref, ",") {
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		if sheetName == "" {
			sheetName = strings.Trim(strings.TrimSpace(part[:idx]), "'")
		}
		if area, ok := parseRangeToArea(part[idx+1:]); ok {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}

// parseRangeToArea parses a range string like $A$1:$D$10.
func parseRangeToArea(rangeStr string) (models.PrintArea, bool) {
	start, end, found := strings.Cut(strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", ""), ":")
	if !found {
		return models.PrintArea{}, false
	}

	c1, r1, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return models.PrintArea{}, false
	}
	c2, r2, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return models.PrintArea{}, false
	}

	return models.PrintArea{R1: r1, C1: c1, R2: r2, C2: c2}, true
}
