package parser

import (
	"testing"

	"github.com/ukaji3/excelpreview-go/pkg/excelpreview/models"
	"github.com/xuri/excelize/v2"
)

func TestParsePrintAreaReference(t *testing.T) {
	tests := []struct {
		ref       string
		sheetName string
		areas     []models.PrintArea
	}{
		{"Sheet1!$A$1:$D$10", "Sheet1", []models.PrintArea{{R1: 1, C1: 1, R2: 10, C2: 4}}},
		{"'My Sheet'!$B$2:$C$3", "My Sheet", []models.PrintArea{{R1: 2, C1: 2, R2: 3, C2: 3}}},
		{"Sheet1!$A$1:$B$2,Sheet1!$D$4:$E$5", "Sheet1", []models.PrintArea{
			{R1: 1, C1: 1, R2: 2, C2: 2},
			{R1: 4, C1: 4, R2: 5, C2: 5},
		}},
		{"Sheet1!$A$1", "Sheet1", nil},
		{"garbage", "", nil},
	}

	for _, tt := range tests {
		sheetName, areas := parsePrintAreaReference(tt.ref)
		if sheetName != tt.sheetName {
			t.Errorf("parsePrintAreaReference(%q) sheet = %q, expected %q", tt.ref, sheetName, tt.sheetName)
		}
		if len(areas) != len(tt.areas) {
			t.Errorf("parsePrintAreaReference(%q) areas = %v, expected %v", tt.ref, areas, tt.areas)
			continue
		}
		for i := range areas {
			if areas[i] != tt.areas[i] {
				t.Errorf("parsePrintAreaReference(%q)[%d] = %v, expected %v", tt.ref, i, areas[i], tt.areas[i])
			}
		}
	}
}

func TestExtractPrintAreas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$A$1:$C$5",
		Scope:    "Sheet1",
	}); err != nil {
		t.Fatalf("SetDefinedName failed: %v", err)
	}

	areas := ExtractPrintAreas(f)
	got := areas["Sheet1"]
	if len(got) != 1 || got[0] != (models.PrintArea{R1: 1, C1: 1, R2: 5, C2: 3}) {
		t.Errorf("Unexpected print areas: %v", areas)
	}
}
