package excelpreview

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/excelpreview-go/pkg/excelpreview/models"
	"github.com/xuri/excelize/v2"
)

func writeTestWorkbook(t *testing.T, path string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet("Zeta")
	require.NoError(t, err)
	_, err = f.NewSheet("Alpha")
	require.NoError(t, err)

	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"id", "name", "price"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{1, "apple", 1.25}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{2, "pear", 3}))
	require.NoError(t, f.SetCellValue("Zeta", "B2", "only"))
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$A$1:$C$3",
		Scope:    "Sheet1",
	}))

	require.NoError(t, f.SaveAs(path))
}

func TestExtractWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")
	writeTestWorkbook(t, path)

	wb, err := Extract(path, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, models.SourceWorkbook, wb.Kind)
	assert.Equal(t, "book.xlsx", wb.BookName)
	assert.Equal(t, path, wb.Path)
	assert.Equal(t, []string{"Sheet1", "Zeta", "Alpha"}, wb.SheetNames, "source order is preserved")
	require.Len(t, wb.Sheets, 3)

	sheet, ok := wb.Sheet("Sheet1")
	require.True(t, ok)
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, []string{"id", "name", "price"}, sheet.Header().Strings())
	assert.Equal(t, models.Number(1), sheet.Rows[1][0])
	assert.Equal(t, models.Number(1.25), sheet.Rows[1][2])
	assert.Equal(t, []string{"A1:C3"}, sheet.TableCandidates)
	assert.Empty(t, sheet.PrintAreas, "print areas are verbose only")

	zeta, ok := wb.Sheet("Zeta")
	require.True(t, ok)
	require.Len(t, zeta.Rows, 1, "rows start at the used range")
	assert.Equal(t, models.Row{models.Text("only")}, zeta.Rows[0])

	alpha, ok := wb.Sheet("Alpha")
	require.True(t, ok)
	assert.Empty(t, alpha.Rows)
}

func TestExtractWorkbookOffsetData(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "B3", &[]interface{}{"id", "name"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "B4", &[]interface{}{1, "x"}))
	path := filepath.Join(t.TempDir(), "offset.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	wb, err := Extract(path, DefaultOptions())
	require.NoError(t, err)

	sheet := wb.FirstSheet()
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, []string{"id", "name"}, sheet.Header().Strings())
	assert.Equal(t, models.Row{models.Number(1), models.Text("x")}, sheet.Rows[1])
	assert.Equal(t, []string{"B3:C4"}, sheet.TableCandidates, "candidates keep sheet coordinates")
}

func TestExtractWorkbookModes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")
	writeTestWorkbook(t, path)

	light, err := Extract(path, Options{Mode: ModeLight})
	require.NoError(t, err)
	assert.Empty(t, light.Sheets["Sheet1"].TableCandidates)

	verbose, err := Extract(path, Options{Mode: ModeVerbose})
	require.NoError(t, err)
	assert.Equal(t, []models.PrintArea{{R1: 1, C1: 1, R2: 3, C2: 3}}, verbose.Sheets["Sheet1"].PrintAreas)
}

func TestExtractDelimited(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Sales Q1.csv")
	require.NoError(t, os.WriteFile(path, []byte("region,total\nnorth,10\nsouth,\n"), 0644))

	wb, err := Extract(path, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, models.SourceDelimitedText, wb.Kind)
	assert.Equal(t, []string{models.DefaultSheetName}, wb.SheetNames)
	sheet := wb.FirstSheet()
	require.NotNil(t, sheet)
	assert.Equal(t, models.DefaultSheetName, sheet.Name)
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, models.Text("10"), sheet.Rows[1][1])
	assert.Equal(t, models.Row{models.Text("south")}, sheet.Rows[2])
}

func TestExtractFailures(t *testing.T) {
	dir := t.TempDir()

	corrupt := filepath.Join(dir, "corrupt.xlsx")
	require.NoError(t, os.WriteFile(corrupt, []byte("this is not a zip container"), 0644))

	tests := []struct {
		name      string
		path      string
		kind      models.SourceKind
		component string
	}{
		{"corrupt_workbook", corrupt, models.SourceWorkbook, "open"},
		{"missing_workbook", filepath.Join(dir, "missing.xlsx"), models.SourceWorkbook, "open"},
		{"missing_csv", filepath.Join(dir, "missing.csv"), models.SourceDelimitedText, "open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wb, err := NewExtractor(DefaultOptions()).Extract(tt.path, tt.kind)
			require.Error(t, err)
			assert.Nil(t, wb, "no partial workbook on failure")
			assert.True(t, errors.Is(err, ErrExtractionFailed))

			var extractionErr *ExtractionError
			require.True(t, errors.As(err, &extractionErr))
			assert.Equal(t, tt.component, extractionErr.Component)
			assert.Equal(t, tt.path, extractionErr.Path)
		})
	}
}

func TestExtractUnsupported(t *testing.T) {
	_, err := Extract("report.txt", DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedType))
	assert.False(t, errors.Is(err, ErrExtractionFailed))
}
