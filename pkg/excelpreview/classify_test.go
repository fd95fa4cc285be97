package excelpreview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/excelpreview-go/pkg/excelpreview/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want models.SourceKind
	}{
		{"book.xlsx", models.SourceWorkbook},
		{"/data/Book.XLSX", models.SourceWorkbook},
		{"macro.xlsm", models.SourceWorkbook},
		{"template.xltx", models.SourceWorkbook},
		{"data.csv", models.SourceDelimitedText},
		{"DATA.CSV", models.SourceDelimitedText},
		{"report.txt", models.SourceUnsupported},
		{"legacy.xls", models.SourceUnsupported},
		{"noext", models.SourceUnsupported},
		{"archive.csv.gz", models.SourceUnsupported},
		{"", models.SourceUnsupported},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.path), "Classify(%q)", tt.path)
	}
}

func TestParseMode(t *testing.T) {
	for _, name := range []string{"light", "standard", "verbose"} {
		m, err := ParseMode(name)
		assert.NoError(t, err)
		assert.Equal(t, Mode(name), m)
	}

	_, err := ParseMode("loud")
	assert.Error(t, err)
}

func TestOptionsDefaults(t *testing.T) {
	yes, no := true, false

	assert.True(t, DefaultOptions().ShouldIncludeTables())
	assert.False(t, DefaultOptions().ShouldIncludePrintAreas())
	assert.False(t, Options{Mode: ModeLight}.ShouldIncludeTables())
	assert.True(t, Options{Mode: ModeVerbose}.ShouldIncludePrintAreas())
	assert.True(t, Options{Mode: ModeLight, IncludeTables: &yes}.ShouldIncludeTables())
	assert.False(t, Options{Mode: ModeVerbose, IncludePrintAreas: &no}.ShouldIncludePrintAreas())
}
