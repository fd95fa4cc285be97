package parser

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/ukaji3/excelpreview-go/pkg/excelpreview/models"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadDelimited reads comma-separated text into a cell matrix.
//
// Input is decoded as UTF-8 unless a byte order mark selects UTF-16; a UTF-8
// byte order mark is stripped and invalid sequences become U+FFFD. Fields are
// kept raw: every non-empty field is a text cell, empty fields are missing.
// Blank lines before or between records become empty rows; trailing blank
// lines are dropped.
func ReadDelimited(r io.Reader) ([]models.Row, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows []models.Row
	lastLine := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Errorf("reading delimited text: %w", err)
		}

		// encoding/csv skips blank lines; recover them from line positions.
		startLine, _ := cr.FieldPos(0)
		for blank := startLine - lastLine - 1; blank > 0; blank-- {
			rows = append(rows, models.Row{})
		}
		endLine, _ := cr.FieldPos(len(record) - 1)
		lastLine = endLine + strings.Count(record[len(record)-1], "\n")

		row := make(models.Row, len(record))
		for i, field := range record {
			if field != "" {
				row[i] = models.Text(field)
			}
		}
		rows = append(rows, row.TrimRight())
	}

	return rows, nil
}
