// Package models defines data structures for tabular file previews.
package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// CellKind identifies which variant a Cell holds.
type CellKind uint8

const (
	// CellMissing marks an absent cell.
	CellMissing CellKind = iota
	// CellText marks a text value.
	CellText
	// CellNumber marks a numeric value.
	CellNumber
)

// Cell is a single cell value: text, number, or missing.
type Cell struct {
	// Kind selects which of Text or Number is meaningful.
	Kind CellKind
	// Text is the value of a CellText cell.
	Text string
	// Number is the value of a CellNumber cell.
	Number float64
}

// Text returns a text cell.
func Text(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// Number returns a numeric cell.
func Number(v float64) Cell {
	return Cell{Kind: CellNumber, Number: v}
}

// Missing returns an absent cell.
func Missing() Cell {
	return Cell{}
}

// IsMissing reports whether the cell is absent.
func (c Cell) IsMissing() bool {
	return c.Kind == CellMissing
}

// String renders the cell for display. Missing cells render as "".
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return formatNumber(c.Number)
	default:
		return ""
	}
}

// formatNumber writes the shortest decimal form, switching to exponent
// notation at 1e21 and below 1e-6 ("1e+21", "1.5e-7").
func formatNumber(v float64) string {
	switch {
	case v == 0:
		return "0"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	abs := math.Abs(v)
	if abs < 1e21 && abs >= 1e-6 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'e', -1, 64)
	s = strings.Replace(s, "e+0", "e+", 1)
	return strings.Replace(s, "e-0", "e-", 1)
}

// MarshalJSON encodes text as a JSON string, numbers as JSON numbers and
// missing cells as null. Non-finite numbers have no JSON form and are
// written as strings.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CellText:
		return json.Marshal(c.Text)
	case CellNumber:
		if math.IsInf(c.Number, 0) || math.IsNaN(c.Number) {
			return json.Marshal(formatNumber(c.Number))
		}
		return json.Marshal(c.Number)
	default:
		return []byte("null"), nil
	}
}

// Row is an ordered sequence of cells. Rows in a sheet need not share a length.
type Row []Cell

// Strings renders every cell of the row.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = c.String()
	}
	return out
}

// TrimRight drops trailing missing cells.
func (r Row) TrimRight() Row {
	end := len(r)
	for end > 0 && r[end-1].IsMissing() {
		end--
	}
	return r[:end]
}
