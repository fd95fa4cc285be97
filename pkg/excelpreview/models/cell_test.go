package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellString(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{"missing", Missing(), ""},
		{"text", Text("Header1"), "Header1"},
		{"empty_text", Text(""), ""},
		{"integer", Number(100), "100"},
		{"decimal", Number(200.5), "200.5"},
		{"negative", Number(-3.25), "-3.25"},
		{"negative_zero", Number(math.Copysign(0, -1)), "0"},
		{"large_plain", Number(1.2345678901234568e20), "123456789012345680000"},
		{"large_exponent", Number(1e21), "1e+21"},
		{"huge_exponent", Number(2.5e100), "2.5e+100"},
		{"small_plain", Number(0.000001), "0.000001"},
		{"small_exponent", Number(1.5e-7), "1.5e-7"},
		{"infinity", Number(math.Inf(1)), "Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cell.String())
		})
	}
}

func TestRowTrimRight(t *testing.T) {
	row := Row{Text("a"), Missing(), Text("b"), Missing(), Missing()}
	assert.Equal(t, Row{Text("a"), Missing(), Text("b")}, row.TrimRight())
	assert.Empty(t, Row{Missing()}.TrimRight())
	assert.Equal(t, []string{"a", "", "b"}, row.TrimRight().Strings())
}

func TestCellMarshalJSON(t *testing.T) {
	data, err := json.Marshal(Row{Text("x"), Number(1.5), Missing()})
	require.NoError(t, err)
	assert.JSONEq(t, `["x", 1.5, null]`, string(data))

	data, err = json.Marshal(Row{Number(math.Inf(-1))})
	require.NoError(t, err)
	assert.JSONEq(t, `["-Infinity"]`, string(data))
}

func TestSheetDataRows(t *testing.T) {
	s := &Sheet{Name: "S"}
	assert.Nil(t, s.Header())
	assert.Nil(t, s.DataRows(10))

	for i := 0; i < 15; i++ {
		s.Rows = append(s.Rows, Row{Number(float64(i))})
	}
	assert.Equal(t, Row{Number(0)}, s.Header())
	rows := s.DataRows(10)
	require.Len(t, rows, 10)
	assert.Equal(t, Row{Number(1)}, rows[0])
	assert.Equal(t, Row{Number(10)}, rows[9])
}
