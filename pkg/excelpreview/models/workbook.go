package models

// SourceKind classifies an input file.
type SourceKind string

const (
	// SourceWorkbook is a spreadsheet workbook (.xlsx and friends).
	SourceWorkbook SourceKind = "workbook"
	// SourceDelimitedText is a delimited text file (.csv).
	SourceDelimitedText SourceKind = "delimited-text"
	// SourceUnsupported is anything else.
	SourceUnsupported SourceKind = "unsupported"
)

// DefaultSheetName is the synthetic sheet name used for delimited text sources.
const DefaultSheetName = "default"

// Workbook is the extracted content of one file.
type Workbook struct {
	// Path is the path the workbook was loaded from, as supplied by the caller.
	Path string `json:"path"`
	// BookName is the file name (no directory).
	BookName string `json:"book_name"`
	// Kind is the source classification.
	Kind SourceKind `json:"kind"`
	// SheetNames lists sheets in source order.
	SheetNames []string `json:"sheet_names"`
	// Sheets maps sheet name to its data.
	Sheets map[string]*Sheet `json:"sheets"`
}

// Sheet looks up a sheet by exact name.
func (w *Workbook) Sheet(name string) (*Sheet, bool) {
	s, ok := w.Sheets[name]
	return s, ok
}

// FirstSheet returns the first sheet in source order, or nil if there are none.
func (w *Workbook) FirstSheet() *Sheet {
	if len(w.SheetNames) == 0 {
		return nil
	}
	return w.Sheets[w.SheetNames[0]]
}
