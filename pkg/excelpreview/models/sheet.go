package models

// Sheet holds the extracted content of a single sheet.
type Sheet struct {
	// Name is the sheet name as it appears in the source file.
	Name string `json:"name"`
	// Rows holds the row-major cell matrix. Row 0, if present, is the header.
	Rows []Row `json:"rows"`
	// Tables lists Excel tables defined on the sheet, as "Name (A1:D10)".
	Tables []string `json:"tables,omitempty"`
	// TableCandidates contains cell ranges likely representing tables.
	TableCandidates []string `json:"table_candidates,omitempty"`
	// PrintAreas contains user-defined print areas.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
}

// Header returns row 0, or nil for an empty sheet.
func (s *Sheet) Header() Row {
	if len(s.Rows) == 0 {
		return nil
	}
	return s.Rows[0]
}

// DataRows returns up to limit rows following the header.
func (s *Sheet) DataRows(limit int) []Row {
	if len(s.Rows) <= 1 || limit <= 0 {
		return nil
	}
	end := 1 + limit
	if end > len(s.Rows) {
		end = len(s.Rows)
	}
	return s.Rows[1:end]
}
