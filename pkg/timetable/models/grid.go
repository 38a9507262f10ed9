// Package models defines data structures for timetable extraction.
package models

// Row is one table row. A nil cell means the extractor produced no cell there.
type Row []*string

// Table is a rectangular (possibly ragged) block of cells found on a page.
type Table struct {
	// Range is the source cell range (e.g., "A1:K40") when known.
	Range string `json:"range,omitempty"`
	// Rows contains the table rows in reading order.
	Rows []Row `json:"rows"`
}

// Page holds the candidate tables found on one page or sheet.
type Page struct {
	// Number is the page number (1-based).
	Number int `json:"number"`
	// Name is the sheet name when the page comes from a workbook.
	Name string `json:"name,omitempty"`
	// Tables contains every candidate table detected on the page.
	Tables []Table `json:"tables"`
}

// Grid is the adapter output for one document.
type Grid struct {
	// Source is the document name (no path).
	Source string `json:"source"`
	// Pages contains pages in document order.
	Pages []Page `json:"pages"`
}

// Text returns a cell holding s.
func Text(s string) *string {
	return &s
}

// Cell returns the cell at col, or nil when the row is too short.
func (r Row) Cell(col int) *string {
	if col < 0 || col >= len(r) {
		return nil
	}
	return r[col]
}

// CellText returns the cell text at col, or "" when there is no cell.
func (r Row) CellText(col int) string {
	if c := r.Cell(col); c != nil {
		return *c
	}
	return ""
}

// Width returns the widest row length in the table.
func (t Table) Width() int {
	width := 0
	for _, row := range t.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// Size returns the cell count used to rank candidate tables.
func (t Table) Size() int {
	return len(t.Rows) * t.Width()
}
