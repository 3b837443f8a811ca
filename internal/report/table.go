package report

// HeaderCell is one cell of a table header row. ColSpan and RowSpan of zero are
// treated as 1. A RowSpan of 2 makes the cell occupy both rows of a two-row
// header, as used by the per-category score table.
type HeaderCell struct {
	Text    string
	ColSpan int
	RowSpan int
}

// Column carries per-column layout for a table body.
type Column struct {
	Width float64
	Align string // "L", "C", or "R"; empty means "L"
	Bold  bool
}

// Table is the simple grid shape consumed by Surface.DrawTable: an optional
// multi-row header (repeated on every physical page the table spans) and a
// body of plain string cells.
type Table struct {
	X       float64 // left edge of the table
	Head    [][]HeaderCell
	Body    [][]string
	Columns []Column

	HeadStyle Style
	BodyStyle Style
}

// Width returns the total table width.
func (t *Table) Width() float64 {
	total := 0.0
	for _, col := range t.Columns {
		total += col.Width
	}
	return total
}

// span helpers used by surface implementations.

// Cols returns the effective column span of the cell.
func (c HeaderCell) Cols() int {
	if c.ColSpan < 1 {
		return 1
	}
	return c.ColSpan
}

// Rows returns the effective row span of the cell.
func (c HeaderCell) Rows() int {
	if c.RowSpan < 1 {
		return 1
	}
	return c.RowSpan
}
