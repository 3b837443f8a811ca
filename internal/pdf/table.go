package pdf

import (
	"fmt"

	"github.com/jonathan/candidate-report/internal/report"
)

// Cell padding inside table cells, in millimetres.
const (
	cellPadX = 1.6
	cellPadY = 1.2
)

// DrawTable implements report.Surface. Rows never cross the bottom content
// limit: when the next row would, a new physical page is started, the observer
// is asked where content resumes, and the header rows are repeated there.
func (d *Document) DrawTable(t *report.Table, startY float64, obs report.PageBreakObserver) (float64, error) {
	if len(t.Columns) == 0 {
		return startY, fmt.Errorf("table has no columns")
	}

	_, pageH := d.PageSize()
	bottom := pageH - report.BottomReserve

	headH := d.headHeight(t)
	y := startY

	breakPage := func() error {
		d.pdf.AddPage()
		if d.pdf.Err() {
			return fmt.Errorf("add table page: %w", d.pdf.Error())
		}
		y = obs.PageStarted(d.pdf.PageNo())
		return nil
	}

	// The header plus at least one body row must fit before anything is drawn.
	firstRowH := 0.0
	if len(t.Body) > 0 {
		var err error
		firstRowH, err = d.rowHeight(t, t.Body[0])
		if err != nil {
			return startY, err
		}
	}
	if y+headH+firstRowH > bottom {
		if err := breakPage(); err != nil {
			return y, err
		}
	}
	if err := d.drawHead(t, &y); err != nil {
		return y, err
	}

	for _, row := range t.Body {
		rowH, err := d.rowHeight(t, row)
		if err != nil {
			return y, err
		}
		if y+rowH > bottom {
			if err := breakPage(); err != nil {
				return y, err
			}
			if err := d.drawHead(t, &y); err != nil {
				return y, err
			}
		}
		if err := d.drawRow(t, row, y, rowH); err != nil {
			return y, err
		}
		y += rowH
	}

	return y + 2, nil
}

// headHeight returns the total height of the header rows.
func (d *Document) headHeight(t *report.Table) float64 {
	return float64(len(t.Head)) * (d.LineHeight(t.HeadStyle) + 2*cellPadY)
}

// rowHeight measures a body row: the tallest wrapped cell plus padding.
func (d *Document) rowHeight(t *report.Table, row []string) (float64, error) {
	lineH := d.LineHeight(t.BodyStyle)
	maxLines := 1
	for i, cell := range row {
		if i >= len(t.Columns) || cell == "" {
			continue
		}
		lines, err := d.WrapText(cell, t.Columns[i].Width-2*cellPadX, t.BodyStyle)
		if err != nil {
			return 0, err
		}
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
	}
	return float64(maxLines)*lineH + 2*cellPadY, nil
}

// colOffsets returns each column's left X plus the table's right edge.
func colOffsets(t *report.Table) []float64 {
	offsets := make([]float64, len(t.Columns)+1)
	offsets[0] = t.X
	for i, col := range t.Columns {
		offsets[i+1] = offsets[i] + col.Width
	}
	return offsets
}

// drawHead renders the header rows, honoring column and row spans (the
// two-row score-table header bridges its Candidate and Total cells across
// both rows). Advances *y past the header.
func (d *Document) drawHead(t *report.Table, y *float64) error {
	if len(t.Head) == 0 {
		return nil
	}

	offsets := colOffsets(t)
	rowH := d.LineHeight(t.HeadStyle) + 2*cellPadY
	top := *y

	// occupiedUntil[c] is the header row index until which column c is covered
	// by a row-spanning cell from an earlier row.
	occupiedUntil := make([]int, len(t.Columns))

	for ri, row := range t.Head {
		ci := 0
		for _, cell := range row {
			for ci < len(t.Columns) && occupiedUntil[ci] > ri {
				ci++
			}
			if ci >= len(t.Columns) {
				break
			}

			span := cell.Cols()
			if ci+span > len(t.Columns) {
				span = len(t.Columns) - ci
			}
			x := offsets[ci]
			w := offsets[ci+span] - x
			h := rowH * float64(cell.Rows())

			d.pdf.SetFillColor(225, 228, 235)
			d.pdf.SetDrawColor(150, 150, 150)
			d.pdf.SetLineWidth(0.2)
			d.pdf.Rect(x, top+float64(ri)*rowH, w, h, "FD")

			label := d.truncate(cell.Text, w-2*cellPadX, t.HeadStyle)
			labelW, err := d.TextWidth(label, t.HeadStyle)
			if err != nil {
				return err
			}
			textY := top + float64(ri)*rowH + (h-d.LineHeight(t.HeadStyle))/2
			d.DrawText(label, x+(w-labelW)/2, textY, t.HeadStyle)

			for k := ci; k < ci+span; k++ {
				occupiedUntil[k] = ri + cell.Rows()
			}
			ci += span
		}
	}

	*y = top + rowH*float64(len(t.Head))
	return nil
}

// drawRow renders one body row with per-column alignment and bold flags.
func (d *Document) drawRow(t *report.Table, row []string, y, rowH float64) error {
	offsets := colOffsets(t)
	lineH := d.LineHeight(t.BodyStyle)

	for i := range t.Columns {
		x := offsets[i]
		w := t.Columns[i].Width

		d.pdf.SetDrawColor(150, 150, 150)
		d.pdf.SetLineWidth(0.2)
		d.pdf.Rect(x, y, w, rowH, "D")

		if i >= len(row) || row[i] == "" {
			continue
		}

		style := t.BodyStyle
		if t.Columns[i].Bold {
			style.Bold = true
		}
		lines, err := d.WrapText(row[i], w-2*cellPadX, style)
		if err != nil {
			return err
		}
		for li, line := range lines {
			lineW, err := d.TextWidth(line, style)
			if err != nil {
				return err
			}
			var tx float64
			switch t.Columns[i].Align {
			case "C":
				tx = x + (w-lineW)/2
			case "R":
				tx = x + w - cellPadX - lineW
			default:
				tx = x + cellPadX
			}
			d.DrawText(line, tx, y+cellPadY+float64(li)*lineH, style)
		}
	}
	return nil
}
