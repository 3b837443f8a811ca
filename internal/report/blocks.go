package report

// Block is a single unit of flowed content. Blocks are produced by the table
// composers and detail-section builders, consumed once by the pager, and
// discarded. A block is measured before it is drawn; the pager guarantees the
// drawn extent never crosses the bottom content limit.
type Block interface {
	// Height returns the vertical extent the block occupies at the given width.
	Height(s Surface, width float64) (float64, error)

	// Draw renders the block with its top-left corner at (x, y).
	Draw(s Surface, x, y, width float64) error
}

// Splittable is implemented by blocks that can be divided at a height limit so
// they may continue on the next page. Either return value may be nil: a nil
// fit means nothing fits in maxHeight, a nil rest means the block fit whole.
type Splittable interface {
	Block
	Split(s Surface, width, maxHeight float64) (fit Block, rest Block, err error)
}

const (
	headingGap  = 2.0 // space below a heading
	tagPadX     = 2.0 // horizontal padding inside a tag pill
	tagPadY     = 1.2 // vertical padding inside a tag pill
	tagGap      = 2.0 // gap between tags and between tag lines
	tagFillGray = 235 // pill background
)

// Heading is a single emphasized line.
type Heading struct {
	Text  string
	Style Style
}

// Height implements Block.
func (b Heading) Height(s Surface, width float64) (float64, error) {
	return s.LineHeight(b.Style) + headingGap, nil
}

// Draw implements Block.
func (b Heading) Draw(s Surface, x, y, width float64) error {
	s.DrawText(b.Text, x, y, b.Style)
	return nil
}

// Spacer is fixed vertical whitespace.
type Spacer struct {
	H float64
}

// Height implements Block.
func (b Spacer) Height(s Surface, width float64) (float64, error) { return b.H, nil }

// Draw implements Block.
func (b Spacer) Draw(s Surface, x, y, width float64) error { return nil }

// Paragraph is free text word-wrapped to the available width.
type Paragraph struct {
	Text  string
	Style Style
}

// Height implements Block.
func (b Paragraph) Height(s Surface, width float64) (float64, error) {
	lines, err := s.WrapText(b.Text, width, b.Style)
	if err != nil {
		return 0, err
	}
	return float64(len(lines)) * s.LineHeight(b.Style), nil
}

// Draw implements Block.
func (b Paragraph) Draw(s Surface, x, y, width float64) error {
	lines, err := s.WrapText(b.Text, width, b.Style)
	if err != nil {
		return err
	}
	return WrappedText{Lines: lines, Style: b.Style}.Draw(s, x, y, width)
}

// Split implements Splittable by delegating to the pre-wrapped form.
func (b Paragraph) Split(s Surface, width, maxHeight float64) (Block, Block, error) {
	lines, err := s.WrapText(b.Text, width, b.Style)
	if err != nil {
		return nil, nil, err
	}
	return WrappedText{Lines: lines, Style: b.Style}.Split(s, width, maxHeight)
}

// WrappedText is text already broken into lines.
type WrappedText struct {
	Lines []string
	Style Style
}

// Height implements Block.
func (b WrappedText) Height(s Surface, width float64) (float64, error) {
	return float64(len(b.Lines)) * s.LineHeight(b.Style), nil
}

// Draw implements Block.
func (b WrappedText) Draw(s Surface, x, y, width float64) error {
	lineH := s.LineHeight(b.Style)
	for i, line := range b.Lines {
		s.DrawText(line, x, y+float64(i)*lineH, b.Style)
	}
	return nil
}

// Split implements Splittable. The break lands between lines, so no drawn line
// ever straddles the limit.
func (b WrappedText) Split(s Surface, width, maxHeight float64) (Block, Block, error) {
	lineH := s.LineHeight(b.Style)
	fitLines := int(maxHeight / lineH)
	if fitLines <= 0 {
		return nil, b, nil
	}
	if fitLines >= len(b.Lines) {
		return b, nil, nil
	}
	return WrappedText{Lines: b.Lines[:fitLines], Style: b.Style},
		WrappedText{Lines: b.Lines[fitLines:], Style: b.Style}, nil
}

// SplitLine is a single line with a left-aligned and a right-aligned part,
// used for entry titles with a date pushed to the right edge.
type SplitLine struct {
	Left  string
	Right string
	Style Style
}

// Height implements Block.
func (b SplitLine) Height(s Surface, width float64) (float64, error) {
	return s.LineHeight(b.Style), nil
}

// Draw implements Block.
func (b SplitLine) Draw(s Surface, x, y, width float64) error {
	s.DrawText(b.Left, x, y, b.Style)
	if b.Right == "" {
		return nil
	}
	rightStyle := b.Style
	rightStyle.Gray = true
	w, err := s.TextWidth(b.Right, rightStyle)
	if err != nil {
		return err
	}
	s.DrawText(b.Right, x+width-w, y, rightStyle)
	return nil
}

// Tag is one item of a horizontal tag list.
type Tag struct {
	Text     string
	Inferred bool
}

// Label returns the display text, marking inferred tags with an asterisk.
func (t Tag) Label() string {
	if t.Inferred {
		return t.Text + " *"
	}
	return t.Text
}

// TagList lays tags out left to right, wrapping onto further rows when a tag
// would cross the right edge.
type TagList struct {
	Tags  []Tag
	Style Style
}

type tagRow []Tag

// rows partitions the tags into drawn rows for the given width.
func (b TagList) rows(s Surface, width float64) ([]tagRow, error) {
	var rows []tagRow
	var current tagRow
	lineWidth := 0.0

	for _, tag := range b.Tags {
		w, err := s.TextWidth(tag.Label(), b.Style)
		if err != nil {
			return nil, err
		}
		pillW := w + 2*tagPadX
		advance := pillW
		if len(current) > 0 {
			advance += tagGap
		}
		if len(current) > 0 && lineWidth+advance > width {
			rows = append(rows, current)
			current = tagRow{tag}
			lineWidth = pillW
			continue
		}
		current = append(current, tag)
		lineWidth += advance
	}
	if len(current) > 0 {
		rows = append(rows, current)
	}
	return rows, nil
}

// rowHeight is the vertical advance of one tag row.
func (b TagList) rowHeight(s Surface) float64 {
	return s.LineHeight(b.Style) + 2*tagPadY + tagGap
}

// Height implements Block.
func (b TagList) Height(s Surface, width float64) (float64, error) {
	rows, err := b.rows(s, width)
	if err != nil {
		return 0, err
	}
	return float64(len(rows)) * b.rowHeight(s), nil
}

// Draw implements Block.
func (b TagList) Draw(s Surface, x, y, width float64) error {
	rows, err := b.rows(s, width)
	if err != nil {
		return err
	}
	rowH := b.rowHeight(s)
	pillH := s.LineHeight(b.Style) + 2*tagPadY

	for ri, row := range rows {
		cx := x
		cy := y + float64(ri)*rowH
		for _, tag := range row {
			w, err := s.TextWidth(tag.Label(), b.Style)
			if err != nil {
				return err
			}
			s.FillRect(cx, cy, w+2*tagPadX, pillH, tagFillGray, tagFillGray, tagFillGray)
			s.DrawText(tag.Label(), cx+tagPadX, cy+tagPadY, b.Style)
			cx += w + 2*tagPadX + tagGap
		}
	}
	return nil
}

// Split implements Splittable; the break lands between tag rows.
func (b TagList) Split(s Surface, width, maxHeight float64) (Block, Block, error) {
	rows, err := b.rows(s, width)
	if err != nil {
		return nil, nil, err
	}
	rowH := b.rowHeight(s)
	fitRows := int(maxHeight / rowH)
	if fitRows <= 0 {
		return nil, b, nil
	}
	if fitRows >= len(rows) {
		return b, nil, nil
	}

	var fit, rest TagList
	fit.Style, rest.Style = b.Style, b.Style
	for i, row := range rows {
		if i < fitRows {
			fit.Tags = append(fit.Tags, row...)
		} else {
			rest.Tags = append(rest.Tags, row...)
		}
	}
	return fit, rest, nil
}

// ImageBlock places a registered image into a fixed box.
type ImageBlock struct {
	Name string
	W, H float64
}

// Height implements Block.
func (b ImageBlock) Height(s Surface, width float64) (float64, error) { return b.H, nil }

// Draw implements Block.
func (b ImageBlock) Draw(s Surface, x, y, width float64) error {
	return s.DrawImage(b.Name, x, y, b.W, b.H)
}
