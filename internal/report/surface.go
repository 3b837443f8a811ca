// Package report compiles aggregated candidate scores, skill matrices, and
// per-candidate narrative sections into a paginated document. It owns all
// layout decisions; actual drawing and measurement is delegated to a Surface.
package report

// Style describes how a piece of text is drawn. The zero value is the body
// style at the default size.
type Style struct {
	Size   float64 // font size in points; 0 uses the surface default
	Bold   bool
	Italic bool
	Gray   bool // secondary/legend text
}

// PageBreakObserver is invoked by the surface's table renderer each time a new
// physical page is started mid-table. The implementation redraws the page
// furniture (footer, and header per policy) and reports the Y coordinate at
// which table content may continue.
type PageBreakObserver interface {
	PageStarted(pageNumber int) (contentStartY float64)
}

// Surface is the primitive drawing and measurement API the pager drives.
// Coordinates are in millimetres with the origin at the top-left corner.
type Surface interface {
	// PageSize returns the page width and height.
	PageSize() (w, h float64)

	// AddPage starts a new blank page and makes it current.
	AddPage()

	// PageNumber returns the 1-based number of the current page.
	PageNumber() int

	// DrawText draws a single line of text with its top-left corner at (x, y).
	DrawText(text string, x, y float64, style Style)

	// TextWidth measures the rendered width of a single line of text.
	TextWidth(text string, style Style) (float64, error)

	// WrapText word-wraps text so every line fits within maxWidth.
	WrapText(text string, maxWidth float64, style Style) ([]string, error)

	// LineHeight returns the vertical advance for one line in the given style.
	LineHeight(style Style) float64

	// DrawRule draws a horizontal rule from (x1, y) to (x2, y).
	DrawRule(x1, y, x2 float64)

	// FillRect fills a rectangle with the given RGB color.
	FillRect(x, y, w, h float64, r, g, b int)

	// RegisterImage makes image data available for drawing under a name.
	// The image format is sniffed from the data.
	RegisterImage(name string, data []byte) error

	// DrawImage draws a previously registered image into the given box.
	DrawImage(name string, x, y, w, h float64) error

	// DrawTable renders a table starting at startY, breaking onto new physical
	// pages as needed. Each time a page is started the observer is asked for
	// the Y at which content resumes. Returns the Y just below the table.
	DrawTable(t *Table, startY float64, obs PageBreakObserver) (finalY float64, err error)

	// Output finalizes the document and returns its bytes.
	Output() ([]byte, error)
}
