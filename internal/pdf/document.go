// Package pdf adapts the go-pdf/fpdf drawing primitives to the report
// package's Document Surface contract.
package pdf

import (
	"bytes"
	"fmt"
	"image"
	"net/http"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/go-pdf/fpdf"

	"github.com/jonathan/candidate-report/internal/report"
)

const (
	fontFamily      = "Helvetica"
	defaultFontSize = 9.0

	// point-to-millimetre conversion and the line advance factor.
	ptToMM           = 25.4 / 72.0
	lineHeightFactor = 1.45
	ascentFactor     = 0.78 // baseline offset from the line's top edge
)

// Document is an fpdf-backed report.Surface producing A4 portrait pages.
// Page breaking is fully owned by the caller, so fpdf's automatic page break
// is disabled.
type Document struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
	images    map[string]string // registered name -> fpdf image type
}

// NewDocument creates an empty A4 portrait document.
func NewDocument() *Document {
	f := fpdf.New("P", "mm", "A4", "")
	f.SetAutoPageBreak(false, 0)
	f.SetMargins(0, 0, 0)
	f.SetCellMargin(0)

	return &Document{
		pdf:       f,
		translate: f.UnicodeTranslatorFromDescriptor(""),
		images:    make(map[string]string),
	}
}

// PageSize implements report.Surface.
func (d *Document) PageSize() (float64, float64) {
	w, h := d.pdf.GetPageSize()
	return w, h
}

// AddPage implements report.Surface.
func (d *Document) AddPage() {
	d.pdf.AddPage()
}

// PageNumber implements report.Surface.
func (d *Document) PageNumber() int {
	return d.pdf.PageNo()
}

// applyStyle activates the font and text color for the style.
func (d *Document) applyStyle(style report.Style) {
	variant := ""
	if style.Bold {
		variant += "B"
	}
	if style.Italic {
		variant += "I"
	}
	size := style.Size
	if size <= 0 {
		size = defaultFontSize
	}
	d.pdf.SetFont(fontFamily, variant, size)
	if style.Gray {
		d.pdf.SetTextColor(110, 110, 110)
	} else {
		d.pdf.SetTextColor(20, 20, 20)
	}
}

func styleSize(style report.Style) float64 {
	if style.Size <= 0 {
		return defaultFontSize
	}
	return style.Size
}

// DrawText implements report.Surface. (x, y) is the top-left corner of the
// line box; fpdf's Text anchors at the baseline, so the ascent is added.
func (d *Document) DrawText(text string, x, y float64, style report.Style) {
	d.applyStyle(style)
	baseline := y + styleSize(style)*ptToMM*lineHeightFactor*ascentFactor
	d.pdf.Text(x, baseline, d.translate(text))
}

// TextWidth implements report.Surface.
func (d *Document) TextWidth(text string, style report.Style) (float64, error) {
	d.applyStyle(style)
	w := d.pdf.GetStringWidth(d.translate(text))
	if d.pdf.Err() {
		return 0, fmt.Errorf("measure %q: %w", text, d.pdf.Error())
	}
	return w, nil
}

// WrapText implements report.Surface.
func (d *Document) WrapText(text string, maxWidth float64, style report.Style) ([]string, error) {
	d.applyStyle(style)
	lines := d.pdf.SplitText(d.translate(text), maxWidth)
	if d.pdf.Err() {
		return nil, fmt.Errorf("wrap text: %w", d.pdf.Error())
	}
	return lines, nil
}

// LineHeight implements report.Surface.
func (d *Document) LineHeight(style report.Style) float64 {
	return styleSize(style) * ptToMM * lineHeightFactor
}

// DrawRule implements report.Surface.
func (d *Document) DrawRule(x1, y, x2 float64) {
	d.pdf.SetDrawColor(185, 185, 185)
	d.pdf.SetLineWidth(0.2)
	d.pdf.Line(x1, y, x2, y)
}

// FillRect implements report.Surface.
func (d *Document) FillRect(x, y, w, h float64, r, g, b int) {
	d.pdf.SetFillColor(r, g, b)
	d.pdf.Rect(x, y, w, h, "F")
}

// RegisterImage implements report.Surface. The format is sniffed from the
// data; the image is decoded up front so an unusable asset surfaces here,
// before any page exists, instead of poisoning the document mid-render.
func (d *Document) RegisterImage(name string, data []byte) error {
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("decode image %s: %w", name, err)
	}

	var imageType string
	switch http.DetectContentType(data) {
	case "image/png":
		imageType = "PNG"
	case "image/jpeg":
		imageType = "JPG"
	case "image/gif":
		imageType = "GIF"
	default:
		return fmt.Errorf("unsupported image format for %s", name)
	}

	d.pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(data))
	if d.pdf.Err() {
		return fmt.Errorf("register image %s: %w", name, d.pdf.Error())
	}
	d.images[name] = imageType
	return nil
}

// DrawImage implements report.Surface.
func (d *Document) DrawImage(name string, x, y, w, h float64) error {
	imageType, ok := d.images[name]
	if !ok {
		return fmt.Errorf("image %s not registered", name)
	}
	d.pdf.ImageOptions(name, x, y, w, h, false, fpdf.ImageOptions{ImageType: imageType}, 0, "")
	if d.pdf.Err() {
		return fmt.Errorf("draw image %s: %w", name, d.pdf.Error())
	}
	return nil
}

// Output implements report.Surface.
func (d *Document) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("finalize pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// truncate shortens text with an ellipsis so it fits maxWidth on one line.
func (d *Document) truncate(text string, maxWidth float64, style report.Style) string {
	d.applyStyle(style)
	if d.pdf.GetStringWidth(d.translate(text)) <= maxWidth {
		return text
	}

	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimSpace(string(runes)) + "..."
		if d.pdf.GetStringWidth(d.translate(candidate)) <= maxWidth {
			return candidate
		}
	}
	return ""
}
