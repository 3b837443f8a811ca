package report

import (
	"errors"
	"strings"
)

// fakeSurface is an in-memory Surface with a deterministic text metric: every
// character is charWidth millimetres wide regardless of style. It records all
// drawn text together with the page it landed on so tests can replay layout
// decisions.

const (
	fakePageW    = 210.0
	fakePageH    = 297.0
	charWidth    = 2.0
	fakeLineH    = 4.5
	fakeTableRow = 6.0
)

type drawnText struct {
	Text  string
	X, Y  float64
	Page  int
	Style Style
}

type fakeSurface struct {
	page       int
	texts      []drawnText
	images     map[string][]byte
	imageDraws []string
	rules      []float64 // y coordinates
	rects      int

	failRegister bool
	failOutput   bool
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{images: make(map[string][]byte)}
}

func (f *fakeSurface) PageSize() (float64, float64) { return fakePageW, fakePageH }

func (f *fakeSurface) AddPage() { f.page++ }

func (f *fakeSurface) PageNumber() int { return f.page }

func (f *fakeSurface) DrawText(text string, x, y float64, style Style) {
	f.texts = append(f.texts, drawnText{Text: text, X: x, Y: y, Page: f.page, Style: style})
}

func (f *fakeSurface) TextWidth(text string, _ Style) (float64, error) {
	return float64(len(text)) * charWidth, nil
}

func (f *fakeSurface) WrapText(text string, maxWidth float64, style Style) ([]string, error) {
	maxChars := int(maxWidth / charWidth)
	if maxChars < 1 {
		maxChars = 1
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if len(candidate) > maxChars && current != "" {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	if lines == nil {
		lines = []string{""}
	}
	return lines, nil
}

func (f *fakeSurface) LineHeight(_ Style) float64 { return fakeLineH }

func (f *fakeSurface) DrawRule(_, y, _ float64) { f.rules = append(f.rules, y) }

func (f *fakeSurface) FillRect(_, _, _, _ float64, _, _, _ int) { f.rects++ }

func (f *fakeSurface) RegisterImage(name string, data []byte) error {
	if f.failRegister {
		return errors.New("unsupported image data")
	}
	f.images[name] = data
	return nil
}

func (f *fakeSurface) DrawImage(name string, _, _, _, _ float64) error {
	if _, ok := f.images[name]; !ok {
		return errors.New("image not registered: " + name)
	}
	f.imageDraws = append(f.imageDraws, name)
	return nil
}

func (f *fakeSurface) DrawTable(t *Table, startY float64, obs PageBreakObserver) (float64, error) {
	bottom := fakePageH - BottomReserve
	y := startY + float64(len(t.Head))*fakeTableRow

	for range t.Body {
		if y+fakeTableRow > bottom {
			f.AddPage()
			y = obs.PageStarted(f.page) + float64(len(t.Head))*fakeTableRow
		}
		y += fakeTableRow
	}
	return y, nil
}

func (f *fakeSurface) Output() ([]byte, error) {
	if f.failOutput {
		return nil, errors.New("render failed")
	}
	return []byte("%PDF-fake"), nil
}

// textsOnPage returns the text strings drawn on the given page, in order.
func (f *fakeSurface) textsOnPage(page int) []string {
	var out []string
	for _, dt := range f.texts {
		if dt.Page == page {
			out = append(out, dt.Text)
		}
	}
	return out
}

// containsText reports whether any drawn text contains the substring.
func (f *fakeSurface) containsText(sub string) bool {
	for _, dt := range f.texts {
		if strings.Contains(dt.Text, sub) {
			return true
		}
	}
	return false
}
