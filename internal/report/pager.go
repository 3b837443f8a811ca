package report

import (
	"fmt"
	"log"
)

// Page geometry in millimetres. The content area runs from the top margin (or
// the bottom of the header bar on pages that carry one) down to the bottom
// limit; the strip below the bottom limit is reserved for the footer.
const (
	marginLeft    = 14.0
	marginRight   = 14.0
	marginTop     = 16.0
	marginBottom  = 8.0
	footerReserve = 8.0

	headerBarTop    = 8.0
	headerBarHeight = 12.0
	headerGap       = 6.0

	// BottomReserve is the distance from the physical page bottom to the
	// bottom content limit; surface implementations use it to break tables at
	// the same boundary the pager enforces for blocks.
	BottomReserve = marginBottom + footerReserve

	logoWidth  = 18.0
	logoHeight = 8.0
)

// Pager owns the cursor position and all page-break decisions. It is the only
// writer of page state; the whole report is produced by one linear pass, so no
// synchronization is needed.
type Pager struct {
	s Surface

	y     float64
	fresh bool // nothing placed since the current page started

	headerTitle string
	logoName    string // registered image name; empty means text fallback
	logoText    string
	verbose     bool
}

// NewPager creates a pager for the given surface. headerTitle is drawn in the
// header bar of continuation pages; logoName is a registered image used in the
// bar, with logoText as the fallback label when no image is available.
func NewPager(s Surface, headerTitle, logoName, logoText string, verbose bool) *Pager {
	return &Pager{
		s:           s,
		headerTitle: headerTitle,
		logoName:    logoName,
		logoText:    logoText,
		verbose:     verbose,
	}
}

// Start creates the first page. Per the title-page convention the first page
// carries neither a header bar nor a page number, only the footer rule.
func (p *Pager) Start() {
	p.s.AddPage()
	p.drawFooter(false)
	p.y = marginTop
	p.fresh = true
}

// ContentWidth returns the usable width between the side margins.
func (p *Pager) ContentWidth() float64 {
	w, _ := p.s.PageSize()
	return w - marginLeft - marginRight
}

// Left returns the X coordinate of the content area's left edge.
func (p *Pager) Left() float64 { return marginLeft }

// Y returns the current cursor position.
func (p *Pager) Y() float64 { return p.y }

// BottomLimit returns the Y coordinate content must never cross.
func (p *Pager) BottomLimit() float64 {
	_, h := p.s.PageSize()
	return h - marginBottom - footerReserve
}

// Remaining returns the vertical space left on the current page.
func (p *Pager) Remaining() float64 {
	return p.BottomLimit() - p.y
}

// contentTop returns where content starts on a fresh page.
func (p *Pager) contentTop(withHeader bool) float64 {
	if withHeader {
		return headerBarTop + headerBarHeight + headerGap
	}
	return marginTop
}

// NewPage starts a new page, always drawing the footer and drawing the header
// bar only when requested. Continuation pages of multi-page tables suppress
// the header to preserve vertical space.
func (p *Pager) NewPage(withHeader bool) {
	p.s.AddPage()
	p.drawFooter(true)
	if withHeader {
		p.drawHeader()
	}
	p.y = p.contentTop(withHeader)
	p.fresh = true
}

// EnsureSpace forces a page break (with header) when fewer than h millimetres
// remain on the current page.
func (p *Pager) EnsureSpace(h float64) {
	if p.y+h > p.BottomLimit() {
		p.NewPage(true)
	}
}

// StartSection moves to a fresh page with a header unless the current page is
// still untouched, in which case it is reused.
func (p *Pager) StartSection() {
	if p.fresh {
		return
	}
	p.NewPage(true)
}

// Place measures the block and draws it without ever crossing the bottom
// limit, starting new pages and splitting splittable blocks as needed. Blocks
// whose measurement fails are skipped with a logged warning so the rest of the
// document still completes.
func (p *Pager) Place(b Block) error {
	width := p.ContentWidth()

	for {
		h, err := b.Height(p.s, width)
		if err != nil {
			log.Printf("[LAYOUT] warning: skipping block, measurement failed: %v", err)
			return nil
		}
		if h <= 0 {
			return nil
		}

		if h <= p.Remaining() {
			if err := b.Draw(p.s, marginLeft, p.y, width); err != nil {
				return fmt.Errorf("draw block: %w", err)
			}
			p.y += h
			p.fresh = false
			return nil
		}

		if sp, ok := b.(Splittable); ok {
			fit, rest, err := sp.Split(p.s, width, p.Remaining())
			if err != nil {
				log.Printf("[LAYOUT] warning: skipping block, split failed: %v", err)
				return nil
			}
			if fit == nil && p.fresh {
				// Not even one line fits a blank page; drawing would overflow.
				log.Printf("[LAYOUT] warning: skipping block taller than a page")
				return nil
			}
			if fit != nil {
				fitH, err := fit.Height(p.s, width)
				if err != nil {
					log.Printf("[LAYOUT] warning: skipping block, measurement failed: %v", err)
					return nil
				}
				if err := fit.Draw(p.s, marginLeft, p.y, width); err != nil {
					return fmt.Errorf("draw block: %w", err)
				}
				p.y += fitH
				p.fresh = false
			}
			p.NewPage(true)
			if rest == nil {
				return nil
			}
			b = rest
			continue
		}

		if p.fresh {
			log.Printf("[LAYOUT] warning: skipping block taller than a page")
			return nil
		}
		p.NewPage(true)
	}
}

// PlaceTable hands the table to the surface's own row-breaking renderer,
// staying in sync with it through the PageStarted callback.
func (p *Pager) PlaceTable(t *Table) error {
	if t.X == 0 {
		t.X = marginLeft
	}

	// Make sure at least the header rows plus one body row start on this page;
	// otherwise let the table begin on a fresh one.
	minHeight := (float64(len(t.Head)) + 1.5) * p.s.LineHeight(t.BodyStyle)
	p.EnsureSpace(minHeight)

	finalY, err := p.s.DrawTable(t, p.y, p)
	if err != nil {
		return err
	}
	p.y = finalY
	p.fresh = false
	return nil
}

// PageStarted implements PageBreakObserver for the surface's table renderer.
// Footer furniture is always redrawn; the header bar is suppressed on table
// continuation pages so rows regain its vertical space.
func (p *Pager) PageStarted(pageNumber int) float64 {
	p.drawFooter(true)
	p.y = marginTop
	p.fresh = true
	if p.verbose {
		log.Printf("[LAYOUT] table continues on page %d", pageNumber)
	}
	return p.y
}

// drawHeader draws the header bar: title on the left, logo image (or its text
// fallback) on the right.
func (p *Pager) drawHeader() {
	w, _ := p.s.PageSize()
	barWidth := w - marginLeft - marginRight

	p.s.FillRect(marginLeft, headerBarTop, barWidth, headerBarHeight, 240, 240, 245)

	titleStyle := Style{Size: 10, Bold: true}
	textY := headerBarTop + (headerBarHeight-p.s.LineHeight(titleStyle))/2
	p.s.DrawText(p.headerTitle, marginLeft+3, textY, titleStyle)

	if p.logoName != "" {
		logoX := w - marginRight - logoWidth - 3
		logoY := headerBarTop + (headerBarHeight-logoHeight)/2
		if err := p.s.DrawImage(p.logoName, logoX, logoY, logoWidth, logoHeight); err != nil {
			log.Printf("[LAYOUT] warning: header logo draw failed, using text fallback: %v", err)
			p.drawLogoText(w)
		}
		return
	}
	p.drawLogoText(w)
}

func (p *Pager) drawLogoText(pageWidth float64) {
	style := Style{Size: 9, Bold: true, Gray: true}
	tw, err := p.s.TextWidth(p.logoText, style)
	if err != nil {
		return
	}
	textY := headerBarTop + (headerBarHeight-p.s.LineHeight(style))/2
	p.s.DrawText(p.logoText, pageWidth-marginRight-tw-3, textY, style)
}

// drawFooter draws the footer rule and, except on the first page, the page
// number.
func (p *Pager) drawFooter(withNumber bool) {
	w, h := p.s.PageSize()
	ruleY := h - marginBottom - footerReserve + 2
	p.s.DrawRule(marginLeft, ruleY, w-marginRight)

	if !withNumber {
		return
	}
	style := Style{Size: 8, Gray: true}
	label := fmt.Sprintf("Page %d", p.s.PageNumber())
	tw, err := p.s.TextWidth(label, style)
	if err != nil {
		return
	}
	p.s.DrawText(label, (w-tw)/2, ruleY+1.5, style)
}
