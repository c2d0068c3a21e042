// Package layout implements the page-layout and pagination engine: it turns
// an unbounded stream of text blocks and images into fixed-size pages with
// cursor tracking, greedy word wrap, image scaling and pairing, font
// fallback for non-Latin glyphs, and a running footer.
//
// The Engine is the sole owner of the vertical write cursor. Placement
// operations request space before drawing and report what they consumed;
// any block that would cross the bottom margin triggers a page break first.
// Layout proceeds strictly in document order with no backtracking.
package layout

import (
	"fmt"

	"github.com/lvillar/triplog/canvas"
)

// Config holds page geometry and spacing constants, in points.
type Config struct {
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64

	LineHeight     float64 // one line of body text
	BlockGap       float64 // spacing consumed after most blocks
	ParagraphGap   float64 // pre-gap before a paragraph
	HeadingAdvance float64 // cursor advance after a heading line
	TitleDrop      float64 // extra drop before the title heading

	PortraitHeight float64 // target height for portrait images
	LandscapeWidth float64 // target width for landscape/square images
	PairGap        float64 // gap between side-by-side images
	ImagePadding   float64 // white mat around each placed image
	BorderWidth    float64 // stroke width of the image border

	ColumnBuffer float64 // minimum gap before a dual-column collision

	FooterRuleY    float64 // separator rule height above the page bottom
	FooterBaseline float64 // footer text baseline above the page bottom
}

// DefaultConfig returns the standard Letter-page layout constants.
func DefaultConfig() Config {
	return Config{
		MarginLeft:     30,
		MarginRight:    30,
		MarginTop:      30,
		MarginBottom:   50,
		LineHeight:     20,
		BlockGap:       20,
		ParagraphGap:   10,
		HeadingAdvance: 30,
		TitleDrop:      100,
		PortraitHeight: 300,
		LandscapeWidth: 250,
		PairGap:        20,
		ImagePadding:   6,
		BorderWidth:    1,
		ColumnBuffer:   8,
		FooterRuleY:    40,
		FooterBaseline: 26,
	}
}

// Prober is the image source capability: it reports an image's native pixel
// dimensions.
type Prober func(path string) (w, h int, err error)

// Engine paginates a document onto a Canvas. It owns the cursor (vertical
// write position measured from the page bottom), the page counter, and the
// footer state; no other component mutates these.
type Engine struct {
	c     canvas.Canvas
	fonts *FontSet
	cfg   Config

	pageW, pageH float64

	y       float64
	page    int
	started bool

	title     string
	stepIndex int
	stepCount int

	dims   Prober
	probes map[string]probeResult
}

// NewEngine creates an engine drawing onto c.
func NewEngine(c canvas.Canvas, fonts *FontSet, cfg Config) *Engine {
	w, h := c.PageSize()
	return &Engine{
		c:      c,
		fonts:  fonts,
		cfg:    cfg,
		pageW:  w,
		pageH:  h,
		dims:   canvas.Dimensions,
		probes: map[string]probeResult{},
	}
}

// SetProber replaces the image dimension probe. Mainly for tests.
func (e *Engine) SetProber(p Prober) { e.dims = p }

// UsableWidth is the page width minus both horizontal margins.
func (e *Engine) UsableWidth() float64 {
	return e.pageW - e.cfg.MarginLeft - e.cfg.MarginRight
}

// StartDocument begins page 1 with the cursor at the top margin and clears
// the step-progress counters.
func (e *Engine) StartDocument(title string) {
	e.title = title
	e.stepIndex, e.stepCount = 0, 0
	e.c.SetTitle(title)
	e.c.AddPage()
	e.page = 1
	e.y = e.pageH - e.cfg.MarginTop
	e.started = true
}

// SetStepProgress records the counters shown in the footer as
// "current/total".
func (e *Engine) SetStepProgress(current, total int) {
	e.stepIndex, e.stepCount = current, total
}

// AdvancePage closes out the current page and begins a new one. The footer
// for the page being left is drawn best-effort: a failure there must never
// block primary content, so it is swallowed.
func (e *Engine) AdvancePage() {
	if e.started {
		nonCritical(e.drawFooter)
	}
	e.c.AddPage()
	e.page++
	e.y = e.pageH - e.cfg.MarginTop
}

// EnsureSpace starts a new page when h units no longer fit above the bottom
// margin. At most one page boundary is emitted: a block taller than a fresh
// page is drawn from the top margin and allowed to run past the bottom
// margin rather than looping or shrinking.
func (e *Engine) EnsureSpace(h float64) {
	if e.y-h < e.cfg.MarginBottom {
		e.AdvancePage()
	}
}

// consume moves the cursor down. Each placement operation consumes its own
// height plus its trailing gap.
func (e *Engine) consume(h float64) { e.y -= h }

// Finish draws the footer of the final page. The canvas owns document
// finalization.
func (e *Engine) Finish() error {
	if e.started {
		nonCritical(e.drawFooter)
	}
	return e.c.Err()
}

// drawFooter composes the running footer for the page being closed: the
// document title on the left, the step counter centered, and the page label
// on the right, all below a thin separator rule.
func (e *Engine) drawFooter() error {
	e.c.SaveState()
	defer e.c.RestoreState()

	e.c.SetDrawColor(0, 0, 0)
	e.c.SetLineWidth(0.5)
	e.c.Line(e.cfg.MarginLeft, e.cfg.FooterRuleY, e.pageW-e.cfg.MarginRight, e.cfg.FooterRuleY)

	y := e.cfg.FooterBaseline

	title := e.fonts.Resolve(Footer, e.title)
	e.c.SetFont(title)
	e.c.Text(e.cfg.MarginLeft, y, e.title)

	if e.stepCount > 0 {
		counter := fmt.Sprintf("%d/%d", e.stepIndex, e.stepCount)
		f := e.fonts.Resolve(Footer, counter)
		e.c.SetFont(f)
		e.c.Text((e.pageW-e.c.TextWidth(counter, f))/2, y, counter)
	}

	label := fmt.Sprintf("page %d", e.page)
	f := e.fonts.Resolve(Footer, label)
	e.c.SetFont(f)
	e.c.Text(e.pageW-e.cfg.MarginRight-e.c.TextWidth(label, f), y, label)

	return e.c.Err()
}

// nonCritical runs a cosmetic draw step and discards its error. Primary
// content placement uses the propagating path instead.
func nonCritical(fn func() error) { _ = fn() }
