package layout

import (
	"strings"

	"github.com/lvillar/triplog/canvas"
)

// Heading draws a single heading line at the left margin, breaking the page
// first if the line no longer fits.
func (e *Engine) Heading(text string) {
	e.EnsureSpace(e.cfg.LineHeight)
	f := e.fonts.Resolve(Heading, text)
	e.c.SetFont(f)
	e.c.Text(e.cfg.MarginLeft, e.y, text)
	e.consume(e.cfg.HeadingAdvance)
}

// TitleHeading draws the large document title, horizontally centered. It is
// used once before any content, so it skips the page-break check.
func (e *Engine) TitleHeading(text string) {
	e.consume(e.cfg.TitleDrop)
	f := e.fonts.Resolve(TitleHeading, text)
	e.c.SetFont(f)
	e.c.Text((e.pageW-e.c.TextWidth(text, f))/2, e.y, text)
	e.consume(e.cfg.HeadingAdvance)
}

// ShortLineOptions controls a single-line draw.
type ShortLineOptions struct {
	Bold     bool
	Centered bool
}

// ShortLine draws one line of body text, consuming one line height.
func (e *Engine) ShortLine(text string, opts ShortLineOptions) {
	e.EnsureSpace(e.cfg.LineHeight)
	role := Body
	if opts.Bold {
		role = Bold
	}
	f := e.fonts.Resolve(role, text)
	e.c.SetFont(f)
	x := e.cfg.MarginLeft
	if opts.Centered {
		x = (e.pageW - e.c.TextWidth(text, f)) / 2
	}
	e.c.Text(x, e.y, text)
	e.consume(e.cfg.LineHeight)
}

// DualColumnOptions controls the two halves of a dual-column line.
type DualColumnOptions struct {
	BoldLeft  bool
	BoldRight bool
}

// DualColumnLine draws left at the left margin and right right-aligned on
// the same line. When the right text would overlap the left one (its start
// within the column buffer of the left end), it is pushed to the next line,
// still right-aligned, consuming an extra line height. This is a one-line
// lookahead, not general bidirectional flow.
func (e *Engine) DualColumnLine(left, right string, opts DualColumnOptions) {
	e.EnsureSpace(e.cfg.LineHeight)

	lf := e.fonts.Resolve(roleFor(opts.BoldLeft), left)
	rf := e.fonts.Resolve(roleFor(opts.BoldRight), right)

	e.c.SetFont(lf)
	e.c.Text(e.cfg.MarginLeft, e.y, left)

	leftEnd := e.cfg.MarginLeft + e.c.TextWidth(left, lf)
	rightStart := e.pageW - e.cfg.MarginRight - e.c.TextWidth(right, rf)
	if rightStart <= leftEnd+e.cfg.ColumnBuffer {
		e.consume(e.cfg.LineHeight)
		e.EnsureSpace(e.cfg.LineHeight)
	}
	e.c.SetFont(rf)
	e.c.Text(rightStart, e.y, right)
	e.consume(e.cfg.LineHeight)
}

func roleFor(bold bool) Role {
	if bold {
		return Bold
	}
	return Body
}

// Paragraph word-wraps text to the usable width and draws it line by line,
// with a page-break check before every line. Empty text is a no-op.
// Embedded newlines force line breaks; a trailing or doubled newline yields
// a blank line.
func (e *Engine) Paragraph(text string) {
	if text == "" {
		return
	}
	e.consume(e.cfg.ParagraphGap)
	body := e.fonts.Resolve(Body, text)
	for _, line := range e.wrap(text, body, e.UsableWidth()) {
		e.EnsureSpace(e.cfg.LineHeight)
		e.c.SetFont(body)
		e.c.Text(e.cfg.MarginLeft, e.y, line)
		e.consume(e.cfg.LineHeight)
	}
	e.consume(e.cfg.BlockGap)
}

// wrap splits text into lines no wider than maxWidth using greedy word
// wrap: words join the current line while "current + space + word" still
// measures within maxWidth. A word that alone exceeds maxWidth becomes its
// own line regardless.
func (e *Engine) wrap(text string, f canvas.FontSpec, maxWidth float64) []string {
	var lines []string
	for _, segment := range strings.Split(text, "\n") {
		current := ""
		for _, word := range strings.Fields(segment) {
			test := word
			if current != "" {
				test = current + " " + word
			}
			if current == "" || e.c.TextWidth(test, f) <= maxWidth {
				current = test
				continue
			}
			lines = append(lines, current)
			current = word
		}
		lines = append(lines, current)
	}
	return lines
}
