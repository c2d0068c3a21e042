package layout

import (
	"strings"
	"testing"
)

func TestWrapPreservesWordSequence(t *testing.T) {
	eng, c := newTestEngine()
	eng.StartDocument("Trip")

	text := strings.Repeat("the quick brown fox jumps over the lazy dog ", 12)
	eng.Paragraph(text)

	var words []string
	for _, txt := range c.texts {
		words = append(words, strings.Fields(txt.s)...)
	}
	if got, want := strings.Join(words, " "), strings.Join(strings.Fields(text), " "); got != want {
		t.Fatalf("wrapped words differ from input\ngot:  %s\nwant: %s", got, want)
	}
}

func TestWrapRespectsUsableWidth(t *testing.T) {
	eng, c := newTestEngine()
	eng.StartDocument("Trip")

	eng.Paragraph(strings.Repeat("wanderlust ", 80))

	body := eng.fonts.Resolve(Body, "x")
	for _, txt := range c.texts {
		if w := c.TextWidth(txt.s, body); w > eng.UsableWidth() {
			t.Fatalf("line %q measures %v, wider than usable %v", txt.s, w, eng.UsableWidth())
		}
	}
}

func TestWrapForcedBreaks(t *testing.T) {
	eng, c := newTestEngine()
	eng.StartDocument("Trip")

	eng.Paragraph("first\n\nsecond")

	var lines []string
	for _, txt := range c.texts {
		lines = append(lines, txt.s)
	}
	want := []string{"first", "", "second"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWrapOverlongWordGetsOwnLine(t *testing.T) {
	eng, c := newTestEngine()
	eng.StartDocument("Trip")

	long := strings.Repeat("x", 200) // measures far beyond the usable width
	eng.Paragraph("before " + long + " after")

	var lines []string
	for _, txt := range c.texts {
		lines = append(lines, txt.s)
	}
	want := []string{"before", long, "after"}
	if len(lines) != 3 || lines[0] != want[0] || lines[1] != want[1] || lines[2] != want[2] {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
}

func TestParagraphEmptyIsNoOp(t *testing.T) {
	eng, c := newTestEngine()
	eng.StartDocument("Trip")
	before := eng.y

	eng.Paragraph("")

	if eng.y != before {
		t.Fatalf("cursor moved by %v on empty paragraph", before-eng.y)
	}
	if len(c.texts) != 0 {
		t.Fatalf("unexpected draws: %+v", c.texts)
	}
}

func TestParagraphGaps(t *testing.T) {
	eng, _ := newTestEngine()
	eng.StartDocument("Trip")
	before := eng.y

	eng.Paragraph("short")

	want := eng.cfg.ParagraphGap + eng.cfg.LineHeight + eng.cfg.BlockGap
	if got := before - eng.y; got != want {
		t.Fatalf("paragraph consumed %v, want %v", got, want)
	}
}

func TestDualColumnSingleLine(t *testing.T) {
	eng, c := newTestEngine()
	eng.StartDocument("Trip")
	before := eng.y

	eng.DualColumnLine("Ort: Berlin, Germany", "21°C", DualColumnOptions{})

	if got := before - eng.y; got != eng.cfg.LineHeight {
		t.Fatalf("consumed %v, want one line height %v", got, eng.cfg.LineHeight)
	}
	if len(c.texts) != 2 {
		t.Fatalf("expected 2 text draws, got %d", len(c.texts))
	}
	left, right := c.texts[0], c.texts[1]
	if left.y != right.y {
		t.Fatalf("left y %v != right y %v, want same line", left.y, right.y)
	}
	wantX := eng.pageW - eng.cfg.MarginRight - c.TextWidth(right.s, right.font)
	if right.x != wantX {
		t.Fatalf("right x = %v, want right-aligned %v", right.x, wantX)
	}
}

func TestDualColumnCollisionWraps(t *testing.T) {
	eng, c := newTestEngine()
	eng.StartDocument("Trip")
	before := eng.y

	long := strings.Repeat("very long right column content ", 4)
	eng.DualColumnLine("Ort: Berlin, Germany", long, DualColumnOptions{})

	if got := before - eng.y; got != 2*eng.cfg.LineHeight {
		t.Fatalf("consumed %v, want two line heights %v", got, 2*eng.cfg.LineHeight)
	}
	left, right := c.texts[0], c.texts[1]
	if right.y != left.y-eng.cfg.LineHeight {
		t.Fatalf("right y = %v, want pushed one line below %v", right.y, left.y)
	}
}

func TestShortLineCentered(t *testing.T) {
	eng, c := newTestEngine()
	eng.StartDocument("Trip")

	eng.ShortLine("01-06-2024 - 15-06-2024", ShortLineOptions{Bold: true, Centered: true})

	txt := c.texts[0]
	if txt.font.Style != "B" {
		t.Fatalf("font style = %q, want bold", txt.font.Style)
	}
	wantX := (eng.pageW - c.TextWidth(txt.s, txt.font)) / 2
	if txt.x != wantX {
		t.Fatalf("x = %v, want centered %v", txt.x, wantX)
	}
}

func TestHeadingBreaksPageWhenFull(t *testing.T) {
	eng, c := newTestEngine()
	eng.StartDocument("Trip")
	eng.y = eng.cfg.MarginBottom + 5

	eng.Heading("Reykjavik")

	if c.pages != 2 {
		t.Fatalf("pages = %d, want heading to trigger a break", c.pages)
	}
}
