package layout

import (
	"unicode"

	"github.com/lvillar/triplog/canvas"
)

// Role identifies one of the fixed styling intents used by the engine.
type Role int

const (
	Body Role = iota
	Bold
	Heading
	TitleHeading
	Footer
)

// FontSet maps roles to concrete fonts and optionally carries a fallback
// family for text containing glyphs outside the 7-bit ASCII range.
type FontSet struct {
	specs [5]canvas.FontSpec

	// Fallback is the family name of a registered wide-glyph font, or ""
	// when none is available.
	Fallback string
}

// DefaultFonts returns the standard role fonts.
func DefaultFonts() *FontSet {
	return &FontSet{specs: [5]canvas.FontSpec{
		Body:         {Family: "Helvetica", Size: 12},
		Bold:         {Family: "Helvetica", Style: "B", Size: 12},
		Heading:      {Family: "Helvetica", Style: "B", Size: 16},
		TitleHeading: {Family: "Helvetica", Style: "B", Size: 36},
		Footer:       {Family: "Helvetica", Size: 9},
	}}
}

// Resolve returns the font to draw text in the given role. Text with any
// codepoint above the ASCII range switches to the fallback family at the
// role's size, when a fallback is registered. Without a fallback the role
// default is used regardless; glyphs outside its coverage may render
// incorrectly, which is accepted.
func (fs *FontSet) Resolve(role Role, text string) canvas.FontSpec {
	spec := fs.specs[role]
	if fs.Fallback != "" && containsWideGlyph(text) {
		return canvas.FontSpec{Family: fs.Fallback, Size: spec.Size}
	}
	return spec
}

func containsWideGlyph(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return true
		}
	}
	return false
}
