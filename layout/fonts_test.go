package layout

import "testing"

func TestResolveASCII(t *testing.T) {
	fs := DefaultFonts()
	fs.Fallback = "NotoEmoji"

	f := fs.Resolve(Heading, "Amsterdam")
	if f.Family != "Helvetica" || f.Style != "B" || f.Size != 16 {
		t.Fatalf("Resolve(Heading) = %+v, want bold Helvetica 16", f)
	}
}

func TestResolveWideGlyphUsesFallback(t *testing.T) {
	fs := DefaultFonts()
	fs.Fallback = "NotoEmoji"

	f := fs.Resolve(TitleHeading, "Curaçao 🌴")
	if f.Family != "NotoEmoji" {
		t.Fatalf("family = %q, want fallback", f.Family)
	}
	if f.Size != 36 {
		t.Fatalf("size = %v, want the role's size preserved", f.Size)
	}
	if f.Style != "" {
		t.Fatalf("style = %q, want regular fallback face", f.Style)
	}
}

func TestResolveWithoutFallbackKeepsRoleFont(t *testing.T) {
	fs := DefaultFonts()

	f := fs.Resolve(Body, "Curaçao")
	if f.Family != "Helvetica" || f.Size != 12 {
		t.Fatalf("Resolve without fallback = %+v, want role default", f)
	}
}

func TestResolveBoundaryGlyph(t *testing.T) {
	fs := DefaultFonts()
	fs.Fallback = "NotoEmoji"

	// DEL (0x7F) is still 7-bit; the next codepoint is not.
	if f := fs.Resolve(Body, "abc\x7f"); f.Family != "Helvetica" {
		t.Fatalf("0x7F resolved to %q, want role default", f.Family)
	}
	if f := fs.Resolve(Body, "abc"); f.Family != "NotoEmoji" {
		t.Fatalf("0x80 resolved to %q, want fallback", f.Family)
	}
}
