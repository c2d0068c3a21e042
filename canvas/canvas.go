// Package canvas abstracts the drawing surface the layout engine writes to.
//
// Coordinates are expressed with the origin at the bottom-left corner of the
// page and y growing upward, matching the layout engine's cursor, which
// tracks the distance from the page bottom. Text is positioned by its
// baseline; images and rectangles by their top edge. The fpdf-backed
// implementation converts to fpdf's top-down coordinate system.
package canvas

import (
	"errors"
	"io"
)

// Sentinel errors for surface-level failure conditions.
var (
	ErrFontNotFound    = errors.New("canvas: font file not found")
	ErrImageUnreadable = errors.New("canvas: image cannot be decoded")
)

// FontSpec identifies a concrete font face at a point size.
type FontSpec struct {
	Family string
	Style  string  // "" regular, "B" bold
	Size   float64 // points
}

// Canvas is the drawing surface capability consumed by the layout engine.
//
// Implementations accumulate drawing errors internally in the style of
// fpdf: draw calls after a failure become no-ops and Err reports the first
// failure. Callers that need to abort promptly check Err (or the error
// returned by the image methods) after each block.
type Canvas interface {
	// PageSize returns the page dimensions in points.
	PageSize() (w, h float64)

	// AddPage emits a page boundary and begins a fresh page.
	AddPage()

	// SetTitle sets the document title metadata.
	SetTitle(title string)

	// SetFont makes f the current font for subsequent Text calls.
	SetFont(f FontSpec)

	// Text draws s with its baseline at y and its left edge at x.
	Text(x, y float64, s string)

	// TextWidth measures s in the given font. It may leave f as the
	// current font; callers set the font they draw with explicitly.
	TextWidth(s string, f FontSpec) float64

	// Image draws the image file at path with its top edge at y.
	Image(path string, x, y, w, h float64) error

	// ImageReader draws in-memory PNG data registered under name. The
	// name must be unique per distinct image within one document.
	ImageReader(name string, r io.Reader, x, y, w, h float64) error

	SetFillColor(r, g, b int)
	SetDrawColor(r, g, b int)
	SetLineWidth(w float64)

	// Rect draws a rectangle with its top edge at y. Style is "D"
	// (stroke), "F" (fill), or "FD" (fill then stroke).
	Rect(x, y, w, h float64, style string)

	// Line draws a straight line segment.
	Line(x1, y1, x2, y2 float64)

	// SaveState and RestoreState scope fill color, stroke color, and
	// line width so a bordered draw cannot leak state into later draws.
	SaveState()
	RestoreState()

	// Err reports the first drawing error, or nil.
	Err() error
}
