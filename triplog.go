// Package triplog renders travel-log exports into paginated PDF documents.
//
// A trip is a sequence of steps, each with a description, follower
// comments, a weather observation, and photos. The renderer produces a
// title page followed by one or more pages per step, with photos scaled by
// orientation and adjacent portrait photos paired side by side.
//
// Basic usage:
//
//	t, err := trip.Load("./export", trip.LoadOptions{})
//	if err != nil {
//	    // handle error
//	}
//	err = triplog.GenerateFile("trip.pdf", t,
//	    triplog.WithFallbackFont("NotoEmoji.ttf"),
//	    triplog.WithTripURL("https://example.com/trips/1234"))
package triplog

import (
	"io"
	"os"

	"github.com/lvillar/triplog/canvas"
	"github.com/lvillar/triplog/layout"
	"github.com/lvillar/triplog/trip"
)

// fallbackFamily is the internal name the fallback font is registered
// under.
const fallbackFamily = "TripFallback"

// Generate renders t into a PDF written to w.
func Generate(w io.Writer, t *trip.Trip, opts ...Option) error {
	cfg := defaultRenderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	pdf := canvas.NewPDF()
	fonts := layout.DefaultFonts()

	if cfg.fallbackFontPath != "" {
		if err := pdf.RegisterFallbackFont(fallbackFamily, cfg.fallbackFontPath); err != nil {
			return &RenderError{Op: "RegisterFallbackFont", Err: err}
		}
		fonts.Fallback = fallbackFamily
	}
	if cfg.coverTemplate != "" {
		if err := pdf.ImportCoverTemplate(cfg.coverTemplate); err != nil {
			return &RenderError{Op: "ImportCoverTemplate", Err: err}
		}
	}

	eng := layout.NewEngine(pdf, fonts, cfg.layout)
	if err := renderTrip(eng, t, cfg); err != nil {
		return err
	}
	if err := eng.Finish(); err != nil {
		return &RenderError{Op: "Finish", Err: err}
	}
	if err := pdf.Output(w); err != nil {
		return &RenderError{Op: "Output", Err: err}
	}
	return nil
}

// GenerateFile renders t into the PDF file at path.
func GenerateFile(path string, t *trip.Trip, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return &RenderError{Op: "Create", Err: err}
	}
	defer f.Close()
	if err := Generate(f, t, opts...); err != nil {
		return err
	}
	return f.Close()
}
