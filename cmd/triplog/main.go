// Command triplog renders a travel-log export directory into a paginated
// PDF.
//
// Usage:
//
//	triplog -in ./export -out trip.pdf
//	triplog -in ./export -out trip.pdf -font NotoEmoji.ttf -link https://example.com/trips/1234
//
// The export directory must contain trip.json plus one photo folder per
// step (named with the step ID as suffix).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lvillar/triplog"
	"github.com/lvillar/triplog/trip"
)

func main() {
	in := flag.String("in", ".", "trip export directory")
	out := flag.String("out", "trip.pdf", "output PDF path")
	font := flag.String("font", "", "TTF with wide glyph coverage, used as the fallback font")
	cover := flag.String("cover-template", "", "existing PDF whose first page backs the title page")
	link := flag.String("link", "", "trip web URL, rendered as a QR code on the title page")
	maxSteps := flag.Int("max-steps", 0, "render at most this many steps (0 = all)")
	flag.Parse()

	t, err := trip.Load(*in, trip.LoadOptions{MaxSteps: *maxSteps})
	if err != nil {
		fail(err)
	}

	var opts []triplog.Option
	if *font != "" {
		opts = append(opts, triplog.WithFallbackFont(*font))
	}
	if *cover != "" {
		opts = append(opts, triplog.WithCoverTemplate(*cover))
	}
	if *link != "" {
		opts = append(opts, triplog.WithTripURL(*link))
	}

	if err := triplog.GenerateFile(*out, t, opts...); err != nil {
		fail(err)
	}
	fmt.Printf("wrote %s (%d steps)\n", *out, len(t.Steps))
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "triplog: %v\n", err)
	os.Exit(1)
}
