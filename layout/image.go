package layout

import (
	"fmt"
	"io"
	"path/filepath"
)

// Orientation is the three-state classification of an image for placement
// decisions.
type Orientation int

const (
	Landscape Orientation = iota // landscape or square
	Portrait                     // strictly taller than wide
	Unreadable
)

type probeResult struct {
	w, h int
	err  error
}

// probe returns an image's pixel dimensions, consulting the probe cache so
// each image is read at most once per photo run.
func (e *Engine) probe(path string) (int, int, error) {
	if r, ok := e.probes[path]; ok {
		return r.w, r.h, r.err
	}
	w, h, err := e.dims(path)
	e.probes[path] = probeResult{w: w, h: h, err: err}
	return w, h, err
}

// classify decides an image's orientation once. A probe failure classifies
// as Unreadable, which excludes the image from pairing; the failure itself
// surfaces later, when the image is actually placed.
func (e *Engine) classify(path string) Orientation {
	w, h, err := e.probe(path)
	switch {
	case err != nil:
		return Unreadable
	case h > w:
		return Portrait
	default:
		return Landscape
	}
}

// ImageOptions controls single-image placement.
type ImageOptions struct {
	Width    float64 // explicit target width; 0 applies the orientation default
	Height   float64 // explicit target height; 0 applies the orientation default
	Centered bool
}

// PlaceImage draws one image as its own block: orientation-scaled (or
// explicitly sized), matted, bordered, and page-break-checked against its
// full height. Images are never split across a page boundary.
func (e *Engine) PlaceImage(path string, opts ImageOptions) error {
	w, h, err := e.probe(path)
	if err != nil {
		return fmt.Errorf("layout: image %s: %w", filepath.Base(path), err)
	}

	tw, th := e.targetSize(float64(w), float64(h), opts)

	total := th + 2*e.cfg.ImagePadding
	e.EnsureSpace(total)

	x := e.cfg.MarginLeft
	if opts.Centered {
		x = (e.pageW - tw) / 2
	}
	if err := e.drawFramed(path, x, e.y-e.cfg.ImagePadding, tw, th); err != nil {
		return err
	}
	e.consume(total + e.cfg.BlockGap)
	return nil
}

// targetSize applies the orientation policy: portrait images scale to the
// configured portrait height, landscape and square images to the configured
// landscape width, each deriving the other dimension from the aspect ratio.
// An explicit override wins. A result wider than the usable width scales
// both dimensions down uniformly to fit.
func (e *Engine) targetSize(w, h float64, opts ImageOptions) (tw, th float64) {
	aspect := h / w
	switch {
	case opts.Width > 0:
		tw, th = opts.Width, opts.Width*aspect
	case opts.Height > 0:
		tw, th = opts.Height/aspect, opts.Height
	case h > w:
		tw, th = e.cfg.PortraitHeight/aspect, e.cfg.PortraitHeight
	default:
		tw, th = e.cfg.LandscapeWidth, e.cfg.LandscapeWidth*aspect
	}
	if usable := e.UsableWidth(); tw > usable {
		th *= usable / tw
		tw = usable
	}
	return tw, th
}

// PlacePhotos runs a photo sequence through the pairing policy: the photos
// are scanned two at a time, adjacent portrait+portrait pairs share one
// side-by-side block, and everything else is placed alone before
// re-evaluating at the next photo. The probe cache is reset per run.
func (e *Engine) PlacePhotos(paths []string) error {
	e.probes = make(map[string]probeResult, len(paths))
	for i := 0; i < len(paths); {
		if i+1 < len(paths) && e.classify(paths[i]) == Portrait && e.classify(paths[i+1]) == Portrait {
			if err := e.placePair(paths[i], paths[i+1]); err != nil {
				return err
			}
			i += 2
			continue
		}
		if err := e.PlaceImage(paths[i], ImageOptions{}); err != nil {
			return err
		}
		i++
	}
	return nil
}

// placePair draws two portrait images side by side as one block sharing the
// configured portrait height.
func (e *Engine) placePair(first, second string) error {
	w1, h1, err := e.probe(first)
	if err != nil {
		return fmt.Errorf("layout: image %s: %w", filepath.Base(first), err)
	}
	w2, h2, err := e.probe(second)
	if err != nil {
		return fmt.Errorf("layout: image %s: %w", filepath.Base(second), err)
	}

	pw1, pw2, gap, ph := e.pairSize(float64(w1), float64(h1), float64(w2), float64(h2))

	total := ph + 2*e.cfg.ImagePadding
	e.EnsureSpace(total)

	x := e.cfg.MarginLeft
	top := e.y - e.cfg.ImagePadding
	if err := e.drawFramed(first, x, top, pw1, ph); err != nil {
		return err
	}
	if err := e.drawFramed(second, x+pw1+gap, top, pw2, ph); err != nil {
		return err
	}
	e.consume(total + e.cfg.BlockGap)
	return nil
}

// pairSize computes side-by-side geometry: both images at the shared target
// height with widths from their own aspect ratios. A group wider than the
// usable width is scaled down uniformly, gap included, so the images stay
// proportionally fixed to each other.
func (e *Engine) pairSize(w1, h1, w2, h2 float64) (pw1, pw2, gap, ph float64) {
	ph = e.cfg.PortraitHeight
	pw1 = ph * w1 / h1
	pw2 = ph * w2 / h2
	gap = e.cfg.PairGap
	if group := pw1 + gap + pw2; group > e.UsableWidth() {
		scale := e.UsableWidth() / group
		pw1 *= scale
		pw2 *= scale
		gap *= scale
		ph *= scale
	}
	return pw1, pw2, gap, ph
}

// drawFramed draws the image over a white mat with a thin black border at
// the outer padding boundary. Graphics state is scoped so the mat's fill
// and stroke settings cannot leak into later draws. y is the image's top
// edge.
func (e *Engine) drawFramed(path string, x, y, w, h float64) error {
	pad := e.cfg.ImagePadding
	e.c.SaveState()
	e.c.SetFillColor(255, 255, 255)
	e.c.SetDrawColor(0, 0, 0)
	e.c.SetLineWidth(e.cfg.BorderWidth)
	e.c.Rect(x-pad, y+pad, w+2*pad, h+2*pad, "FD")
	e.c.RestoreState()
	return e.c.Image(path, x, y, w, h)
}

// PlaceReaderImage draws PNG data from r at a fixed size, bypassing the
// probe, pairing, and framing policies. Used for generated images such as
// the trip QR code.
func (e *Engine) PlaceReaderImage(name string, r io.Reader, w, h float64, centered bool) error {
	e.EnsureSpace(h)
	x := e.cfg.MarginLeft
	if centered {
		x = (e.pageW - w) / 2
	}
	if err := e.c.ImageReader(name, r, x, e.y, w, h); err != nil {
		return fmt.Errorf("layout: inline image %s: %w", name, err)
	}
	e.consume(h + e.cfg.BlockGap)
	return nil
}
