package canvas

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"
	"golang.org/x/image/webp"
)

// PDF is a Canvas backed by github.com/go-pdf/fpdf. Pages are US Letter in
// points; page breaks are driven entirely by the layout engine, so fpdf's
// automatic page break is disabled.
type PDF struct {
	pdf  *fpdf.Fpdf
	w, h float64

	saved []graphicsState

	coverTemplate string
	importer      *gofpdi.Importer

	registered map[string]bool // images registered via a reader
}

type graphicsState struct {
	fillR, fillG, fillB int
	drawR, drawG, drawB int
	lineWidth           float64
}

var _ Canvas = (*PDF)(nil)

// NewPDF creates an empty Letter-sized document. No page exists until the
// first AddPage call.
func NewPDF() *PDF {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	w, h := pdf.GetPageSize()
	return &PDF{pdf: pdf, w: w, h: h, registered: map[string]bool{}}
}

// RegisterFallbackFont loads the TTF at path under the given family name.
// The layout engine substitutes this family for text containing glyphs
// outside the 7-bit ASCII range.
func (p *PDF) RegisterFallbackFont(family, path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("canvas: registering %s: %w", path, ErrFontNotFound)
	}
	p.pdf.AddUTF8Font(family, "", path)
	return p.Err()
}

// ImportCoverTemplate records an existing PDF whose first page is stamped
// behind the first page of this document. The import runs lazily on the
// first AddPage.
func (p *PDF) ImportCoverTemplate(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("canvas: cover template: %w", err)
	}
	p.coverTemplate = path
	return nil
}

func (p *PDF) PageSize() (float64, float64) { return p.w, p.h }

func (p *PDF) AddPage() {
	p.pdf.AddPage()
	if p.coverTemplate != "" && p.pdf.PageNo() == 1 {
		if p.importer == nil {
			p.importer = gofpdi.NewImporter()
		}
		tpl := p.importer.ImportPage(p.pdf, p.coverTemplate, 1, "/MediaBox")
		p.importer.UseImportedTemplate(p.pdf, tpl, 0, 0, p.w, p.h)
	}
}

func (p *PDF) SetTitle(title string) { p.pdf.SetTitle(title, true) }

func (p *PDF) SetFont(f FontSpec) { p.pdf.SetFont(f.Family, f.Style, f.Size) }

func (p *PDF) Text(x, y float64, s string) { p.pdf.Text(x, p.h-y, s) }

func (p *PDF) TextWidth(s string, f FontSpec) float64 {
	p.pdf.SetFont(f.Family, f.Style, f.Size)
	return p.pdf.GetStringWidth(s)
}

func (p *PDF) Image(path string, x, y, w, h float64) error {
	opt := fpdf.ImageOptions{}
	if strings.EqualFold(filepath.Ext(path), ".webp") {
		// fpdf cannot embed WebP; transcode to PNG once per path.
		if err := p.registerWebP(path); err != nil {
			return err
		}
		opt.ImageType = "PNG"
	}
	p.pdf.ImageOptions(path, x, p.h-y, w, h, false, opt, 0, "")
	return p.Err()
}

// registerWebP decodes a WebP file and registers it with fpdf as PNG data
// under the original path.
func (p *PDF) registerWebP(path string) error {
	if p.registered[path] {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("canvas: opening %s: %w", path, err)
	}
	defer f.Close()
	img, err := webp.Decode(f)
	if err != nil {
		return fmt.Errorf("canvas: decoding %s: %w", filepath.Base(path), ErrImageUnreadable)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("canvas: transcoding %s: %w", filepath.Base(path), err)
	}
	p.pdf.RegisterImageOptionsReader(path, fpdf.ImageOptions{ImageType: "PNG"}, &buf)
	p.registered[path] = true
	return p.Err()
}

func (p *PDF) ImageReader(name string, r io.Reader, x, y, w, h float64) error {
	opt := fpdf.ImageOptions{ImageType: "PNG"}
	if !p.registered[name] {
		p.pdf.RegisterImageOptionsReader(name, opt, r)
		p.registered[name] = true
	}
	p.pdf.ImageOptions(name, x, p.h-y, w, h, false, opt, 0, "")
	return p.Err()
}

func (p *PDF) SetFillColor(r, g, b int) { p.pdf.SetFillColor(r, g, b) }
func (p *PDF) SetDrawColor(r, g, b int) { p.pdf.SetDrawColor(r, g, b) }
func (p *PDF) SetLineWidth(w float64)   { p.pdf.SetLineWidth(w) }

func (p *PDF) Rect(x, y, w, h float64, style string) {
	p.pdf.Rect(x, p.h-y, w, h, style)
}

func (p *PDF) Line(x1, y1, x2, y2 float64) {
	p.pdf.Line(x1, p.h-y1, x2, p.h-y2)
}

// SaveState snapshots fill color, stroke color, and line width. fpdf keeps
// these as document-global state, so scoping is done by capture and replay
// rather than content-stream q/Q operators.
func (p *PDF) SaveState() {
	var s graphicsState
	s.fillR, s.fillG, s.fillB = p.pdf.GetFillColor()
	s.drawR, s.drawG, s.drawB = p.pdf.GetDrawColor()
	s.lineWidth = p.pdf.GetLineWidth()
	p.saved = append(p.saved, s)
}

func (p *PDF) RestoreState() {
	if len(p.saved) == 0 {
		return
	}
	s := p.saved[len(p.saved)-1]
	p.saved = p.saved[:len(p.saved)-1]
	p.pdf.SetFillColor(s.fillR, s.fillG, s.fillB)
	p.pdf.SetDrawColor(s.drawR, s.drawG, s.drawB)
	p.pdf.SetLineWidth(s.lineWidth)
}

func (p *PDF) Err() error {
	if p.pdf.Err() {
		return p.pdf.Error()
	}
	return nil
}

// Output finalizes the document and writes it to w.
func (p *PDF) Output(w io.Writer) error {
	return p.pdf.Output(w)
}
