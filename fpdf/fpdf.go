// Package fpdf implements the docgen rendering backend on top of the gofpdf
// library. It measures and draws text, images, lines and rects, manages the
// page lifecycle, and can stamp every generated page with a page imported
// from an existing PDF file (via gofpdi).
//
// The backend works in typographic points, matching the engine's coordinate
// space, and keeps gofpdf passive: margins and automatic page breaks are
// disabled so the engine's own layout decisions are authoritative.
package fpdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"

	"github.com/lvillar/docgen"
)

// Backend renders docgen drawables through a gofpdf document. Create one per
// generation call; it is not safe for concurrent use.
type Backend struct {
	pdf    *gofpdf.Fpdf
	images map[string]docgen.Size // registered image name -> intrinsic size

	importer *gofpdi.Importer
	tplPath  string
	tplPage  int
	tplID    int
	tplReady bool
}

// New creates a backend with an empty PDF document.
func New(opts ...Option) *Backend {
	cfg := backendConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	pdf := gofpdf.New("P", "pt", "A4", cfg.fontDir)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0)
	if cfg.title != "" {
		pdf.SetTitle(cfg.title, true)
	}
	if cfg.author != "" {
		pdf.SetAuthor(cfg.author, true)
	}

	b := &Backend{
		pdf:     pdf,
		images:  make(map[string]docgen.Size),
		tplPath: cfg.tplPath,
		tplPage: cfg.tplPage,
	}
	if b.tplPath != "" {
		b.importer = gofpdi.NewImporter()
	}
	return b
}

// Measure returns the size the drawable occupies within the constraints.
func (b *Backend) Measure(d docgen.Drawable, c docgen.Constraints) (docgen.Size, error) {
	switch v := d.(type) {
	case docgen.TextDrawable:
		return b.measureText(v, c)
	case docgen.ImageDrawable:
		if v.Size.W > 0 && v.Size.H > 0 {
			return v.Size, nil
		}
		name, err := b.ensureImage(v.Image)
		if err != nil {
			return docgen.Size{}, err
		}
		return b.images[name], nil
	case docgen.LineDrawable:
		if v.Vertical {
			return docgen.Size{W: v.Style.Width, H: c.Height}, nil
		}
		return docgen.Size{W: c.Width, H: v.Style.Width}, nil
	case docgen.RectDrawable:
		return docgen.Size{W: c.Width, H: c.Height}, nil
	}
	return docgen.Size{}, fmt.Errorf("fpdf: unsupported drawable %T", d)
}

// Draw marks the drawable into the current page at the given rect.
func (b *Backend) Draw(d docgen.Drawable, at docgen.Rect) error {
	switch v := d.(type) {
	case docgen.TextDrawable:
		return b.drawText(v, at)
	case docgen.ImageDrawable:
		return b.drawImage(v, at)
	case docgen.LineDrawable:
		return b.drawLine(v, at)
	case docgen.RectDrawable:
		return b.drawRect(v, at)
	}
	return fmt.Errorf("fpdf: unsupported drawable %T", d)
}

// BeginPage starts a new page and, when a page template is configured,
// stamps it across the full page before any content.
func (b *Backend) BeginPage(size docgen.Size) error {
	b.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: size.W, Ht: size.H})
	if b.importer != nil {
		if !b.tplReady {
			page := b.tplPage
			if page < 1 {
				page = 1
			}
			b.tplID = b.importer.ImportPage(b.pdf, b.tplPath, page, "/MediaBox")
			b.tplReady = true
		}
		b.importer.UseImportedTemplate(b.pdf, b.tplID, 0, 0, size.W, 0)
	}
	return b.err()
}

// EndPage finishes the current page. gofpdf closes pages implicitly, so this
// only surfaces any pending error.
func (b *Backend) EndPage() error {
	return b.err()
}

// Finalize closes the document and returns its bytes.
func (b *Backend) Finalize() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("fpdf: writing document: %w", err)
	}
	return buf.Bytes(), nil
}

func (b *Backend) measureText(d docgen.TextDrawable, c docgen.Constraints) (docgen.Size, error) {
	b.setFont(d.Font)
	lineH := d.LineHeight()

	if c.Width <= 0 {
		// Unconstrained: report the natural single-line extent, splitting
		// only on explicit newlines.
		var maxW float64
		lines := strings.Split(d.Text, "\n")
		for _, line := range lines {
			if w := b.pdf.GetStringWidth(line); w > maxW {
				maxW = w
			}
		}
		return docgen.Size{W: maxW, H: lineH * float64(len(lines))}, b.err()
	}

	lines := b.pdf.SplitText(d.Text, c.Width)
	return docgen.Size{W: c.Width, H: lineH * float64(len(lines))}, b.err()
}

func (b *Backend) drawText(d docgen.TextDrawable, at docgen.Rect) error {
	b.setFont(d.Font)
	b.pdf.SetTextColor(d.Color.R, d.Color.G, d.Color.B)
	b.pdf.SetXY(at.X, at.Y)
	align := "L"
	switch d.Align {
	case docgen.AlignCenter:
		align = "C"
	case docgen.AlignRight:
		align = "R"
	}
	b.pdf.MultiCell(at.W, d.LineHeight(), d.Text, "", align, false)
	return b.err()
}

func (b *Backend) drawImage(d docgen.ImageDrawable, at docgen.Rect) error {
	name, err := b.ensureImage(d.Image)
	if err != nil {
		return err
	}
	b.pdf.ImageOptions(name, at.X, at.Y, at.W, at.H, false, gofpdf.ImageOptions{}, 0, "")
	return b.err()
}

func (b *Backend) drawLine(d docgen.LineDrawable, at docgen.Rect) error {
	b.pdf.SetDrawColor(d.Style.Color.R, d.Style.Color.G, d.Style.Color.B)
	w := d.Style.Width
	if w <= 0 {
		w = 0.5
	}
	b.pdf.SetLineWidth(w)
	switch d.Style.Type {
	case docgen.LineDashed:
		b.pdf.SetDashPattern([]float64{3, 3}, 0)
	case docgen.LineDotted:
		b.pdf.SetDashPattern([]float64{0.5, 1.5}, 0)
	default:
		b.pdf.SetDashPattern([]float64{}, 0)
	}
	if d.Vertical {
		b.pdf.Line(at.X, at.Y, at.X, at.Y+at.H)
	} else {
		b.pdf.Line(at.X, at.Y, at.X+at.W, at.Y)
	}
	b.pdf.SetDashPattern([]float64{}, 0)
	return b.err()
}

func (b *Backend) drawRect(d docgen.RectDrawable, at docgen.Rect) error {
	style := ""
	if d.Fill != nil {
		b.pdf.SetFillColor(d.Fill.R, d.Fill.G, d.Fill.B)
		style += "F"
	}
	if d.Stroke != nil {
		b.pdf.SetDrawColor(d.Stroke.Color.R, d.Stroke.Color.G, d.Stroke.Color.B)
		w := d.Stroke.Width
		if w <= 0 {
			w = 0.5
		}
		b.pdf.SetLineWidth(w)
		style += "D"
	}
	if style == "" {
		return nil
	}
	b.pdf.Rect(at.X, at.Y, at.W, at.H, style)
	return b.err()
}

func (b *Backend) setFont(f docgen.Font) {
	family := f.Family
	if family == "" {
		family = "Helvetica"
	}
	size := f.Size
	if size <= 0 {
		size = 11
	}
	b.pdf.SetFont(family, f.Style, size)
}

func (b *Backend) err() error {
	if b.pdf.Err() {
		return fmt.Errorf("fpdf: %w", b.pdf.Error())
	}
	return nil
}
