package doctpl

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lvillar/docgen"
	"github.com/lvillar/docgen/barcode"
	"github.com/lvillar/docgen/fpdf"
)

// Render parses a JSON template and writes the resulting PDF to w.
func Render(w io.Writer, jsonTemplate []byte) error {
	var doc Document
	if err := json.Unmarshal(jsonTemplate, &doc); err != nil {
		return fmt.Errorf("doctpl: parsing template: %w", err)
	}
	return RenderDocument(w, &doc)
}

// RenderDocument compiles a Document into a command stream and writes the
// generated PDF to w.
func RenderDocument(w io.Writer, doc *Document) error {
	gen, err := Compile(doc)
	if err != nil {
		return err
	}
	if err := gen.Generate(w); err != nil {
		return fmt.Errorf("doctpl: %w", err)
	}
	return nil
}

// Compile builds a ready-to-generate docgen.Generator from the template.
func Compile(doc *Document) (*docgen.Generator, error) {
	backendOpts := []fpdf.Option{}
	if doc.Title != "" || doc.Author != "" {
		backendOpts = append(backendOpts, fpdf.WithMetadata(doc.Title, doc.Author))
	}
	if doc.Template != nil && doc.Template.Path != "" {
		backendOpts = append(backendOpts, fpdf.WithPageTemplate(doc.Template.Path, doc.Template.Page))
	}

	defaultFont := docgen.Font{Family: "Helvetica", Size: 11}
	if doc.Font != nil {
		defaultFont = mapFont(*doc.Font, defaultFont)
	}

	genOpts := []docgen.Option{
		docgen.WithBackend(fpdf.New(backendOpts...)),
		docgen.WithPageSize(pageSize(doc.PageSize)),
		docgen.WithDefaultFont(defaultFont),
	}
	if doc.Margin != nil {
		genOpts = append(genOpts, docgen.WithMargins(doc.Margin.Left, doc.Margin.Top, doc.Margin.Right, doc.Margin.Bottom))
	}
	if doc.Pagination != nil {
		cfg, err := paginationConfig(doc.Pagination)
		if err != nil {
			return nil, err
		}
		genOpts = append(genOpts, docgen.WithPagination(cfg))
	}

	gen := docgen.New(genOpts...)

	addBand(gen, doc.Header, docgen.HeaderLeft, docgen.HeaderCenter, docgen.HeaderRight, defaultFont)
	addBand(gen, doc.Footer, docgen.FooterLeft, docgen.FooterCenter, docgen.FooterRight, defaultFont)

	for i, elem := range doc.Elements {
		if err := addElement(gen, elem, defaultFont); err != nil {
			return nil, fmt.Errorf("doctpl: element %d: %w", i, err)
		}
	}
	return gen, nil
}

func addBand(gen *docgen.Generator, band *BandText, left, center, right docgen.Container, defaultFont docgen.Font) {
	if band == nil {
		return
	}
	if band.Font != nil {
		gen.SetFont(left, mapFont(*band.Font, defaultFont))
	}
	if band.Color != nil {
		gen.SetTextColor(left, docgen.Color{R: band.Color.R, G: band.Color.G, B: band.Color.B})
	}
	if band.Left != "" {
		gen.AddText(left, band.Left, 1.0)
	}
	if band.Center != "" {
		gen.AddText(center, band.Center, 1.0)
	}
	if band.Right != "" {
		gen.AddText(right, band.Right, 1.0)
	}
	if band.Color != nil {
		gen.SetTextColor(left, docgen.Black)
	}
}

func addElement(gen *docgen.Generator, elem Element, defaultFont docgen.Font) error {
	target := contentContainer(elem.Align)

	setColor := elem.Color != nil
	if setColor {
		gen.SetTextColor(target, docgen.Color{R: elem.Color.R, G: elem.Color.G, B: elem.Color.B})
	}
	defer func() {
		if setColor {
			gen.SetTextColor(target, docgen.Black)
		}
	}()

	switch elem.Type {
	case "heading":
		font := headingFont(elem, defaultFont)
		gen.SetFont(target, font)
		gen.AddSpace(target, font.Size*0.4)
		gen.AddText(target, elem.Text, lineSpacing(elem))
		gen.AddSpace(target, font.Size*0.2)
		gen.SetFont(target, defaultFont)
	case "paragraph", "text":
		if elem.Font != nil {
			gen.SetFont(target, mapFont(*elem.Font, defaultFont))
		}
		gen.AddText(target, elem.Text, lineSpacing(elem))
		if elem.Font != nil {
			gen.SetFont(target, defaultFont)
		}
	case "spacer":
		amount := elem.Amount
		if amount <= 0 {
			amount = defaultFont.Size
		}
		gen.AddSpace(target, amount)
	case "line", "hr":
		gen.AddLineSeparator(target, docgen.LineStyle{Width: elem.LineWidth})
	case "list":
		gen.AddList(target, buildList(elem))
	case "table":
		t, err := buildTable(elem)
		if err != nil {
			return err
		}
		return gen.AddTable(target, t)
	case "image":
		img, err := docgen.ImageFromFile(elem.Src)
		if err != nil {
			return err
		}
		gen.Add(target, docgen.ImageCommand{
			Image:   img,
			Size:    docgen.Size{W: elem.Width, H: elem.Height},
			Caption: elem.Caption,
			Fit:     imageFit(elem),
		})
	case "barcode":
		img, err := buildBarcode(elem)
		if err != nil {
			return err
		}
		gen.Add(target, docgen.ImageCommand{
			Image:   img,
			Size:    docgen.Size{W: elem.Width, H: elem.Height},
			Caption: elem.Caption,
			Fit:     imageFit(elem),
		})
	case "newpage":
		gen.CreateNewPage()
	case "indent":
		gen.SetIndentation(target, elem.Value)
	default:
		return fmt.Errorf("unknown element type %q", elem.Type)
	}
	return nil
}

func buildList(elem Element) *docgen.List {
	symbol := docgen.SymbolDot
	if elem.Ordered {
		symbol = docgen.SymbolNumbered
	}
	if elem.Bullet != "" {
		symbol = docgen.CustomSymbol(elem.Bullet)
	}
	list := &docgen.List{}
	for _, item := range elem.Items {
		list.Items = append(list.Items, docgen.ListItem{Symbol: symbol, Text: item})
	}
	return list
}

func buildTable(elem Element) (*docgen.Table, error) {
	if len(elem.Columns) == 0 {
		return nil, fmt.Errorf("table element needs columns")
	}
	headers := make([]string, len(elem.Columns))
	aligns := make([]docgen.Alignment, len(elem.Columns))
	widths := make([]float64, len(elem.Columns))
	for i, col := range elem.Columns {
		headers[i] = col.Header
		aligns[i] = alignment(col.Align)
		widths[i] = col.Width
		if widths[i] <= 0 {
			widths[i] = 1
		}
	}
	rows := append([][]string{headers}, elem.Rows...)
	return docgen.NewTable(rows, aligns, widths)
}

func buildBarcode(elem Element) (docgen.Image, error) {
	size := elem.Size
	if size <= 0 {
		size = 128
	}
	switch strings.ToLower(elem.Barcode) {
	case "qr":
		return barcode.QR(elem.Content, size)
	case "code128":
		return barcode.Code128(elem.Content, size*2, size/2)
	case "ean":
		return barcode.EAN(elem.Content, size*2, size/2)
	case "aztec":
		return barcode.Aztec([]byte(elem.Content), 0)
	case "pdf417":
		return barcode.PDF417(elem.Content, 4, 2)
	}
	return docgen.Image{}, fmt.Errorf("unknown barcode type %q", elem.Barcode)
}

func paginationConfig(p *Pagination) (docgen.PaginationConfig, error) {
	style := docgen.DefaultPagination()
	switch strings.ToLower(p.Style) {
	case "", "default":
	case "roman":
		style = docgen.RomanPagination(p.Template)
	default:
		return docgen.PaginationConfig{}, fmt.Errorf("doctpl: unknown pagination style %q", p.Style)
	}
	container := docgen.FooterCenter
	if p.Container != "" {
		c, ok := containerByName(p.Container)
		if !ok {
			return docgen.PaginationConfig{}, fmt.Errorf("doctpl: unknown pagination container %q", p.Container)
		}
		container = c
	}
	return docgen.PaginationConfig{
		Container: container,
		Style:     style,
		Start:     p.Start,
		End:       p.End,
		Exclude:   p.Exclude,
	}, nil
}

func containerByName(name string) (docgen.Container, bool) {
	for c := docgen.HeaderLeft; c <= docgen.FooterRight; c++ {
		if strings.EqualFold(c.String(), name) {
			return c, true
		}
	}
	return docgen.ContainerNone, false
}

func contentContainer(align string) docgen.Container {
	switch strings.ToUpper(align) {
	case "C":
		return docgen.ContentCenter
	case "R":
		return docgen.ContentRight
	}
	return docgen.ContentLeft
}

func alignment(align string) docgen.Alignment {
	switch strings.ToUpper(align) {
	case "C":
		return docgen.AlignCenter
	case "R":
		return docgen.AlignRight
	}
	return docgen.AlignLeft
}

func imageFit(elem Element) docgen.SizeFit {
	if elem.Width > 0 && elem.Height > 0 {
		return docgen.FitWidthHeight
	}
	if elem.Height > 0 {
		return docgen.FitHeight
	}
	return docgen.FitWidth
}

func lineSpacing(elem Element) float64 {
	if elem.LineSpacing > 0 {
		return elem.LineSpacing
	}
	return 1.15
}

// Heading sizes: h1=24, h2=20, h3=16, h4=14, h5=12, h6=11
var headingSizes = []float64{24, 20, 16, 14, 12, 11}

func headingFont(elem Element, defaultFont docgen.Font) docgen.Font {
	level := elem.Level
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	font := docgen.Font{Family: defaultFont.Family, Style: "B", Size: headingSizes[level-1]}
	if elem.Font != nil {
		font = mapFont(*elem.Font, font)
	}
	return font
}

func mapFont(f Font, fallback docgen.Font) docgen.Font {
	out := fallback
	if f.Family != "" {
		out.Family = f.Family
	}
	if f.Style != "" {
		out.Style = f.Style
	}
	if f.Size > 0 {
		out.Size = f.Size
	}
	return out
}

func pageSize(name string) docgen.Size {
	switch strings.ToUpper(name) {
	case "A3":
		return docgen.PageSizeA3
	case "A5":
		return docgen.PageSizeA5
	case "LETTER":
		return docgen.PageSizeLetter
	case "LEGAL":
		return docgen.PageSizeLegal
	}
	return docgen.PageSizeA4
}
