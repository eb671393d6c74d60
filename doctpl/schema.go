// Package doctpl provides a JSON-based document template DSL for the docgen
// engine.
//
// It allows describing a paginated document using a declarative JSON schema
// that is easy for both humans and machines to generate. The schema supports
// headings, paragraphs, tables, images, barcodes, lines, spacers, lists,
// repeating header/footer text and page-number formatting; the template is
// compiled into a docgen command stream and rendered through the fpdf
// backend.
//
// Example JSON:
//
//	{
//	  "title": "My Document",
//	  "pageSize": "A4",
//	  "footer": {"center": "Confidential"},
//	  "pagination": {"style": "default", "container": "footerRight"},
//	  "elements": [
//	    {"type": "heading", "text": "Hello World", "level": 1},
//	    {"type": "paragraph", "text": "Some body text here."},
//	    {"type": "newpage"},
//	    {"type": "paragraph", "text": "Second page."}
//	  ]
//	}
package doctpl

// Document is the top-level template that describes an entire document.
type Document struct {
	Title    string  `json:"title,omitempty"`
	Author   string  `json:"author,omitempty"`
	PageSize string  `json:"pageSize,omitempty"` // A3, A4, A5, Letter, Legal (default: A4)
	Margin   *Margin `json:"margin,omitempty"`
	Font     *Font   `json:"font,omitempty"` // default font for the document

	Header     *BandText     `json:"header,omitempty"` // repeated at the top of every page
	Footer     *BandText     `json:"footer,omitempty"` // repeated at the bottom of every page
	Pagination *Pagination   `json:"pagination,omitempty"`
	Template   *PageTemplate `json:"template,omitempty"` // PDF page stamped behind every page

	Elements []Element `json:"elements"`
}

// Margin defines page margins in points.
type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Font specifies a font face.
type Font struct {
	Family string  `json:"family"` // Helvetica, Courier, Times
	Style  string  `json:"style"`  // "" (regular), "B" (bold), "I" (italic), "BI"
	Size   float64 `json:"size"`
}

// Color is an RGB color.
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// BandText is repeating text in the header or footer band, with one entry
// per position slot.
type BandText struct {
	Left   string `json:"left,omitempty"`
	Center string `json:"center,omitempty"`
	Right  string `json:"right,omitempty"`
	Font   *Font  `json:"font,omitempty"`
	Color  *Color `json:"color,omitempty"`
}

// Pagination configures page-number text.
type Pagination struct {
	Style     string `json:"style,omitempty"`     // "default" or "roman"
	Template  string `json:"template,omitempty"`  // fmt pattern for the roman style, e.g. "%s / %s"
	Container string `json:"container,omitempty"` // e.g. "footerCenter" (default)
	Start     int    `json:"start,omitempty"`
	End       int    `json:"end,omitempty"`
	Exclude   []int  `json:"exclude,omitempty"`
}

// PageTemplate selects a page of an existing PDF to stamp behind every
// generated page.
type PageTemplate struct {
	Path string `json:"path"`
	Page int    `json:"page,omitempty"` // 1-based, default 1
}

// Element is a single content element of the document.
// The Type field determines which other fields are relevant.
type Element struct {
	Type string `json:"type"` // heading, paragraph, spacer, line, list, table, image, barcode, newpage, indent

	// Text content (heading, paragraph)
	Text        string  `json:"text,omitempty"`
	Level       int     `json:"level,omitempty"` // heading level 1-6
	Align       string  `json:"align,omitempty"` // L, C, R (default: L)
	LineSpacing float64 `json:"lineSpacing,omitempty"`

	// Font/color override for this element
	Font  *Font  `json:"font,omitempty"`
	Color *Color `json:"color,omitempty"`

	// Table
	Columns []TableColumn `json:"columns,omitempty"`
	Rows    [][]string    `json:"rows,omitempty"`

	// Image
	Src     string  `json:"src,omitempty"`
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`
	Caption string  `json:"caption,omitempty"`

	// Barcode
	Barcode string `json:"barcode,omitempty"` // qr, code128, ean, aztec, pdf417
	Content string `json:"content,omitempty"`
	Size    int    `json:"size,omitempty"` // pixel size, default 128

	// Spacer / line
	Amount    float64 `json:"amount,omitempty"`
	LineWidth float64 `json:"lineWidth,omitempty"`

	// List
	Items   []string `json:"items,omitempty"`
	Ordered bool     `json:"ordered,omitempty"`
	Bullet  string   `json:"bullet,omitempty"` // custom bullet marker

	// Indent
	Value float64 `json:"value,omitempty"`
}

// TableColumn defines a column in a table element.
type TableColumn struct {
	Header string  `json:"header"`
	Width  float64 `json:"width,omitempty"` // relative width, default 1
	Align  string  `json:"align,omitempty"` // L, C, R
}
