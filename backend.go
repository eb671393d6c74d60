package docgen

// Drawable is one primitive handed to the rendering backend. The engine
// reduces every command to text, image, line and rect drawables; backends
// only need to measure and draw these four.
type Drawable interface {
	isDrawable()
}

// TextDrawable is a block of text in a single font and color. The backend
// wraps it to the constraint width when measuring and to the rect width when
// drawing.
type TextDrawable struct {
	Text        string
	Font        Font
	Color       Color
	LineSpacing float64 // multiple of the font size; 0 means 1.0
	Align       Alignment
}

// ImageDrawable is an encoded image. When Size is zero the backend reports
// the image's intrinsic size from Measure.
type ImageDrawable struct {
	Image Image
	Size  Size
}

// LineDrawable is a rule stroked along the rect's top edge across its width,
// or, when Vertical is set, along the rect's left edge across its height.
type LineDrawable struct {
	Style    LineStyle
	Vertical bool
}

// RectDrawable is a filled and/or stroked rectangle.
type RectDrawable struct {
	Fill   *Color
	Stroke *LineStyle
}

func (TextDrawable) isDrawable()  {}
func (ImageDrawable) isDrawable() {}
func (LineDrawable) isDrawable()  {}
func (RectDrawable) isDrawable()  {}

// LineHeight returns the drawable's effective line height in points,
// defaulting the font size and spacing when unset. Backends use it so both
// measurement and drawing agree on line advance.
func (d TextDrawable) LineHeight() float64 {
	spacing := d.LineSpacing
	if spacing <= 0 {
		spacing = 1.0
	}
	size := d.Font.Size
	if size <= 0 {
		size = 11
	}
	return size * spacing
}

// Constraints bound a measurement. A non-positive dimension means
// unconstrained.
type Constraints struct {
	Width, Height float64
}

// Backend is the rendering collaborator of the generation pipeline. Measure
// is called in both the metrics and the render pass so layout decisions are
// identical; Draw and the page lifecycle are called only in the render pass.
//
// A Backend instance belongs to a single Generate call and is not safe for
// concurrent use.
type Backend interface {
	// Measure returns the size the drawable will occupy within the given
	// constraints.
	Measure(d Drawable, c Constraints) (Size, error)

	// Draw marks the drawable into the current page at the given rect.
	Draw(d Drawable, at Rect) error

	// BeginPage starts a new page of the given size.
	BeginPage(size Size) error

	// EndPage finishes the current page.
	EndPage() error

	// Finalize closes the document and returns its bytes.
	Finalize() ([]byte, error)
}
