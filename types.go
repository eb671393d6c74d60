package docgen

// All coordinates and dimensions are expressed in typographic points
// (1 inch = 72 pt), origin at the top-left corner of the page.

// Size is a width/height pair in points.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle in page coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Margin defines the page margins.
type Margin struct {
	Top, Left, Right, Bottom float64
}

// Common page sizes in points.
var (
	PageSizeA3     = Size{W: 841.89, H: 1190.55}
	PageSizeA4     = Size{W: 595.28, H: 841.89}
	PageSizeA5     = Size{W: 419.53, H: 595.28}
	PageSizeLetter = Size{W: 612, H: 792}
	PageSizeLegal  = Size{W: 612, H: 1008}
)

// Font specifies a font face for text rendering.
type Font struct {
	Family string  // Helvetica, Courier, Times
	Style  string  // "" (regular), "B" (bold), "I" (italic), "BI"
	Size   float64 // in points
}

// Color is an RGB color with components in 0-255.
type Color struct {
	R, G, B int
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)
