package docgen

// Command is one atomic layout or drawing instruction in a document's command
// stream. It is a closed union: the set of implementations is fixed by this
// package and dispatched exhaustively by the generator.
type Command interface {
	isCommand()
}

// TextCommand draws a block of plain text, line-wrapped to the available
// width of its container.
type TextCommand struct {
	Text        string
	LineSpacing float64 // multiple of the font size; 0 means 1.0
}

// TextSpan is one run of an attributed text block, with optional font and
// color overrides for that run.
type TextSpan struct {
	Text  string
	Font  *Font
	Color *Color
}

// AttributedTextCommand draws rich text composed of spans with differing
// fonts and colors. Spans flow inline and wrap to the available width.
type AttributedTextCommand struct {
	Spans       []TextSpan
	LineSpacing float64
}

// ImageCommand draws a single image, scaled according to its fit strategy,
// with an optional caption below it.
type ImageCommand struct {
	Image   Image
	Size    Size // requested size; zero means intrinsic size
	Caption string
	Fit     SizeFit
	FitFunc ImageFitFunc // used when Fit is FitCustom
}

// ImageRowCommand draws several images side by side in one row, sharing the
// available width, with optional per-image captions.
type ImageRowCommand struct {
	Images   []Image
	Captions []string
	Spacing  float64 // horizontal gap between images
}

// SpaceCommand adds vertical whitespace to the container.
type SpaceCommand struct {
	Amount float64
}

// LineSeparatorCommand draws a horizontal rule across the available width.
type LineSeparatorCommand struct {
	Style LineStyle
}

// TableCommand draws a table. Build the table with NewTable so the column
// counts are validated up front.
type TableCommand struct {
	Table *Table
}

// ListCommand draws a (possibly nested) bullet or numbered list.
type ListCommand struct {
	List *List
}

// IndentationCommand sets the left indentation of the container's band.
type IndentationCommand struct {
	Value float64
}

// OffsetCommand sets the vertical offset of the container's band, shifting
// where subsequent content in that band starts.
type OffsetCommand struct {
	Value float64
}

// FontCommand sets the current font of the container's band.
type FontCommand struct {
	Font Font
}

// TextColorCommand sets the current text color for the whole session.
type TextColorCommand struct {
	Color Color
}

// NewPageCommand finishes the current page and starts the next one. It is the
// only page-break trigger: the engine never breaks pages on content overflow.
type NewPageCommand struct{}

func (TextCommand) isCommand()           {}
func (AttributedTextCommand) isCommand() {}
func (ImageCommand) isCommand()          {}
func (ImageRowCommand) isCommand()       {}
func (SpaceCommand) isCommand()          {}
func (LineSeparatorCommand) isCommand()  {}
func (TableCommand) isCommand()          {}
func (ListCommand) isCommand()           {}
func (IndentationCommand) isCommand()    {}
func (OffsetCommand) isCommand()         {}
func (FontCommand) isCommand()           {}
func (TextColorCommand) isCommand()      {}
func (NewPageCommand) isCommand()        {}

// LineType selects how a line is stroked.
type LineType int

const (
	LineFull LineType = iota
	LineDashed
	LineDotted
	LineNone
)

// LineStyle describes the appearance of separators, table borders and rule
// strokes.
type LineStyle struct {
	Type  LineType
	Color Color
	Width float64 // stroke width in points; 0 means 0.5
}

// width returns the effective stroke width.
func (s LineStyle) width() float64 {
	if s.Width <= 0 {
		return 0.5
	}
	return s.Width
}
