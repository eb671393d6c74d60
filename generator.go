package docgen

import (
	"fmt"
	"io"
	"os"
)

// ProgressFunc observes generation progress. It receives a non-decreasing
// fraction in [0, 1] once per content command per pass, reaching exactly 1.0
// when the render pass finishes its last command.
type ProgressFunc func(fraction float64)

// located pairs a command with the container it targets.
type located struct {
	container Container
	cmd       Command
}

// Generator accumulates a command stream and turns it into a paginated
// document through a two-pass pipeline: a metrics pass discovers page breaks
// and the total page count, then a render pass replays every command against
// the backend with real drawing.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	backend     Backend
	pageSize    Size
	margin      Margin
	defaultFont Font
	headerSpace float64 // configured minimum, see WithHeaderSpace
	footerSpace float64
	pagination  *PaginationConfig
	progress    ProgressFunc

	commands  []located
	lastTotal int
}

// New creates a Generator. Without options it targets an A4 page with 60pt
// margins and Helvetica 11, and still needs WithBackend before Generate.
func New(opts ...Option) *Generator {
	g := &Generator{
		pageSize:    PageSizeA4,
		margin:      Margin{Top: 60, Left: 60, Right: 60, Bottom: 60},
		defaultFont: Font{Family: "Helvetica", Size: 11},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Add appends a command targeted at the given container. Most callers use
// the typed convenience methods instead.
func (g *Generator) Add(c Container, cmd Command) {
	if c == ContainerNone || cmd == nil {
		return
	}
	g.commands = append(g.commands, located{container: c, cmd: cmd})
}

// AddText appends wrapped plain text. lineSpacing is a multiple of the font
// size; pass 1.0 for single spacing.
func (g *Generator) AddText(c Container, text string, lineSpacing float64) {
	g.Add(c, TextCommand{Text: text, LineSpacing: lineSpacing})
}

// AddAttributedText appends rich text composed of spans.
func (g *Generator) AddAttributedText(c Container, spans ...TextSpan) {
	g.Add(c, AttributedTextCommand{Spans: spans})
}

// AddImage appends an image drawn at its intrinsic size, shrunk to the
// available width.
func (g *Generator) AddImage(c Container, img Image) {
	g.Add(c, ImageCommand{Image: img})
}

// AddImagesInRow appends a row of images sharing the available width.
// captions may be shorter than images; missing captions are left empty.
func (g *Generator) AddImagesInRow(c Container, images []Image, captions []string, spacing float64) {
	g.Add(c, ImageRowCommand{Images: images, Captions: captions, Spacing: spacing})
}

// AddSpace appends vertical whitespace.
func (g *Generator) AddSpace(c Container, amount float64) {
	g.Add(c, SpaceCommand{Amount: amount})
}

// AddLineSeparator appends a horizontal rule.
func (g *Generator) AddLineSeparator(c Container, style LineStyle) {
	g.Add(c, LineSeparatorCommand{Style: style})
}

// AddTable appends a table command. The table is validated immediately;
// a malformed table is rejected here, before generation starts.
func (g *Generator) AddTable(c Container, t *Table) error {
	if t == nil {
		return newDocError("AddTable", ErrInvalidParam)
	}
	if err := t.validate(); err != nil {
		return newDocError("AddTable", err)
	}
	g.Add(c, TableCommand{Table: t})
	return nil
}

// AddList appends a list command.
func (g *Generator) AddList(c Container, l *List) {
	if l == nil {
		return
	}
	g.Add(c, ListCommand{List: l})
}

// SetIndentation sets the left indentation of the container's band for all
// subsequent commands.
func (g *Generator) SetIndentation(c Container, value float64) {
	g.Add(c, IndentationCommand{Value: value})
}

// SetOffset sets the vertical offset of the container's band.
func (g *Generator) SetOffset(c Container, value float64) {
	g.Add(c, OffsetCommand{Value: value})
}

// SetFont sets the current font of the container's band.
func (g *Generator) SetFont(c Container, f Font) {
	g.Add(c, FontCommand{Font: f})
}

// SetTextColor sets the text color for subsequent text in any band.
func (g *Generator) SetTextColor(c Container, col Color) {
	g.Add(c, TextColorCommand{Color: col})
}

// CreateNewPage finishes the current page and starts the next one.
func (g *Generator) CreateNewPage() {
	g.Add(ContentLeft, NewPageCommand{})
}

// Generate runs the two-pass pipeline and writes the finished document to w.
func (g *Generator) Generate(w io.Writer) error {
	data, err := g.GenerateBytes()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return newDocError("Generate", err)
	}
	return nil
}

// GenerateBytes runs the two-pass pipeline and returns the finished document
// as a byte slice.
func (g *Generator) GenerateBytes() ([]byte, error) {
	if g.backend == nil {
		return nil, newDocError("Generate", ErrNoBackend)
	}
	if err := g.run(); err != nil {
		return nil, newDocError("Generate", err)
	}
	data, err := g.backend.Finalize()
	if err != nil {
		return nil, newDocError("Generate", err)
	}
	return data, nil
}

// GenerateToFile runs the two-pass pipeline and writes the finished document
// to the given path.
func (g *Generator) GenerateToFile(path string) error {
	data, err := g.GenerateBytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return newDocError("GenerateToFile", err)
	}
	return nil
}

// TotalPages returns the page count discovered by the most recent Generate
// call, or 0 if no generation has completed.
func (g *Generator) TotalPages() int {
	return g.lastTotal
}

// run executes the pipeline: partition, metrics pass, reset, render pass.
func (g *Generator) run() error {
	s := newState(g.defaultFont)

	header, content := partition(g.commands)
	s.hf = header
	for _, lc := range header {
		if lc.container.IsHeader() {
			s.hasHeader = true
		} else {
			s.hasFooter = true
		}
	}

	n := len(content)

	// Metrics pass. Header/footer commands run once in measuring mode to
	// establish the reserved band heights; with no content commands the
	// bands are skipped entirely and their space stays zero.
	if n > 0 {
		if err := g.measureHeaderFooter(s); err != nil {
			return err
		}
	}
	for i, lc := range content {
		if err := g.apply(s, lc.container, lc.cmd, true); err != nil {
			return fmt.Errorf("metrics pass: command %d on page %d: %w", i, s.page, err)
		}
		g.report(i+1, n)
	}
	s.totalPages = s.page

	// Reset everything command-driven; totalPages and the reserved band
	// heights carry over into the render pass.
	s.reset(g.defaultFont)
	s.resetPageHeights()

	// Render pass.
	if err := g.backend.BeginPage(g.pageSize); err != nil {
		return err
	}
	if n > 0 {
		if err := g.renderHeaderFooter(s, false); err != nil {
			return err
		}
	}
	for i, lc := range content {
		if err := g.apply(s, lc.container, lc.cmd, false); err != nil {
			return fmt.Errorf("render pass: command %d on page %d: %w", i, s.page, err)
		}
		g.report(n+i+1, n)
	}
	if err := g.backend.EndPage(); err != nil {
		return err
	}

	g.lastTotal = s.totalPages
	return nil
}

// measureHeaderFooter runs the header/footer commands in measuring mode and
// fixes the reserved band heights for the rest of the pipeline.
func (g *Generator) measureHeaderFooter(s *state) error {
	if err := g.renderHeaderFooter(s, true); err != nil {
		return fmt.Errorf("header/footer metrics: %w", err)
	}
	if s.hasHeader {
		s.headerSpace = max(s.height(HeaderLeft), g.headerSpace)
	}
	if s.hasFooter {
		s.footerSpace = max(s.height(FooterLeft), g.footerSpace)
	}
	s.resetPageHeights()
	return nil
}

// renderHeaderFooter replays the header/footer commands and the pagination
// text for the current page. In measuring mode the pagination text is
// formatted with the current page as a stand-in total.
//
// The text color is session-global, so a color set by a header/footer command
// is scoped to the replay; the content stream keeps the color it last set
// across page breaks.
func (g *Generator) renderHeaderFooter(s *state, measure bool) error {
	saved := s.color
	defer func() { s.color = saved }()

	for i, lc := range s.hf {
		if err := g.apply(s, lc.container, lc.cmd, measure); err != nil {
			return fmt.Errorf("header/footer command %d on page %d: %w", i, s.page, err)
		}
	}
	if g.pagination != nil && g.pagination.visible(s.page) {
		if err := g.applyPagination(s, measure); err != nil {
			return fmt.Errorf("pagination on page %d: %w", s.page, err)
		}
	}
	return nil
}

// applyPagination lays out the page-number text in the configured container.
func (g *Generator) applyPagination(s *state, measure bool) error {
	cfg := g.pagination
	total := s.totalPages
	if total == 0 {
		total = s.page
	}
	d := TextDrawable{
		Text:  cfg.Style.Format(s.page, total),
		Font:  s.font(cfg.Container),
		Color: s.color,
		Align: cfg.Container.Align(),
	}
	if cfg.Font != nil {
		d.Font = *cfg.Font
	}
	if cfg.TextColor != nil {
		d.Color = *cfg.TextColor
	}
	return g.layoutText(s, cfg.Container, d, measure)
}

// report invokes the progress observer with processed/(2*total) fractions.
func (g *Generator) report(processed, total int) {
	if g.progress == nil || total == 0 {
		return
	}
	g.progress(float64(processed) / float64(2*total))
}

// partition splits the command stream into header/footer commands, replayed
// on every page, and content commands, consumed once in document order.
func partition(cmds []located) (headerFooter, content []located) {
	for _, lc := range cmds {
		if lc.container.IsHeader() || lc.container.IsFooter() {
			headerFooter = append(headerFooter, lc)
		} else {
			content = append(content, lc)
		}
	}
	return headerFooter, content
}
