package docgen

// state is the mutable layout state of one generation call: running heights,
// indentation, fonts, colors and the page counter. It is owned exclusively
// by the pipeline; nothing here is shared or global.
type state struct {
	page       int
	totalPages int // 0 until the metrics pass completes

	heights map[Container]float64 // per-band running height, reset per page
	indent  map[Container]float64 // per-band left indentation
	offsets map[Container]float64 // per-band vertical offset
	fonts   map[Container]Font    // per-band current font
	color   Color                 // current text color

	// headerSpace and footerSpace are the heights reserved on every page for
	// the header and footer bands, fixed after the header/footer metrics
	// step. Both are zero when the respective band has no commands.
	headerSpace float64
	footerSpace float64

	// hf holds the extracted header/footer commands, replayed on every page
	// of the render pass.
	hf        []located
	hasHeader bool
	hasFooter bool
}

func newState(defaultFont Font) *state {
	s := &state{}
	s.reset(defaultFont)
	return s
}

// reset returns the state to its initial values for a fresh pass. The
// discovered total page count and the reserved header/footer space survive;
// everything command-driven is cleared so both passes see identical initial
// conditions.
func (s *state) reset(defaultFont Font) {
	s.page = 1
	s.heights = map[Container]float64{}
	s.indent = map[Container]float64{}
	s.offsets = map[Container]float64{}
	s.fonts = map[Container]Font{
		HeaderLeft:  defaultFont,
		ContentLeft: defaultFont,
		FooterLeft:  defaultFont,
	}
	s.color = Black
}

// resetPageHeights clears the per-page height counters at a page break,
// preserving fonts, colors, indentation and offsets.
func (s *state) resetPageHeights() {
	s.heights = map[Container]float64{}
}

func (s *state) height(c Container) float64 {
	return s.heights[c.Normalize()]
}

func (s *state) addHeight(c Container, v float64) {
	s.heights[c.Normalize()] += v
}

func (s *state) font(c Container) Font {
	return s.fonts[c.Normalize()]
}

func (s *state) indentation(c Container) float64 {
	return s.indent[c.Normalize()]
}

func (s *state) offset(c Container) float64 {
	return s.offsets[c.Normalize()]
}
