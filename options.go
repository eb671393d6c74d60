package docgen

// Option is a functional option for configuring a Generator via New.
type Option func(*Generator)

// WithBackend sets the rendering backend the generator draws through. A
// generator without a backend fails generation with ErrNoBackend.
func WithBackend(b Backend) Option {
	return func(g *Generator) {
		g.backend = b
	}
}

// WithPageSize sets the page size. Use one of the predefined sizes
// (PageSizeA4, PageSizeLetter, ...) or any custom Size in points.
func WithPageSize(size Size) Option {
	return func(g *Generator) {
		g.pageSize = size
	}
}

// WithMargins sets the page margins in points.
func WithMargins(left, top, right, bottom float64) Option {
	return func(g *Generator) {
		g.margin = Margin{Top: top, Left: left, Right: right, Bottom: bottom}
	}
}

// WithDefaultFont sets the font used where no FontCommand has been applied.
func WithDefaultFont(f Font) Option {
	return func(g *Generator) {
		g.defaultFont = f
	}
}

// WithHeaderSpace sets a minimum height reserved for the header band. The
// reserved height is the larger of this value and the measured header
// content, and zero when the document has no header commands at all.
func WithHeaderSpace(v float64) Option {
	return func(g *Generator) {
		g.headerSpace = v
	}
}

// WithFooterSpace sets a minimum height reserved for the footer band, under
// the same rules as WithHeaderSpace.
func WithFooterSpace(v float64) Option {
	return func(g *Generator) {
		g.footerSpace = v
	}
}

// WithPagination enables page-number text with the given configuration.
func WithPagination(cfg PaginationConfig) Option {
	return func(g *Generator) {
		c := cfg
		g.pagination = &c
	}
}

// WithProgressObserver registers a callback invoked once per content command
// per pass with a non-decreasing fraction in [0, 1]. The callback observes
// the pipeline; it cannot cancel it.
func WithProgressObserver(fn ProgressFunc) Option {
	return func(g *Generator) {
		g.progress = fn
	}
}
