package fpdf

// Option is a functional option for configuring a Backend via New.
type Option func(*backendConfig)

type backendConfig struct {
	fontDir string
	title   string
	author  string
	tplPath string
	tplPage int
}

// WithFontDir sets the directory where font definition files are located.
// The built-in core fonts (Helvetica, Times, Courier) need no font dir.
func WithFontDir(dir string) Option {
	return func(c *backendConfig) {
		c.fontDir = dir
	}
}

// WithMetadata sets the document's title and author metadata.
func WithMetadata(title, author string) Option {
	return func(c *backendConfig) {
		c.title = title
		c.author = author
	}
}

// WithPageTemplate stamps the given page of an existing PDF file as the
// background of every generated page, e.g. for letterheads.
func WithPageTemplate(path string, page int) Option {
	return func(c *backendConfig) {
		c.tplPath = path
		c.tplPage = page
	}
}
