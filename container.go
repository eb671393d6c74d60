package docgen

// Container identifies the page region a command applies to. Regions come in
// three bands (header, content, footer), each with left/center/right position
// slots that control horizontal alignment of the drawn content.
type Container int

const (
	// ContainerNone targets no region; commands addressed to it are ignored.
	ContainerNone Container = iota

	HeaderLeft
	HeaderCenter
	HeaderRight

	ContentLeft
	ContentCenter
	ContentRight

	FooterLeft
	FooterCenter
	FooterRight
)

// IsHeader reports whether the container is one of the header slots.
func (c Container) IsHeader() bool {
	return c >= HeaderLeft && c <= HeaderRight
}

// IsFooter reports whether the container is one of the footer slots.
func (c Container) IsFooter() bool {
	return c >= FooterLeft && c <= FooterRight
}

// IsContent reports whether the container is one of the content slots.
func (c Container) IsContent() bool {
	return c >= ContentLeft && c <= ContentRight
}

// Normalize maps a position-specific container to the canonical key of its
// band. Height, indentation, offset and font state are tracked per band, so
// HeaderCenter and HeaderRight share the state of HeaderLeft, and so on.
func (c Container) Normalize() Container {
	switch {
	case c.IsHeader():
		return HeaderLeft
	case c.IsFooter():
		return FooterLeft
	case c.IsContent():
		return ContentLeft
	}
	return ContainerNone
}

// Align returns the horizontal alignment implied by the container's position
// slot.
func (c Container) Align() Alignment {
	switch c {
	case HeaderCenter, ContentCenter, FooterCenter:
		return AlignCenter
	case HeaderRight, ContentRight, FooterRight:
		return AlignRight
	}
	return AlignLeft
}

func (c Container) String() string {
	switch c {
	case HeaderLeft:
		return "headerLeft"
	case HeaderCenter:
		return "headerCenter"
	case HeaderRight:
		return "headerRight"
	case ContentLeft:
		return "contentLeft"
	case ContentCenter:
		return "contentCenter"
	case ContentRight:
		return "contentRight"
	case FooterLeft:
		return "footerLeft"
	case FooterCenter:
		return "footerCenter"
	case FooterRight:
		return "footerRight"
	}
	return "none"
}

// Alignment is a horizontal alignment for text and other elements.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)
