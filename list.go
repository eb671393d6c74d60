package docgen

import "strconv"

// ListSymbol is the marker drawn in front of a list item.
type ListSymbol struct {
	kind   int
	custom string
}

const (
	symbolNone = iota
	symbolDot
	symbolDash
	symbolNumbered
	symbolCustom
)

var (
	SymbolNone     = ListSymbol{kind: symbolNone}
	SymbolDot      = ListSymbol{kind: symbolDot}
	SymbolDash     = ListSymbol{kind: symbolDash}
	SymbolNumbered = ListSymbol{kind: symbolNumbered}
)

// CustomSymbol returns a list symbol that draws the given literal marker.
func CustomSymbol(marker string) ListSymbol {
	return ListSymbol{kind: symbolCustom, custom: marker}
}

// marker renders the symbol for the item at the given 1-based sibling index.
func (s ListSymbol) marker(index int) string {
	switch s.kind {
	case symbolDot:
		return "•"
	case symbolDash:
		return "-"
	case symbolNumbered:
		return strconv.Itoa(index) + "."
	case symbolCustom:
		return s.custom
	}
	return ""
}

// ListItem is one entry of a list, optionally with nested children.
type ListItem struct {
	Symbol   ListSymbol
	Text     string
	Children []ListItem
}

// List is the payload of a list command.
type List struct {
	LevelIndent float64 // extra indentation per nesting level; 0 means 12pt
	Items       []ListItem
}

// flatItem is a list item resolved to its nesting level and rendered marker.
type flatItem struct {
	level  int
	marker string
	text   string
}

// flatten walks the item tree depth-first, resolving numbered markers per
// sibling group.
func (l *List) flatten() []flatItem {
	var out []flatItem
	var walk func(items []ListItem, level int)
	walk = func(items []ListItem, level int) {
		for i, it := range items {
			out = append(out, flatItem{
				level:  level,
				marker: it.Symbol.marker(i + 1),
				text:   it.Text,
			})
			if len(it.Children) > 0 {
				walk(it.Children, level+1)
			}
		}
	}
	walk(l.Items, 0)
	return out
}

// levelIndent returns the effective per-level indentation.
func (l *List) levelIndent() float64 {
	if l.LevelIndent <= 0 {
		return 12
	}
	return l.LevelIndent
}
