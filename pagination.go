package docgen

import (
	"fmt"
	"strconv"
	"strings"
)

// paginationPlaceholder is substituted whenever a pagination formatter cannot
// produce a string. Formatting never aborts generation.
const paginationPlaceholder = "?"

// NumberFormatter formats a single page number. It is the external formatter
// hook of the custom-format pagination style.
type NumberFormatter interface {
	Format(n int) (string, error)
}

// NumberFormatterFunc adapts a function to the NumberFormatter interface.
type NumberFormatterFunc func(n int) (string, error)

func (f NumberFormatterFunc) Format(n int) (string, error) { return f(n) }

const (
	paginationDefault = iota
	paginationRoman
	paginationCustomFormat
	paginationClosure
)

// PaginationStyle is the strategy used to render page-number text. Use one of
// the constructors; the zero value behaves like DefaultPagination.
type PaginationStyle struct {
	kind      int
	template  string
	formatter NumberFormatter
	closure   func(page, total int) string
}

// DefaultPagination formats page numbers as "page - total" in arabic digits,
// e.g. "1 - 3".
func DefaultPagination() PaginationStyle {
	return PaginationStyle{kind: paginationDefault}
}

// RomanPagination formats page and total as roman numerals substituted into
// template, a fmt pattern with two string verbs, e.g. "%s / %s". An empty
// template means "%s - %s".
func RomanPagination(template string) PaginationStyle {
	return PaginationStyle{kind: paginationRoman, template: template}
}

// CustomFormatPagination substitutes the formatter's output for page and
// total into template, a fmt pattern with two string verbs. If the formatter
// fails or is nil, a placeholder is substituted instead.
func CustomFormatPagination(template string, formatter NumberFormatter) PaginationStyle {
	return PaginationStyle{kind: paginationCustomFormat, template: template, formatter: formatter}
}

// ClosurePagination delegates formatting entirely to fn.
func ClosurePagination(fn func(page, total int) string) PaginationStyle {
	return PaginationStyle{kind: paginationClosure, closure: fn}
}

// Format renders the page-number text for the given page and total. It never
// fails: a panicking closure or failing formatter degrades to a placeholder
// string rather than an error.
func (s PaginationStyle) Format(page, total int) (out string) {
	defer func() {
		if recover() != nil {
			out = paginationPlaceholder
		}
	}()

	switch s.kind {
	case paginationRoman:
		return fmt.Sprintf(s.templateOrDefault(), RomanNumeral(page), RomanNumeral(total))
	case paginationCustomFormat:
		return fmt.Sprintf(s.templateOrDefault(), s.formatNumber(page), s.formatNumber(total))
	case paginationClosure:
		if s.closure == nil {
			return paginationPlaceholder
		}
		return s.closure(page, total)
	}
	return fmt.Sprintf("%d - %d", page, total)
}

func (s PaginationStyle) templateOrDefault() string {
	if s.template == "" {
		return "%s - %s"
	}
	return s.template
}

func (s PaginationStyle) formatNumber(n int) string {
	if s.formatter == nil {
		return paginationPlaceholder
	}
	str, err := s.formatter.Format(n)
	if err != nil {
		return paginationPlaceholder
	}
	return str
}

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// RomanNumeral converts n to classical roman notation using the greedy
// subtractive algorithm. The notation covers 1 through 3999; values outside
// that range fall back to arabic digits.
func RomanNumeral(n int) string {
	if n < 1 || n > 3999 {
		return strconv.Itoa(n)
	}
	var b strings.Builder
	for _, e := range romanTable {
		for count := n / e.value; count > 0; count-- {
			b.WriteString(e.symbol)
		}
		n %= e.value
	}
	return b.String()
}

// PaginationConfig describes where and how page-number text is emitted.
type PaginationConfig struct {
	// Container is the slot the page-number text is drawn in, typically a
	// footer slot.
	Container Container
	Style     PaginationStyle

	// Start and End bound the pages that carry page-number text, inclusive.
	// Start 0 means page 1; End 0 means the last page.
	Start, End int

	// Exclude lists page numbers that never carry page-number text.
	Exclude []int

	// Font and TextColor override the band's font and the session text color
	// for the page-number text only.
	Font      *Font
	TextColor *Color
}

// visible reports whether page-number text is emitted on the given page.
func (c PaginationConfig) visible(page int) bool {
	start := c.Start
	if start < 1 {
		start = 1
	}
	if page < start {
		return false
	}
	if c.End > 0 && page > c.End {
		return false
	}
	for _, p := range c.Exclude {
		if p == page {
			return false
		}
	}
	return true
}
