package docgen

import "fmt"

// CellStyle defines the visual appearance of table cells.
type CellStyle struct {
	FillColor *Color
	TextColor *Color
	Font      *Font
}

// TableStyle defines the overall appearance of a table.
type TableStyle struct {
	Outline         LineStyle  // border around the whole table
	HorizontalLines LineStyle  // lines between rows
	VerticalLines   LineStyle  // lines between columns
	Header          *CellStyle // style for header rows
	AlternateRows   *CellStyle // style for every second data row
	CellFont        *Font      // default font for cells; nil uses the band font
}

// DefaultTableStyle returns a plain bordered table with a shaded header row.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Outline:         LineStyle{Width: 1},
		HorizontalLines: LineStyle{Width: 0.5},
		VerticalLines:   LineStyle{Width: 0.5},
		Header: &CellStyle{
			FillColor: &Color{R: 63, G: 81, B: 181},
			TextColor: &White,
		},
	}
}

// Table is the payload of a table command. Rows, Alignments and
// RelativeWidths must agree on the column count; NewTable enforces this.
type Table struct {
	Rows           [][]string
	Alignments     []Alignment
	RelativeWidths []float64
	Padding        float64 // inner cell padding
	Margin         float64 // vertical space before and after the table
	Style          TableStyle
	HeaderRows     int // leading rows styled as headers

	// ShowHeadersOnEveryPage repeats the header rows when a table continues
	// on a following page. Page breaks are explicit in this engine, so a
	// table never continues on its own; the flag is honored by callers that
	// split tables across NewPage commands themselves.
	ShowHeadersOnEveryPage bool
}

// NewTable builds a table payload, validating that every row, the alignment
// list and the relative width list share one column count.
func NewTable(rows [][]string, alignments []Alignment, relativeWidths []float64) (*Table, error) {
	t := &Table{
		Rows:           rows,
		Alignments:     alignments,
		RelativeWidths: relativeWidths,
		Padding:        2,
		Style:          DefaultTableStyle(),
		HeaderRows:     1,
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) validate() error {
	if len(t.Rows) == 0 {
		return fmt.Errorf("%w: table has no rows", ErrInvalidParam)
	}
	cols := len(t.Rows[0])
	if cols == 0 {
		return fmt.Errorf("%w: table has no columns", ErrInvalidParam)
	}
	for i, row := range t.Rows {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrTableColumns, i, len(row), cols)
		}
	}
	if len(t.Alignments) != cols {
		return fmt.Errorf("%w: %d alignments for %d columns", ErrTableColumns, len(t.Alignments), cols)
	}
	if len(t.RelativeWidths) != cols {
		return fmt.Errorf("%w: %d relative widths for %d columns", ErrTableColumns, len(t.RelativeWidths), cols)
	}
	var sum float64
	for _, w := range t.RelativeWidths {
		if w <= 0 {
			return fmt.Errorf("%w: relative column width must be positive", ErrInvalidParam)
		}
		sum += w
	}
	if sum <= 0 {
		return fmt.Errorf("%w: relative column widths sum to zero", ErrInvalidParam)
	}
	return nil
}

// columnWidths distributes the available width across the columns in
// proportion to their relative widths.
func (t *Table) columnWidths(avail float64) []float64 {
	var sum float64
	for _, w := range t.RelativeWidths {
		sum += w
	}
	widths := make([]float64, len(t.RelativeWidths))
	for i, w := range t.RelativeWidths {
		widths[i] = avail * w / sum
	}
	return widths
}
