package docgen

import "fmt"

// apply dispatches one command against the session state. Every command
// mutates measurement state; drawing happens only when measure is false.
// Element sizes are queried from the backend in both modes so that the
// metrics pass and the render pass make identical layout decisions.
func (g *Generator) apply(s *state, c Container, cmd Command, measure bool) error {
	switch v := cmd.(type) {
	case TextCommand:
		d := TextDrawable{
			Text:        v.Text,
			Font:        s.font(c),
			Color:       s.color,
			LineSpacing: v.LineSpacing,
			Align:       c.Align(),
		}
		return g.layoutText(s, c, d, measure)
	case AttributedTextCommand:
		return g.layoutAttributedText(s, c, v, measure)
	case ImageCommand:
		return g.layoutImage(s, c, v, measure)
	case ImageRowCommand:
		return g.layoutImageRow(s, c, v, measure)
	case SpaceCommand:
		s.addHeight(c, v.Amount)
		return nil
	case LineSeparatorCommand:
		return g.layoutSeparator(s, c, v, measure)
	case TableCommand:
		return g.layoutTable(s, c, v, measure)
	case ListCommand:
		return g.layoutList(s, c, v, measure)
	case IndentationCommand:
		s.indent[c.Normalize()] = v.Value
		return nil
	case OffsetCommand:
		s.offsets[c.Normalize()] = v.Value
		return nil
	case FontCommand:
		s.fonts[c.Normalize()] = v.Font
		return nil
	case TextColorCommand:
		s.color = v.Color
		return nil
	case NewPageCommand:
		return g.breakPage(s, measure)
	}
	return fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
}

// breakPage finalizes the current page and starts the next one. Per-page
// height counters reset; fonts, colors, indentation, offsets and the page
// counter carry over, the counter incremented by one. In render mode the new
// page immediately receives its header/footer content and pagination text.
func (g *Generator) breakPage(s *state, measure bool) error {
	if !measure {
		if err := g.backend.EndPage(); err != nil {
			return err
		}
		if err := g.backend.BeginPage(g.pageSize); err != nil {
			return err
		}
	}
	s.resetPageHeights()
	s.page++
	if !measure {
		return g.renderHeaderFooter(s, false)
	}
	return nil
}

// availWidth returns the width the container offers for content, after page
// margins and the band's indentation.
func (g *Generator) availWidth(s *state, c Container) float64 {
	return g.pageSize.W - g.margin.Left - g.margin.Right - s.indentation(c)
}

// originX returns the left edge of the container's band.
func (g *Generator) originX(s *state, c Container) float64 {
	return g.margin.Left + s.indentation(c)
}

// bandY returns the y position the next element of the container starts at.
// Headers grow downward from the top margin, content below the reserved
// header space, footers downward within the reserved footer space above the
// bottom margin.
func (g *Generator) bandY(s *state, c Container) float64 {
	switch c.Normalize() {
	case HeaderLeft:
		return g.margin.Top + s.offset(c) + s.height(c)
	case FooterLeft:
		return g.pageSize.H - g.margin.Bottom - s.footerSpace + s.offset(c) + s.height(c)
	default:
		return g.margin.Top + s.headerSpace + s.offset(c) + s.height(c)
	}
}

// alignX positions an element of width w inside the available span.
func alignX(x, avail, w float64, a Alignment) float64 {
	switch a {
	case AlignCenter:
		return x + (avail-w)/2
	case AlignRight:
		return x + avail - w
	}
	return x
}

func (g *Generator) layoutText(s *state, c Container, d TextDrawable, measure bool) error {
	avail := g.availWidth(s, c)
	size, err := g.backend.Measure(d, Constraints{Width: avail})
	if err != nil {
		return err
	}
	if !measure {
		at := Rect{X: g.originX(s, c), Y: g.bandY(s, c), W: avail, H: size.H}
		if err := g.backend.Draw(d, at); err != nil {
			return err
		}
	}
	s.addHeight(c, size.H)
	return nil
}

// layoutAttributedText flows spans inline, wrapping to the available width.
// A span that does not fit on the remainder of the current line starts a new
// line; a span longer than a full line is wrapped as its own block. Finished
// lines are shifted as a whole to honor the container's position slot.
func (g *Generator) layoutAttributedText(s *state, c Container, v AttributedTextCommand, measure bool) error {
	avail := g.availWidth(s, c)
	x := g.originX(s, c)
	top := g.bandY(s, c)
	align := c.Align()

	type placed struct {
		d    TextDrawable
		dx   float64
		size Size
	}
	var line []placed
	var cursor, used, lineH float64

	flush := func() error {
		if !measure {
			shift := alignX(0, avail, cursor, align)
			for _, p := range line {
				at := Rect{X: x + shift + p.dx, Y: top + used, W: p.size.W, H: p.size.H}
				if err := g.backend.Draw(p.d, at); err != nil {
					return err
				}
			}
		}
		used += lineH
		line, cursor, lineH = nil, 0, 0
		return nil
	}

	for _, span := range v.Spans {
		d := TextDrawable{
			Text:        span.Text,
			Font:        s.font(c),
			Color:       s.color,
			LineSpacing: v.LineSpacing,
		}
		if span.Font != nil {
			d.Font = *span.Font
		}
		if span.Color != nil {
			d.Color = *span.Color
		}

		sz, err := g.backend.Measure(d, Constraints{})
		if err != nil {
			return err
		}
		if cursor > 0 && cursor+sz.W > avail {
			if err := flush(); err != nil {
				return err
			}
		}
		if sz.W <= avail-cursor {
			line = append(line, placed{d: d, dx: cursor, size: sz})
			cursor += sz.W
			if sz.H > lineH {
				lineH = sz.H
			}
			continue
		}

		// Longer than a full line: wrap the span as a block.
		d.Align = align
		block, err := g.backend.Measure(d, Constraints{Width: avail})
		if err != nil {
			return err
		}
		if !measure {
			at := Rect{X: x, Y: top + used, W: avail, H: block.H}
			if err := g.backend.Draw(d, at); err != nil {
				return err
			}
		}
		used += block.H
	}
	if cursor > 0 {
		if err := flush(); err != nil {
			return err
		}
	}
	s.addHeight(c, used)
	return nil
}

func (g *Generator) layoutImage(s *state, c Container, v ImageCommand, measure bool) error {
	if len(v.Image.Data) == 0 {
		return ErrNoImageData
	}
	avail := g.availWidth(s, c)
	intrinsic, err := g.backend.Measure(ImageDrawable{Image: v.Image}, Constraints{})
	if err != nil {
		return err
	}
	target := fitImage(v.Fit, v.FitFunc, intrinsic, v.Size, avail)

	x := alignX(g.originX(s, c), avail, target.W, c.Align())
	y := g.bandY(s, c)
	if !measure {
		d := ImageDrawable{Image: v.Image, Size: target}
		if err := g.backend.Draw(d, Rect{X: x, Y: y, W: target.W, H: target.H}); err != nil {
			return err
		}
	}
	s.addHeight(c, target.H)

	if v.Caption == "" {
		return nil
	}
	caption := TextDrawable{
		Text:  v.Caption,
		Font:  s.font(c),
		Color: s.color,
		Align: AlignCenter,
	}
	capSize, err := g.backend.Measure(caption, Constraints{Width: target.W})
	if err != nil {
		return err
	}
	if !measure {
		at := Rect{X: x, Y: g.bandY(s, c), W: target.W, H: capSize.H}
		if err := g.backend.Draw(caption, at); err != nil {
			return err
		}
	}
	s.addHeight(c, capSize.H)
	return nil
}

func (g *Generator) layoutImageRow(s *state, c Container, v ImageRowCommand, measure bool) error {
	k := len(v.Images)
	if k == 0 {
		return nil
	}
	avail := g.availWidth(s, c)
	slot := (avail - v.Spacing*float64(k-1)) / float64(k)
	if slot <= 0 {
		return fmt.Errorf("%w: image row does not fit the available width", ErrInvalidParam)
	}

	targets := make([]Size, k)
	var rowH float64
	for i, img := range v.Images {
		if len(img.Data) == 0 {
			return fmt.Errorf("image %d: %w", i, ErrNoImageData)
		}
		intrinsic, err := g.backend.Measure(ImageDrawable{Image: img}, Constraints{})
		if err != nil {
			return fmt.Errorf("image %d: %w", i, err)
		}
		targets[i] = fitImage(FitWidth, nil, intrinsic, Size{W: slot}, slot)
		if targets[i].H > rowH {
			rowH = targets[i].H
		}
	}

	y := g.bandY(s, c)
	x := g.originX(s, c)
	var capH float64
	for i, img := range v.Images {
		// bottom-align images within the row
		iy := y + rowH - targets[i].H
		if !measure {
			d := ImageDrawable{Image: img, Size: targets[i]}
			at := Rect{X: x + (slot-targets[i].W)/2, Y: iy, W: targets[i].W, H: targets[i].H}
			if err := g.backend.Draw(d, at); err != nil {
				return fmt.Errorf("image %d: %w", i, err)
			}
		}
		if i < len(v.Captions) && v.Captions[i] != "" {
			caption := TextDrawable{
				Text:  v.Captions[i],
				Font:  s.font(c),
				Color: s.color,
				Align: AlignCenter,
			}
			sz, err := g.backend.Measure(caption, Constraints{Width: slot})
			if err != nil {
				return err
			}
			if !measure {
				at := Rect{X: x, Y: y + rowH, W: slot, H: sz.H}
				if err := g.backend.Draw(caption, at); err != nil {
					return err
				}
			}
			if sz.H > capH {
				capH = sz.H
			}
		}
		x += slot + v.Spacing
	}
	s.addHeight(c, rowH+capH)
	return nil
}

func (g *Generator) layoutSeparator(s *state, c Container, v LineSeparatorCommand, measure bool) error {
	if v.Style.Type == LineNone {
		return nil
	}
	avail := g.availWidth(s, c)
	h := v.Style.width()
	if !measure {
		at := Rect{X: g.originX(s, c), Y: g.bandY(s, c) + h/2, W: avail, H: h}
		if err := g.backend.Draw(LineDrawable{Style: v.Style}, at); err != nil {
			return err
		}
	}
	s.addHeight(c, h)
	return nil
}

func (g *Generator) layoutList(s *state, c Container, v ListCommand, measure bool) error {
	if v.List == nil {
		return nil
	}
	step := v.List.levelIndent()
	for _, item := range v.List.flatten() {
		indent := float64(item.level) * step
		text := item.text
		if item.marker != "" {
			text = item.marker + " " + item.text
		}
		d := TextDrawable{Text: text, Font: s.font(c), Color: s.color}
		avail := g.availWidth(s, c) - indent
		size, err := g.backend.Measure(d, Constraints{Width: avail})
		if err != nil {
			return err
		}
		if !measure {
			at := Rect{X: g.originX(s, c) + indent, Y: g.bandY(s, c), W: avail, H: size.H}
			if err := g.backend.Draw(d, at); err != nil {
				return err
			}
		}
		s.addHeight(c, size.H)
	}
	return nil
}

func (g *Generator) layoutTable(s *state, c Container, v TableCommand, measure bool) error {
	t := v.Table
	if t == nil {
		return fmt.Errorf("%w: nil table", ErrInvalidParam)
	}
	// Hand-built tables may bypass NewTable; re-check the shape so a
	// malformed payload aborts generation instead of corrupting layout.
	if err := t.validate(); err != nil {
		return err
	}

	avail := g.availWidth(s, c)
	widths := t.columnWidths(avail)
	x0 := g.originX(s, c)

	s.addHeight(c, t.Margin)
	top := g.bandY(s, c)

	baseFont := s.font(c)
	if t.Style.CellFont != nil {
		baseFont = *t.Style.CellFont
	}

	var totalH float64
	for ri, row := range t.Rows {
		style := t.rowStyle(ri)
		font := baseFont
		if style != nil && style.Font != nil {
			font = *style.Font
		}

		// Row height from the tallest wrapped cell.
		var rowH float64
		for ci, cell := range row {
			d := TextDrawable{Text: cell, Font: font}
			sz, err := g.backend.Measure(d, Constraints{Width: widths[ci] - 2*t.Padding})
			if err != nil {
				return fmt.Errorf("row %d column %d: %w", ri, ci, err)
			}
			if sz.H > rowH {
				rowH = sz.H
			}
		}
		rowH += 2 * t.Padding

		if !measure {
			y := top + totalH
			if style != nil && style.FillColor != nil {
				fill := RectDrawable{Fill: style.FillColor}
				if err := g.backend.Draw(fill, Rect{X: x0, Y: y, W: avail, H: rowH}); err != nil {
					return err
				}
			}
			cx := x0
			for ci, cell := range row {
				d := TextDrawable{Text: cell, Font: font, Color: s.color, Align: t.Alignments[ci]}
				if style != nil && style.TextColor != nil {
					d.Color = *style.TextColor
				}
				at := Rect{X: cx + t.Padding, Y: y + t.Padding, W: widths[ci] - 2*t.Padding, H: rowH - 2*t.Padding}
				if err := g.backend.Draw(d, at); err != nil {
					return fmt.Errorf("row %d column %d: %w", ri, ci, err)
				}
				cx += widths[ci]
			}
			if ri < len(t.Rows)-1 && t.Style.HorizontalLines.Type != LineNone {
				line := LineDrawable{Style: t.Style.HorizontalLines}
				if err := g.backend.Draw(line, Rect{X: x0, Y: y + rowH, W: avail}); err != nil {
					return err
				}
			}
		}
		totalH += rowH
	}

	if !measure {
		if t.Style.VerticalLines.Type != LineNone {
			cx := x0
			for _, w := range widths[:len(widths)-1] {
				cx += w
				line := LineDrawable{Style: t.Style.VerticalLines, Vertical: true}
				if err := g.backend.Draw(line, Rect{X: cx, Y: top, H: totalH}); err != nil {
					return err
				}
			}
		}
		if t.Style.Outline.Type != LineNone {
			outline := RectDrawable{Stroke: &t.Style.Outline}
			if err := g.backend.Draw(outline, Rect{X: x0, Y: top, W: avail, H: totalH}); err != nil {
				return err
			}
		}
	}

	s.addHeight(c, totalH+t.Margin)
	return nil
}

// rowStyle resolves the cell style for a row index: header style for the
// leading header rows, the alternate style for every second data row.
func (t *Table) rowStyle(ri int) *CellStyle {
	if ri < t.HeaderRows {
		return t.Style.Header
	}
	if t.Style.AlternateRows != nil && (ri-t.HeaderRows)%2 == 1 {
		return t.Style.AlternateRows
	}
	return nil
}
