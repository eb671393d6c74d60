package docgen

import "testing"

func TestContainerPredicates(t *testing.T) {
	cases := []struct {
		c                          Container
		header, footer, content    bool
		normalized                 Container
		align                      Alignment
	}{
		{HeaderLeft, true, false, false, HeaderLeft, AlignLeft},
		{HeaderCenter, true, false, false, HeaderLeft, AlignCenter},
		{HeaderRight, true, false, false, HeaderLeft, AlignRight},
		{ContentLeft, false, false, true, ContentLeft, AlignLeft},
		{ContentCenter, false, false, true, ContentLeft, AlignCenter},
		{ContentRight, false, false, true, ContentLeft, AlignRight},
		{FooterLeft, false, true, false, FooterLeft, AlignLeft},
		{FooterCenter, false, true, false, FooterLeft, AlignCenter},
		{FooterRight, false, true, false, FooterLeft, AlignRight},
		{ContainerNone, false, false, false, ContainerNone, AlignLeft},
	}
	for _, c := range cases {
		if got := c.c.IsHeader(); got != c.header {
			t.Errorf("%v.IsHeader() = %v, want %v", c.c, got, c.header)
		}
		if got := c.c.IsFooter(); got != c.footer {
			t.Errorf("%v.IsFooter() = %v, want %v", c.c, got, c.footer)
		}
		if got := c.c.IsContent(); got != c.content {
			t.Errorf("%v.IsContent() = %v, want %v", c.c, got, c.content)
		}
		if got := c.c.Normalize(); got != c.normalized {
			t.Errorf("%v.Normalize() = %v, want %v", c.c, got, c.normalized)
		}
		if got := c.c.Align(); got != c.align {
			t.Errorf("%v.Align() = %v, want %v", c.c, got, c.align)
		}
	}
}

func TestNewTableValidation(t *testing.T) {
	rows := [][]string{{"a", "b"}, {"c", "d"}}
	aligns := []Alignment{AlignLeft, AlignRight}
	widths := []float64{1, 2}

	if _, err := NewTable(rows, aligns, widths); err != nil {
		t.Fatalf("valid table rejected: %v", err)
	}

	if _, err := NewTable([][]string{{"a", "b"}, {"c"}}, aligns, widths); err == nil {
		t.Error("ragged rows accepted")
	}
	if _, err := NewTable(rows, aligns[:1], widths); err == nil {
		t.Error("short alignment list accepted")
	}
	if _, err := NewTable(rows, aligns, []float64{1, 2, 3}); err == nil {
		t.Error("long width list accepted")
	}
	if _, err := NewTable(rows, aligns, []float64{1, -1}); err == nil {
		t.Error("negative relative width accepted")
	}
	if _, err := NewTable(nil, nil, nil); err == nil {
		t.Error("empty table accepted")
	}
}
