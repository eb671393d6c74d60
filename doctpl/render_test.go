package doctpl

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderMinimalDocument(t *testing.T) {
	doc := Document{
		Elements: []Element{
			{Type: "paragraph", Text: "Hello, World!"},
		},
	}

	var buf bytes.Buffer
	if err := RenderDocument(&buf, &doc); err != nil {
		t.Fatalf("RenderDocument failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected non-empty PDF output")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("output does not start with %PDF header")
	}
}

func TestRenderFromJSON(t *testing.T) {
	jsonTemplate := `{
		"title": "Test Document",
		"author": "Test Author",
		"pageSize": "Letter",
		"footer": {"center": "Confidential"},
		"pagination": {"style": "roman", "container": "footerRight", "exclude": [1]},
		"elements": [
			{"type": "heading", "text": "Chapter One", "level": 1},
			{"type": "paragraph", "text": "Body text on the first page."},
			{"type": "line"},
			{"type": "list", "items": ["alpha", "beta"], "ordered": true},
			{"type": "newpage"},
			{"type": "paragraph", "text": "Second page.", "align": "C"}
		]
	}`

	var buf bytes.Buffer
	if err := Render(&buf, []byte(jsonTemplate)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("output does not start with %PDF header")
	}
}

func TestRenderTable(t *testing.T) {
	doc := Document{
		Elements: []Element{
			{
				Type: "table",
				Columns: []TableColumn{
					{Header: "Name", Width: 3},
					{Header: "Qty", Width: 1, Align: "R"},
				},
				Rows: [][]string{
					{"Widget", "10"},
					{"Gadget", "5"},
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := RenderDocument(&buf, &doc); err != nil {
		t.Fatalf("RenderDocument failed: %v", err)
	}
}

func TestRenderBarcode(t *testing.T) {
	doc := Document{
		Elements: []Element{
			{Type: "barcode", Barcode: "qr", Content: "https://example.com", Width: 100},
		},
	}
	var buf bytes.Buffer
	if err := RenderDocument(&buf, &doc); err != nil {
		t.Fatalf("RenderDocument failed: %v", err)
	}
}

func TestUnknownElementType(t *testing.T) {
	doc := Document{
		Elements: []Element{{Type: "hologram"}},
	}
	var buf bytes.Buffer
	err := RenderDocument(&buf, &doc)
	if err == nil {
		t.Fatal("expected error for unknown element type")
	}
	if !strings.Contains(err.Error(), "hologram") {
		t.Errorf("error %q does not name the offending type", err)
	}
}

func TestTableElementNeedsColumns(t *testing.T) {
	doc := Document{
		Elements: []Element{{Type: "table", Rows: [][]string{{"a"}}}},
	}
	var buf bytes.Buffer
	if err := RenderDocument(&buf, &doc); err == nil {
		t.Fatal("expected error for table without columns")
	}
}

func TestInvalidJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, []byte(`{"elements": [`)); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestUnknownPaginationContainer(t *testing.T) {
	doc := Document{
		Pagination: &Pagination{Container: "sidebar"},
		Elements:   []Element{{Type: "paragraph", Text: "x"}},
	}
	var buf bytes.Buffer
	if err := RenderDocument(&buf, &doc); err == nil {
		t.Fatal("expected error for unknown container name")
	}
}
