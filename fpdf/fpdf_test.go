package fpdf_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/lvillar/docgen"
	"github.com/lvillar/docgen/fpdf"
)

func generate(t *testing.T, build func(g *docgen.Generator)) []byte {
	t.Helper()
	gen := docgen.New(docgen.WithBackend(fpdf.New()))
	build(gen)
	data, err := gen.GenerateBytes()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty PDF output")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("output does not start with %PDF header")
	}
	return data
}

func TestGenerateText(t *testing.T) {
	data := generate(t, func(g *docgen.Generator) {
		g.AddText(docgen.HeaderRight, "header text", 1.0)
		g.AddText(docgen.ContentLeft, "Hello, World! This line should wrap once it exceeds the available width of an A4 page with default margins.", 1.2)
		g.AddSpace(docgen.ContentLeft, 12)
		g.AddLineSeparator(docgen.ContentLeft, docgen.LineStyle{Type: docgen.LineDashed, Width: 1})
		g.AddText(docgen.ContentCenter, "centered", 1.0)
	})
	t.Logf("text PDF: %d bytes", len(data))
}

func TestGenerateAttributedText(t *testing.T) {
	bold := docgen.Font{Family: "Helvetica", Style: "B", Size: 11}
	red := docgen.Color{R: 200}
	generate(t, func(g *docgen.Generator) {
		g.AddAttributedText(docgen.ContentLeft,
			docgen.TextSpan{Text: "normal, "},
			docgen.TextSpan{Text: "bold", Font: &bold},
			docgen.TextSpan{Text: " and red.", Color: &red},
		)
	})
}

func TestGenerateMultiPageWithPagination(t *testing.T) {
	gen := docgen.New(
		docgen.WithBackend(fpdf.New()),
		docgen.WithPagination(docgen.PaginationConfig{
			Container: docgen.FooterCenter,
			Style:     docgen.RomanPagination(""),
		}),
	)
	gen.AddText(docgen.ContentLeft, "one", 1.0)
	gen.CreateNewPage()
	gen.AddText(docgen.ContentLeft, "two", 1.0)
	gen.CreateNewPage()
	gen.AddText(docgen.ContentLeft, "three", 1.0)

	data, err := gen.GenerateBytes()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if gen.TotalPages() != 3 {
		t.Errorf("total pages = %d, want 3", gen.TotalPages())
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("output does not start with %PDF header")
	}
}

func TestGenerateTableAndList(t *testing.T) {
	table, err := docgen.NewTable(
		[][]string{
			{"Name", "Qty"},
			{"Widget", "10"},
			{"Gadget", "5"},
		},
		[]docgen.Alignment{docgen.AlignLeft, docgen.AlignRight},
		[]float64{3, 1},
	)
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	generate(t, func(g *docgen.Generator) {
		if err := g.AddTable(docgen.ContentLeft, table); err != nil {
			t.Fatalf("add table: %v", err)
		}
		g.AddList(docgen.ContentLeft, &docgen.List{Items: []docgen.ListItem{
			{Symbol: docgen.SymbolDot, Text: "first"},
			{Symbol: docgen.SymbolDot, Text: "second"},
		}})
	})
}

func testPNG(t *testing.T) docgen.Image {
	t.Helper()
	m := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for x := 0; x < 40; x++ {
		for y := 0; y < 20; y++ {
			m.Set(x, y, color.RGBA{R: uint8(x * 6), G: uint8(y * 12), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, m); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return docgen.Image{Name: "test.png", Data: buf.Bytes()}
}

func TestGenerateImage(t *testing.T) {
	img := testPNG(t)
	generate(t, func(g *docgen.Generator) {
		g.Add(docgen.ContentCenter, docgen.ImageCommand{
			Image:   img,
			Size:    docgen.Size{W: 80},
			Caption: "a gradient",
		})
	})
}

func TestGenerateImageRow(t *testing.T) {
	img := testPNG(t)
	generate(t, func(g *docgen.Generator) {
		g.AddImagesInRow(docgen.ContentLeft,
			[]docgen.Image{img, img, img},
			[]string{"left", "middle", "right"},
			6,
		)
	})
}

func TestImageWithoutData(t *testing.T) {
	gen := docgen.New(docgen.WithBackend(fpdf.New()))
	gen.AddImage(docgen.ContentLeft, docgen.Image{Name: "empty"})
	if _, err := gen.GenerateBytes(); err == nil {
		t.Fatal("expected error for image without data")
	}
}

func TestGenerateEmptyDocument(t *testing.T) {
	generate(t, func(g *docgen.Generator) {})
}
