package docgen_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/lvillar/docgen"
	"github.com/lvillar/docgen/fpdf"
)

// ExampleGenerator builds a two-page document with a repeating header and
// default page numbering.
func ExampleGenerator() {
	gen := docgen.New(
		docgen.WithBackend(fpdf.New()),
		docgen.WithPagination(docgen.PaginationConfig{
			Container: docgen.FooterCenter,
			Style:     docgen.DefaultPagination(),
		}),
	)

	gen.AddText(docgen.HeaderLeft, "ACME Quarterly Report", 1.0)
	gen.AddLineSeparator(docgen.HeaderLeft, docgen.LineStyle{Width: 1})

	gen.SetFont(docgen.ContentLeft, docgen.Font{Family: "Helvetica", Style: "B", Size: 18})
	gen.AddText(docgen.ContentLeft, "Introduction", 1.0)
	gen.SetFont(docgen.ContentLeft, docgen.Font{Family: "Helvetica", Size: 11})
	gen.AddText(docgen.ContentLeft, "Body copy for the first page.", 1.2)

	gen.CreateNewPage()
	gen.AddText(docgen.ContentLeft, "Body copy for the second page.", 1.2)

	var buf bytes.Buffer
	if err := gen.Generate(&buf); err != nil {
		log.Fatal(err)
	}
	fmt.Println(gen.TotalPages())
	// Output: 2
}

// ExampleRomanPagination numbers front-matter pages with roman numerals.
func ExampleRomanPagination() {
	style := docgen.RomanPagination("%s / %s")
	fmt.Println(style.Format(2, 14))
	// Output: II / XIV
}

// ExampleGenerator_table renders a small bordered table.
func ExampleGenerator_table() {
	table, err := docgen.NewTable(
		[][]string{
			{"ID", "Name", "Price"},
			{"1", "Widget", "$5.00"},
			{"2", "Gadget", "$12.50"},
		},
		[]docgen.Alignment{docgen.AlignLeft, docgen.AlignLeft, docgen.AlignRight},
		[]float64{1, 3, 1},
	)
	if err != nil {
		log.Fatal(err)
	}

	gen := docgen.New(docgen.WithBackend(fpdf.New()))
	if err := gen.AddTable(docgen.ContentLeft, table); err != nil {
		log.Fatal(err)
	}

	var buf bytes.Buffer
	if err := gen.Generate(&buf); err != nil {
		log.Fatal(err)
	}
	fmt.Println(buf.Len() > 0)
	// Output: true
}
