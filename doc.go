// Package docgen is a command-stream document layout and pagination engine.
//
// A document is described as an ordered stream of commands (text, images,
// tables, lists, spacing, style changes, explicit page breaks), each targeted
// at a page region (header, content or footer, with left/center/right
// position slots). Because the total page count is unknown until every page
// break has been seen, generation runs in two passes: a metrics pass that
// simulates every command without drawing to discover page breaks and the
// total page count, and a render pass that replays the same commands against
// a rendering backend, now able to emit page-number text such as "2 - 5" on
// every page.
//
// The engine does not rasterize anything itself. All measurement and drawing
// goes through the Backend interface; the fpdf subpackage provides a default
// implementation on top of gofpdf.
//
// Example:
//
//	gen := docgen.New(
//	    docgen.WithBackend(fpdf.New()),
//	    docgen.WithPagination(docgen.PaginationConfig{
//	        Container: docgen.FooterCenter,
//	        Style:     docgen.DefaultPagination(),
//	    }),
//	)
//	gen.AddText(docgen.HeaderLeft, "ACME Report", 1.0)
//	gen.AddText(docgen.ContentLeft, "First page body text.", 1.2)
//	gen.CreateNewPage()
//	gen.AddText(docgen.ContentLeft, "Second page body text.", 1.2)
//	err := gen.GenerateToFile("report.pdf")
package docgen
