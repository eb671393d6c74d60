// Command docgen renders a JSON document template to a PDF file.
//
// # Installation
//
//	go install github.com/lvillar/docgen/cmd/docgen@latest
//
// # Usage
//
//	docgen -in report.json -out report.pdf
//
// The template format is described in the doctpl package documentation. When
// -in is "-" the template is read from standard input.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lvillar/docgen/doctpl"
)

func main() {
	in := flag.String("in", "-", "template file (JSON), or - for stdin")
	out := flag.String("out", "out.pdf", "output PDF file")
	flag.Parse()

	if err := run(*in, *out); err != nil {
		fmt.Fprintln(os.Stderr, "docgen:", err)
		os.Exit(1)
	}
}

func run(in, out string) error {
	var template []byte
	var err error
	if in == "-" {
		template, err = io.ReadAll(os.Stdin)
	} else {
		template, err = os.ReadFile(in)
	}
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	if err := doctpl.Render(f, template); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return nil
}
