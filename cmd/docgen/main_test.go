package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRunWritesPDF(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "doc.json")
	out := filepath.Join(dir, "doc.pdf")
	template := []byte(`{"elements": [{"type": "paragraph", "text": "hello"}]}`)
	if err := os.WriteFile(in, template, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := run(in, out); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("output does not start with %PDF header")
	}
}

func TestRunRejectsBadTemplate(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(in, []byte(`{"elements": [`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := run(in, filepath.Join(dir, "doc.pdf")); err == nil {
		t.Fatal("expected error for malformed template")
	}
}
