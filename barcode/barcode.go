// Package barcode encodes barcodes as docgen image payloads, ready to be
// placed in a document with AddImage or an image row.
//
// Example:
//
//	img, err := barcode.QR("https://example.com", 120)
//	if err != nil {
//	    return err
//	}
//	gen.AddImage(docgen.ContentCenter, img)
package barcode

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/aztec"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/ean"
	"github.com/boombuler/barcode/qr"
	"github.com/ruudk/golang-pdf417"

	"github.com/lvillar/docgen"
)

// QR encodes content as a QR code of the given pixel size (square), using
// medium error correction.
func QR(content string, size int) (docgen.Image, error) {
	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return docgen.Image{}, fmt.Errorf("barcode: encoding qr: %w", err)
	}
	scaled, err := barcode.Scale(code, size, size)
	if err != nil {
		return docgen.Image{}, fmt.Errorf("barcode: scaling qr: %w", err)
	}
	return toImage(scaled, "qr:"+content)
}

// Code128 encodes content as a Code 128 barcode of the given pixel size.
func Code128(content string, width, height int) (docgen.Image, error) {
	code, err := code128.Encode(content)
	if err != nil {
		return docgen.Image{}, fmt.Errorf("barcode: encoding code128: %w", err)
	}
	scaled, err := barcode.Scale(code, width, height)
	if err != nil {
		return docgen.Image{}, fmt.Errorf("barcode: scaling code128: %w", err)
	}
	return toImage(scaled, "code128:"+content)
}

// EAN encodes an EAN-8 or EAN-13 article number of the given pixel size.
func EAN(number string, width, height int) (docgen.Image, error) {
	code, err := ean.Encode(number)
	if err != nil {
		return docgen.Image{}, fmt.Errorf("barcode: encoding ean: %w", err)
	}
	scaled, err := barcode.Scale(code, width, height)
	if err != nil {
		return docgen.Image{}, fmt.Errorf("barcode: scaling ean: %w", err)
	}
	return toImage(scaled, "ean:"+number)
}

// Aztec encodes data as an Aztec code with the given minimum error
// correction percentage (33 is the usual default; pass 0 to use it).
func Aztec(data []byte, minECCPercent int) (docgen.Image, error) {
	if minECCPercent <= 0 {
		minECCPercent = 33
	}
	code, err := aztec.Encode(data, minECCPercent, 0)
	if err != nil {
		return docgen.Image{}, fmt.Errorf("barcode: encoding aztec: %w", err)
	}
	return toImage(code, fmt.Sprintf("aztec:%x", data))
}

// PDF417 encodes content as a PDF417 barcode with the given number of data
// columns and error correction security level (0-8).
func PDF417(content string, columns, securityLevel int) (docgen.Image, error) {
	code := pdf417.Encode(content, columns, securityLevel)
	return toImage(code, "pdf417:"+content)
}

// toImage renders the barcode to an in-memory PNG payload.
func toImage(m image.Image, name string) (docgen.Image, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, m); err != nil {
		return docgen.Image{}, fmt.Errorf("barcode: rendering png: %w", err)
	}
	return docgen.Image{Name: name, Data: buf.Bytes()}, nil
}
