package fpdf

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image"
	"image/png"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/lvillar/docgen"

	// gofpdf reads PNG, JPEG and GIF natively; these decoders let the
	// backend accept BMP, TIFF and WebP payloads by transcoding to PNG.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ensureImage registers the image with gofpdf on first use and returns its
// registration name. Non-native formats are transcoded to PNG in memory.
func (b *Backend) ensureImage(img docgen.Image) (string, error) {
	if len(img.Data) == 0 {
		return "", docgen.ErrNoImageData
	}
	name := img.Name
	if name == "" {
		h := fnv.New64a()
		h.Write(img.Data)
		name = fmt.Sprintf("img-%016x", h.Sum64())
	}
	if _, ok := b.images[name]; ok {
		return name, nil
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil {
		return "", fmt.Errorf("fpdf: decoding image %q: %w", name, err)
	}

	switch format {
	case "png", "jpeg", "gif":
		opts := gofpdf.ImageOptions{ImageType: strings.ToUpper(format)}
		b.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))
	default:
		m, _, err := image.Decode(bytes.NewReader(img.Data))
		if err != nil {
			return "", fmt.Errorf("fpdf: decoding image %q: %w", name, err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, m); err != nil {
			return "", fmt.Errorf("fpdf: transcoding image %q: %w", name, err)
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		b.pdf.RegisterImageOptionsReader(name, opts, &buf)
	}
	if err := b.err(); err != nil {
		return "", err
	}

	// The document unit is pt at 72 dpi, so pixel dimensions map 1:1.
	b.images[name] = docgen.Size{W: float64(cfg.Width), H: float64(cfg.Height)}
	return name, nil
}
