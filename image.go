package docgen

import (
	"fmt"
	"os"
)

// Image is an encoded image payload. Data holds the raw file bytes (PNG,
// JPEG, GIF, and with the fpdf backend also BMP, TIFF and WebP). Name is
// used by backends as a registration key; when empty, backends derive one
// from the content.
type Image struct {
	Name string
	Data []byte
}

// ImageFromFile reads an image file into an Image payload.
func ImageFromFile(path string) (Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("docgen: reading image %s: %w", path, err)
	}
	return Image{Name: path, Data: data}, nil
}

// SizeFit selects how an image is scaled into its requested size and the
// available width of the container.
type SizeFit int

const (
	// FitWidth scales the image to the requested (or available) width,
	// preserving the aspect ratio.
	FitWidth SizeFit = iota
	// FitHeight scales the image to the requested height, preserving the
	// aspect ratio and clamping to the available width.
	FitHeight
	// FitWidthHeight fits the image inside the requested box, preserving the
	// aspect ratio.
	FitWidthHeight
	// FitCustom delegates to the command's ImageFitFunc.
	FitCustom
)

// ImageFitFunc computes the drawn size of an image from its intrinsic size
// and the bounding box the layout offers. Used with FitCustom.
type ImageFitFunc func(intrinsic, bounds Size) Size

// fitImage resolves the drawn size of an image. intrinsic is the image's
// natural size, requested the (possibly zero) size from the command, and
// availWidth the width the container offers.
func fitImage(fit SizeFit, fn ImageFitFunc, intrinsic, requested Size, availWidth float64) Size {
	if intrinsic.W <= 0 || intrinsic.H <= 0 {
		return Size{}
	}
	ratio := intrinsic.H / intrinsic.W

	target := requested
	if target.W <= 0 {
		target.W = intrinsic.W
	}
	if target.H <= 0 {
		target.H = intrinsic.H
	}

	switch fit {
	case FitHeight:
		w := target.H / ratio
		if w > availWidth {
			w = availWidth
		}
		return Size{W: w, H: w * ratio}
	case FitWidthHeight:
		w := target.W
		if w > availWidth {
			w = availWidth
		}
		if w*ratio > target.H {
			w = target.H / ratio
		}
		return Size{W: w, H: w * ratio}
	case FitCustom:
		if fn != nil {
			return fn(intrinsic, Size{W: availWidth, H: target.H})
		}
		fallthrough
	default: // FitWidth
		w := target.W
		if w > availWidth {
			w = availWidth
		}
		return Size{W: w, H: w * ratio}
	}
}
