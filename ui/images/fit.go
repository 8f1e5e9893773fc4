package images

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// ErrEmptyPayload is returned for zero-length frames.
var ErrEmptyPayload = errors.New("empty image payload")

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// Placeholder returns a solid black PNG of the given size.
func Placeholder(w, h int) []byte {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return EncodePNG(imaging.New(w, h, image.Black))
}

// FitPayload decodes an encoded frame (any format registered with the image
// package) and scales it up or down to the largest size that fits maxW x maxH
// preserving aspect ratio ("contain"). PNG frames already at that size are
// returned untouched.
func FitPayload(payload []byte, maxW, maxH int) ([]byte, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("decode frame header: %w", err)
	}
	if w, h := FitSize(cfg.Width, cfg.Height, maxW, maxH); format == "png" && w == cfg.Width && h == cfg.Height {
		return payload, nil
	}
	img, err := imaging.Decode(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	return EncodePNG(FitImage(img, maxW, maxH)), nil
}

// FitSize returns the largest w x h with the aspect ratio of srcW x srcH that
// fits within maxW x maxH. Both results are at least 1.
func FitSize(srcW, srcH, maxW, maxH int) (int, int) {
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	if srcW < 1 || srcH < 1 {
		return maxW, maxH
	}
	// Compare maxW/srcW with maxH/srcH without floats.
	if maxW*srcH <= maxH*srcW {
		return maxW, max(1, (srcH*maxW+srcW/2)/srcW)
	}
	return max(1, (srcW*maxH+srcH/2)/srcH), maxH
}

// FitImage scales src so that it fills maxW x maxH as far as its aspect ratio
// allows, enlarging small frames and shrinking large ones.
func FitImage(src image.Image, maxW, maxH int) image.Image {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), maxW, maxH)
	if w == b.Dx() && h == b.Dy() {
		return src
	}
	return imaging.Resize(src, w, h, imaging.Lanczos)
}
