package images

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"
)

func TestFitPayload_ScalesDownPreservingAspect(t *testing.T) {
	src := EncodePNG(image.NewRGBA(image.Rect(0, 0, 800, 400)))
	out, err := FitPayload(src, 400, 300)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 200 {
		t.Fatalf("expected 400x200, got %v", img.Bounds())
	}
}

func TestFitPayload_FittedPNGPassesThrough(t *testing.T) {
	src := EncodePNG(image.NewRGBA(image.Rect(0, 0, 400, 250)))
	out, err := FitPayload(src, 400, 300)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	if !bytes.Equal(out, src) {
		t.Fatalf("png already filling the box should be returned untouched")
	}
}

func TestFitPayload_ScalesSmallFrameUp(t *testing.T) {
	src := EncodePNG(image.NewRGBA(image.Rect(0, 0, 50, 40)))
	out, err := FitPayload(src, 400, 300)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 375 || img.Bounds().Dy() != 300 {
		t.Fatalf("expected 375x300, got %v", img.Bounds())
	}
}

func TestFitSize(t *testing.T) {
	cases := []struct{ sw, sh, mw, mh, w, h int }{
		{800, 400, 400, 300, 400, 200},
		{50, 40, 400, 300, 375, 300},
		{400, 300, 400, 300, 400, 300},
		{10, 1000, 400, 300, 3, 300},
		{0, 0, 400, 300, 400, 300},
	}
	for _, c := range cases {
		if w, h := FitSize(c.sw, c.sh, c.mw, c.mh); w != c.w || h != c.h {
			t.Fatalf("FitSize(%d,%d,%d,%d)=%dx%d want %dx%d", c.sw, c.sh, c.mw, c.mh, w, h, c.w, c.h)
		}
	}
}

func TestFitPayload_ConvertsJPEGToPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 64, 48)), nil); err != nil {
		t.Fatal(err)
	}
	out, err := FitPayload(buf.Bytes(), 400, 300)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(out)); err != nil {
		t.Fatalf("expected png output: %v", err)
	}
}

func TestFitPayload_RejectsGarbage(t *testing.T) {
	if _, err := FitPayload(nil, 10, 10); err != ErrEmptyPayload {
		t.Fatalf("expected ErrEmptyPayload, got %v", err)
	}
	if _, err := FitPayload([]byte("not an image"), 10, 10); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestPlaceholder(t *testing.T) {
	img, err := png.Decode(bytes.NewReader(Placeholder(0, 7)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 7 {
		t.Fatalf("unexpected placeholder size %v", img.Bounds())
	}
}
