package producer

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/vova616/screenshot"
)

// ScreenMirror grabs the screen (or a region of it) and scales it to fit the
// widget.
type ScreenMirror struct {
	width, height int
	region        func() *image.Rectangle // optional
}

// NewScreenMirror returns a source capturing the full screen, or the area
// returned by region when it is non-nil and non-empty.
func NewScreenMirror(width, height int, region func() *image.Rectangle) *ScreenMirror {
	return &ScreenMirror{width: width, height: height, region: region}
}

func (s *ScreenMirror) Frame(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := s.grab()
	if err != nil {
		return nil, fmt.Errorf("screen capture: %w", err)
	}
	if img == nil {
		return nil, ErrNoFrame
	}
	fitted := imaging.Fit(img, s.width, s.height, imaging.Box)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, fitted, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode screen frame: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *ScreenMirror) grab() (*image.RGBA, error) {
	if s.region != nil {
		if r := s.region(); r != nil && !r.Empty() {
			return screenshot.CaptureRect(*r)
		}
	}
	return screenshot.CaptureScreen()
}
