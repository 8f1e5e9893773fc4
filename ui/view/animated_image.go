package view

import (
	"fmt"

	"github.com/soocke/animated-image-go/ui/images"
	"github.com/soocke/animated-image-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// AnimatedImage shows frames in a fixed-size black box with an optional FPS
// readout underneath.
type AnimatedImage interface {
	ShowFrame(payload []byte) error
	SetFPS(fps float64)
	SetFPSVisible(visible bool)
	Reset()
}

type animatedImage struct {
	frameLabel *LabelWidget
	fpsLabel   *LabelWidget
	photo      *Img // photo currently on screen, deleted when replaced
	width      int
	height     int
	fpsVisible bool
	lastFPS    float64
}

// NewAnimatedImage creates the image and FPS labels and grids them at row and
// row+1, spanning columns 0-3.
func NewAnimatedImage(row, width, height int, showFPS bool) AnimatedImage {
	photo := NewPhoto(Data(images.Placeholder(width, height)))
	frame := Label(Image(photo), Width(width), Height(height), Background(theme.ColorCanvas), Borderwidth(0))
	Grid(frame, Row(row), Column(0), Columnspan(4), Padx("0.4m"), Pady("0.4m"))
	fps := Label(Txt(""), Anchor("e"), Foreground(theme.ColorTextMuted))
	Grid(fps, Row(row+1), Column(0), Columnspan(4), Sticky("e"), Padx("0.4m"))
	v := &animatedImage{frameLabel: frame, fpsLabel: fps, photo: photo, width: width, height: height}
	v.SetFPSVisible(showFPS)
	return v
}

// ShowFrame decodes payload, fits it into the box and swaps the photo. Tk
// errors surface as panics from the DSL; they are returned as errors.
func (v *animatedImage) ShowFrame(payload []byte) (err error) {
	if v.frameLabel == nil {
		return nil
	}
	fitted, err := images.FitPayload(payload, v.width, v.height)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tk photo: %v", r)
		}
	}()
	photo := NewPhoto(Data(fitted))
	v.frameLabel.Configure(Image(photo))
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = photo
	return nil
}

func (v *animatedImage) SetFPS(fps float64) {
	v.lastFPS = fps
	if v.fpsLabel == nil || !v.fpsVisible {
		return
	}
	v.fpsLabel.Configure(Txt(fmt.Sprintf("%.1f FPS", fps)))
}

func (v *animatedImage) SetFPSVisible(visible bool) {
	v.fpsVisible = visible
	if v.fpsLabel == nil {
		return
	}
	if !visible {
		v.fpsLabel.Configure(Txt(""))
		return
	}
	v.fpsLabel.Configure(Txt(fmt.Sprintf("%.1f FPS", v.lastFPS)))
}

// Reset puts the black placeholder back.
func (v *animatedImage) Reset() {
	if v.frameLabel == nil {
		return
	}
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = NewPhoto(Data(images.Placeholder(v.width, v.height)))
	v.frameLabel.Configure(Image(v.photo))
}
