package producer

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Ball radius limits and base velocity for the bouncing ball demo.
const (
	MinBallRadius = 10
	MaxBallRadius = 80
	MinBallSpeed  = 1
	MaxBallSpeed  = 15

	baseVX = 5.0
	baseVY = 3.0
)

var (
	ballBackground = color.RGBA{30, 30, 30, 255}
	ballDefault    = color.RGBA{66, 133, 244, 255}
)

// BouncingBall renders a ball bouncing inside the frame, one step per Frame
// call. All setters are safe to call from the UI thread while the worker
// renders.
type BouncingBall struct {
	mu            sync.Mutex
	width, height int
	x, y          float64
	vx, vy        float64
	radius        float64
	color         color.RGBA
	frames        uint64
}

// NewBouncingBall centres a ball of radius r moving at the given speed
// (1..15, 5 is the base velocity).
func NewBouncingBall(width, height int, radius, speed float64) *BouncingBall {
	b := &BouncingBall{width: width, height: height, color: ballDefault}
	b.radius = clamp(radius, MinBallRadius, MaxBallRadius)
	b.x, b.y = float64(width)/2, float64(height)/2
	b.vx, b.vy = baseVX, baseVY
	b.setSpeed(speed)
	return b
}

// Frame advances the ball one step and returns the PNG-encoded frame.
func (b *BouncingBall) Frame(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.Lock()
	b.step()
	b.frames++
	x, y, r, c, n := b.x, b.y, b.radius, b.color, b.frames
	b.mu.Unlock()

	dc := gg.NewContext(b.width, b.height)
	dc.SetColor(ballBackground)
	dc.Clear()

	dc.DrawCircle(x, y, r)
	dc.SetColor(c)
	dc.Fill()

	// Highlight: smaller lighter circle towards the top-left.
	dc.DrawCircle(x-r*0.3, y-r*0.3, r*0.3)
	dc.SetColor(lighten(c, 80))
	dc.Fill()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB255(160, 160, 160)
	dc.DrawString(fmt.Sprintf("#%d", n), 6, 16)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode ball frame: %w", err)
	}
	return buf.Bytes(), nil
}

// step moves the ball and bounces it off the walls.
func (b *BouncingBall) step() {
	b.x += b.vx
	b.y += b.vy
	w, h := float64(b.width), float64(b.height)
	if b.x-b.radius <= 0 || b.x+b.radius >= w {
		b.vx = -b.vx
		b.x = math.Max(b.radius, math.Min(w-b.radius, b.x))
	}
	if b.y-b.radius <= 0 || b.y+b.radius >= h {
		b.vy = -b.vy
		b.y = math.Max(b.radius, math.Min(h-b.radius, b.y))
	}
}

// Reset recentres the ball and restores the base velocity.
func (b *BouncingBall) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.x, b.y = float64(b.width)/2, float64(b.height)/2
	b.vx, b.vy = baseVX, baseVY
}

// SetRadius changes the ball radius, clamped to 10..80.
func (b *BouncingBall) SetRadius(r float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.radius = clamp(r, MinBallRadius, MaxBallRadius)
}

// SetSpeed scales the velocity keeping the current direction. 5 is the base
// speed.
func (b *BouncingBall) SetSpeed(speed float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.setSpeed(speed)
}

func (b *BouncingBall) setSpeed(speed float64) {
	factor := clamp(speed, MinBallSpeed, MaxBallSpeed) / 5.0
	b.vx = math.Copysign(baseVX*factor, b.vx)
	b.vy = math.Copysign(baseVY*factor, b.vy)
}

// SetColor changes the ball colour.
func (b *BouncingBall) SetColor(c color.RGBA) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.color = c
}

// Position returns the ball centre and velocity.
func (b *BouncingBall) Position() (x, y, vx, vy float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.x, b.y, b.vx, b.vy
}

func lighten(c color.RGBA, d uint8) color.RGBA {
	add := func(v uint8) uint8 {
		if int(v)+int(d) > 255 {
			return 255
		}
		return v + d
	}
	return color.RGBA{add(c.R), add(c.G), add(c.B), c.A}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
