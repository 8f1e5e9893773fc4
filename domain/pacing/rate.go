package pacing

import "time"

// RateWindow is the length of the FPS averaging window.
const RateWindow = time.Second

// RateEstimator counts displayed frames inside a rolling window and
// recomputes the FPS value each time the window elapses.
//
// The value is not decayed when frames stop arriving: it stays at the last
// computed figure until another frame closes a window.
type RateEstimator struct {
	windowStart time.Time
	frames      int
	fps         float64
	updates     uint64
}

// NewRateEstimator opens the first window at start.
func NewRateEstimator(start time.Time) *RateEstimator {
	return &RateEstimator{windowStart: start}
}

// RecordFrame counts one displayed frame at now and reports whether the FPS
// value was recomputed.
func (r *RateEstimator) RecordFrame(now time.Time) bool {
	if r == nil {
		return false
	}
	r.frames++
	elapsed := now.Sub(r.windowStart)
	if elapsed < RateWindow {
		return false
	}
	r.fps = float64(r.frames) * float64(time.Second) / float64(elapsed)
	r.frames = 0
	r.windowStart = now
	r.updates++
	return true
}

// FPS returns the last computed frames-per-second value.
func (r *RateEstimator) FPS() float64 {
	if r == nil {
		return 0
	}
	return r.fps
}

// Updates returns how many windows have been closed.
func (r *RateEstimator) Updates() uint64 {
	if r == nil {
		return 0
	}
	return r.updates
}

// FramesInWindow returns the frames counted in the open window.
func (r *RateEstimator) FramesInWindow() int {
	if r == nil {
		return 0
	}
	return r.frames
}
