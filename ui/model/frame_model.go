package model

import "time"

// FrameModel holds what the widget currently shows: the last displayed
// payload and the FPS figure. It is owned by the UI thread and needs no
// synchronization. The zero value is ready to use.
type FrameModel struct {
	payload     []byte
	sequence    uint64
	displayedAt time.Time
	fps         float64
	showFPS     bool
}

// NewFrameModel returns an empty model.
func NewFrameModel(showFPS bool) *FrameModel { return &FrameModel{showFPS: showFPS} }

// SetFrame records a successfully displayed payload.
func (m *FrameModel) SetFrame(payload []byte, at time.Time) {
	if m == nil {
		return
	}
	m.payload = payload
	m.sequence++
	m.displayedAt = at
}

// Frame returns the displayed payload (nil before the first frame) and its
// sequence number.
func (m *FrameModel) Frame() ([]byte, uint64) {
	if m == nil {
		return nil, 0
	}
	return m.payload, m.sequence
}

// DisplayedAt returns when the current payload was shown.
func (m *FrameModel) DisplayedAt() time.Time {
	if m == nil {
		return time.Time{}
	}
	return m.displayedAt
}

// SetFPS stores the FPS value and reports whether it changed.
func (m *FrameModel) SetFPS(fps float64) bool {
	if m == nil || m.fps == fps {
		return false
	}
	m.fps = fps
	return true
}

// FPS returns the stored FPS value.
func (m *FrameModel) FPS() float64 {
	if m == nil {
		return 0
	}
	return m.fps
}

// SetShowFPS toggles FPS visibility and reports whether it changed.
func (m *FrameModel) SetShowFPS(show bool) bool {
	if m == nil || m.showFPS == show {
		return false
	}
	m.showFPS = show
	return true
}

// ShowFPS reports whether the FPS metric is visible.
func (m *FrameModel) ShowFPS() bool {
	if m == nil {
		return false
	}
	return m.showFPS
}

// Clear forgets the displayed payload, keeping the FPS value.
func (m *FrameModel) Clear() {
	if m == nil {
		return
	}
	m.payload = nil
	m.displayedAt = time.Time{}
}
