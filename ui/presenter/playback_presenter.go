package presenter

// PlaybackWidget is the run control the presenter drives.
type PlaybackWidget interface {
	Running() bool
	SetRunning(bool)
}

// PlaybackView reflects the run state in the controls.
type PlaybackView interface {
	SetPlaying(playing bool)
}

// PlaybackPresenter owns presentation logic for the Start/Stop controls.
type PlaybackPresenter struct {
	widget PlaybackWidget
	view   PlaybackView
}

func NewPlaybackPresenter(widget PlaybackWidget, view PlaybackView) *PlaybackPresenter {
	return &PlaybackPresenter{widget: widget, view: view}
}

// Enable starts the widget loop and updates the controls. Idempotent.
func (c *PlaybackPresenter) Enable() {
	if c == nil || c.widget == nil || c.view == nil {
		return
	}
	if c.widget.Running() { // already running
		return
	}
	c.widget.SetRunning(true)
	c.view.SetPlaying(true)
}

// Disable stops the widget loop and updates the controls. Idempotent.
func (c *PlaybackPresenter) Disable() {
	if c == nil || c.widget == nil || c.view == nil {
		return
	}
	if !c.widget.Running() { // already stopped
		return
	}
	c.widget.SetRunning(false)
	c.view.SetPlaying(false)
}

// Toggle flips the run state delegating to Enable/Disable.
func (c *PlaybackPresenter) Toggle() {
	if c == nil || c.widget == nil || c.view == nil {
		return
	}
	if c.widget.Running() {
		c.Disable()
		return
	}
	c.Enable()
}
