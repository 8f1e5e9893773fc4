package presenter

// FrameInbox hands over the latest producer answer, if any.
type FrameInbox interface {
	Take() ([]byte, bool)
}

// RefreshTicker runs callbacks waiting for the current refresh tick.
type RefreshTicker interface {
	Tick() int
}

// Loop drives the widget from the Tk thread with two hooks. Tick runs once
// per display refresh: it releases callbacks queued for this tick (the only
// place a follow-up request is sent), delivers a waiting frame and refreshes
// derived view state. Poll runs more often and only delivers frames, so an
// answer is shown as soon as it arrives instead of waiting a full tick.
// The zero value is usable (methods are nil-safe).
type Loop struct {
	Widget       *AnimatedImagePresenter
	Inbox        FrameInbox
	Refresh      RefreshTicker
	Schedule     func() // re-arms Tick
	SchedulePoll func() // re-arms Poll
}

func NewLoop(widget *AnimatedImagePresenter, inbox FrameInbox, refresh RefreshTicker, schedule func()) *Loop {
	return &Loop{Widget: widget, Inbox: inbox, Refresh: refresh, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	// Callbacks queued during earlier ticks run first so a frame delivered
	// below waits for the next tick before its follow-up request.
	if l.Refresh != nil {
		l.Refresh.Tick()
	}
	l.deliver()
	l.Widget.Tick()
	if l.Schedule != nil {
		l.Schedule()
	}
}

// Poll delivers a waiting frame without touching the refresh queue.
func (l *Loop) Poll() {
	if l == nil {
		return
	}
	l.deliver()
	if l.SchedulePoll != nil {
		l.SchedulePoll()
	}
}

func (l *Loop) deliver() bool {
	if l.Inbox == nil {
		return false
	}
	payload, ok := l.Inbox.Take()
	if ok {
		l.Widget.UpdateFrame(payload)
	}
	return ok
}
