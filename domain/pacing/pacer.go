package pacing

import (
	"log/slog"
)

// Pacer runs the one-frame-in-flight request loop. It requests a frame,
// displays the answer and requests the next one on the following refresh
// tick, so throughput never exceeds the refresh rate.
//
// All methods must be called from the same goroutine (the UI thread).
type Pacer struct {
	state    State
	inFlight bool

	display  Display
	request  Requester
	refresh  RefreshScheduler
	rate     *RateEstimator
	clock    Clock
	logger   *slog.Logger
	counters counters
}

// NewPacer returns a stopped pacer. rate may be nil when no FPS tracking is
// wanted; clock defaults to SystemClock.
func NewPacer(display Display, request Requester, refresh RefreshScheduler, rate *RateEstimator, clock Clock, logger *slog.Logger) *Pacer {
	if clock == nil {
		clock = SystemClock()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pacer{
		state:   StateStopped,
		display: display,
		request: request,
		refresh: refresh,
		rate:    rate,
		clock:   clock,
		logger:  logger,
	}
}

// Start moves the pacer to running and issues the first request. No-op when
// already running.
func (p *Pacer) Start() {
	if p == nil || p.state == StateRunning {
		return
	}
	p.setState(StateRunning)
	p.RequestFrame()
}

// Stop halts future requests. A request already sent is not cancelled; its
// answer is dropped when it arrives.
func (p *Pacer) Stop() {
	if p == nil || p.state == StateStopped {
		return
	}
	p.setState(StateStopped)
}

// SetRunning dispatches to Start or Stop.
func (p *Pacer) SetRunning(running bool) {
	if running {
		p.Start()
		return
	}
	p.Stop()
}

// RequestFrame signals the producer iff the pacer runs and nothing is in
// flight.
func (p *Pacer) RequestFrame() {
	if p == nil || p.state != StateRunning || p.inFlight {
		return
	}
	// Mark before signalling: a producer answering synchronously re-enters
	// through OnFrameReceived.
	p.setInFlight(true)
	p.counters.requests.Add(1)
	if p.request != nil {
		p.request()
	}
}

// OnFrameReceived handles one producer answer. While stopped the payload is
// dropped and no new request is issued.
func (p *Pacer) OnFrameReceived(payload []byte) {
	if p == nil {
		return
	}
	if p.state != StateRunning {
		p.counters.discarded.Add(1)
		// The request is answered; a later Start may ask again.
		p.setInFlight(false)
		p.logger.Debug("stale frame discarded", "bytes", len(payload))
		return
	}
	displayed := true
	if p.display != nil {
		if err := p.display.Show(payload); err != nil {
			displayed = false
			p.counters.displayErrors.Add(1)
			p.logger.Warn("frame display failed", "error", err, "bytes", len(payload))
		}
	}
	p.setInFlight(false)
	if displayed {
		p.counters.displayed.Add(1)
		p.rate.RecordFrame(p.clock.Now())
	}
	if p.refresh == nil {
		p.RequestFrame()
		return
	}
	p.refresh.NextRefresh(p.RequestFrame)
}

// State returns the current run state.
func (p *Pacer) State() State {
	if p == nil {
		return StateStopped
	}
	return p.state
}

// Running reports whether the pacer is running.
func (p *Pacer) Running() bool { return p.State() == StateRunning }

// InFlight reports whether a request awaits its answer.
func (p *Pacer) InFlight() bool {
	if p == nil {
		return false
	}
	return p.inFlight
}

// FPS returns the smoothed displayed frame rate.
func (p *Pacer) FPS() float64 {
	if p == nil {
		return 0
	}
	return p.rate.FPS()
}

// Stats returns a snapshot of the pacer counters. Safe to call from any
// goroutine.
func (p *Pacer) Stats() Stats {
	if p == nil {
		return Stats{}
	}
	return Stats{
		Requests:      p.counters.requests.Load(),
		Displayed:     p.counters.displayed.Load(),
		Discarded:     p.counters.discarded.Load(),
		DisplayErrors: p.counters.displayErrors.Load(),
		Running:       p.counters.running.Load(),
		InFlight:      p.counters.inFlight.Load(),
	}
}

func (p *Pacer) setState(s State) {
	prev := p.state
	p.state = s
	p.counters.running.Store(s == StateRunning)
	p.logger.Debug("pacer state", "from", prev.String(), "to", s.String())
}

func (p *Pacer) setInFlight(v bool) {
	p.inFlight = v
	p.counters.inFlight.Store(v)
}
