package pacing

import "sync/atomic"

// State enumerates the Pacer run states.
type State int

const (
	StateStopped State = iota
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Display shows one encoded frame. A returned error means the frame could not
// be shown; pacing continues regardless.
type Display interface {
	Show(payload []byte) error
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(payload []byte) error

func (f DisplayFunc) Show(payload []byte) error { return f(payload) }

// Requester emits the outbound "need a frame" signal to the producer.
type Requester func()

// Stats summarises pacer activity for instrumentation.
type Stats struct {
	Requests      uint64
	Displayed     uint64
	Discarded     uint64
	DisplayErrors uint64
	Running       bool
	InFlight      bool
}

// counters are atomic so a debug logger goroutine may read them while the
// UI goroutine drives the pacer.
type counters struct {
	requests      atomic.Uint64
	displayed     atomic.Uint64
	discarded     atomic.Uint64
	displayErrors atomic.Uint64
	running       atomic.Bool
	inFlight      atomic.Bool
}
