package producer

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	defaultRetryDelay     = 15 * time.Millisecond
	workerStatsLogInterval = 5 * time.Second
)

// Sink receives produced frames.
type Sink interface {
	Put(payload []byte)
}

// WorkerStats summarises worker behaviour for instrumentation.
type WorkerStats struct {
	Requests  uint64
	Produced  uint64
	Skipped   uint64
	Failed    uint64
	Bytes     uint64
	AvgRender time.Duration
	Running   bool
}

// Worker answers frame requests off the UI thread. Each request makes it call
// the Source until a frame comes back, which is then handed to the Sink.
// Requests arriving while one is pending collapse into it.
type Worker struct {
	source     Source
	sink       Sink
	logger     *slog.Logger
	retryDelay time.Duration

	requests chan struct{}
	running  atomic.Bool
	cancel   context.CancelFunc
	done     chan struct{}
	mu       sync.Mutex

	requested   atomic.Uint64
	produced    atomic.Uint64
	skipped     atomic.Uint64
	failed      atomic.Uint64
	bytes       atomic.Uint64
	renderNanos atomic.Uint64

	// failing is set from the first source error until the next frame.
	// The first error is logged, later ones once per failLogEvery.
	failing      atomic.Bool
	failLogEvery time.Duration
}

// NewWorker constructs a stopped worker.
func NewWorker(source Source, sink Sink, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Worker{
		source:       source,
		sink:         sink,
		logger:       logger,
		retryDelay:   defaultRetryDelay,
		failLogEvery: workerStatsLogInterval,
		requests:     make(chan struct{}, 1),
	}
}

// Start launches the worker goroutine. Idempotent.
func (w *Worker) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running.Load() {
		return
	}
	ctx, w.cancel = context.WithCancel(ctx)
	w.done = make(chan struct{})
	w.running.Store(true)
	go w.loop(ctx, w.done)
}

// Stop cancels the worker and waits for it to exit. Idempotent.
func (w *Worker) Stop() {
	w.mu.Lock()
	if !w.running.Load() {
		w.mu.Unlock()
		return
	}
	w.cancel()
	done := w.done
	w.running.Store(false)
	w.mu.Unlock()
	<-done
}

// Running reports whether the worker goroutine is active.
func (w *Worker) Running() bool { return w.running.Load() }

// Request asks for one frame. It never blocks.
func (w *Worker) Request() {
	w.requested.Add(1)
	select {
	case w.requests <- struct{}{}:
	default:
	}
}

// Stats returns a snapshot of the worker counters.
func (w *Worker) Stats() WorkerStats {
	produced := w.produced.Load()
	var avg time.Duration
	if produced > 0 {
		avg = time.Duration(w.renderNanos.Load() / produced)
	}
	return WorkerStats{
		Requests:  w.requested.Load(),
		Produced:  produced,
		Skipped:   w.skipped.Load(),
		Failed:    w.failed.Load(),
		Bytes:     w.bytes.Load(),
		AvgRender: avg,
		Running:   w.running.Load(),
	}
}

func (w *Worker) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	logTicker := time.NewTicker(workerStatsLogInterval)
	defer logTicker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-logTicker.C:
			w.logStats()
		case <-w.requests:
			w.serve(ctx)
		}
	}
}

// serve keeps asking the source until one frame is delivered or ctx ends.
func (w *Worker) serve(ctx context.Context) {
	var reportAt time.Time
	for {
		start := time.Now()
		payload, err := w.source.Frame(ctx)
		switch {
		case err == nil && len(payload) == 0:
			err = ErrEmptyPayload
			fallthrough
		case err != nil:
			if ctx.Err() != nil {
				return
			}
			if errors.Is(err, ErrNoFrame) {
				w.skipped.Add(1)
			} else {
				n := w.failed.Add(1)
				switch {
				case !w.failing.Swap(true):
					w.logger.Error("frame source failing", "error", err)
					reportAt = time.Now().Add(w.failLogEvery)
				case time.Now().After(reportAt):
					w.logger.Warn("frame source still failing", "failed_total", n, "error", err)
					reportAt = time.Now().Add(w.failLogEvery)
				}
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(w.retryDelay):
			}
			continue
		}
		if w.failing.Swap(false) {
			w.logger.Info("frame source recovered", "failed_total", w.failed.Load())
		}
		w.renderNanos.Add(uint64(time.Since(start).Nanoseconds()))
		w.produced.Add(1)
		w.bytes.Add(uint64(len(payload)))
		w.sink.Put(payload)
		return
	}
}

func (w *Worker) logStats() {
	s := w.Stats()
	if s.Requests == 0 {
		return
	}
	w.logger.Debug("producer.stats",
		"requests", s.Requests,
		"produced", s.Produced,
		"skipped", s.Skipped,
		"failed", s.Failed,
		"sent", humanize.Bytes(s.Bytes),
		"avg_render", s.AvgRender,
	)
}
