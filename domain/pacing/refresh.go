package pacing

// RefreshScheduler defers a callback until the next display-refresh tick.
// Any host can satisfy it: a vsync callback, a UI timer or a test harness.
type RefreshScheduler interface {
	NextRefresh(fn func())
}

// RefreshQueue collects callbacks and runs them when Tick is called. The host
// loop calls Tick once per refresh; tests call it by hand. Not safe for
// concurrent use: it belongs to the UI goroutine like the Pacer.
type RefreshQueue struct {
	pending []func()
	ticks   uint64
}

// NewRefreshQueue returns an empty queue. The zero value is also usable.
func NewRefreshQueue() *RefreshQueue { return &RefreshQueue{} }

// NextRefresh queues fn for the next Tick.
func (q *RefreshQueue) NextRefresh(fn func()) {
	if q == nil || fn == nil {
		return
	}
	q.pending = append(q.pending, fn)
}

// Tick runs every callback queued before the call. Callbacks queued while
// running wait for the following tick.
func (q *RefreshQueue) Tick() int {
	if q == nil {
		return 0
	}
	q.ticks++
	if len(q.pending) == 0 {
		return 0
	}
	run := q.pending
	q.pending = nil
	for _, fn := range run {
		fn()
	}
	return len(run)
}

// Pending reports how many callbacks wait for the next tick.
func (q *RefreshQueue) Pending() int {
	if q == nil {
		return 0
	}
	return len(q.pending)
}

// Ticks returns the number of refresh ticks seen so far.
func (q *RefreshQueue) Ticks() uint64 {
	if q == nil {
		return 0
	}
	return q.ticks
}
