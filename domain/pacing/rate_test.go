package pacing

import (
	"math"
	"testing"
	"time"
)

func TestRateEstimator_ConstantTenFPS(t *testing.T) {
	start := time.Unix(0, 0)
	r := NewRateEstimator(start)
	var updatedAt []time.Duration
	for i := 1; i <= 25; i++ {
		at := time.Duration(i) * 100 * time.Millisecond
		if r.RecordFrame(start.Add(at)) {
			updatedAt = append(updatedAt, at)
			if math.Abs(r.FPS()-10.0) > 0.01 {
				t.Fatalf("fps at %v = %.3f, want 10", at, r.FPS())
			}
		}
	}
	if len(updatedAt) != 2 || updatedAt[0] != time.Second || updatedAt[1] != 2*time.Second {
		t.Fatalf("expected updates at 1s and 2s, got %v", updatedAt)
	}
	if r.Updates() != 2 || r.FramesInWindow() != 5 {
		t.Fatalf("updates=%d frames=%d", r.Updates(), r.FramesInWindow())
	}
}

func TestRateEstimator_StaleBetweenWindows(t *testing.T) {
	start := time.Unix(0, 0)
	r := NewRateEstimator(start)
	if r.FPS() != 0 {
		t.Fatalf("initial fps should be 0")
	}
	r.RecordFrame(start.Add(500 * time.Millisecond))
	if r.FPS() != 0 {
		t.Fatalf("fps changed before window elapsed")
	}
	r.RecordFrame(start.Add(1250 * time.Millisecond))
	want := 2.0 * 1000 / 1250
	if math.Abs(r.FPS()-want) > 1e-9 {
		t.Fatalf("fps=%.4f want %.4f", r.FPS(), want)
	}
}

func TestRateEstimator_FrozenOnStall(t *testing.T) {
	start := time.Unix(0, 0)
	r := NewRateEstimator(start)
	for i := 1; i <= 10; i++ {
		r.RecordFrame(start.Add(time.Duration(i) * 100 * time.Millisecond))
	}
	before := r.FPS()
	// Nothing arrives for 10s: the value is not decayed.
	if r.FPS() != before || before == 0 {
		t.Fatalf("fps should stay frozen at %.2f", before)
	}
	r.RecordFrame(start.Add(11 * time.Second))
	if r.FPS() >= before {
		t.Fatalf("first frame after stall should close a long window: %.3f", r.FPS())
	}
}

func TestPacer_FPSFromDisplayedFrames(t *testing.T) {
	h := newHarness()
	h.pacer.Start()
	for i := 0; i < 25; i++ {
		h.clock.Advance(100 * time.Millisecond)
		h.deliver("f")
		h.refresh.Tick()
	}
	if math.Abs(h.pacer.FPS()-10.0) > 0.01 {
		t.Fatalf("pacer fps=%.3f want 10", h.pacer.FPS())
	}
	if h.pacer.rate.Updates() != 2 {
		t.Fatalf("expected two window updates, got %d", h.pacer.rate.Updates())
	}
}

func TestRefreshQueue_DefersNestedCallbacks(t *testing.T) {
	q := NewRefreshQueue()
	calls := 0
	var again func()
	again = func() {
		calls++
		q.NextRefresh(again)
	}
	q.NextRefresh(again)
	if n := q.Tick(); n != 1 || calls != 1 {
		t.Fatalf("tick ran %d callbacks, calls=%d", n, calls)
	}
	if q.Pending() != 1 {
		t.Fatalf("nested callback should wait for next tick")
	}
	q.Tick()
	if calls != 2 || q.Ticks() != 2 {
		t.Fatalf("calls=%d ticks=%d", calls, q.Ticks())
	}
}
