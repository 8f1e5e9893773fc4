package presenter

import "testing"

type mockWidget struct {
	running    bool
	setCalls   int
	lastSetArg bool
}

func (w *mockWidget) Running() bool { return w.running }
func (w *mockWidget) SetRunning(b bool) {
	w.setCalls++
	w.lastSetArg = b
	w.running = b
}

type mockPlaybackView struct {
	calls   int
	playing bool
}

func (v *mockPlaybackView) SetPlaying(b bool) { v.calls++; v.playing = b }

func TestPlaybackPresenter_EnableDisable_Idempotent(t *testing.T) {
	w := &mockWidget{}
	view := &mockPlaybackView{}
	p := NewPlaybackPresenter(w, view)

	p.Enable()
	if !w.running || w.setCalls != 1 || !view.playing || view.calls != 1 {
		t.Fatalf("enable failed: running=%v setCalls=%d playing=%v viewCalls=%d", w.running, w.setCalls, view.playing, view.calls)
	}
	p.Enable()
	if w.setCalls != 1 || view.calls != 1 {
		t.Fatalf("enable not idempotent: setCalls=%d viewCalls=%d", w.setCalls, view.calls)
	}

	p.Disable()
	if w.running || w.setCalls != 2 || view.playing || view.calls != 2 {
		t.Fatalf("disable failed: running=%v setCalls=%d playing=%v viewCalls=%d", w.running, w.setCalls, view.playing, view.calls)
	}
	p.Disable()
	if w.setCalls != 2 || view.calls != 2 {
		t.Fatalf("disable not idempotent: setCalls=%d viewCalls=%d", w.setCalls, view.calls)
	}
}

func TestPlaybackPresenter_Toggle(t *testing.T) {
	w := &mockWidget{}
	view := &mockPlaybackView{}
	p := NewPlaybackPresenter(w, view)
	p.Toggle() // start path
	if !w.running || !view.playing {
		t.Fatalf("toggle start failed")
	}
	p.Toggle() // stop path
	if w.running || view.playing || w.lastSetArg {
		t.Fatalf("toggle stop failed")
	}
}

func TestPlaybackPresenter_WithAnimatedImage(t *testing.T) {
	h := newWidgetHarness(true)
	view := &mockPlaybackView{}
	p := NewPlaybackPresenter(h.w, view)
	h.w.Mount()
	p.Disable()
	if h.w.Running() || view.playing {
		t.Fatalf("disable did not stop the widget")
	}
	h.w.UpdateFrame([]byte("stale"))
	p.Enable()
	if !h.w.Running() || h.requests != 2 {
		t.Fatalf("enable after stale answer should request again: requests=%d", h.requests)
	}
}
