package model

import (
	"testing"
	"time"
)

func TestFrameModel_Lifecycle(t *testing.T) {
	m := NewFrameModel(true)
	if p, seq := m.Frame(); p != nil || seq != 0 {
		t.Fatalf("new model should be empty, got %q seq=%d", p, seq)
	}
	at := time.Unix(10, 0)
	m.SetFrame([]byte("a"), at)
	m.SetFrame([]byte("b"), at.Add(time.Second))
	p, seq := m.Frame()
	if string(p) != "b" || seq != 2 || !m.DisplayedAt().Equal(at.Add(time.Second)) {
		t.Fatalf("unexpected frame %q seq=%d at=%v", p, seq, m.DisplayedAt())
	}
	if !m.SetFPS(12.5) || m.SetFPS(12.5) || m.FPS() != 12.5 {
		t.Fatalf("SetFPS change reporting broken")
	}
	if m.SetShowFPS(true) || !m.SetShowFPS(false) || m.ShowFPS() {
		t.Fatalf("SetShowFPS change reporting broken")
	}
	m.Clear()
	if p, seq := m.Frame(); p != nil || seq != 2 || m.FPS() != 12.5 {
		t.Fatalf("clear: %q seq=%d fps=%.1f", p, seq, m.FPS())
	}
}

func TestFrameModel_NilSafe(t *testing.T) {
	var m *FrameModel
	m.SetFrame([]byte("x"), time.Now())
	m.Clear()
	if m.SetFPS(1) || m.FPS() != 0 || m.ShowFPS() {
		t.Fatalf("nil model should be inert")
	}
}
