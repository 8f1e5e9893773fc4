package app

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/soocke/animated-image-go/config"
	"github.com/soocke/animated-image-go/ui/presenter"
)

func discardLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestBuildContainer_BallSource(t *testing.T) {
	cfg := config.DefaultConfig()
	c, err := BuildContainer(cfg, "", discardLogger())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if c.Ball == nil || c.Source == nil || c.Follower != nil {
		t.Fatalf("expected ball source only: ball=%v follower=%v", c.Ball != nil, c.Follower != nil)
	}
	if c.Widget == nil || c.Playback == nil || c.Settings == nil || c.Loop == nil {
		t.Fatalf("presenters not wired")
	}
	if c.Loop.Schedule != nil {
		t.Fatalf("schedule must be left to the app")
	}
	if _, _, vx, _ := c.Ball.Position(); vx != 5 {
		t.Fatalf("ball not built from config speed: vx=%v", vx)
	}
	if c.Widget.Mounted() {
		t.Fatalf("widget must not be mounted before the UI exists")
	}
}

func TestBuildContainer_SettingsFieldsMatchPresenter(t *testing.T) {
	c, err := BuildContainer(config.DefaultConfig(), "", discardLogger())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	fields := c.SettingsFields()
	if len(fields) != 5 || fields[0].ID != presenter.FieldRadius || fields[4].ID != presenter.FieldShowFPS {
		t.Fatalf("unexpected fields: %+v", fields)
	}
}

func TestBuildContainer_FileSource(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Source = config.SourceFile
	cfg.SourcePath = filepath.Join(t.TempDir(), "frame.png")
	c, err := BuildContainer(cfg, "", discardLogger())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer c.Follower.Close()
	if c.Ball != nil || c.Follower == nil {
		t.Fatalf("expected file source")
	}
}

func TestBuildContainer_UnknownSource(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Source = "webcam"
	if _, err := BuildContainer(cfg, "", discardLogger()); err == nil {
		t.Fatalf("expected error for unknown source")
	}
}
