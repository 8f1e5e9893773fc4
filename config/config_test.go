package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != 400 || cfg.Height != 300 || !cfg.ShowFPS || cfg.TargetFPS != 30 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_JSONAndYAML(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "c.json")
	if err := os.WriteFile(jsonPath, []byte(`{"width":640,"height":480,"show_fps":false,"target_fps":60}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(jsonPath)
	if err != nil {
		t.Fatalf("json load: %v", err)
	}
	if cfg.Width != 640 || cfg.Height != 480 || cfg.ShowFPS || cfg.TargetFPS != MaxTargetFPS {
		t.Fatalf("json values not applied/clamped: %+v", cfg)
	}

	yamlPath := filepath.Join(dir, "c.yaml")
	if err := os.WriteFile(yamlPath, []byte("width: 200\nsource: SCREEN\nball_radius: 500\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(yamlPath)
	if err != nil {
		t.Fatalf("yaml load: %v", err)
	}
	if cfg.Width != 200 || cfg.Height != 300 || cfg.Source != SourceScreen || cfg.BallRadius != 30 {
		t.Fatalf("yaml values not applied/clamped: %+v", cfg)
	}
}

func TestLoad_ParseError(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(p, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(p)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if cfg == nil || cfg.Width != 400 {
		t.Fatalf("expected defaults alongside error, got %+v", cfg)
	}
}

func TestValidate_FileSourceNeedsPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Source = SourceFile
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for file source without path")
	}
	cfg.SourcePath = "/tmp/frame.png"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.Source = "webcam"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unknown source")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"c.json", "c.yml"} {
		cfg := DefaultConfig()
		cfg.Width = 320
		cfg.ShowFPS = false
		p := filepath.Join(dir, name)
		if err := cfg.Save(p); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
		got, err := Load(p)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if got.Width != 320 || got.ShowFPS {
			t.Fatalf("%s round trip mismatch: %+v", name, got)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"WIDTH", "800")
	t.Setenv(EnvPrefix+"SHOW_FPS", "false")
	t.Setenv(EnvPrefix+"TARGET_FPS", "abc")
	t.Setenv(EnvPrefix+"SOURCE", "screen")
	cfg := DefaultConfig()
	skipped := cfg.ApplyEnv()
	if cfg.Width != 800 || cfg.ShowFPS || cfg.Source != SourceScreen {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if len(skipped) != 1 || skipped[0] != EnvPrefix+"TARGET_FPS" || cfg.TargetFPS != 30 {
		t.Fatalf("expected TARGET_FPS skipped, got %v (target=%d)", skipped, cfg.TargetFPS)
	}
}

func TestLoadDotEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(p, []byte(EnvPrefix+"HEIGHT=222\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvPrefix+"HEIGHT", "")
	os.Unsetenv(EnvPrefix + "HEIGHT")
	if err := LoadDotEnv(p, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("dotenv: %v", err)
	}
	cfg := DefaultConfig()
	cfg.ApplyEnv()
	if cfg.Height != 222 {
		t.Fatalf("expected height from .env, got %d", cfg.Height)
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	p := filepath.Join(t.TempDir(), "live.json")
	if err := DefaultConfig().Save(p); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes := make(chan *Config, 4)
	go func() { _ = Watch(ctx, p, nil, func(c *Config) { changes <- c }) }()
	time.Sleep(100 * time.Millisecond)

	updated := DefaultConfig()
	updated.ShowFPS = false
	if err := updated.Save(p); err != nil {
		t.Fatal(err)
	}
	select {
	case c := <-changes:
		if c.ShowFPS {
			t.Fatalf("reloaded config should have show_fps=false")
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("timeout waiting for reload")
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor(" #FF8000 ")
	if err != nil || c.R != 0xff || c.G != 0x80 || c.B != 0 || c.A != 255 {
		t.Fatalf("parse: %+v err=%v", c, err)
	}
	if c, err := ParseHexColor("00ff7f"); err != nil || c.G != 0xff || c.B != 0x7f {
		t.Fatalf("parse without '#': %+v err=%v", c, err)
	}
	for _, bad := range []string{"", "#fff", "#12345g", "#1234567", "blue"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
	if got := FormatHexColor(c); got != "#ff8000" {
		t.Fatalf("format: %s", got)
	}
}

func TestValidate_BallColor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BallColor = "#AABBCC"
	if err := cfg.Validate(); err != nil || cfg.BallColor != "#aabbcc" {
		t.Fatalf("color not normalized: %q err=%v", cfg.BallColor, err)
	}
	cfg.BallColor = "red"
	if err := cfg.Validate(); err != nil || cfg.BallColor != DefaultBallColor {
		t.Fatalf("invalid color not reset: %q err=%v", cfg.BallColor, err)
	}
}
