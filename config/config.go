package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frame sources understood by the app.
const (
	SourceBall   = "ball"
	SourceScreen = "screen"
	SourceFile   = "file"
)

// MaxTargetFPS caps the advisory frame rate hint.
const MaxTargetFPS = 30

// Config holds runtime configuration for the animated image widget and its
// demo frame sources. Fields may be loaded from a JSON or YAML file and
// overridden from the environment.
type Config struct {
	Debug bool `json:"debug" yaml:"debug"`

	// Widget options
	Width     int  `json:"width" yaml:"width"`
	Height    int  `json:"height" yaml:"height"`
	ShowFPS   bool `json:"show_fps" yaml:"show_fps"`
	TargetFPS int  `json:"target_fps" yaml:"target_fps"` // advisory only, never enforced
	RefreshHz int  `json:"refresh_hz" yaml:"refresh_hz"` // host refresh tick rate

	// Frame source
	Source     string  `json:"source" yaml:"source"`
	SourcePath string  `json:"source_path" yaml:"source_path"`
	BallRadius float64 `json:"ball_radius" yaml:"ball_radius"`
	BallSpeed  float64 `json:"ball_speed" yaml:"ball_speed"`
	BallColor  string  `json:"ball_color" yaml:"ball_color"` // #rrggbb
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:      false,
		Width:      400,
		Height:     300,
		ShowFPS:    true,
		TargetFPS:  30,
		RefreshHz:  60,
		Source:     SourceBall,
		SourcePath: "",
		BallRadius: 30,
		BallSpeed:  5,
		BallColor:  DefaultBallColor,
	}
}

// Validate clamps/normalizes values to safe ranges. It only fails when the
// selected source cannot work at all.
func (c *Config) Validate() error {
	if c.Width < 16 {
		c.Width = 400
	}
	if c.Height < 16 {
		c.Height = 300
	}
	if c.TargetFPS <= 0 {
		c.TargetFPS = 30
	}
	if c.TargetFPS > MaxTargetFPS {
		c.TargetFPS = MaxTargetFPS
	}
	if c.RefreshHz <= 0 || c.RefreshHz > 240 {
		c.RefreshHz = 60
	}
	if c.BallRadius < 10 || c.BallRadius > 80 {
		c.BallRadius = 30
	}
	if c.BallSpeed < 1 || c.BallSpeed > 15 {
		c.BallSpeed = 5
	}
	if col, err := ParseHexColor(c.BallColor); err == nil {
		c.BallColor = FormatHexColor(col)
	} else {
		c.BallColor = DefaultBallColor
	}
	c.Source = strings.ToLower(strings.TrimSpace(c.Source))
	switch c.Source {
	case SourceBall, SourceScreen:
	case SourceFile:
		if c.SourcePath == "" {
			return fmt.Errorf("source %q requires source_path", SourceFile)
		}
	case "":
		c.Source = SourceBall
	default:
		return fmt.Errorf("unknown source %q", c.Source)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load attempts to read configuration from the given JSON or YAML file path.
// If the file does not exist it returns DefaultConfig(). On decode error it
// returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to the given path, as YAML when the
// extension says so and JSON otherwise.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
