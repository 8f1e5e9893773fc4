package presenter

import (
	"fmt"
	"image/color"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/animated-image-go/config"
)

// Settings form field ids.
const (
	FieldRadius    = "radius"
	FieldSpeed     = "speed"
	FieldColor     = "color"
	FieldTargetFPS = "targetFps"
	FieldShowFPS   = "showFps"
)

// BallControls is the subset of the demo source the settings affect.
type BallControls interface {
	SetRadius(r float64)
	SetSpeed(speed float64)
	SetColor(c color.RGBA)
	Reset()
}

// WidgetSettings is the subset of the widget the settings affect.
type WidgetSettings interface {
	SetShowFPS(show bool)
	SetTargetFPS(fps int)
}

// SettingsView shows the current form values.
type SettingsView interface {
	SetSettings(values map[string]string)
}

// SettingsPresenter parses the settings form, persists the config and pushes
// the values to the widget and the demo source. Ball may be nil when another
// source is active.
type SettingsPresenter struct {
	cfg     *config.Config
	cfgPath string
	widget  WidgetSettings
	ball    BallControls
	view    SettingsView
	logger  *slog.Logger
}

func NewSettingsPresenter(cfg *config.Config, cfgPath string, widget WidgetSettings, ball BallControls, view SettingsView, logger *slog.Logger) *SettingsPresenter {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &SettingsPresenter{cfg: cfg, cfgPath: cfgPath, widget: widget, ball: ball, view: view, logger: logger}
}

// Fields lists the form rows in display order.
func (p *SettingsPresenter) Fields() []struct{ ID, Label string } {
	return []struct{ ID, Label string }{
		{FieldRadius, "Ball Radius (10-80)"},
		{FieldSpeed, "Ball Speed (1-15)"},
		{FieldColor, "Ball Color (#rrggbb)"},
		{FieldTargetFPS, "Target FPS (hint, max 30)"},
		{FieldShowFPS, "Show FPS (true/false)"},
	}
}

// Values returns the form values for the current config.
func (p *SettingsPresenter) Values() map[string]string {
	c := p.cfg
	return map[string]string{
		FieldRadius:    strconv.FormatFloat(c.BallRadius, 'f', 0, 64),
		FieldSpeed:     strconv.FormatFloat(c.BallSpeed, 'f', 0, 64),
		FieldColor:     c.BallColor,
		FieldTargetFPS: strconv.Itoa(c.TargetFPS),
		FieldShowFPS:   strconv.FormatBool(c.ShowFPS),
	}
}

// Apply parses the form into a copy of the config, validates it, saves it
// when a path is set and applies it. Fields that do not parse are reported
// and leave the old value in place.
func (p *SettingsPresenter) Apply(values map[string]string) error {
	if p == nil {
		return nil
	}
	cfg := *p.cfg // copy
	var bad []string
	if v, ok := values[FieldRadius]; ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			cfg.BallRadius = f
		} else {
			bad = append(bad, FieldRadius)
		}
	}
	if v, ok := values[FieldSpeed]; ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			cfg.BallSpeed = f
		} else {
			bad = append(bad, FieldSpeed)
		}
	}
	if v, ok := values[FieldColor]; ok {
		if _, err := config.ParseHexColor(v); err == nil {
			cfg.BallColor = strings.TrimSpace(v)
		} else {
			bad = append(bad, FieldColor)
		}
	}
	if v, ok := values[FieldTargetFPS]; ok {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.TargetFPS = i
		} else {
			bad = append(bad, FieldTargetFPS)
		}
	}
	if v, ok := values[FieldShowFPS]; ok {
		if b, ok := parseBoolLoose(v); ok {
			cfg.ShowFPS = b
		} else {
			bad = append(bad, FieldShowFPS)
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	p.ApplyConfig(&cfg)
	if p.cfgPath != "" {
		if err := p.cfg.Save(p.cfgPath); err != nil {
			if p.logger != nil {
				p.logger.Error("config save failed", "error", err)
			}
			return err
		}
		if p.logger != nil {
			p.logger.Info("config saved", "path", p.cfgPath)
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("invalid settings: %s", strings.Join(bad, ", "))
	}
	return nil
}

// ApplyConfig pushes the live-tunable fields of cfg into the running widget
// and source. Size and source changes need a restart and are not applied.
func (p *SettingsPresenter) ApplyConfig(cfg *config.Config) {
	if p == nil || cfg == nil {
		return
	}
	p.cfg.ShowFPS = cfg.ShowFPS
	p.cfg.TargetFPS = cfg.TargetFPS
	p.cfg.BallRadius = cfg.BallRadius
	p.cfg.BallSpeed = cfg.BallSpeed
	p.cfg.BallColor = cfg.BallColor
	if p.widget != nil {
		p.widget.SetShowFPS(cfg.ShowFPS)
		p.widget.SetTargetFPS(cfg.TargetFPS)
	}
	if p.ball != nil {
		p.ball.SetRadius(cfg.BallRadius)
		p.ball.SetSpeed(cfg.BallSpeed)
		if c, err := config.ParseHexColor(cfg.BallColor); err == nil {
			p.ball.SetColor(c)
		}
	}
	if p.view != nil {
		p.view.SetSettings(p.Values())
	}
}

// ResetBall recentres the demo ball.
func (p *SettingsPresenter) ResetBall() {
	if p == nil || p.ball == nil {
		return
	}
	p.ball.Reset()
}

func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
