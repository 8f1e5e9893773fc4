package app

import (
	"fmt"
	"log/slog"

	"github.com/soocke/animated-image-go/config"
	"github.com/soocke/animated-image-go/domain/pacing"
	"github.com/soocke/animated-image-go/domain/producer"
	"github.com/soocke/animated-image-go/ui/model"
	"github.com/soocke/animated-image-go/ui/presenter"
	"github.com/soocke/animated-image-go/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config  *config.Config
	CfgPath string
	Logger  *slog.Logger

	// Producer side (own goroutine)
	Source   producer.Source
	Ball     *producer.BouncingBall // nil unless the ball source is active
	Follower *producer.FileFollower // nil unless the file source is active
	Mailbox  *producer.Mailbox
	Worker   *producer.Worker

	// UI side (Tk goroutine)
	Refresh  *pacing.RefreshQueue
	Frames   *model.FrameModel
	RootView *view.RootView

	// Presenters
	Widget   *presenter.AnimatedImagePresenter
	Playback *presenter.PlaybackPresenter
	Settings *presenter.SettingsPresenter
	Loop     *presenter.Loop
}

// BuildContainer constructs all components. No goroutines are started and
// no Tk widgets are created here.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger) (*AppContainer, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := &AppContainer{Config: cfg, CfgPath: cfgPath, Logger: logger}

	switch cfg.Source {
	case config.SourceBall:
		c.Ball = producer.NewBouncingBall(cfg.Width, cfg.Height, cfg.BallRadius, cfg.BallSpeed)
		if col, err := config.ParseHexColor(cfg.BallColor); err == nil {
			c.Ball.SetColor(col)
		}
		c.Source = c.Ball
	case config.SourceScreen:
		c.Source = producer.NewScreenMirror(cfg.Width, cfg.Height, nil)
	case config.SourceFile:
		f, err := producer.NewFileFollower(cfg.SourcePath, logger.With("component", "file_source"))
		if err != nil {
			return nil, fmt.Errorf("file source: %w", err)
		}
		c.Follower = f
		c.Source = f
	default:
		return nil, fmt.Errorf("unknown source %q", cfg.Source)
	}

	c.Mailbox = producer.NewMailbox()
	c.Worker = producer.NewWorker(c.Source, c.Mailbox, logger.With("component", "producer"))

	c.Refresh = pacing.NewRefreshQueue()
	c.Frames = model.NewFrameModel(cfg.ShowFPS)
	c.RootView = view.NewRootView(logger)

	c.Widget = presenter.NewAnimatedImagePresenter(
		presenter.OptionsFromConfig(cfg),
		c.RootView,
		c.Frames,
		c.Worker.Request,
		c.Refresh,
		pacing.SystemClock(),
		logger,
	)
	c.Playback = presenter.NewPlaybackPresenter(c.Widget, c.RootView)

	// A typed nil *BouncingBall must not end up inside the interface.
	var ball presenter.BallControls
	if c.Ball != nil {
		ball = c.Ball
	}
	c.Settings = presenter.NewSettingsPresenter(cfg, cfgPath, c.Widget, ball, c.RootView, logger)

	// Schedule is set by the app once the Tk loop exists.
	c.Loop = presenter.NewLoop(c.Widget, c.Mailbox, c.Refresh, nil)
	return c, nil
}

// SettingsFields converts the presenter's form description for the view.
func (c *AppContainer) SettingsFields() []view.SettingsField {
	src := c.Settings.Fields()
	out := make([]view.SettingsField, 0, len(src))
	for _, f := range src {
		out = append(out, view.SettingsField{ID: f.ID, Label: f.Label})
	}
	return out
}
