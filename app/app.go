package app

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/animated-image-go/config"
	"github.com/soocke/animated-image-go/debug"
	"github.com/soocke/animated-image-go/domain/pacing"
	"github.com/soocke/animated-image-go/ui/theme"
	"github.com/soocke/animated-image-go/ui/view"
)

const (
	debugLogInterval = 5 * time.Second
	windowPadW       = 40
	windowPadH       = 260

	// framePollInterval bounds how long a produced frame waits in the
	// mailbox before it is shown. Well below one refresh period.
	framePollInterval = 2 * time.Millisecond
)

type app struct {
	c       *AppContainer
	title   string
	tick    time.Duration
	afterID string
	pollID  string
	ctx     context.Context
	cancel  context.CancelFunc
	exited  bool

	// Written by the config watcher goroutine, consumed on the Tk thread.
	pendingCfg atomic.Pointer[config.Config]
	// Written on the Tk thread, read by the debug logger goroutine.
	lastStats atomic.Pointer[uiSnapshot]
}

type uiSnapshot struct {
	pacing.Stats
	FPS         float64
	LastFrameAt time.Time
}

// NewApp prepares the main window for the given container.
func NewApp(title string, c *AppContainer) *app {
	a := &app{c: c, title: title}
	hz := c.Config.RefreshHz
	if hz <= 0 {
		hz = 60
	}
	a.tick = time.Second / time.Duration(hz)
	a.ctx, a.cancel = context.WithCancel(context.Background())
	c.Loop.Schedule = a.scheduleTick
	c.Loop.SchedulePoll = a.schedulePoll

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", c.Config.Width+windowPadW, c.Config.Height+windowPadH))
	return a
}

// Start builds the UI, starts the producer and blocks in the Tk main loop.
func (a *app) Start() {
	c := a.c
	theme.Init()
	c.RootView.Build(c.Config.Width, c.Config.Height, c.Config.ShowFPS, c.SettingsFields(), c.Settings.Values(), view.Handlers{
		OnToggle: c.Playback.Toggle,
		OnReset:  c.Settings.ResetBall,
		OnExit:   a.exitHandler,
		OnApply: func(values map[string]string) {
			if err := c.Settings.Apply(values); err != nil {
				c.Logger.Warn("settings not fully applied", "error", err)
			}
		},
	})

	if c.Follower != nil {
		go c.Follower.Run(a.ctx)
	}
	c.Worker.Start(a.ctx)
	if c.CfgPath != "" {
		go func() {
			if err := config.Watch(a.ctx, c.CfgPath, c.Logger, a.queueConfig); err != nil {
				c.Logger.Warn("config watch disabled", "path", c.CfgPath, "error", err)
			}
		}()
	}
	if c.Config.Debug {
		debug.StartGoroutineLogger(a.ctx, debugLogInterval, c.Logger)
		debug.StartMemLogger(a.ctx, debugLogInterval, c.Logger)
		debug.StartStatsLogger(a.ctx, debugLogInterval, c.Logger, a.statsProbe)
	}

	c.Widget.Mount()
	c.RootView.SetPlaying(c.Widget.Running())

	a.scheduleTick()
	a.schedulePoll()
	App.Wait()
}

func (a *app) queueConfig(cfg *config.Config) {
	a.pendingCfg.Store(cfg)
	// The loop picks it up on the next tick.
}

// scheduleTick is the Loop's Schedule hook. It also applies hot-reloaded
// config and publishes stats, both of which must happen on the Tk thread.
func (a *app) scheduleTick() {
	if a.exited {
		return
	}
	if cfg := a.pendingCfg.Swap(nil); cfg != nil {
		a.c.Settings.ApplyConfig(cfg)
		a.c.Logger.Info("config reloaded", "show_fps", cfg.ShowFPS, "target_fps", cfg.TargetFPS)
	}
	a.lastStats.Store(&uiSnapshot{Stats: a.c.Widget.Stats(), FPS: a.c.Widget.FPS(), LastFrameAt: a.c.Widget.LastFrameAt()})
	a.afterID = TclAfter(a.tick, a.c.Loop.Tick)
}

// schedulePoll is the Loop's SchedulePoll hook.
func (a *app) schedulePoll() {
	if a.exited {
		return
	}
	a.pollID = TclAfter(framePollInterval, a.c.Loop.Poll)
}

func (a *app) statsProbe() []any {
	s := a.lastStats.Load()
	if s == nil {
		return nil
	}
	ws := a.c.Worker.Stats()
	var frameAge time.Duration
	if !s.LastFrameAt.IsZero() {
		frameAge = time.Since(s.LastFrameAt).Round(time.Millisecond)
	}
	return []any{
		"requests", s.Requests,
		"displayed", s.Displayed,
		"discarded", s.Discarded,
		"display_errors", s.DisplayErrors,
		"in_flight", s.InFlight,
		"running", s.Running,
		"fps", s.FPS,
		"last_frame_age", frameAge,
		"produced", ws.Produced,
		"produced_bytes", humanize.Bytes(ws.Bytes),
		"mailbox_drops", a.c.Mailbox.Drops(),
	}
}

func (a *app) exitHandler() {
	if a.exited {
		return
	}
	a.exited = true
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	if a.pollID != "" {
		TclAfterCancel(a.pollID)
	}
	a.c.Widget.Unmount()
	a.c.Worker.Stop()
	if a.c.Follower != nil {
		_ = a.c.Follower.Close()
	}
	a.cancel()
	Destroy(App)
}
