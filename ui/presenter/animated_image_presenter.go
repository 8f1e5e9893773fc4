package presenter

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/soocke/animated-image-go/config"
	"github.com/soocke/animated-image-go/domain/pacing"
	"github.com/soocke/animated-image-go/ui/model"
)

// FrameView is the UI surface of the animated image widget.
type FrameView interface {
	ShowFrame(payload []byte) error
	SetFPS(fps float64)
	SetFPSVisible(visible bool)
	Reset() // back to the empty placeholder
}

// Options are the recognised widget options.
type Options struct {
	Width     int
	Height    int
	ShowFPS   bool
	TargetFPS int // advisory, never enforced
}

// OptionsFromConfig extracts widget options from cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return Options{Width: cfg.Width, Height: cfg.Height, ShowFPS: cfg.ShowFPS, TargetFPS: cfg.TargetFPS}
}

// AnimatedImagePresenter is the widget's external face. It owns the pacer
// between Mount and Unmount and routes producer answers into it.
//
// Inbound: UpdateFrame, SetRunning. Outbound: the request callback and FPS.
// All methods run on the UI thread.
type AnimatedImagePresenter struct {
	ID      string
	opts    Options
	view    FrameView
	model   *model.FrameModel
	request pacing.Requester
	refresh pacing.RefreshScheduler
	clock   pacing.Clock
	logger  *slog.Logger

	pacer *pacing.Pacer
	rate  *pacing.RateEstimator
}

// NewAnimatedImagePresenter returns an unmounted widget presenter.
func NewAnimatedImagePresenter(opts Options, view FrameView, frames *model.FrameModel, request pacing.Requester, refresh pacing.RefreshScheduler, clock pacing.Clock, logger *slog.Logger) *AnimatedImagePresenter {
	if clock == nil {
		clock = pacing.SystemClock()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if frames == nil {
		frames = model.NewFrameModel(opts.ShowFPS)
	}
	id := uuid.NewString()
	return &AnimatedImagePresenter{
		ID:      id,
		opts:    opts,
		view:    view,
		model:   frames,
		request: request,
		refresh: refresh,
		clock:   clock,
		logger:  logger.With("widget_id", id),
	}
}

// Mount creates fresh pacing state and starts the loop. Mounting twice is a
// no-op.
func (p *AnimatedImagePresenter) Mount() {
	if p == nil || p.pacer != nil {
		return
	}
	p.rate = pacing.NewRateEstimator(p.clock.Now())
	p.pacer = pacing.NewPacer(pacing.DisplayFunc(p.show), p.request, p.refresh, p.rate, p.clock, p.logger)
	if p.view != nil {
		p.view.SetFPSVisible(p.model.ShowFPS())
	}
	p.logger.Info("widget mounted",
		"width", p.opts.Width,
		"height", p.opts.Height,
		"show_fps", p.opts.ShowFPS,
		"target_fps", p.opts.TargetFPS,
	)
	p.pacer.Start()
}

// Unmount stops the loop and clears the displayed frame. An outstanding
// request is left to arrive and be dropped.
func (p *AnimatedImagePresenter) Unmount() {
	if p == nil || p.pacer == nil {
		return
	}
	p.pacer.Stop()
	p.logger.Info("widget unmounted", "stats", p.pacer.Stats())
	p.pacer = nil
	p.rate = nil
	p.model.Clear()
	if p.view != nil {
		p.view.Reset()
	}
}

// LastFrameAt returns when the current frame was displayed, zero when none
// is shown. FPS is not decayed on a stall, so this is how a stall shows up.
func (p *AnimatedImagePresenter) LastFrameAt() time.Time {
	if p == nil {
		return time.Time{}
	}
	return p.model.DisplayedAt()
}

// Mounted reports whether pacing state exists.
func (p *AnimatedImagePresenter) Mounted() bool { return p != nil && p.pacer != nil }

// UpdateFrame delivers one producer answer.
func (p *AnimatedImagePresenter) UpdateFrame(payload []byte) {
	if p == nil {
		return
	}
	p.pacer.OnFrameReceived(payload)
}

// SetRunning starts or stops the loop.
func (p *AnimatedImagePresenter) SetRunning(running bool) {
	if p == nil {
		return
	}
	p.pacer.SetRunning(running)
}

// Start resumes requesting frames.
func (p *AnimatedImagePresenter) Start() { p.SetRunning(true) }

// Stop halts requesting frames.
func (p *AnimatedImagePresenter) Stop() { p.SetRunning(false) }

// Running reports whether the loop runs.
func (p *AnimatedImagePresenter) Running() bool {
	if p == nil {
		return false
	}
	return p.pacer.Running()
}

// FPS returns the smoothed displayed frame rate.
func (p *AnimatedImagePresenter) FPS() float64 {
	if p == nil {
		return 0
	}
	return p.rate.FPS()
}

// Stats returns the pacer counters, zero when unmounted.
func (p *AnimatedImagePresenter) Stats() pacing.Stats {
	if p == nil {
		return pacing.Stats{}
	}
	return p.pacer.Stats()
}

// Options returns the widget options.
func (p *AnimatedImagePresenter) Options() Options {
	if p == nil {
		return Options{}
	}
	return p.opts
}

// SetShowFPS toggles the visible FPS metric.
func (p *AnimatedImagePresenter) SetShowFPS(show bool) {
	if p == nil {
		return
	}
	p.opts.ShowFPS = show
	if p.model.SetShowFPS(show) && p.view != nil {
		p.view.SetFPSVisible(show)
		if show {
			p.view.SetFPS(p.model.FPS())
		}
	}
}

// SetTargetFPS updates the advisory frame rate hint. The pacer ignores it.
func (p *AnimatedImagePresenter) SetTargetFPS(fps int) {
	if p == nil {
		return
	}
	if fps > config.MaxTargetFPS {
		fps = config.MaxTargetFPS
	}
	p.opts.TargetFPS = fps
}

// Tick pushes a changed FPS value to the view.
func (p *AnimatedImagePresenter) Tick() {
	if p == nil || p.view == nil {
		return
	}
	if p.model.SetFPS(p.FPS()) && p.model.ShowFPS() {
		p.view.SetFPS(p.model.FPS())
	}
}

// show is the pacer's display: the view renders, the model remembers.
func (p *AnimatedImagePresenter) show(payload []byte) error {
	if p.view != nil {
		if err := p.view.ShowFrame(payload); err != nil {
			return err
		}
	}
	p.model.SetFrame(payload, p.clock.Now())
	return nil
}
