package view

import (
	"log/slog"

	"github.com/soocke/animated-image-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers are invoked on user actions.
type Handlers struct {
	OnToggle func()
	OnReset  func()
	OnExit   func()
	OnApply  func(values map[string]string)
}

// RootView composes the top-level layout: a control row, the animated image
// and the settings form.
type RootView struct {
	logger *slog.Logger

	// Subviews
	Image    AnimatedImage
	Settings SettingsPanel

	// Widgets
	StatusLabel *LabelWidget
	ToggleBtn   *ButtonWidget
}

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Build constructs the layout for a width x height image.
func (rv *RootView) Build(width, height int, showFPS bool, fields []SettingsField, values map[string]string, h Handlers) {
	if rv == nil {
		return
	}
	// Row 0: status and buttons
	rv.StatusLabel = Label(Txt("Stopped"), Borderwidth(1), Relief("ridge"), Foreground(theme.ColorText))
	Grid(rv.StatusLabel, Row(0), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.ToggleBtn = Button(Txt("Start"), Command(h.OnToggle))
	Grid(rv.ToggleBtn, Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.3m"))
	resetBtn := Button(Txt("Reset Position"), Command(h.OnReset))
	Grid(resetBtn, Row(0), Column(2), Sticky("we"), Padx("0.2m"), Pady("0.3m"))
	exitBtn := Button(Txt("Exit"), Command(h.OnExit))
	Grid(exitBtn, Row(0), Column(3), Sticky("we"), Padx("0.2m"), Pady("0.3m"))

	// Rows 1-2: image and FPS readout
	rv.Image = NewAnimatedImage(1, width, height, showFPS)

	// Settings rows
	rv.Settings = NewSettingsPanel(fields, h.OnApply)
	rv.Settings.Build(3, values)
}

// --- PlaybackPresenter view contract ---

// SetPlaying reflects the run state in the status label and toggle button.
func (rv *RootView) SetPlaying(playing bool) {
	if rv == nil || rv.StatusLabel == nil || rv.ToggleBtn == nil {
		return
	}
	if playing {
		rv.StatusLabel.Configure(Txt("Running"))
		rv.ToggleBtn.Configure(Txt("Stop"))
		return
	}
	rv.StatusLabel.Configure(Txt("Stopped"))
	rv.ToggleBtn.Configure(Txt("Start"))
}

// --- AnimatedImagePresenter view contract ---

func (rv *RootView) ShowFrame(payload []byte) error {
	if rv == nil || rv.Image == nil {
		return nil
	}
	return rv.Image.ShowFrame(payload)
}

func (rv *RootView) SetFPS(fps float64) {
	if rv != nil && rv.Image != nil {
		rv.Image.SetFPS(fps)
	}
}

func (rv *RootView) SetFPSVisible(visible bool) {
	if rv != nil && rv.Image != nil {
		rv.Image.SetFPSVisible(visible)
	}
}

func (rv *RootView) Reset() {
	if rv != nil && rv.Image != nil {
		rv.Image.Reset()
	}
}

// --- SettingsPresenter view contract ---

func (rv *RootView) SetSettings(values map[string]string) {
	if rv != nil && rv.Settings != nil {
		rv.Settings.SetValues(values)
	}
}
