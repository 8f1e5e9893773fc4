package theme

// Palette and base theme for the animated image window.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const (
	ColorBg        = "#f7f9fb" // app background
	ColorCanvas    = "#000000" // image box behind letterboxed frames
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// Init activates the base theme and background colour.
func Init() {
	_ = ActivateTheme("azure light")
	App.Configure(Background(ColorBg))
}
