// Package tui holds the Bubble Tea models, styles and terminal helpers of
// the interactive gallery.
package tui

// ViewState is the screen a model is showing.
type ViewState int

// View states.
const (
	ViewStateList ViewState = iota
	ViewStateDetail
	ViewStateQuitting
)

// Key names as reported by tea.KeyMsg.String().
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEnter    = "enter"
	keyEsc      = "esc"
	keySlash    = "/"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyFilter   = "f"
	keySort     = "s"
	keyOrder    = "o"
	keyReset    = "r"
	keyNextPage = "n"
	keyPrevPage = "p"
	keyPageSize = "+"
	keyUp       = "up"
	keyDown     = "down"
	keyK        = "k"
	keyJ        = "j"
)

// Layout defaults used until the first tea.WindowSizeMsg arrives.
const (
	defaultWidth  = 120
	defaultHeight = 32
	minHeight     = 3

	filterInputCharLimit = 64
	filterInputWidth     = 40

	maxColumnWidth = 32
	columnGap      = 2
)
