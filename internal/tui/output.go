package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is how table output is presented.
type OutputMode int

const (
	// OutputModePlain writes unstyled text, for pipes and CI.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss-styled text without interaction.
	OutputModeStyled
	// OutputModeInteractive runs a Bubble Tea program.
	OutputModeInteractive
)

func (m OutputMode) String() string {
	switch m {
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "plain"
	}
}

const defaultTerminalWidth = 100

// DetectOutputMode picks the presentation for table output. plain forces
// OutputModePlain; otherwise a TTY on stdout gives styled output, or
// interactive when requested. NO_COLOR and CI disable styling.
func DetectOutputMode(forcePlain, noColor, interactive bool) OutputMode {
	if forcePlain || noColor || os.Getenv("NO_COLOR") != "" || os.Getenv("CI") != "" {
		return OutputModePlain
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return OutputModePlain
	}
	if interactive {
		return OutputModeInteractive
	}
	return OutputModeStyled
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the stdout width, or a default when unknown.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultTerminalWidth
	}
	return w
}
