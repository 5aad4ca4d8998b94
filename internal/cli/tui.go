package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/gridgallery/internal/config"
	"github.com/rshade/gridgallery/internal/tui"
)

// ErrNotInteractive is returned by the tui command outside a terminal.
var ErrNotInteractive = errors.New("the gallery TUI needs an interactive terminal")

// NewTUICmd creates the tui command, which opens the interactive gallery.
func NewTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the gallery interactively",
		Long: `Opens the gallery in a full-screen terminal UI. Pick a library with the
arrow keys or tab and press Enter to open its demo; Esc returns to the
gallery and q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sizes, err := config.GetDatasetSizes()
			if err != nil {
				return err
			}
			if tui.DetectOutputMode(false, false, true) != tui.OutputModeInteractive {
				return ErrNotInteractive
			}

			model := tui.NewGalleryModel(sizes)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to run gallery TUI: %w", err)
			}
			return nil
		},
	}
}
