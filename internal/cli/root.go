// Package cli implements the gridgallery command tree.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/gridgallery/internal/config"
	"github.com/rshade/gridgallery/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the gridgallery CLI. It
// loads .env and the configuration, wires logging and tracing, and adds the
// gallery, demo, export, tui, config and version subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		projectDir string
	)

	cmd := &cobra.Command{
		Use:   "gridgallery",
		Short: "Gallery of table and list virtualization demos",
		Long: `gridgallery showcases six table and virtualization libraries
(TanStack Table, AG Grid, MUI DataGrid, React Virtual, React Window and
React Virtualized) over generated datasets, with search, filters, sorting,
pagination and summary figures.`,
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(); err != nil {
				cmd.PrintErrf("Warning: %v\n", err)
			}

			wd, _ := os.Getwd()
			resolved := config.ResolveProjectDir(cmd.Context(), projectDir, wd)
			config.SetGlobalConfig(config.NewWithProjectDir(cmd.Context(), resolved))

			result := setupLogging(cmd)
			logResult = &result

			if resolved != "" {
				logger.Debug().Ctx(cmd.Context()).Str("project_dir", resolved).Msg("using project configuration")
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&projectDir, "project-dir", "",
		"directory holding a project-local .gridgallery/config.yaml (default: search upwards from cwd)")

	cmd.AddCommand(
		NewGalleryCmd(), NewDemoCmd(), NewExportCmd(), NewTUICmd(),
		newConfigCmd(), NewVersionCmd(),
	)

	return cmd
}

const rootCmdExample = `  # List the showcased libraries
  gridgallery gallery

  # Show the AG Grid demo, searching every column
  gridgallery demo ag-grid --search pizza

  # Open a demo by its route and filter it
  gridgallery demo /tanstack-table --filter role=Admin --filter status=Activo

  # Page through the MUI demo as JSON
  gridgallery demo mui-datagrid --page 2 --page-size 20 --output json

  # Write every dataset as CSV
  gridgallery export --format csv --dir ./exports

  # Browse the gallery interactively
  gridgallery tui`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigShowCmd(), NewConfigPathCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
