package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/rshade/gridgallery/internal/config"
)

// NewConfigValidateCmd creates the config validate command.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: the global file, the project
overlay and GRIDGALLERY_* environment overrides.

This includes:
- Output format and page size
- Log level and format
- Dataset size overrides (known demo ids, sizes within range)`,
		Example: `  # Validate current configuration
  gridgallery config validate

  # Validate and show the effective values
  gridgallery config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Println("✅ Configuration is valid")

	if verbose {
		cmd.Printf("\nConfiguration file: %s\n", cfg.ConfigPath())
		cmd.Printf("Output format: %s\n", cfg.Output.DefaultFormat)
		if cfg.Output.PageSize > 0 {
			cmd.Printf("Page size: %d\n", cfg.Output.PageSize)
		}
		cmd.Printf("Export directory: %s\n", cfg.Output.ExportDir)
		cmd.Printf("Logging: %s (%s)\n", cfg.Logging.Level, cfg.Logging.Format)
		if cfg.Logging.File != "" {
			cmd.Printf("Log file: %s\n", cfg.Logging.File)
		}
		for _, id := range slices.Sorted(maps.Keys(cfg.Datasets)) {
			cmd.Printf("Dataset %s: %d rows\n", id, cfg.Datasets[id])
		}
	}

	return nil
}
