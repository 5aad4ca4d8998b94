package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/gridgallery/internal/config"
)

// ErrConfigFormat is returned by config show for formats other than yaml and json.
var ErrConfigFormat = errors.New("unsupported config output format")

// NewConfigShowCmd creates the config show command, printing the effective
// configuration as YAML or JSON.
func NewConfigShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Example: `  # Show the merged configuration
  gridgallery config show

  # As JSON
  gridgallery config show --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			switch output {
			case "yaml", "":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(cfg); err != nil {
					return fmt.Errorf("encoding configuration: %w", err)
				}
				return enc.Close()
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			default:
				return fmt.Errorf("%w: %s (use yaml or json)", ErrConfigFormat, output)
			}
		},
	}

	cmd.Flags().StringVar(&output, "output", "yaml", "output format: yaml or json")

	return cmd
}

// NewConfigPathCmd creates the config path command.
func NewConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(config.GetGlobalConfig().ConfigPath())
		},
	}
}
