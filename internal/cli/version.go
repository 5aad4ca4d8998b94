package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/gridgallery/pkg/version"
)

// ErrVersionFormat is returned for version output formats other than table and json.
var ErrVersionFormat = errors.New("version output supports table or json")

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Info()
			switch output {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			case "", "table":
				suffix := ""
				if version.IsDev(info.Version) {
					suffix = " (development build)"
				}
				cmd.Printf("%s %s%s\n", version.Name, info.Version, suffix)
				cmd.Printf("  commit:   %s\n", info.Commit)
				cmd.Printf("  built:    %s\n", info.BuildDate)
				cmd.Printf("  go:       %s\n", info.GoVersion)
				cmd.Printf("  platform: %s\n", info.Platform)
				return nil
			default:
				return fmt.Errorf("%w: %q", ErrVersionFormat, output)
			}
		},
	}

	cmd.Flags().StringVar(&output, "output", "table", "output format: table or json")

	return cmd
}
