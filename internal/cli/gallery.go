package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/gridgallery/internal/catalog"
	"github.com/rshade/gridgallery/internal/demo"
	"github.com/rshade/gridgallery/internal/render"
	"github.com/rshade/gridgallery/internal/tui"
)

// ErrGalleryFormat is returned for gallery output formats other than table and json.
var ErrGalleryFormat = errors.New("gallery output supports table or json")

// NewGalleryCmd creates the gallery command, which lists the showcased
// libraries grouped by category, and its show subcommand.
func NewGalleryCmd() *cobra.Command {
	var (
		category string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "List the showcased libraries",
		Long: `Lists the six showcased libraries grouped into "Tablas y Data Grids" and
"Virtualización (listas grandes)".`,
		Example: `  # List every library
  gridgallery gallery

  # Only the virtualization libraries, as JSON
  gridgallery gallery --category virtualization --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			groups := catalog.Grouped()
			if category != "" {
				c, err := catalog.ParseCategory(category)
				if err != nil {
					return err
				}
				groups = []catalog.Group{{Category: c, Libraries: catalog.InCategory(c)}}
			}

			format, err := galleryFormat(output)
			if err != nil {
				return err
			}
			if format == render.FormatJSON {
				return render.CatalogJSON(cmd.OutOrStdout(), groups)
			}

			if tui.DetectOutputMode(false, false, false) == tui.OutputModeStyled {
				return render.CatalogStyled(cmd.OutOrStdout(), groups, tui.TerminalWidth())
			}
			return render.Catalog(cmd.OutOrStdout(), groups)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only list one category: grids or virtualization")
	cmd.Flags().StringVar(&output, "output", "", "output format: table or json (default from config)")

	cmd.AddCommand(newGalleryShowCmd())
	return cmd
}

func newGalleryShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <id|path>",
		Short: "Show the information panel of one library",
		Example: `  gridgallery gallery show ag-grid
  gridgallery gallery show /react-window --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}

			format, err := galleryFormat(output)
			if err != nil {
				return err
			}
			if format == render.FormatJSON {
				return render.LibraryJSON(cmd.OutOrStdout(), lib)
			}

			d, err := demo.Get(lib.ID)
			if err != nil {
				return err
			}
			return render.Library(cmd.OutOrStdout(), lib, d)
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "output format: table or json (default from config)")
	return cmd
}

// galleryFormat resolves the output flag for catalog listings. Formats
// meant for datasets fall back to table when they come from the config.
func galleryFormat(flagValue string) (render.Format, error) {
	format, err := render.ParseFormat(resolveFormat(flagValue))
	if err != nil {
		return "", err
	}
	switch format {
	case render.FormatTable, render.FormatJSON:
		return format, nil
	default:
		if flagValue == "" {
			return render.FormatTable, nil
		}
		return "", fmt.Errorf("%w: %q", ErrGalleryFormat, flagValue)
	}
}
