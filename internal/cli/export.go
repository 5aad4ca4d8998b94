package cli

import (
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/rshade/gridgallery/internal/config"
	"github.com/rshade/gridgallery/internal/demo"
	"github.com/rshade/gridgallery/internal/export"
	"github.com/rshade/gridgallery/internal/render"
)

const progressWidth = 40

// NewExportCmd creates the export command, which writes the full dataset of
// each demo to its own file.
func NewExportCmd() *cobra.Command {
	var (
		dir     string
		format  string
		demoIDs []string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write demo datasets to files",
		Long: `Generates the dataset of every demo (or the ones named with --demo) and
writes each to <dir>/<demo-id>.<format>. Dataset sizes follow the datasets
section of the configuration. Datasets are generated concurrently.`,
		Example: `  # Export every demo as JSON into the configured export directory
  gridgallery export

  # CSV files for two demos into ./out
  gridgallery export --format csv --dir ./out --demo ag-grid --demo tanstack-table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, dir, format, demoIDs)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "output directory (default from config output.export_dir)")
	cmd.Flags().StringVar(&format, "format", string(render.FormatJSON), "file format: json, ndjson or csv")
	cmd.Flags().StringArrayVar(&demoIDs, "demo", nil, "demo id or route to export, repeatable (default all)")

	return cmd
}

func runExport(cmd *cobra.Command, dir, format string, demoIDs []string) error {
	cfg := config.GetGlobalConfig()
	if dir == "" {
		dir = cfg.Output.ExportDir
	}

	f, err := render.ParseFormat(format)
	if err != nil {
		return err
	}

	demos := demo.All()
	if len(demoIDs) > 0 {
		demos = make([]demo.Demo, 0, len(demoIDs))
		for _, id := range demoIDs {
			d, getErr := demo.Get(id)
			if getErr != nil {
				return getErr
			}
			demos = append(demos, d)
		}
	}

	sizes, err := config.GetDatasetSizes()
	if err != nil {
		return err
	}

	opts := export.Options{
		Dir:    dir,
		Format: f,
		Sizes:  sizes,
		Demos:  demos,
	}

	if isTerminal(os.Stderr) {
		bar := newExportBar(len(demos))
		opts.OnDone = func(export.Result) { _ = bar.Add(1) }
		defer func() { _ = bar.Finish() }()
	}

	results, err := export.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	for _, r := range results {
		cmd.Printf("%s\t%d rows\t%s\n", r.Demo, r.Rows, r.Path)
	}
	return nil
}

func newExportBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Exporting datasets"),
		progressbar.OptionSetWidth(progressWidth),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("demos"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
		progressbar.OptionClearOnFinish(),
	)
}
