package cli

import (
	"errors"
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/gridgallery/internal/cli/pagination"
	"github.com/rshade/gridgallery/internal/config"
	"github.com/rshade/gridgallery/internal/demo"
	"github.com/rshade/gridgallery/internal/logging"
	"github.com/rshade/gridgallery/internal/render"
	"github.com/rshade/gridgallery/internal/tui"
)

// ErrInvalidSize is returned for a --size outside 1..config.MaxDatasetSize.
var ErrInvalidSize = errors.New("invalid dataset size")

type demoParams struct {
	search      string
	filter      []string
	sort        string
	limit       int
	offset      int
	page        int
	pageSize    int
	size        int
	output      string
	interactive bool
	plain       bool
}

// NewDemoCmd creates the demo command, which generates the dataset of one
// library demo and shows the rows selected by search, filters, sort and
// pagination.
func NewDemoCmd() *cobra.Command {
	var params demoParams

	cmd := &cobra.Command{
		Use:   "demo <id|path>",
		Short: "Run one library demo",
		Long: `Generates the dataset of a library demo and shows it with the demo's
search, filters, sorting and pagination.

Filters use field=value for exact matches, field~text for substrings and
field>n, field>=n, field<n, field<=n for numeric ranges. Equality is exact,
substrings ignore case and the value "any" matches everything. Sort with field or
field:asc|desc.

Paginated demos (AG Grid, MUI DataGrid) show their first page in table
output unless pagination flags are given.

In interactive terminals --interactive launches a TUI with:
  - '/' to search, tab to pick a filter and 'f' to cycle its value
  - 's' to cycle the sort column and 'o' to flip the direction
  - 'n'/'p' to change page and '+' to change the page size
  - Enter for the row detail, 'q' or Ctrl+C to quit`,
		Example: `  # Users with role Admin and status Activo
  gridgallery demo tanstack-table --filter role=Admin --filter status=Activo

  # Restaurant menu: pizzas cheaper than 10, priciest first
  gridgallery demo ag-grid --filter category=Pizzas --filter "price<10" --sort price:desc

  # Second page of 20 rows as JSON
  gridgallery demo mui-datagrid --page 2 --page-size 20 --output json

  # A larger React Window dataset streamed as NDJSON
  gridgallery demo react-window --size 10000 --output ndjson | head -5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeDemo(cmd, args[0], params)
		},
	}

	cmd.Flags().StringVar(&params.search, "search", "", "free-text search over the demo's search columns")
	cmd.Flags().StringArrayVar(&params.filter, "filter", []string{},
		"filter expression, repeatable (e.g. 'role=Admin', 'age>=30', 'name~usuario 1')")
	cmd.Flags().StringVar(&params.sort, "sort", "", "sort expression (e.g. 'age:desc', 'name')")
	cmd.Flags().IntVar(&params.limit, "limit", 0, "maximum number of rows to return (0 = unlimited)")
	cmd.Flags().IntVar(&params.offset, "offset", 0, "number of rows to skip for offset-based pagination")
	cmd.Flags().IntVar(&params.page, "page", 0, "page number for page-based pagination (1-indexed, 0 = disabled)")
	cmd.Flags().IntVar(&params.pageSize, "page-size", 0, "rows per page (requires --page)")
	cmd.Flags().IntVar(&params.size, "size", 0, "number of generated records (0 = config or demo default)")
	cmd.Flags().StringVar(&params.output, "output", "", "output format: table, json, ndjson or csv (default from config)")
	cmd.Flags().BoolVarP(&params.interactive, "interactive", "i", false, "browse the demo in a TUI")
	cmd.Flags().BoolVar(&params.plain, "plain", false, "disable styling in table output")

	return cmd
}

//nolint:funlen // Sequential flag resolution reads best in one place.
func executeDemo(cmd *cobra.Command, ref string, params demoParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	d, err := demo.Get(ref)
	if err != nil {
		return err
	}

	size := params.size
	if size == 0 {
		size = config.GetGlobalConfig().DatasetSize(d.ID)
	}
	if size < 0 || size > config.MaxDatasetSize {
		return fmt.Errorf("%w: %d (1..%d)", ErrInvalidSize, size, config.MaxDatasetSize)
	}

	format, err := render.ParseFormat(resolveFormat(params.output))
	if err != nil {
		return err
	}

	sess := d.Open(size)
	criteria, err := buildCriteria(ctx, sess, params.search, params.filter, params.sort)
	if err != nil {
		return err
	}
	sess.Apply(criteria)

	log.Debug().Ctx(ctx).
		Str("demo", d.ID).
		Int("total", sess.Total()).
		Int("matched", sess.Len()).
		Str("criteria", fmt.Sprintf("%+v", sess.Criteria())).
		Msg("demo criteria applied")

	if params.interactive {
		if tui.DetectOutputMode(params.plain, false, true) == tui.OutputModeInteractive {
			return runInteractiveDemo(sess)
		}
		log.Warn().Ctx(ctx).Msg("--interactive needs a terminal, falling back to table output")
	}

	p, err := demoPagination(d, params, format)
	if err != nil {
		return fmt.Errorf("invalid pagination parameters: %w", err)
	}
	view := render.NewView(sess, p)

	w := cmd.OutOrStdout()
	switch format {
	case render.FormatTable:
		if tui.DetectOutputMode(params.plain, false, false) == tui.OutputModeStyled {
			return render.Styled(w, view, tui.TerminalWidth())
		}
		return render.Plain(w, view)
	case render.FormatNDJSON:
		// Pagination metadata is not emitted when streaming.
		err = render.NDJSON(w, view)
		if isBrokenPipe(err) {
			return nil
		}
		return err
	default:
		err = render.Write(w, format, view)
		if isBrokenPipe(err) {
			return nil
		}
		return err
	}
}

// demoPagination builds the pagination of a demo run. Paginated demos
// default to their first page for table output, and only accept the page
// sizes they offer.
func demoPagination(d demo.Demo, params demoParams, format render.Format) (pagination.PaginationParams, error) {
	p := pagination.PaginationParams{
		Limit:    params.limit,
		Offset:   params.offset,
		Page:     params.page,
		PageSize: params.pageSize,
	}

	if !d.Paginated() {
		p = p.WithDefaultPageSize(pagination.DefaultPageSize)
		return p, p.Validate()
	}

	pageSize := d.DefaultPageSize()
	if configured := config.GetGlobalConfig().Output.PageSize; slices.Contains(d.PageSizes, configured) {
		pageSize = configured
	}
	if format == render.FormatTable && !p.IsEnabled() {
		p.Page = pagination.DefaultPage
	}
	p = p.WithDefaultPageSize(pageSize)
	return p, p.ValidateOffered(d.PageSizes)
}

func runInteractiveDemo(sess demo.Session) error {
	p := tea.NewProgram(tui.NewDemoModel(sess), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}
