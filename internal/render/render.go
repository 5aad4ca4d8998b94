// Package render writes a demo session view as text, JSON, NDJSON or CSV.
package render

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rshade/gridgallery/internal/cli/pagination"
	"github.com/rshade/gridgallery/internal/demo"
)

// Format is an output format name.
type Format string

// Supported formats.
const (
	FormatTable  Format = "table"
	FormatJSON   Format = "json"
	FormatNDJSON Format = "ndjson"
	FormatCSV    Format = "csv"
)

// ErrUnsupportedFormat is returned by ParseFormat.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatTable, FormatJSON, FormatNDJSON, FormatCSV}
}

// ParseFormat validates a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Formats(), f) {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (use table, json, ndjson or csv)", ErrUnsupportedFormat, s)
}

// View is the page of a session to write.
type View struct {
	Session demo.Session
	// Rows are indexes into the session view, in output order.
	Rows []int
	// Meta is set when the rows are one page of a paginated listing.
	Meta *pagination.PaginationMeta
}

// NewView selects the rows of s chosen by p. Pagination metadata is
// attached only when p is enabled.
func NewView(s demo.Session, p pagination.PaginationParams) View {
	all := make([]int, s.Len())
	for i := range all {
		all[i] = i
	}
	v := View{Session: s, Rows: pagination.Apply(p, all)}
	if p.IsEnabled() {
		meta := pagination.NewPaginationMeta(p, s.Len())
		v.Meta = &meta
	}
	return v
}

// FullView selects every row of s.
func FullView(s demo.Session) View {
	return NewView(s, pagination.PaginationParams{})
}

func (v View) headers() []string {
	cols := v.Session.Columns()
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Header
	}
	return out
}

func (v View) cells(row int, raw bool) []string {
	n := len(v.Session.Columns())
	out := make([]string, n)
	for col := range n {
		if raw {
			out[col] = v.Session.Raw(row, col)
		} else {
			out[col] = v.Session.Cell(row, col)
		}
	}
	return out
}

func (v View) pageLine() string {
	if v.Meta == nil || v.Meta.TotalPages == 0 {
		return ""
	}
	return fmt.Sprintf("Página %d de %d", v.Meta.CurrentPage, v.Meta.TotalPages)
}
