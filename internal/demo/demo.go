package demo

import (
	"errors"
	"fmt"

	"github.com/rshade/gridgallery/internal/catalog"
	"github.com/rshade/gridgallery/internal/query"
)

// ErrUnknownDemo is returned when no demo matches an id or route path.
var ErrUnknownDemo = errors.New("unknown demo")

// Kind is the record type a demo presents.
type Kind string

// Record kinds.
const (
	KindMenu  Kind = "menu"
	KindUsers Kind = "users"
	KindTasks Kind = "tasks"
)

// FilterControl is an enum dropdown of a demo view. The empty
// selection is labelled AllLabel.
type FilterControl struct {
	Field    string
	AllLabel string
	Options  []string
}

// Demo is the static description of one library demo.
type Demo struct {
	ID    string
	Title string
	Kind  Kind
	// Size is the default record count.
	Size int
	// Noun names the records in the "Mostrando X de Y" footer.
	Noun string

	// Columns restricts the visible columns; empty means every field.
	Columns           []string
	SearchFields      []string
	SearchPlaceholder string
	Filters           []FilterControl
	// Sortable lists the fields the interactive view can sort by.
	Sortable    []string
	DefaultSort query.SortKey

	// PageSizes is empty for virtualized demos.
	PageSizes []int
	RowHeight int
	Overscan  int

	HasSummary bool
	// AverageLabel and AverageUnit caption the summary mean.
	AverageLabel string
	AverageUnit  string

	open func(d Demo, size int) Session
}

// Open generates the demo dataset and returns a session over it. A size of
// zero or less uses the demo default.
func (d Demo) Open(size int) Session {
	if size <= 0 {
		size = d.Size
	}
	return d.open(d, size)
}

// Paginated reports whether the demo pages its rows instead of virtualizing.
func (d Demo) Paginated() bool {
	return len(d.PageSizes) > 0
}

// DefaultPageSize is the first offered page size, or 0.
func (d Demo) DefaultPageSize() int {
	if len(d.PageSizes) == 0 {
		return 0
	}
	return d.PageSizes[0]
}

// Library returns the catalog entry of the demo.
func (d Demo) Library() catalog.Library {
	lib, err := catalog.ByID(d.ID)
	if err != nil {
		return catalog.Library{ID: d.ID, Name: d.Title}
	}
	return lib
}

// FilterControl returns the control for field.
func (d Demo) FilterControl(field string) (FilterControl, bool) {
	for _, fc := range d.Filters {
		if fc.Field == field {
			return fc, true
		}
	}
	return FilterControl{}, false
}

// Get resolves a demo by library id or route path.
func Get(ref string) (Demo, error) {
	lib, err := catalog.Lookup(ref)
	if err != nil {
		return Demo{}, fmt.Errorf("%w: %q", ErrUnknownDemo, ref)
	}
	for _, d := range registry() {
		if d.ID == lib.ID {
			return d, nil
		}
	}
	return Demo{}, fmt.Errorf("%w: %q", ErrUnknownDemo, ref)
}

// All returns every demo in catalog order.
func All() []Demo {
	return registry()
}
