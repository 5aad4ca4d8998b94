package demo

import (
	"github.com/rshade/gridgallery/internal/query"
	"github.com/rshade/gridgallery/internal/summary"
)

// Column describes one visible column of a session.
type Column struct {
	Name   string
	Header string
	Kind   query.Kind
}

// Session is an open demo: a private dataset plus the view derived from the
// current criteria. Every mutator recomputes the view (and summary) before
// returning. A Session is not safe for concurrent use.
type Session interface {
	Demo() Demo
	Columns() []Column
	// Len is the number of records in the current view.
	Len() int
	// Total is the size of the unfiltered dataset.
	Total() int
	// Cell renders column col of view row row for display.
	Cell(row, col int) string
	// Raw returns the unformatted value of column col.
	Raw(row, col int) string
	// Value returns the raw value of any schema field, visible or not.
	Value(row int, field string) string
	// Records returns a copy of the current view as a typed slice.
	Records() any
	// Record returns view row row.
	Record(row int) any
	// Summary is nil for demos without KPIs.
	Summary() *summary.Summary
	Criteria() query.Criteria
	// UnknownFields lists fields referenced by c that this demo does not have.
	UnknownFields(c query.Criteria) []string
	// IgnoredFilters lists filters in c whose value the field cannot parse.
	IgnoredFilters(c query.Criteria) []query.Filter

	SetSearch(text string)
	SetEquals(field, value string)
	AddFilter(f query.Filter)
	SetSort(key query.SortKey)
	ToggleSort(field string)
	Reset()
	Apply(c query.Criteria)
}

type session[T any] struct {
	demo      Demo
	data      []T
	schema    *query.Schema[T]
	columns   []query.Field[T]
	summarize func([]T) summary.Summary

	criteria query.Criteria
	view     []T
	sum      *summary.Summary
}

func newSession[T any](d Demo, data []T, s *query.Schema[T], summarize func([]T) summary.Summary) *session[T] {
	ss := &session[T]{
		demo:      d,
		data:      data,
		schema:    s,
		summarize: summarize,
	}
	names := d.Columns
	if len(names) == 0 {
		names = s.Names()
	}
	for _, n := range names {
		if f, ok := s.Field(n); ok {
			ss.columns = append(ss.columns, f)
		}
	}
	ss.Reset()
	return ss
}

func (s *session[T]) Demo() Demo { return s.demo }

func (s *session[T]) Columns() []Column {
	cols := make([]Column, len(s.columns))
	for i, f := range s.columns {
		cols[i] = Column{Name: f.Name, Header: f.Header, Kind: f.Kind}
	}
	return cols
}

func (s *session[T]) Len() int   { return len(s.view) }
func (s *session[T]) Total() int { return len(s.data) }

func (s *session[T]) Cell(row, col int) string {
	if !s.inRange(row, col) {
		return ""
	}
	return s.columns[col].Display(s.view[row])
}

func (s *session[T]) Raw(row, col int) string {
	if !s.inRange(row, col) {
		return ""
	}
	return s.columns[col].Value(s.view[row])
}

func (s *session[T]) Value(row int, field string) string {
	f, ok := s.schema.Field(field)
	if !ok || row < 0 || row >= len(s.view) {
		return ""
	}
	return f.Value(s.view[row])
}

func (s *session[T]) inRange(row, col int) bool {
	return row >= 0 && row < len(s.view) && col >= 0 && col < len(s.columns)
}

func (s *session[T]) Records() any {
	out := make([]T, len(s.view))
	copy(out, s.view)
	return out
}

func (s *session[T]) Record(row int) any {
	if row < 0 || row >= len(s.view) {
		return nil
	}
	return s.view[row]
}

func (s *session[T]) Summary() *summary.Summary {
	if s.sum == nil {
		return nil
	}
	sum := s.sum.Clone()
	return &sum
}

func (s *session[T]) Criteria() query.Criteria {
	return s.criteria.Clone()
}

func (s *session[T]) UnknownFields(c query.Criteria) []string {
	return s.schema.UnknownFields(c)
}

func (s *session[T]) IgnoredFilters(c query.Criteria) []query.Filter {
	return s.schema.IgnoredFilters(c)
}

func (s *session[T]) SetSearch(text string) {
	s.criteria.Search = text
	s.recompute()
}

func (s *session[T]) SetEquals(field, value string) {
	s.criteria = s.criteria.WithEquals(field, value)
	s.recompute()
}

func (s *session[T]) AddFilter(f query.Filter) {
	if f.Op == "" || f.Op == query.OpEq {
		s.SetEquals(f.Field, f.Value)
		return
	}
	s.criteria = s.criteria.Clone()
	s.criteria.Filters = append(s.criteria.Filters, f)
	s.recompute()
}

func (s *session[T]) SetSort(key query.SortKey) {
	s.criteria.Sort = key
	s.recompute()
}

func (s *session[T]) ToggleSort(field string) {
	s.criteria.Sort = query.ToggleSort(s.criteria.Sort, field)
	s.recompute()
}

func (s *session[T]) Reset() {
	s.Apply(query.Criteria{})
}

// Apply replaces the criteria. Missing search fields and sort fall back to
// the demo defaults.
func (s *session[T]) Apply(c query.Criteria) {
	c = c.Clone()
	if len(c.SearchFields) == 0 {
		c.SearchFields = append([]string(nil), s.demo.SearchFields...)
	}
	if c.Sort.IsZero() {
		c.Sort = s.demo.DefaultSort
	}
	s.criteria = c
	s.recompute()
}

func (s *session[T]) recompute() {
	s.view = query.Compose(s.data, s.schema, s.criteria)
	if s.summarize != nil {
		sum := s.summarize(s.view)
		s.sum = &sum
	}
}
