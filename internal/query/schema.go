package query

import (
	"strconv"
)

// Kind classifies how a field is matched and compared.
type Kind int

const (
	// KindText is free text: substring search, lexical sort.
	KindText Kind = iota
	// KindEnum is a value from a fixed pool: exact match, lexical sort.
	KindEnum
	// KindNumber is numeric: range filters, numeric sort.
	KindNumber
	// KindBool is a flag: exact match, false sorts before true.
	KindBool
)

// String returns the kind name used in help output.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindEnum:
		return "enum"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Field describes one named column of a record type.
type Field[T any] struct {
	Name   string
	Header string
	Kind   Kind

	// Value is the raw value used for matching and lexical sorting.
	Value func(T) string
	// Number is set for numeric and boolean kinds.
	Number func(T) float64
	// Format renders the value for display. Nil means Value.
	Format func(T) string
}

// Display renders the field of row for presentation.
func (f Field[T]) Display(row T) string {
	if f.Format != nil {
		return f.Format(row)
	}
	return f.Value(row)
}

// WithFormat returns a copy of f using fn for display.
func (f Field[T]) WithFormat(fn func(T) string) Field[T] {
	f.Format = fn
	return f
}

// Text declares a free-text field.
func Text[T any](name, header string, value func(T) string) Field[T] {
	return Field[T]{Name: name, Header: header, Kind: KindText, Value: value}
}

// Enum declares a categorical field.
func Enum[T any](name, header string, value func(T) string) Field[T] {
	return Field[T]{Name: name, Header: header, Kind: KindEnum, Value: value}
}

// Int declares an integer field.
func Int[T any](name, header string, value func(T) int) Field[T] {
	return Field[T]{
		Name:   name,
		Header: header,
		Kind:   KindNumber,
		Value:  func(row T) string { return strconv.Itoa(value(row)) },
		Number: func(row T) float64 { return float64(value(row)) },
	}
}

// Float declares a decimal field rendered with the given precision.
func Float[T any](name, header string, value func(T) float64, precision int) Field[T] {
	return Field[T]{
		Name:   name,
		Header: header,
		Kind:   KindNumber,
		Value:  func(row T) string { return strconv.FormatFloat(value(row), 'f', precision, 64) },
		Number: value,
	}
}

// Bool declares a boolean field. Its raw value is "true" or "false".
func Bool[T any](name, header string, value func(T) bool) Field[T] {
	return Field[T]{
		Name:   name,
		Header: header,
		Kind:   KindBool,
		Value:  func(row T) string { return strconv.FormatBool(value(row)) },
		Number: func(row T) float64 {
			if value(row) {
				return 1
			}
			return 0
		},
	}
}

// Schema is the ordered set of fields of a record type.
type Schema[T any] struct {
	fields []Field[T]
	index  map[string]int
	search []string
}

// NewSchema builds a schema. A later field with a duplicate name replaces the
// earlier one in lookups but both stay in column order.
func NewSchema[T any](fields ...Field[T]) *Schema[T] {
	s := &Schema[T]{
		fields: fields,
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		s.index[f.Name] = i
	}
	return s
}

// WithSearch sets the fields the free-text search looks at. Unknown names
// are dropped.
func (s *Schema[T]) WithSearch(names ...string) *Schema[T] {
	s.search = s.search[:0]
	for _, n := range names {
		if s.Has(n) {
			s.search = append(s.search, n)
		}
	}
	return s
}

// Has reports whether the schema declares name.
func (s *Schema[T]) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Field returns the field called name.
func (s *Schema[T]) Field(name string) (Field[T], bool) {
	i, ok := s.index[name]
	if !ok {
		return Field[T]{}, false
	}
	return s.fields[i], true
}

// Fields returns the fields in column order.
func (s *Schema[T]) Fields() []Field[T] {
	out := make([]Field[T], len(s.fields))
	copy(out, s.fields)
	return out
}

// Names returns the field names in column order.
func (s *Schema[T]) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// SearchFields returns the default search fields. Without an explicit
// WithSearch every text and enum field is searched.
func (s *Schema[T]) SearchFields() []string {
	if len(s.search) > 0 {
		out := make([]string, len(s.search))
		copy(out, s.search)
		return out
	}
	var out []string
	for _, f := range s.fields {
		if f.Kind == KindText || f.Kind == KindEnum {
			out = append(out, f.Name)
		}
	}
	return out
}

// UnknownFields lists the field names referenced by c that the schema does
// not declare, in the order they appear.
func (s *Schema[T]) UnknownFields(c Criteria) []string {
	var unknown []string
	seen := map[string]bool{}
	add := func(name string) {
		if name == "" || s.Has(name) || seen[name] {
			return
		}
		seen[name] = true
		unknown = append(unknown, name)
	}
	for _, name := range c.SearchFields {
		add(name)
	}
	for _, f := range c.Filters {
		add(f.Field)
	}
	add(c.Sort.Field)
	return unknown
}

// IgnoredFilters lists the active filters on declared fields whose value the
// field cannot parse, such as a non-numeric bound or a bool that is neither
// true nor false. Compose drops them.
func (s *Schema[T]) IgnoredFilters(c Criteria) []Filter {
	var ignored []Filter
	for _, f := range c.Filters {
		if !f.Active() {
			continue
		}
		field, ok := s.Field(f.Field)
		if !ok {
			continue
		}
		if fieldPredicate(field, f) == nil {
			ignored = append(ignored, f)
		}
	}
	return ignored
}
