package query

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

type predicate[T any] func(row T) bool

// Compose returns the rows of data matching every active criterion, sorted
// stably by c.Sort. The result is always a new slice.
func Compose[T any](data []T, s *Schema[T], c Criteria) []T {
	preds := s.predicates(c)

	out := make([]T, 0, len(data))
	for _, row := range data {
		if matchAll(preds, row) {
			out = append(out, row)
		}
	}

	s.sortRows(out, c.Sort)
	return out
}

// FilterRows applies only the filtering half of c.
func FilterRows[T any](data []T, s *Schema[T], c Criteria) []T {
	c.Sort = SortKey{}
	return Compose(data, s, c)
}

// SortRows returns a stably sorted copy of data. An unknown field returns an
// unsorted copy.
func SortRows[T any](data []T, s *Schema[T], key SortKey) []T {
	out := slices.Clone(data)
	if out == nil {
		out = []T{}
	}
	s.sortRows(out, key)
	return out
}

func matchAll[T any](preds []predicate[T], row T) bool {
	for _, p := range preds {
		if !p(row) {
			return false
		}
	}
	return true
}

func (s *Schema[T]) predicates(c Criteria) []predicate[T] {
	var preds []predicate[T]

	if p := s.searchPredicate(c); p != nil {
		preds = append(preds, p)
	}

	for _, f := range c.Filters {
		if !f.Active() {
			continue
		}
		field, ok := s.Field(f.Field)
		if !ok {
			continue
		}
		if p := fieldPredicate(field, f); p != nil {
			preds = append(preds, p)
		}
	}

	return preds
}

func (s *Schema[T]) searchPredicate(c Criteria) predicate[T] {
	if c.Search == "" {
		return nil
	}

	names := c.SearchFields
	if len(names) == 0 {
		names = s.SearchFields()
	}
	var fields []Field[T]
	for _, n := range names {
		if f, ok := s.Field(n); ok {
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		return nil
	}

	fold := cases.Fold()
	needle := fold.String(c.Search)
	return func(row T) bool {
		for _, f := range fields {
			if strings.Contains(fold.String(f.Value(row)), needle) {
				return true
			}
		}
		return false
	}
}

func fieldPredicate[T any](field Field[T], f Filter) predicate[T] {
	switch {
	case f.Op == OpContains:
		fold := cases.Fold()
		needle := fold.String(f.Value)
		return func(row T) bool {
			return strings.Contains(fold.String(field.Value(row)), needle)
		}

	case f.Op.IsNumeric():
		if field.Number == nil {
			return nil
		}
		want, err := strconv.ParseFloat(f.Value, 64)
		if err != nil {
			return nil
		}
		return func(row T) bool {
			return compareNumber(field.Number(row), f.Op, want)
		}

	case field.Kind == KindBool:
		want, ok := ParseBool(f.Value)
		if !ok {
			return nil
		}
		raw := strconv.FormatBool(want)
		return func(row T) bool { return field.Value(row) == raw }

	case field.Kind == KindNumber && field.Number != nil:
		want, err := strconv.ParseFloat(f.Value, 64)
		if err != nil {
			return nil
		}
		return func(row T) bool { return field.Number(row) == want }

	default:
		return func(row T) bool { return field.Value(row) == f.Value }
	}
}

func compareNumber(got float64, op Op, want float64) bool {
	switch op {
	case OpGT:
		return got > want
	case OpGTE:
		return got >= want
	case OpLT:
		return got < want
	case OpLTE:
		return got <= want
	default:
		return got == want
	}
}

func (s *Schema[T]) sortRows(rows []T, key SortKey) {
	if key.IsZero() {
		return
	}
	field, ok := s.Field(key.Field)
	if !ok {
		return
	}

	compare := func(a, b T) int {
		return cmp.Compare(field.Value(a), field.Value(b))
	}
	if field.Number != nil && (field.Kind == KindNumber || field.Kind == KindBool) {
		compare = func(a, b T) int {
			return cmp.Compare(field.Number(a), field.Number(b))
		}
	}

	desc := key.Order == Desc
	slices.SortStableFunc(rows, func(a, b T) int {
		if desc {
			return compare(b, a)
		}
		return compare(a, b)
	})
}

// ParseBool accepts the usual strconv spellings plus "sí"/"si"/"no".
func ParseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sí", "si", "yes", "y":
		return true, true
	case "no", "n":
		return false, true
	}
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, false
	}
	return v, true
}
