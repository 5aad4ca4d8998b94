package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse errors.
var (
	ErrInvalidFilter      = errors.New("invalid filter: use field=value, field~text or field>=n")
	ErrEmptyFilterField   = errors.New("filter field cannot be empty")
	ErrInvalidFilterValue = errors.New("numeric filter needs a number")
	ErrInvalidSortFormat  = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'age:desc')")
	ErrEmptySortField     = errors.New("sort field cannot be empty")
	ErrInvalidSortOrder   = errors.New("sort order must be 'asc' or 'desc'")
)

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// operators in match priority: two-character operators first.
//
//nolint:gochecknoglobals // Constant lookup table.
var operators = []Op{OpGTE, OpLTE, OpEq, OpContains, OpGT, OpLT}

// ParseFilter parses "field=value", "field~text" or "field>=n" style
// expressions. The operator is the first one appearing in expr.
func ParseFilter(expr string) (Filter, error) {
	idx, op := findOperator(expr)
	if idx < 0 {
		return Filter{}, fmt.Errorf("%w: %q", ErrInvalidFilter, expr)
	}

	field := strings.TrimSpace(expr[:idx])
	value := strings.TrimSpace(expr[idx+len(op):])
	if field == "" {
		return Filter{}, fmt.Errorf("%w: %q", ErrEmptyFilterField, expr)
	}

	if op.IsNumeric() {
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return Filter{}, fmt.Errorf("%w: %q", ErrInvalidFilterValue, expr)
		}
	}

	return Filter{Field: field, Op: op, Value: value}, nil
}

// ParseFilters parses every non-empty expression, stopping at the first error.
func ParseFilters(exprs []string) ([]Filter, error) {
	var filters []Filter
	for _, e := range exprs {
		if strings.TrimSpace(e) == "" {
			continue
		}
		f, err := ParseFilter(e)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}

func findOperator(expr string) (int, Op) {
	best := -1
	var bestOp Op
	for _, op := range operators {
		i := strings.Index(expr, string(op))
		if i < 0 {
			continue
		}
		// Earlier position wins; at the same position the longer operator does.
		if best < 0 || i < best || (i == best && len(op) > len(bestOp)) {
			best, bestOp = i, op
		}
	}
	return best, bestOp
}

// ParseSort parses "field" or "field:order". An empty string means no sort.
func ParseSort(expr string) (SortKey, error) {
	if strings.TrimSpace(expr) == "" {
		return SortKey{}, nil
	}

	parts := strings.Split(expr, ":")
	var key SortKey
	switch len(parts) {
	case 1:
		key = SortKey{Field: strings.TrimSpace(parts[0]), Order: Asc}
	case sortPartsMax:
		key = SortKey{
			Field: strings.TrimSpace(parts[0]),
			Order: Order(strings.ToLower(strings.TrimSpace(parts[1]))),
		}
	default:
		return SortKey{}, fmt.Errorf("%w: %q", ErrInvalidSortFormat, expr)
	}

	if key.Field == "" {
		return SortKey{}, ErrEmptySortField
	}
	if key.Order != Asc && key.Order != Desc {
		return SortKey{}, fmt.Errorf("%w: got %q", ErrInvalidSortOrder, key.Order)
	}
	return key, nil
}
