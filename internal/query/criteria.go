package query

// Any is the sentinel filter value meaning "no constraint".
const Any = "any"

// Op is a filter comparison operator.
type Op string

// Supported filter operators.
const (
	OpEq       Op = "="
	OpContains Op = "~"
	OpGT       Op = ">"
	OpGTE      Op = ">="
	OpLT       Op = "<"
	OpLTE      Op = "<="
)

// IsNumeric reports whether the operator compares numbers.
func (o Op) IsNumeric() bool {
	switch o {
	case OpGT, OpGTE, OpLT, OpLTE:
		return true
	default:
		return false
	}
}

// Order is a sort direction.
type Order string

// Sort directions.
const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// Filter constrains one field.
type Filter struct {
	Field string `json:"field" yaml:"field"`
	Op    Op     `json:"op"    yaml:"op"`
	Value string `json:"value" yaml:"value"`
}

// Active reports whether the filter constrains anything. Equality and
// substring filters with an empty or Any value are inactive.
func (f Filter) Active() bool {
	if f.Field == "" {
		return false
	}
	if f.Op == OpEq || f.Op == OpContains || f.Op == "" {
		return f.Value != "" && f.Value != Any
	}
	return true
}

// String renders the filter in the syntax ParseFilter accepts.
func (f Filter) String() string {
	op := f.Op
	if op == "" {
		op = OpEq
	}
	return f.Field + string(op) + f.Value
}

// SortKey selects the sort field and direction. A zero SortKey keeps the
// filtered order.
type SortKey struct {
	Field string `json:"field" yaml:"field"`
	Order Order  `json:"order" yaml:"order"`
}

// IsZero reports whether no sort is requested.
func (k SortKey) IsZero() bool {
	return k.Field == ""
}

// String renders the key in the syntax ParseSort accepts.
func (k SortKey) String() string {
	if k.IsZero() {
		return ""
	}
	order := k.Order
	if order == "" {
		order = Asc
	}
	return k.Field + ":" + string(order)
}

// ToggleSort returns the key after the user picks field: picking the current
// field flips its direction, picking another field sorts it ascending.
func ToggleSort(current SortKey, field string) SortKey {
	if current.Field == field {
		if current.Order == Desc {
			return SortKey{Field: field, Order: Asc}
		}
		return SortKey{Field: field, Order: Desc}
	}
	return SortKey{Field: field, Order: Asc}
}

// Criteria is the complete set of user-supplied view inputs.
type Criteria struct {
	// Search is matched case-insensitively as a substring of any search field.
	Search string `json:"search,omitempty" yaml:"search,omitempty"`
	// SearchFields overrides the schema's default search fields.
	SearchFields []string `json:"searchFields,omitempty" yaml:"search_fields,omitempty"`
	// Filters are combined with logical AND.
	Filters []Filter `json:"filters,omitempty" yaml:"filters,omitempty"`
	// Sort is applied after filtering.
	Sort SortKey `json:"sort,omitzero" yaml:"sort,omitempty"`
}

// WithEquals returns a copy of c where the equality filter on field is
// replaced by value. Passing "" or Any clears it.
func (c Criteria) WithEquals(field, value string) Criteria {
	out := c.Clone()
	filters := out.Filters[:0]
	for _, f := range out.Filters {
		if f.Field == field && (f.Op == OpEq || f.Op == "") {
			continue
		}
		filters = append(filters, f)
	}
	if value != "" && value != Any {
		filters = append(filters, Filter{Field: field, Op: OpEq, Value: value})
	}
	out.Filters = filters
	return out
}

// Equals returns the value of the equality filter on field, or "".
func (c Criteria) Equals(field string) string {
	for _, f := range c.Filters {
		if f.Field == field && (f.Op == OpEq || f.Op == "") {
			return f.Value
		}
	}
	return ""
}

// Clone returns a deep copy of c.
func (c Criteria) Clone() Criteria {
	out := c
	out.SearchFields = append([]string(nil), c.SearchFields...)
	out.Filters = append([]Filter(nil), c.Filters...)
	return out
}
