package dataset

// Pool is a fixed table of categorical values. Values are picked by cycling
// through the pool with the record index.
type Pool []string

// At returns the pool value for index i, wrapping modulo the pool size.
// An empty pool yields "".
func (p Pool) At(i int) string {
	if len(p) == 0 {
		return ""
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// Contains reports whether v is one of the pool values.
func (p Pool) Contains(v string) bool {
	for _, s := range p {
		if s == v {
			return true
		}
	}
	return false
}

// Values returns a copy of the pool, safe for callers to modify.
func (p Pool) Values() []string {
	out := make([]string, len(p))
	copy(out, p)
	return out
}

// Generate builds n records by calling build with the 0-based index of each.
// n <= 0 returns an empty, non-nil slice.
func Generate[T any](n int, build func(index int) T) []T {
	if n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	for i := range n {
		out[i] = build(i)
	}
	return out
}
