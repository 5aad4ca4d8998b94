package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	ID     int
	Name   string
	City   string
	Role   string
	Age    int
	Score  float64
	Active bool
}

func personSchema() *Schema[person] {
	return NewSchema(
		Int("id", "ID", func(p person) int { return p.ID }),
		Text("name", "Nombre", func(p person) string { return p.Name }),
		Text("city", "Ciudad", func(p person) string { return p.City }),
		Enum("role", "Rol", func(p person) string { return p.Role }),
		Int("age", "Edad", func(p person) int { return p.Age }),
		Float("score", "Score", func(p person) float64 { return p.Score }, 2),
		Bool("active", "Activo", func(p person) bool { return p.Active }),
	).WithSearch("name", "city")
}

func people() []person {
	return []person{
		{1, "Ana", "Córdoba", "Admin", 30, 4.5, true},
		{2, "Bruno", "Rosario", "Editor", 25, 3.0, false},
		{3, "Carla", "Salta", "Admin", 30, 4.0, false},
		{4, "Diego", "ÁVILA", "Usuario", 41, 2.5, true},
		{5, "Elena", "Rosario", "Admin", 25, 4.5, true},
	}
}

func ids(rows []person) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func TestCompose_NoCriteriaReturnsCopy(t *testing.T) {
	data := people()
	got := Compose(data, personSchema(), Criteria{})
	assert.Equal(t, data, got)

	got[0].Name = "changed"
	assert.Equal(t, "Ana", data[0].Name)
}

func TestCompose_Search(t *testing.T) {
	tests := []struct {
		name   string
		search string
		fields []string
		want   []int
	}{
		{name: "case insensitive name", search: "ANA", want: []int{1}},
		{name: "matches any search field", search: "rosario", want: []int{2, 5}},
		{name: "unicode folding", search: "ávila", want: []int{4}},
		{name: "no match", search: "zzz", want: []int{}},
		{name: "explicit search fields", search: "admin", fields: []string{"role"}, want: []int{1, 3, 5}},
		{name: "role not searched by default", search: "admin", want: []int{}},
		{name: "unknown search fields are a no-op", search: "x", fields: []string{"nope"}, want: []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(people(), personSchema(), Criteria{Search: tt.search, SearchFields: tt.fields})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestCompose_Filters(t *testing.T) {
	tests := []struct {
		name    string
		filters []Filter
		want    []int
	}{
		{name: "enum equals", filters: []Filter{{Field: "role", Op: OpEq, Value: "Admin"}}, want: []int{1, 3, 5}},
		{name: "any sentinel", filters: []Filter{{Field: "role", Op: OpEq, Value: Any}}, want: []int{1, 2, 3, 4, 5}},
		{name: "empty value", filters: []Filter{{Field: "role", Op: OpEq}}, want: []int{1, 2, 3, 4, 5}},
		{name: "enum is case sensitive", filters: []Filter{{Field: "role", Op: OpEq, Value: "admin"}}, want: []int{}},
		{name: "conjunction", filters: []Filter{
			{Field: "role", Op: OpEq, Value: "Admin"},
			{Field: "age", Op: OpEq, Value: "25"},
		}, want: []int{5}},
		{name: "contains", filters: []Filter{{Field: "name", Op: OpContains, Value: "AR"}}, want: []int{3}},
		{name: "gte", filters: []Filter{{Field: "age", Op: OpGTE, Value: "30"}}, want: []int{1, 3, 4}},
		{name: "lt float", filters: []Filter{{Field: "score", Op: OpLT, Value: "3"}}, want: []int{4}},
		{name: "bool spanish", filters: []Filter{{Field: "active", Op: OpEq, Value: "Sí"}}, want: []int{1, 4, 5}},
		{name: "bool false", filters: []Filter{{Field: "active", Op: OpEq, Value: "false"}}, want: []int{2, 3}},
		{name: "unknown field ignored", filters: []Filter{{Field: "salary", Op: OpGT, Value: "1"}}, want: []int{1, 2, 3, 4, 5}},
		{name: "unparseable number ignored", filters: []Filter{{Field: "age", Op: OpGT, Value: "old"}}, want: []int{1, 2, 3, 4, 5}},
		{name: "numeric op on text ignored", filters: []Filter{{Field: "name", Op: OpGT, Value: "1"}}, want: []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(people(), personSchema(), Criteria{Filters: tt.filters})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestCompose_SortIsStable(t *testing.T) {
	s := personSchema()

	asc := Compose(people(), s, Criteria{Sort: SortKey{Field: "age", Order: Asc}})
	assert.Equal(t, []int{2, 5, 1, 3, 4}, ids(asc))

	desc := Compose(people(), s, Criteria{Sort: SortKey{Field: "age", Order: Desc}})
	assert.Equal(t, []int{4, 1, 3, 2, 5}, ids(desc), "ties keep original order when descending")

	byRole := Compose(people(), s, Criteria{Sort: SortKey{Field: "role"}})
	assert.Equal(t, []int{1, 3, 5, 2, 4}, ids(byRole))

	byBool := Compose(people(), s, Criteria{Sort: SortKey{Field: "active", Order: Asc}})
	assert.Equal(t, []int{2, 3, 1, 4, 5}, ids(byBool))
}

func TestCompose_NumericSortIsNotLexical(t *testing.T) {
	data := make([]person, 12)
	for i := range data {
		data[i] = person{ID: 12 - i, Name: fmt.Sprintf("p%d", i)}
	}
	got := Compose(data, personSchema(), Criteria{Sort: SortKey{Field: "id"}})
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, ids(got))
}

func TestCompose_UnknownSortIsNoop(t *testing.T) {
	got := Compose(people(), personSchema(), Criteria{Sort: SortKey{Field: "salary", Order: Desc}})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(got))
}

func TestCompose_FilterThenSort(t *testing.T) {
	got := Compose(people(), personSchema(), Criteria{
		Filters: []Filter{{Field: "role", Op: OpEq, Value: "Admin"}},
		Sort:    SortKey{Field: "score", Order: Desc},
	})
	assert.Equal(t, []int{1, 5, 3}, ids(got))
}

func TestCompose_SubsetProperty(t *testing.T) {
	data := people()
	s := personSchema()
	c := Criteria{
		Search:  "o",
		Filters: []Filter{{Field: "age", Op: OpLTE, Value: "30"}},
	}
	got := Compose(data, s, c)

	in := map[int]bool{}
	for _, r := range got {
		in[r.ID] = true
		assert.True(t, matchAll(s.predicates(c), r))
	}
	for _, r := range data {
		if !in[r.ID] {
			assert.False(t, matchAll(s.predicates(c), r), "record %d matches but was dropped", r.ID)
		}
	}
}

func TestFilterRowsAndSortRows(t *testing.T) {
	s := personSchema()
	c := Criteria{
		Filters: []Filter{{Field: "role", Op: OpEq, Value: "Admin"}},
		Sort:    SortKey{Field: "age", Order: Desc},
	}
	assert.Equal(t, []int{1, 3, 5}, ids(FilterRows(people(), s, c)))
	assert.Equal(t, []int{4, 1, 3, 2, 5}, ids(SortRows(people(), s, c.Sort)))
	assert.NotNil(t, SortRows[person](nil, s, c.Sort))
}

func TestCompose_Empty(t *testing.T) {
	got := Compose(nil, personSchema(), Criteria{Search: "a", Sort: SortKey{Field: "age"}})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSchema(t *testing.T) {
	s := personSchema()
	assert.Equal(t, []string{"id", "name", "city", "role", "age", "score", "active"}, s.Names())
	assert.Equal(t, []string{"name", "city"}, s.SearchFields())
	assert.True(t, s.Has("role"))
	assert.False(t, s.Has("salary"))

	f, ok := s.Field("score")
	require.True(t, ok)
	assert.Equal(t, KindNumber, f.Kind)
	assert.Equal(t, "4.50", f.Display(people()[0]))

	custom := f.WithFormat(func(p person) string { return fmt.Sprintf("%.1f pts", p.Score) })
	assert.Equal(t, "4.5 pts", custom.Display(people()[0]))

	noSearch := NewSchema(
		Text("name", "Nombre", func(p person) string { return p.Name }),
		Int("age", "Edad", func(p person) int { return p.Age }),
		Enum("role", "Rol", func(p person) string { return p.Role }),
	)
	assert.Equal(t, []string{"name", "role"}, noSearch.SearchFields())

	assert.Equal(t, []string{"nope", "salary"}, s.UnknownFields(Criteria{
		SearchFields: []string{"name", "nope"},
		Filters:      []Filter{{Field: "salary", Op: OpGT, Value: "1"}, {Field: "nope", Value: "x"}},
		Sort:         SortKey{Field: "age"},
	}))
}

func TestSchema_IgnoredFilters(t *testing.T) {
	s := personSchema()
	c := Criteria{Filters: []Filter{
		{Field: "active", Value: "maybe"},
		{Field: "age", Value: "abc"},
		{Field: "score", Op: OpGT, Value: "high"},
		{Field: "age", Value: "30"},
		{Field: "active", Value: "sí"},
		{Field: "role", Value: "Admin"},
		{Field: "nope", Value: "x"},
		{Field: "age", Value: "any"},
	}}

	assert.Equal(t, []Filter{
		{Field: "active", Value: "maybe"},
		{Field: "age", Value: "abc"},
		{Field: "score", Op: OpGT, Value: "high"},
	}, s.IgnoredFilters(c))
	assert.Equal(t, []int{1}, ids(Compose(people(), s, c)), "ignored filters do not narrow the rows")
	assert.Empty(t, s.IgnoredFilters(Criteria{}))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "enum", KindEnum.String())
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
