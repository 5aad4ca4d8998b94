package demo

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/gridgallery/internal/catalog"
	"github.com/rshade/gridgallery/internal/dataset"
	"github.com/rshade/gridgallery/internal/query"
)

func open(t *testing.T, ref string) Session {
	t.Helper()
	d, err := Get(ref)
	require.NoError(t, err)
	return d.Open(0)
}

func viewIDs(t *testing.T, s Session) []string {
	t.Helper()
	ids := make([]string, s.Len())
	for i := range ids {
		ids[i] = s.Value(i, "id")
	}
	return ids
}

func TestRegistryMatchesCatalog(t *testing.T) {
	demos := All()
	require.Len(t, demos, len(catalog.IDs()))
	for i, id := range catalog.IDs() {
		assert.Equal(t, id, demos[i].ID)
		assert.Equal(t, demos[i].Title, demos[i].Library().Name)
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		ref     string
		wantID  string
		wantErr bool
	}{
		{ref: "ag-grid", wantID: AGGrid},
		{ref: "/react-window", wantID: ReactWindow},
		{ref: "/react-virtualized", wantID: ReactVirtualized},
		{ref: "nope", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			d, err := Get(tt.ref)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownDemo)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, d.ID)
		})
	}
}

func TestDefaultSizes(t *testing.T) {
	want := map[string]int{
		TanStackTable:    100,
		AGGrid:           80,
		MUIDataGrid:      80,
		ReactVirtual:     100,
		ReactWindow:      120,
		ReactVirtualized: 120,
	}
	for _, d := range All() {
		s := d.Open(0)
		assert.Equal(t, want[d.ID], s.Total(), d.ID)
		assert.Equal(t, want[d.ID], s.Len(), d.ID)
	}
}

func TestOpen_CustomSize(t *testing.T) {
	d, err := Get(ReactWindow)
	require.NoError(t, err)
	s := d.Open(7)
	assert.Equal(t, 7, s.Total())
}

func TestSession_RoleAndStatusFilter(t *testing.T) {
	s := open(t, TanStackTable)
	s.SetEquals("role", "Admin")
	s.SetEquals("status", "Activo")

	// Admin is every third index and Activo every second, so every sixth.
	require.Equal(t, 17, s.Len())
	assert.Equal(t, "1", s.Value(0, "id"))
	assert.Equal(t, "7", s.Value(1, "id"))
	assert.Equal(t, "97", s.Value(16, "id"))
	for i := range s.Len() {
		assert.Equal(t, "Admin", s.Value(i, "role"))
		assert.Equal(t, "Activo", s.Value(i, "status"))
	}

	s.SetEquals("role", query.Any)
	assert.Equal(t, 50, s.Len())
	assert.Equal(t, "Activo", s.Criteria().Equals("status"))
	assert.Empty(t, s.Criteria().Equals("role"))
}

func TestSession_Search(t *testing.T) {
	s := open(t, TanStackTable)
	s.SetSearch("USUARIO 1")
	// "Usuario 1", "Usuario 10".."Usuario 19" and "Usuario 100".
	assert.Equal(t, 12, s.Len())

	s.SetSearch("mail.com")
	assert.Equal(t, 0, s.Len(), "email is not a search field of this demo")

	rv := open(t, ReactVirtualized)
	rv.SetSearch("Ciudad 3")
	assert.Equal(t, 12, rv.Len())
}

func TestSession_TaskSearchAcrossTitleAndOwner(t *testing.T) {
	s := open(t, ReactWindow)
	s.SetSearch("responsable 01")
	assert.Equal(t, 15, s.Len())

	s.SetSearch("funcionalidad 14")
	assert.Equal(t, 8, s.Len())

	s.SetEquals("priority", "Alta")
	for i := range s.Len() {
		assert.Equal(t, "Alta", s.Value(i, "priority"))
	}
}

func TestSession_SortAndToggle(t *testing.T) {
	s := open(t, ReactVirtualized)
	assert.Equal(t, query.SortKey{Field: "id", Order: query.Asc}, s.Criteria().Sort)
	assert.Equal(t, "1", s.Value(0, "id"))

	s.ToggleSort("age")
	assert.Equal(t, "18", s.Value(0, "age"))
	assert.Equal(t, "1", s.Value(0, "id"), "ties keep generation order")

	s.ToggleSort("age")
	assert.Equal(t, query.Desc, s.Criteria().Sort.Order)
	assert.Equal(t, "67", s.Value(0, "age"))
	assert.Equal(t, "50", s.Value(0, "id"))

	s.Reset()
	assert.Equal(t, "1", s.Value(0, "id"))
	assert.Equal(t, "id", s.Criteria().Sort.Field)
	assert.Equal(t, []string{"name", "email", "city"}, s.Criteria().SearchFields)
}

func TestSession_Summary(t *testing.T) {
	s := open(t, ReactVirtualized)
	sum := s.Summary()
	require.NotNil(t, sum)
	assert.Equal(t, 120, sum.Total)
	assert.Equal(t, 60, sum.Count("Activo"))
	assert.Equal(t, 60, sum.Count("Inactivo"))
	assert.Equal(t, 40, sum.Average)

	s.SetSearch("no existe")
	sum = s.Summary()
	require.NotNil(t, sum)
	assert.Zero(t, sum.Total)
	assert.Zero(t, sum.Average)
	assert.Equal(t, map[string]int{"Activo": 0, "Inactivo": 0}, sum.ByStatus)

	assert.Nil(t, open(t, TanStackTable).Summary())
}

func TestSession_SummaryIsACopy(t *testing.T) {
	s := open(t, ReactVirtualized)

	sum := s.Summary()
	require.NotNil(t, sum)
	sum.ByStatus["Activo"] = 999
	sum.Statuses[0] = "Borrado"

	again := s.Summary()
	require.NotNil(t, again)
	assert.Equal(t, 60, again.Count("Activo"))
	assert.Equal(t, []string{"Activo", "Inactivo"}, again.Statuses)
	assert.Equal(t, KPI{Label: "Activos", Value: "60"}, KPIs(s)[1])
}

func TestSession_AddFilterRange(t *testing.T) {
	s := open(t, AGGrid)
	s.AddFilter(query.Filter{Field: "price", Op: query.OpGTE, Value: "13"})
	require.Positive(t, s.Len())
	for i := range s.Len() {
		rec, ok := s.Record(i).(dataset.MenuItem)
		require.True(t, ok)
		assert.GreaterOrEqual(t, rec.Price, 13.0)
	}

	s.AddFilter(query.Filter{Field: "category", Op: query.OpEq, Value: "Pizzas"})
	for i := range s.Len() {
		assert.Equal(t, "Pizzas", s.Value(i, "category"))
	}
	assert.Len(t, s.Criteria().Filters, 2)
}

func TestSession_MenuQuickFilter(t *testing.T) {
	s := open(t, AGGrid)
	s.SetSearch("especial")
	assert.Equal(t, 20, s.Len())
}

func TestSession_MenuCells(t *testing.T) {
	s := open(t, AGGrid)
	s.SetEquals("id", "2")
	require.Equal(t, 1, s.Len())

	cell := func(name string) string {
		for i, c := range s.Columns() {
			if c.Name == name {
				return s.Cell(0, i)
			}
		}
		t.Fatalf("no column %s", name)
		return ""
	}

	assert.Equal(t, "Bebida BBQ #2", cell("name"))
	assert.Equal(t, "3.00 €", cell("price"))
	assert.Equal(t, "No", cell("onOffer"))
	assert.Equal(t, "★★★★★ (5.0)", cell("rating"))
	assert.Equal(t, "★★★☆☆ (3/5)", cell("popularity"))
	assert.Equal(t, "Sí", cell("glutenFree"))
	assert.Equal(t, "3.00", s.Raw(0, 3))
	assert.Len(t, s.Columns(), 23)
}

func TestSession_Columns(t *testing.T) {
	s := open(t, TanStackTable)
	cols := s.Columns()
	require.Len(t, cols, 8)
	assert.Equal(t, "Nombre", cols[1].Header)
	assert.Equal(t, query.KindEnum, cols[5].Kind)

	assert.Empty(t, s.Cell(-1, 0))
	assert.Empty(t, s.Cell(0, 99))
	assert.Nil(t, s.Record(1000))
}

func TestSession_RecordsAreCopies(t *testing.T) {
	s := open(t, ReactWindow)
	recs, ok := s.Records().([]dataset.TaskRecord)
	require.True(t, ok)
	require.Len(t, recs, 120)
	recs[0].Title = "changed"
	assert.NotEqual(t, "changed", s.Value(0, "title"))
}

func TestSession_ApplyKeepsUnknownFieldsHarmless(t *testing.T) {
	s := open(t, MUIDataGrid)
	c := query.Criteria{
		Filters: []query.Filter{{Field: "salary", Op: query.OpGT, Value: "10"}},
		Sort:    query.SortKey{Field: "salary", Order: query.Desc},
	}
	assert.Equal(t, []string{"salary"}, s.UnknownFields(c))

	s.Apply(c)
	assert.Equal(t, 80, s.Len())
	assert.Equal(t, "1", s.Value(0, "id"))
}

func TestSession_IgnoredFilters(t *testing.T) {
	s := open(t, AGGrid)
	c := query.Criteria{Filters: []query.Filter{
		{Field: "vegan", Op: query.OpEq, Value: "maybe"},
		{Field: "price", Op: query.OpEq, Value: "abc"},
		{Field: "category", Op: query.OpEq, Value: "Pizzas"},
	}}
	assert.Equal(t, c.Filters[:2], s.IgnoredFilters(c))
}

func TestSessions_AreIndependent(t *testing.T) {
	d, err := Get(ReactVirtualized)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]int, 4)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := d.Open(0)
			if i%2 == 0 {
				s.SetEquals("status", "Activo")
			}
			results[i] = s.Len()
		}()
	}
	wg.Wait()
	assert.Equal(t, []int{60, 120, 60, 120}, results)
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "Sí", YesNo(true))
	assert.Equal(t, "No", YesNo(false))
	assert.Equal(t, "☆☆☆☆☆", Stars(-1))
	assert.Equal(t, "★★★★★", Stars(9))
	assert.Equal(t, "12.50 €", Price(12.5))
}

func TestDemoHelpers(t *testing.T) {
	mui, err := Get(MUIDataGrid)
	require.NoError(t, err)
	assert.True(t, mui.Paginated())
	assert.Equal(t, 10, mui.DefaultPageSize())

	rw, err := Get(ReactWindow)
	require.NoError(t, err)
	assert.False(t, rw.Paginated())
	assert.Zero(t, rw.DefaultPageSize())

	fc, ok := rw.FilterControl("priority")
	require.True(t, ok)
	assert.Equal(t, "Todas las prioridades", fc.AllLabel)
	assert.Equal(t, []string{"Alta", "Media", "Baja"}, fc.Options)

	_, ok = rw.FilterControl("role")
	assert.False(t, ok)
}

func TestFooterAndSummaryLine(t *testing.T) {
	rw := open(t, ReactWindow)
	rw.SetEquals("priority", "Alta")
	assert.Equal(t, "Mostrando 40 de 120 tareas", Footer(rw))
	assert.Empty(t, SummaryLine(rw))
	assert.Nil(t, KPIs(rw))

	rv := open(t, ReactVirtualized)
	assert.Equal(t, "Mostrando 120 de 120 usuarios", Footer(rv))
	assert.Equal(t,
		"Total: 120 usuarios · Activos: 60 · Inactivos: 60 · Edad promedio: 40 años",
		SummaryLine(rv))

	rv.SetEquals("status", "Inactivo")
	kpis := KPIs(rv)
	require.Len(t, kpis, 4)
	assert.Equal(t, KPI{Label: "Activos", Value: "0"}, kpis[1])
	assert.Equal(t, KPI{Label: "Inactivos", Value: "60"}, kpis[2])
}
