package demo

import (
	"github.com/rshade/gridgallery/internal/dataset"
	"github.com/rshade/gridgallery/internal/query"
	"github.com/rshade/gridgallery/internal/summary"
)

// Library ids, shared with the catalog.
const (
	TanStackTable    = "tanstack-table"
	AGGrid           = "ag-grid"
	MUIDataGrid      = "mui-datagrid"
	ReactVirtual     = "react-virtual"
	ReactWindow      = "react-window"
	ReactVirtualized = "react-virtualized"
)

//nolint:gochecknoglobals // Read-only column lists.
var (
	rosterColumns = []string{"id", "name", "email", "age", "city", "role", "status", "joinDate"}
	roleControl   = FilterControl{Field: "role", AllLabel: "Todos los roles", Options: dataset.Roles.Values()}
	statusControl = FilterControl{
		Field:    "status",
		AllLabel: "Todos los estados",
		Options:  dataset.UserStatuses.Values(),
	}
)

func registry() []Demo {
	return []Demo{
		{
			ID:                TanStackTable,
			Title:             "TanStack Table",
			Kind:              KindUsers,
			Size:              100,
			Noun:              "registros",
			Columns:           rosterColumns,
			SearchFields:      []string{"name"},
			SearchPlaceholder: "Buscar por nombre",
			Filters:           []FilterControl{roleControl, statusControl},
			Sortable:          rosterColumns,
			RowHeight:         46,
			Overscan:          8,
			open:              usersOpener(dataset.DateMonth, false),
		},
		{
			ID:                AGGrid,
			Title:             "AG Grid",
			Kind:              KindMenu,
			Size:              80,
			Noun:              "productos",
			SearchFields:      MenuSchema().Names(),
			SearchPlaceholder: "Escribí para filtrar por cualquier columna...",
			Filters: []FilterControl{
				{Field: "category", AllLabel: "Todas las categorías", Options: dataset.Categories.Values()},
				{Field: "portionSize", AllLabel: "Todos los tamaños", Options: dataset.PortionSizes.Values()},
				{Field: "spiceLevel", AllLabel: "Todos los niveles", Options: dataset.SpiceLevels.Values()},
			},
			Sortable:  MenuSchema().Names(),
			PageSizes: []int{10},
			RowHeight: 42,
			Overscan:  0,
			open: func(d Demo, size int) Session {
				return newSession(d, dataset.Menu(size), MenuSchema(), nil)
			},
		},
		{
			ID:                MUIDataGrid,
			Title:             "MUI DataGrid",
			Kind:              KindUsers,
			Size:              80,
			Noun:              "filas",
			Columns:           rosterColumns,
			SearchFields:      []string{"name", "email", "city", "role", "status"},
			SearchPlaceholder: "Buscar…",
			Filters:           []FilterControl{roleControl, statusControl},
			Sortable:          rosterColumns,
			PageSizes:         []int{10, 20, 50},
			RowHeight:         52,
			open:              usersOpener(dataset.DateFirstOfMonth, false),
		},
		{
			ID:                ReactVirtual,
			Title:             "React Virtual (TanStack Virtual)",
			Kind:              KindUsers,
			Size:              100,
			Noun:              "registros",
			Columns:           rosterColumns,
			SearchFields:      []string{"name"},
			SearchPlaceholder: "Buscar por nombre",
			Filters:           []FilterControl{roleControl, statusControl},
			RowHeight:         46,
			Overscan:          8,
			open:              usersOpener(dataset.DateMonth, false),
		},
		{
			ID:                ReactWindow,
			Title:             "React Window",
			Kind:              KindTasks,
			Size:              120,
			Noun:              "tareas",
			SearchFields:      []string{"title", "owner"},
			SearchPlaceholder: "Buscar por título o responsable",
			Filters: []FilterControl{
				{Field: "priority", AllLabel: "Todas las prioridades", Options: dataset.Priorities.Values()},
				{Field: "status", AllLabel: "Todos los estados", Options: dataset.TaskStatuses.Values()},
			},
			RowHeight: 80,
			Overscan:  5,
			open: func(d Demo, size int) Session {
				return newSession(d, dataset.Tasks(size), TaskSchema(), nil)
			},
		},
		{
			ID:                ReactVirtualized,
			Title:             "React Virtualized",
			Kind:              KindUsers,
			Size:              120,
			Noun:              "usuarios",
			SearchFields:      []string{"name", "email", "city"},
			SearchPlaceholder: "Buscar por nombre, email o ciudad",
			Filters: []FilterControl{
				roleControl,
				statusControl,
				{Field: "department", AllLabel: "Todos los departamentos", Options: dataset.Departments.Values()},
			},
			Sortable:     []string{"id", "name", "email", "age", "city", "department", "joinDate"},
			DefaultSort:  query.SortKey{Field: "id", Order: query.Asc},
			RowHeight:    44,
			Overscan:     5,
			HasSummary:   true,
			AverageLabel: "Edad promedio",
			AverageUnit:  "años",
			open:         usersOpener(dataset.DateDay, true),
		},
	}
}

func usersOpener(layout dataset.DateLayout, withSummary bool) func(Demo, int) Session {
	return func(d Demo, size int) Session {
		var sum func([]dataset.UserRecord) summary.Summary
		if withSummary {
			sum = UserSummary
		}
		return newSession(d, dataset.Users(size, layout), UserSchema(), sum)
	}
}
