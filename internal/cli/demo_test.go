package cli_test

import (
	"bufio"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/gridgallery/internal/cli"
	"github.com/rshade/gridgallery/internal/cli/pagination"
	"github.com/rshade/gridgallery/internal/demo"
	"github.com/rshade/gridgallery/internal/query"
	"github.com/rshade/gridgallery/internal/render"
)

type demoJSON struct {
	Demo       string                     `json:"demo"`
	Total      int                        `json:"total"`
	Matched    int                        `json:"matched"`
	Pagination *pagination.PaginationMeta `json:"pagination"`
	Records    []map[string]any           `json:"records"`
	Summary    *struct {
		Total   int `json:"total"`
		Average int `json:"average"`
	} `json:"summary"`
}

func runDemoJSON(t *testing.T, args ...string) demoJSON {
	t.Helper()
	out, err := execute(t, append([]string{"demo"}, append(args, "--output", "json")...)...)
	require.NoError(t, err)
	var got demoJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	return got
}

func TestDemoCmd_Filters(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantMatched int
	}{
		{name: "no criteria", args: []string{"tanstack-table"}, wantMatched: 100},
		{name: "role", args: []string{"tanstack-table", "--filter", "role=Admin"}, wantMatched: 34},
		{
			name:        "role and status",
			args:        []string{"tanstack-table", "--filter", "role=Admin", "--filter", "status=Activo"},
			wantMatched: 17,
		},
		{name: "equality is exact", args: []string{"tanstack-table", "--filter", "role=admin"}, wantMatched: 0},
		{name: "substring ignores case", args: []string{"tanstack-table", "--filter", "role~admin"}, wantMatched: 34},
		{name: "any value", args: []string{"tanstack-table", "--filter", "role=any"}, wantMatched: 100},
		{name: "search by name", args: []string{"tanstack-table", "--search", "usuario 1"}, wantMatched: 12},
		{name: "numeric range", args: []string{"ag-grid", "--filter", "price<10", "--filter", "category=Pizzas"}, wantMatched: 4},
		{name: "route path", args: []string{"/tanstack-table", "--filter", "status=Inactivo"}, wantMatched: 50},
		{name: "unknown field is ignored", args: []string{"tanstack-table", "--filter", "nope=1"}, wantMatched: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			got := runDemoJSON(t, tt.args...)
			assert.Equal(t, tt.wantMatched, got.Matched)
			assert.Len(t, got.Records, tt.wantMatched)
		})
	}
}

func TestDemoCmd_Sort(t *testing.T) {
	isolate(t)

	got := runDemoJSON(t, "tanstack-table", "--sort", "age:desc")
	require.NotEmpty(t, got.Records)
	assert.InDelta(t, 67, got.Records[0]["age"], 0)

	last := got.Records[len(got.Records)-1]
	assert.InDelta(t, 18, last["age"], 0)
}

func TestDemoCmd_Pagination(t *testing.T) {
	isolate(t)

	got := runDemoJSON(t, "mui-datagrid", "--page", "2", "--page-size", "20")
	require.NotNil(t, got.Pagination)
	assert.Equal(t, 2, got.Pagination.CurrentPage)
	assert.Equal(t, 4, got.Pagination.TotalPages)
	require.Len(t, got.Records, 20)
	assert.InDelta(t, 21, got.Records[0]["id"], 0)

	// Dataset formats are not paged by default.
	full := runDemoJSON(t, "mui-datagrid")
	assert.Nil(t, full.Pagination)
	assert.Len(t, full.Records, 80)
}

func TestDemoCmd_TableDefaultsToFirstPage(t *testing.T) {
	isolate(t)

	out, err := execute(t, "demo", "mui-datagrid")
	require.NoError(t, err)

	assert.Contains(t, out, "Mostrando 80 de 80 filas · Página 1 de 8")
	assert.Contains(t, out, "Usuario 10")
	assert.NotContains(t, out, "Usuario 11")
}

func TestDemoCmd_TableVirtualizedShowsAllRows(t *testing.T) {
	isolate(t)

	out, err := execute(t, "demo", "react-virtualized", "--size", "30", "--filter", "status=Activo")
	require.NoError(t, err)

	assert.Contains(t, out, "Total: 15 usuarios")
	assert.Contains(t, out, "Mostrando 15 de 30 usuarios")
	assert.NotContains(t, out, "Página")
}

func TestDemoCmd_NDJSON(t *testing.T) {
	isolate(t)

	out, err := execute(t, "demo", "react-window", "--size", "5", "--output", "ndjson")
	require.NoError(t, err)

	var lines []string
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], `"type":"summary"`)
}

func TestDemoCmd_CSV(t *testing.T) {
	isolate(t)

	out, err := execute(t, "demo", "tanstack-table", "--size", "3", "--output", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "id,name,email,age,city,role,status,joinDate", lines[0])
}

func TestDemoCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "unknown demo", args: []string{"demo", "nope"}, wantErr: demo.ErrUnknownDemo},
		{name: "negative size", args: []string{"demo", "ag-grid", "--size", "-1"}, wantErr: cli.ErrInvalidSize},
		{name: "size too large", args: []string{"demo", "ag-grid", "--size", "100001"}, wantErr: cli.ErrInvalidSize},
		{name: "bad filter", args: []string{"demo", "ag-grid", "--filter", "price"}, wantErr: query.ErrInvalidFilter},
		{name: "bad numeric filter", args: []string{"demo", "ag-grid", "--filter", "price>cheap"}, wantErr: query.ErrInvalidFilterValue},
		{name: "bad sort", args: []string{"demo", "ag-grid", "--sort", "price:up"}, wantErr: query.ErrInvalidSortOrder},
		{name: "bad format", args: []string{"demo", "ag-grid", "--output", "xml"}, wantErr: render.ErrUnsupportedFormat},
		{
			name:    "page size not offered",
			args:    []string{"demo", "mui-datagrid", "--page", "1", "--page-size", "15"},
			wantErr: pagination.ErrPageSizeNotOffered,
		},
		{
			name:    "mixed pagination modes",
			args:    []string{"demo", "react-window", "--page", "1", "--offset", "5"},
			wantErr: pagination.ErrMixedPaginationModes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
