// Package catalog holds the static descriptions of the showcased libraries.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Category groups libraries in the gallery.
type Category string

// Gallery categories, in display order.
const (
	CategoryGrids          Category = "Tablas y Data Grids"
	CategoryVirtualization Category = "Virtualización"
)

// Title returns the section heading used for the category.
func (c Category) Title() string {
	if c == CategoryVirtualization {
		return "Virtualización (listas grandes)"
	}
	return string(c)
}

// Lookup errors.
var (
	ErrUnknownLibrary  = errors.New("unknown library")
	ErrUnknownCategory = errors.New("unknown category (use grids or virtualization)")
)

// categoryAliases are the short names accepted on the command line.
//
//nolint:gochecknoglobals // Read-only lookup table.
var categoryAliases = map[string]Category{
	"grids":          CategoryGrids,
	"virtualization": CategoryVirtualization,
}

// ParseCategory accepts a category name or its short alias, ignoring case.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for alias, c := range categoryAliases {
		if strings.EqualFold(s, alias) || strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Library describes one showcased library.
type Library struct {
	ID          string   `json:"id"          yaml:"id"`
	Name        string   `json:"name"        yaml:"name"`
	Path        string   `json:"path"        yaml:"path"`
	Category    Category `json:"category"    yaml:"category"`
	Author      string   `json:"author"      yaml:"author"`
	DocsURL     string   `json:"docsUrl"     yaml:"docs_url"`
	Tagline     string   `json:"tagline"     yaml:"tagline"`
	Badge       string   `json:"badge"       yaml:"badge"`
	Description string   `json:"description" yaml:"description"`
	Features    []string `json:"features"    yaml:"features"`
}

// Group is one gallery section.
type Group struct {
	Category  Category
	Libraries []Library
}

//nolint:gochecknoglobals // Read-only library table.
var libraries = []Library{
	{
		ID:       "tanstack-table",
		Name:     "TanStack Table",
		Path:     "/tanstack-table",
		Category: CategoryGrids,
		Author:   "Tanner Linsley & comunidad",
		DocsURL:  "https://tanstack.com/table/latest",
		Tagline:  "Tablas headless súper flexibles para React.",
		Badge:    "Data Grid",
		Description: "TanStack Table es una librería headless para construir tablas avanzadas en React. " +
			"No trae estilos por defecto: vos decidís el diseño y el renderer. " +
			"Soporta sorting, filtering, paginación, grouping, column reordering y más.",
		Features: []string{
			"Headless (sin estilos predefinidos)",
			"Ordenación de columnas",
			"Filtrado de datos",
			"Paginación",
			"Alto rendimiento en tablas grandes",
		},
	},
	{
		ID:       "ag-grid",
		Name:     "AG Grid",
		Path:     "/ag-grid",
		Category: CategoryGrids,
		Author:   "AG Grid Ltd",
		DocsURL:  "https://www.ag-grid.com/",
		Tagline:  "Data grid muy potente para dashboards complejos.",
		Badge:    "Data Grid",
		Description: "AG Grid es un data grid extremadamente completo y orientado a aplicaciones enterprise. " +
			"Ofrece una enorme cantidad de funcionalidades listas para usar y una API muy madura.",
		Features: []string{
			"Edición de celdas en línea",
			"Ordenación y filtrado avanzado",
			"Agrupación y pivot de datos",
			"Paginación cliente y servidor",
			"Exportación a Excel y CSV",
			"Versión gratuita y versión enterprise con soporte",
		},
	},
	{
		ID:       "mui-datagrid",
		Name:     "MUI DataGrid",
		Path:     "/mui-datagrid",
		Category: CategoryGrids,
		Author:   "MUI",
		DocsURL:  "https://mui.com/x/react-data-grid/",
		Tagline:  "Tabla lista para usar dentro del ecosistema MUI.",
		Badge:    "Data Grid",
		Description: "MUI DataGrid forma parte de la familia MUI X y se integra perfecto con Material UI. " +
			"Trae un look moderno out-of-the-box.",
		Features: []string{
			"Estilos Material Design por defecto",
			"Ordenación y filtrado integrados",
			"Paginación automática",
			"Selección de filas con checkbox",
			"Columnas redimensionables y ocultables",
		},
	},
	{
		ID:       "react-virtual",
		Name:     "React Virtual (TanStack Virtual)",
		Path:     "/react-virtual",
		Category: CategoryVirtualization,
		Author:   "TanStack",
		DocsURL:  "https://tanstack.com/virtual/latest",
		Tagline:  "Listas virtualizadas simples y muy performantes.",
		Badge:    "Virtualización",
		Description: "React Virtual se enfoca exclusivamente en virtualizar listas y grids para mejorar el rendimiento. " +
			"Solo renderiza los elementos visibles en pantalla en cada momento.",
		Features: []string{
			"Virtualización de listas y grids",
			"Altísimo rendimiento con miles de filas",
			"Headless y muy flexible",
			"Compatible con cualquier layout o tabla custom",
			"Integración sencilla con otras librerías",
		},
	},
	{
		ID:       "react-window",
		Name:     "React Window",
		Path:     "/react-window",
		Category: CategoryVirtualization,
		Author:   "Brian Vaughn",
		DocsURL:  "https://react-window.vercel.app/",
		Tagline:  "Virtualización minimalista para listas y grids.",
		Badge:    "Virtualización",
		Description: "React Window es una librería liviana y simple para virtualizar listas y grids. " +
			"Está pensada para cuando necesitás rendimiento sin demasiada complejidad extra.",
		Features: []string{
			"API simple y minimalista",
			"Tamaño de bundle muy pequeño",
			"Virtualización eficiente de listas",
			"Soporte para listas y grids fijos o variables",
			"Ideal para proyectos medianos y UI personalizadas",
		},
	},
	{
		ID:       "react-virtualized",
		Name:     "React Virtualized",
		Path:     "/react-virtualized",
		Category: CategoryVirtualization,
		Author:   "Brian Vaughn",
		DocsURL:  "https://bvaughn.github.io/react-virtualized/#/components/List",
		Tagline:  "Colección de componentes para listas enormes.",
		Badge:    "Virtualización",
		Description: "React Virtualized es una colección completa de componentes para manejar listas grandes " +
			"y layouts complejos con virtualización.",
		Features: []string{
			"Componentes List, Grid, Table y Masonry",
			"Soporte para layouts complejos",
			"Virtualización avanzada y configurable",
			"Más potente pero más compleja que React Window",
			"Útil cuando necesitás varios tipos de layouts virtualizados",
		},
	},
}

// Categories returns the categories in gallery order.
func Categories() []Category {
	return []Category{CategoryGrids, CategoryVirtualization}
}

// All returns every library in declaration order.
func All() []Library {
	out := make([]Library, len(libraries))
	for i, lib := range libraries {
		out[i] = lib.clone()
	}
	return out
}

// InCategory returns the libraries of category c.
func InCategory(c Category) []Library {
	var out []Library
	for _, lib := range libraries {
		if lib.Category == c {
			out = append(out, lib.clone())
		}
	}
	return out
}

// Grouped returns one group per category, skipping empty ones.
func Grouped() []Group {
	var groups []Group
	for _, c := range Categories() {
		if libs := InCategory(c); len(libs) > 0 {
			groups = append(groups, Group{Category: c, Libraries: libs})
		}
	}
	return groups
}

// ByID looks a library up by its id.
func ByID(id string) (Library, error) {
	for _, lib := range libraries {
		if lib.ID == id {
			return lib.clone(), nil
		}
	}
	return Library{}, fmt.Errorf("%w: %q", ErrUnknownLibrary, id)
}

// ByPath returns the library whose route is a prefix of path, the way the
// navigation highlights the active entry.
func ByPath(path string) (Library, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for _, lib := range libraries {
		if path == lib.Path || strings.HasPrefix(path, lib.Path+"/") {
			return lib.clone(), nil
		}
	}
	return Library{}, fmt.Errorf("%w: %q", ErrUnknownLibrary, path)
}

// Lookup accepts an id or a route path.
func Lookup(ref string) (Library, error) {
	if lib, err := ByID(strings.TrimPrefix(ref, "/")); err == nil {
		return lib, nil
	}
	return ByPath(ref)
}

// IDs returns every library id in declaration order.
func IDs() []string {
	ids := make([]string, len(libraries))
	for i, lib := range libraries {
		ids[i] = lib.ID
	}
	return ids
}

func (l Library) clone() Library {
	l.Features = append([]string(nil), l.Features...)
	return l
}
