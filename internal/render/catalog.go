package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rshade/gridgallery/internal/catalog"
	"github.com/rshade/gridgallery/internal/demo"
	"github.com/rshade/gridgallery/internal/tui"
)

type catalogGroupJSON struct {
	Category  catalog.Category  `json:"category"`
	Title     string            `json:"title"`
	Libraries []catalog.Library `json:"libraries"`
}

// Catalog writes one aligned table per category.
func Catalog(w io.Writer, groups []catalog.Group) error {
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, g.Category.Title())

		tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
		fmt.Fprintln(tw, "ID\tNOMBRE\tTIPO\tRUTA\tDESCRIPCIÓN")
		for _, lib := range g.Libraries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", lib.ID, lib.Name, lib.Badge, lib.Path, lib.Tagline)
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("writing catalog: %w", err)
		}
	}
	return nil
}

// CatalogStyled writes one bordered table per category.
func CatalogStyled(w io.Writer, groups []catalog.Group, width int) error {
	var b strings.Builder
	for _, g := range groups {
		b.WriteString(tui.HeaderStyle.Render(g.Category.Title()))
		b.WriteString("\n")

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(tui.BorderStyle).
			Headers("ID", "Nombre", "Tipo", "Descripción").
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return tui.TableHeaderStyle
				}
				return tui.TableCellStyle
			})
		for _, lib := range g.Libraries {
			t = t.Row(lib.ID, lib.Name, lib.Badge, lib.Tagline)
		}
		if width > 0 {
			t = t.Width(width)
		}
		b.WriteString(t.Render())
		b.WriteString("\n\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// CatalogJSON writes the groups as an indented JSON array.
func CatalogJSON(w io.Writer, groups []catalog.Group) error {
	out := make([]catalogGroupJSON, len(groups))
	for i, g := range groups {
		out[i] = catalogGroupJSON{Category: g.Category, Title: g.Category.Title(), Libraries: g.Libraries}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// Library writes the information panel of one library and its demo setup.
func Library(w io.Writer, lib catalog.Library, d demo.Demo) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", lib.Name, lib.Badge)
	fmt.Fprintf(&b, "por %s · %s\n\n", lib.Author, lib.Category.Title())
	fmt.Fprintf(&b, "%s\n\n", lib.Description)
	for _, f := range lib.Features {
		fmt.Fprintf(&b, "  - %s\n", f)
	}
	fmt.Fprintf(&b, "\nDemo: %d %s", d.Size, d.Noun)
	if d.Paginated() {
		fmt.Fprintf(&b, ", paginada (%s por página)", joinInts(d.PageSizes))
	} else {
		fmt.Fprintf(&b, ", virtualizada (filas de %dpx, overscan %d)", d.RowHeight, d.Overscan)
	}
	b.WriteString("\n")
	if len(d.Filters) > 0 {
		fields := make([]string, len(d.Filters))
		for i, fc := range d.Filters {
			fields[i] = fc.Field
		}
		fmt.Fprintf(&b, "Filtros: %s\n", strings.Join(fields, ", "))
	}
	fmt.Fprintf(&b, "Ruta: %s\n", lib.Path)
	fmt.Fprintf(&b, "Ver documentación oficial: %s\n", lib.DocsURL)

	_, err := io.WriteString(w, b.String())
	return err
}

// LibraryJSON writes one library as indented JSON.
func LibraryJSON(w io.Writer, lib catalog.Library) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(lib); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, "/")
}
