package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rshade/gridgallery/internal/demo"
	"github.com/rshade/gridgallery/internal/tui"
)

// tabPadding is the minimum column padding for tabwriter output.
const tabPadding = 2

// Plain writes the view as an aligned text table followed by the summary
// and footer lines.
func Plain(w io.Writer, v View) error {
	if line := demo.SummaryLine(v.Session); line != "" {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, strings.Join(v.headers(), "\t"))
	for _, row := range v.Rows {
		fmt.Fprintln(tw, strings.Join(v.cells(row, false), "\t"))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	return writeFooter(w, v)
}

// Styled writes the view as a bordered lipgloss table no wider than width.
func Styled(w io.Writer, v View, width int) error {
	var b strings.Builder

	b.WriteString(tui.HeaderStyle.Render(v.Session.Demo().Title))
	b.WriteString("\n")
	if kpis := demo.KPIs(v.Session); len(kpis) > 0 {
		parts := make([]string, len(kpis))
		for i, k := range kpis {
			parts[i] = tui.LabelStyle.Render(k.Label+":") + " " + tui.ValueStyle.Render(k.Value)
		}
		b.WriteString(strings.Join(parts, tui.SubtleStyle.Render("  ·  ")))
		b.WriteString("\n")
	}

	rows := make([][]string, 0, len(v.Rows))
	for _, row := range v.Rows {
		rows = append(rows, v.cells(row, false))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tui.BorderStyle).
		Headers(v.headers()...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tui.TableHeaderStyle
			}
			return tui.TableCellStyle
		})
	if width > 0 {
		t = t.Width(width)
	}
	b.WriteString(t.Render())
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	return writeFooter(w, v)
}

func writeFooter(w io.Writer, v View) error {
	footer := demo.Footer(v.Session)
	if page := v.pageLine(); page != "" {
		footer += " · " + page
	}
	_, err := fmt.Fprintln(w, footer)
	return err
}
