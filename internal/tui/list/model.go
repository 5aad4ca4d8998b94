package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultOverscan is the number of rows kept materialized above and below
// the viewport when none is configured.
const DefaultOverscan = 5

// halfViewportDivisor is used to calculate half the viewport height for centering.
const halfViewportDivisor = 2

// RenderFunc renders the item at index. selected reports whether it is the
// cursor row.
type RenderFunc[T any] func(item T, index int, selected bool) string

// VirtualListModel is a windowed list: only the rows inside the viewport are
// drawn, and only the viewport plus the overscan margin is materialized.
type VirtualListModel[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	// selected is the cursor index (0-based)
	selected int

	// visibleFrom and visibleTo bound the viewport (to is exclusive)
	visibleFrom int
	visibleTo   int

	height int
	width  int

	// overscan is the number of extra rows materialized above/below the viewport
	overscan int
}

// NewVirtualListModel creates a list over items with a viewport of height
// rows.
func NewVirtualListModel[T any](items []T, height, width int, renderFunc RenderFunc[T]) *VirtualListModel[T] {
	m := &VirtualListModel[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     height,
		width:      width,
		overscan:   DefaultOverscan,
	}

	m.updateVisibleRange()
	return m
}

// Init initializes the model (required for tea.Model interface).
func (m *VirtualListModel[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and resizes.
func (m *VirtualListModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg), nil
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

//nolint:exhaustive // Only navigation keys are handled.
func (m *VirtualListModel[T]) handleKeyMsg(msg tea.KeyMsg) tea.Model {
	if len(m.items) == 0 {
		return m
	}

	switch msg.Type {
	case tea.KeyUp:
		m.SetSelected(m.selected - 1)
	case tea.KeyDown:
		m.SetSelected(m.selected + 1)
	case tea.KeyPgUp:
		m.SetSelected(m.selected - m.height)
	case tea.KeyPgDown:
		m.SetSelected(m.selected + m.height)
	case tea.KeyHome:
		m.SetSelected(0)
	case tea.KeyEnd:
		m.SetSelected(len(m.items) - 1)
	case tea.KeyRunes:
		// vim-style navigation
		if len(msg.Runes) > 0 {
			switch msg.Runes[0] {
			case 'j':
				m.SetSelected(m.selected + 1)
			case 'k':
				m.SetSelected(m.selected - 1)
			case 'g':
				m.SetSelected(0)
			case 'G':
				m.SetSelected(len(m.items) - 1)
			}
		}
	default:
	}

	return m
}

// updateVisibleRange keeps the cursor centered where possible and clamps the
// viewport to the item bounds.
func (m *VirtualListModel[T]) updateVisibleRange() {
	if len(m.items) == 0 || m.height <= 0 {
		m.visibleFrom = 0
		m.visibleTo = 0
		return
	}

	from := m.selected - m.height/halfViewportDivisor
	if from < 0 {
		from = 0
	}
	to := from + m.height
	if to > len(m.items) {
		to = len(m.items)
		from = max(0, to-m.height)
	}

	m.visibleFrom = from
	m.visibleTo = to
}

// View renders the rows inside the viewport.
func (m *VirtualListModel[T]) View() string {
	if m.visibleTo <= m.visibleFrom {
		return ""
	}

	var sb strings.Builder
	for i := m.visibleFrom; i < m.visibleTo; i++ {
		if i > m.visibleFrom {
			sb.WriteString("\n")
		}
		sb.WriteString(m.renderFunc(m.items[i], i, i == m.selected))
	}
	return sb.String()
}

// SetItems replaces the items, keeping the cursor in range.
func (m *VirtualListModel[T]) SetItems(items []T) {
	m.items = items
	m.SetSelected(m.selected)
}

// SetSize resizes the viewport.
func (m *VirtualListModel[T]) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.updateVisibleRange()
}

// SetOverscan sets the materialized margin. Negative values are treated as 0.
func (m *VirtualListModel[T]) SetOverscan(n int) {
	m.overscan = max(0, n)
}

// Overscan returns the materialized margin.
func (m *VirtualListModel[T]) Overscan() int {
	return m.overscan
}

// RenderRange returns the materialized window: the viewport widened by the
// overscan margin and clamped to the items (to is exclusive).
//
//nolint:nonamedreturns // Named returns document the pair.
func (m *VirtualListModel[T]) RenderRange() (from, to int) {
	if m.visibleTo <= m.visibleFrom {
		return 0, 0
	}
	return max(0, m.visibleFrom-m.overscan), min(len(m.items), m.visibleTo+m.overscan)
}

// ItemCount returns the total number of items in the list.
func (m *VirtualListModel[T]) ItemCount() int {
	return len(m.items)
}

// ItemAt returns the item at index. It panics when index is out of range.
func (m *VirtualListModel[T]) ItemAt(index int) T {
	return m.items[index]
}

// Selected returns the currently selected item index.
func (m *VirtualListModel[T]) Selected() int {
	return m.selected
}

// SetSelected sets the selected item index, capping to valid bounds.
func (m *VirtualListModel[T]) SetSelected(index int) {
	switch {
	case len(m.items) == 0 || index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}

	m.updateVisibleRange()
}

// VisibleFrom returns the first visible item index (inclusive).
func (m *VirtualListModel[T]) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns the last visible item index (exclusive).
func (m *VirtualListModel[T]) VisibleTo() int {
	return m.visibleTo
}

// Height returns the viewport height.
func (m *VirtualListModel[T]) Height() int {
	return m.height
}

// Width returns the viewport width.
func (m *VirtualListModel[T]) Width() int {
	return m.width
}

// GetSelectedItem returns the currently selected item, or nil when the list
// is empty.
func (m *VirtualListModel[T]) GetSelectedItem() *T {
	if len(m.items) == 0 || m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}
