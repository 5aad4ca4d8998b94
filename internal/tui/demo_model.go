package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/gridgallery/internal/cli/pagination"
	"github.com/rshade/gridgallery/internal/demo"
	"github.com/rshade/gridgallery/internal/query"
	listview "github.com/rshade/gridgallery/internal/tui/list"
)

// demoChromeHeight is the number of lines around the list: title, KPIs,
// controls, search, column header, footer and help.
const demoChromeHeight = 8

// BackMsg asks the parent model to close the demo.
type BackMsg struct{}

// DemoModel is the interactive view of one demo session.
type DemoModel struct {
	state   ViewState
	demo    demo.Demo
	session demo.Session

	virtualList *listview.VirtualListModel[int]
	textInput   textinput.Model
	showFilter  bool

	// control is the filter control focused by tab.
	control  int
	sortable []string

	// page and pageSize are used by paginated demos only.
	page     int
	pageSize int
	meta     pagination.PaginationMeta

	widths []int

	width    int
	height   int
	embedded bool
}

// NewDemoModel creates a model over an open session.
func NewDemoModel(s demo.Session) *DemoModel {
	d := s.Demo()
	m := &DemoModel{
		state:     ViewStateList,
		demo:      d,
		session:   s,
		textInput: newSearchInput(d.SearchPlaceholder),
		sortable:  d.Sortable,
		page:      1,
		pageSize:  d.DefaultPageSize(),
		width:     defaultWidth,
		height:    defaultHeight,
	}
	if len(m.sortable) == 0 {
		for _, c := range s.Columns() {
			m.sortable = append(m.sortable, c.Name)
		}
	}
	m.textInput.SetValue(s.Criteria().Search)
	m.rebuildList()
	return m
}

func newSearchInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth
	return ti
}

// Session returns the session the model drives.
func (m *DemoModel) Session() demo.Session { return m.session }

// State returns the current view state.
func (m *DemoModel) State() ViewState { return m.state }

// Page returns the current page, 1-based. Always 1 for virtualized demos.
func (m *DemoModel) Page() int { return m.page }

// FocusedControl returns the field of the focused filter control.
func (m *DemoModel) FocusedControl() string {
	if len(m.demo.Filters) == 0 {
		return ""
	}
	return m.demo.Filters[m.control].Field
}

// Init initializes the model.
func (m *DemoModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.rebuildList()
		return m, nil
	}

	if m.showFilter {
		return m.handleSearchInput(msg)
	}

	switch m.state {
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	case ViewStateQuitting:
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m *DemoModel) handleSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter, keyEsc:
			m.showFilter = false
			m.textInput.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.textInput.Value()
	m.textInput, cmd = m.textInput.Update(msg)
	if v := m.textInput.Value(); v != before {
		m.session.SetSearch(v)
		m.page = 1
		m.rebuildList()
	}
	return m, cmd
}

//nolint:cyclop // One branch per key binding.
func (m *DemoModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyEsc:
		if m.textInput.Value() != "" {
			m.textInput.SetValue("")
			m.session.SetSearch("")
			m.page = 1
			m.rebuildList()
			return m, nil
		}
		if m.embedded {
			return m, func() tea.Msg { return BackMsg{} }
		}
		return m, nil
	case keyEnter:
		if m.virtualList.GetSelectedItem() != nil {
			m.state = ViewStateDetail
		}
		return m, nil
	case keySlash:
		m.showFilter = true
		return m, m.textInput.Focus()
	case keyTab:
		m.focusControl(1)
		return m, nil
	case keyShiftTab:
		m.focusControl(-1)
		return m, nil
	case keyFilter:
		m.cycleFilter()
		return m, nil
	case keySort:
		m.cycleSort()
		return m, nil
	case keyOrder:
		m.flipOrder()
		return m, nil
	case keyReset:
		m.session.Reset()
		m.textInput.SetValue("")
		m.page = 1
		m.rebuildList()
		return m, nil
	case keyNextPage:
		m.turnPage(1)
		return m, nil
	case keyPrevPage:
		m.turnPage(-1)
		return m, nil
	case keyPageSize:
		m.cyclePageSize()
		return m, nil
	}

	updated, cmd := m.virtualList.Update(msg)
	if vl, ok := updated.(*listview.VirtualListModel[int]); ok {
		m.virtualList = vl
	}
	m.measureColumns()
	return m, cmd
}

func (m *DemoModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEsc, keyEnter:
			m.state = ViewStateList
		}
	}
	return m, nil
}

func (m *DemoModel) focusControl(delta int) {
	n := len(m.demo.Filters)
	if n == 0 {
		return
	}
	m.control = ((m.control+delta)%n + n) % n
}

// cycleFilter advances the focused control through "all" and its options.
func (m *DemoModel) cycleFilter() {
	if len(m.demo.Filters) == 0 {
		return
	}
	fc := m.demo.Filters[m.control]
	choices := append([]string{""}, fc.Options...)
	current := m.session.Criteria().Equals(fc.Field)

	next := 0
	for i, c := range choices {
		if c == current {
			next = (i + 1) % len(choices)
			break
		}
	}
	m.session.SetEquals(fc.Field, choices[next])
	m.page = 1
	m.rebuildList()
}

// cycleSort moves the sort to the next sortable field, ascending.
func (m *DemoModel) cycleSort() {
	if len(m.sortable) == 0 {
		return
	}
	current := m.session.Criteria().Sort.Field
	next := 0
	for i, f := range m.sortable {
		if f == current {
			next = (i + 1) % len(m.sortable)
			break
		}
	}
	m.session.SetSort(query.SortKey{Field: m.sortable[next], Order: query.Asc})
	m.rebuildList()
}

func (m *DemoModel) flipOrder() {
	field := m.session.Criteria().Sort.Field
	if field == "" {
		if len(m.sortable) == 0 {
			return
		}
		field = m.sortable[0]
	}
	m.session.ToggleSort(field)
	m.rebuildList()
}

func (m *DemoModel) turnPage(delta int) {
	if !m.demo.Paginated() {
		return
	}
	m.page = max(1, min(m.page+delta, max(1, m.meta.TotalPages)))
	m.rebuildList()
}

func (m *DemoModel) cyclePageSize() {
	sizes := m.demo.PageSizes
	if len(sizes) < 2 {
		return
	}
	next := sizes[0]
	for i, s := range sizes {
		if s == m.pageSize {
			next = sizes[(i+1)%len(sizes)]
			break
		}
	}
	m.pageSize = next
	m.page = 1
	m.rebuildList()
}

// rebuildList refreshes the rows shown after any criteria or layout change.
func (m *DemoModel) rebuildList() {
	rows := make([]int, m.session.Len())
	for i := range rows {
		rows[i] = i
	}

	if m.demo.Paginated() {
		params := pagination.PaginationParams{Page: m.page, PageSize: m.pageSize}
		m.meta = pagination.NewPaginationMeta(params, len(rows))
		m.page = m.meta.CurrentPage
		rows = pagination.Apply(params, rows)
	}

	listHeight := max(minHeight, m.height-demoChromeHeight)
	if m.virtualList == nil {
		m.virtualList = listview.NewVirtualListModel(rows, listHeight, m.width, m.renderRow)
	} else {
		m.virtualList.SetItems(rows)
		m.virtualList.SetSize(m.width, listHeight)
	}
	m.virtualList.SetOverscan(m.demo.Overscan)
	m.widths = nil
	m.measureColumns()
}

// measureColumns widens the columns to fit the headers and the rows inside
// the render range. Widths only grow until the next rebuild so the layout
// does not jitter while scrolling.
func (m *DemoModel) measureColumns() {
	cols := m.session.Columns()
	if len(m.widths) != len(cols) {
		m.widths = make([]int, len(cols))
		for i, c := range cols {
			m.widths[i] = min(lipgloss.Width(c.Header)+2, maxColumnWidth)
		}
	}
	from, to := m.virtualList.RenderRange()
	for i := from; i < to; i++ {
		row := m.virtualList.ItemAt(i)
		for col := range cols {
			w := min(lipgloss.Width(m.session.Cell(row, col)), maxColumnWidth)
			m.widths[col] = max(m.widths[col], w)
		}
	}
}

func (m *DemoModel) renderRow(row, _ int, selected bool) string {
	cols := m.session.Columns()
	cells := make([]string, len(cols))
	for col, c := range cols {
		text := fit(m.session.Cell(row, col), m.widths[col])
		if !selected && c.Kind == query.KindEnum && HasBadge(m.session.Raw(row, col)) {
			pad := m.widths[col] - lipgloss.Width(text)
			text = Badge(strings.TrimRight(text, " ")) + strings.Repeat(" ", max(0, pad))
		}
		cells[col] = text
	}
	line := strings.Join(cells, strings.Repeat(" ", columnGap))
	if selected {
		return TableSelectedStyle.Render(line)
	}
	return line
}

// fit truncates s to width cells, then pads it with spaces.
func fit(s string, width int) string {
	if lipgloss.Width(s) > width {
		r := []rune(s)
		for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
			r = r[:len(r)-1]
		}
		s = string(r) + "…"
	}
	return s + strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
}

// View renders the current view.
func (m *DemoModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		return m.renderDetail()
	default:
		return m.renderList()
	}
}

func (m *DemoModel) renderList() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(m.demo.Title))
	if lib := m.demo.Library(); lib.Tagline != "" {
		b.WriteString(SubtleStyle.Render("  " + lib.Tagline))
	}
	b.WriteString("\n")

	if kpis := demo.KPIs(m.session); len(kpis) > 0 {
		parts := make([]string, len(kpis))
		for i, k := range kpis {
			parts[i] = LabelStyle.Render(k.Label+":") + " " + ValueStyle.Render(k.Value)
		}
		b.WriteString(strings.Join(parts, "   "))
	}
	b.WriteString("\n")

	b.WriteString(m.renderControls())
	b.WriteString("\n")

	if m.showFilter {
		b.WriteString(m.textInput.View())
	} else if v := m.textInput.Value(); v != "" {
		b.WriteString(LabelStyle.Render("Buscar: ") + ValueStyle.Render(v))
	} else {
		b.WriteString(SubtleStyle.Render(m.demo.SearchPlaceholder))
	}
	b.WriteString("\n")

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.session.Len() == 0 {
		b.WriteString(SubtleStyle.Render("Sin resultados"))
	} else {
		b.WriteString(m.virtualList.View())
	}
	b.WriteString("\n")

	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render(
		"/ buscar · tab filtro · f valor · s ordenar · o invertir · r limpiar · enter detalle · esc volver · q salir"))
	return b.String()
}

func (m *DemoModel) renderControls() string {
	parts := make([]string, 0, len(m.demo.Filters)+1)
	criteria := m.session.Criteria()
	for i, fc := range m.demo.Filters {
		label := criteria.Equals(fc.Field)
		if label == "" {
			label = fc.AllLabel
		}
		label = "[" + label + "]"
		if i == m.control {
			parts = append(parts, TableSelectedStyle.Render(label))
		} else {
			parts = append(parts, LabelStyle.Render(label))
		}
	}
	if m.demo.Paginated() {
		parts = append(parts, LabelStyle.Render(fmt.Sprintf("Filas por página: %d", m.pageSize)))
	}
	return strings.Join(parts, " ")
}

func (m *DemoModel) renderHeader() string {
	sort := m.session.Criteria().Sort
	cols := m.session.Columns()
	cells := make([]string, len(cols))
	for i, c := range cols {
		label := c.Header
		switch {
		case sort.Field == c.Name && sort.Order == query.Desc:
			label += " " + IconArrowDown
		case sort.Field == c.Name:
			label += " " + IconArrowUp
		case m.isSortable(c.Name):
			label += " " + IconUnsorted
		}
		cells[i] = fit(label, m.widths[i])
	}
	return TableHeaderStyle.Padding(0).Render(strings.Join(cells, strings.Repeat(" ", columnGap)))
}

func (m *DemoModel) isSortable(field string) bool {
	for _, f := range m.sortable {
		if f == field {
			return true
		}
	}
	return false
}

func (m *DemoModel) renderStatus() string {
	status := demo.Footer(m.session)
	if m.demo.Paginated() {
		if m.meta.TotalPages > 0 {
			status += fmt.Sprintf(" · Página %d de %d", m.meta.CurrentPage, m.meta.TotalPages)
		}
		return InfoStyle.Render(status)
	}
	if m.session.Len() > 0 {
		from, to := m.virtualList.RenderRange()
		status += fmt.Sprintf(" · visibles %d–%d · montadas %d–%d (overscan %d)",
			m.virtualList.VisibleFrom()+1, m.virtualList.VisibleTo(), from+1, to, m.virtualList.Overscan())
	}
	return InfoStyle.Render(status)
}

func (m *DemoModel) renderDetail() string {
	item := m.virtualList.GetSelectedItem()
	if item == nil {
		return ""
	}
	row := *item

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%s · #%s", m.demo.Title, m.session.Value(row, "id"))))
	b.WriteString("\n\n")
	for col, c := range m.session.Columns() {
		b.WriteString(LabelStyle.Render(fmt.Sprintf("%-20s", c.Header)))
		b.WriteString(ValueStyle.Render(m.session.Cell(row, col)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render("esc volver · q salir"))
	return BoxStyle.Width(max(minHeight, m.width-2)).Render(b.String())
}
