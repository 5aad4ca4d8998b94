package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/gridgallery/internal/catalog"
	"github.com/rshade/gridgallery/internal/demo"
)

const (
	cardWidth     = 46
	infoMinWidth  = 30
	galleryFooter = "↑/↓ elegir · enter abrir demo · esc volver · q salir"
)

// GalleryModel lists the catalog grouped by category and opens demos.
type GalleryModel struct {
	state  ViewState
	groups []catalog.Group
	libs   []catalog.Library
	cursor int

	// sizes overrides the dataset size per demo id.
	sizes  map[string]int
	active *DemoModel
	err    error

	width  int
	height int
}

// NewGalleryModel creates the gallery. sizes may be nil.
func NewGalleryModel(sizes map[string]int) *GalleryModel {
	groups := catalog.Grouped()
	var libs []catalog.Library
	for _, g := range groups {
		libs = append(libs, g.Libraries...)
	}
	return &GalleryModel{
		state:  ViewStateList,
		groups: groups,
		libs:   libs,
		sizes:  sizes,
		width:  defaultWidth,
		height: defaultHeight,
	}
}

// Selected returns the highlighted library.
func (m *GalleryModel) Selected() catalog.Library {
	return m.libs[m.cursor]
}

// Active returns the open demo, or nil while browsing the catalog.
func (m *GalleryModel) Active() *DemoModel {
	return m.active
}

// State returns the current view state.
func (m *GalleryModel) State() ViewState { return m.state }

// Init initializes the model.
func (m *GalleryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *GalleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
	}

	if m.active != nil {
		return m.updateActive(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyUp, keyK, keyShiftTab:
		m.cursor = (m.cursor - 1 + len(m.libs)) % len(m.libs)
	case keyDown, keyJ, keyTab:
		m.cursor = (m.cursor + 1) % len(m.libs)
	case keyEnter:
		m.open()
	}
	return m, nil
}

func (m *GalleryModel) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(BackMsg); ok {
		m.active = nil
		return m, nil
	}

	_, cmd := m.active.Update(msg)
	if m.active.State() == ViewStateQuitting {
		m.state = ViewStateQuitting
		return m, tea.Quit
	}
	return m, cmd
}

func (m *GalleryModel) open() {
	lib := m.Selected()
	d, err := demo.Get(lib.ID)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.active = NewDemoModel(d.Open(m.sizes[d.ID]))
	m.active.embedded = true
	m.active.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
}

// View renders the gallery or the open demo.
func (m *GalleryModel) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}
	if m.active != nil {
		return m.active.View()
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Galería de tablas y virtualización"))
	b.WriteString("\n\n")

	cards := m.renderCards()
	info := m.renderInfo(max(infoMinWidth, m.width-cardWidth-4))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards, "  ", info))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(CriticalStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(SubtleStyle.Render(galleryFooter))
	return b.String()
}

func (m *GalleryModel) renderCards() string {
	var b strings.Builder
	i := 0
	for _, g := range m.groups {
		b.WriteString(LabelStyle.Bold(true).Render(g.Category.Title()))
		b.WriteString("\n")
		for _, lib := range g.Libraries {
			badge := SubtleStyle.Render(fmt.Sprintf("[%s]", lib.Badge))
			if i == m.cursor {
				b.WriteString(TableSelectedStyle.Render(IconArrowRight+" "+lib.Name) + " " + badge)
			} else {
				b.WriteString("  " + lib.Name + " " + badge)
			}
			b.WriteString("\n")
			b.WriteString(SubtleStyle.Render("  " + lib.Tagline))
			b.WriteString("\n")
			i++
		}
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().Width(cardWidth).Render(strings.TrimRight(b.String(), "\n"))
}

func (m *GalleryModel) renderInfo(width int) string {
	lib := m.Selected()

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(lib.Name))
	b.WriteString(" ")
	b.WriteString(SubtleStyle.Render("por " + lib.Author))
	b.WriteString("\n\n")
	b.WriteString(lib.Description)
	b.WriteString("\n\n")
	for _, f := range lib.Features {
		b.WriteString(OKStyle.Render("✓ "))
		b.WriteString(f)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("Ver documentación oficial: "))
	b.WriteString(lib.DocsURL)
	return BoxStyle.Width(width).Render(b.String())
}
