package tui

import "github.com/charmbracelet/lipgloss"

// Color palette (ANSI 256).
//
//nolint:gochecknoglobals // Palette constants as lipgloss colors.
var (
	ColorHeader    = lipgloss.Color("12")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorMuted     = lipgloss.Color("240")
	ColorBorder    = lipgloss.Color("238")
	ColorHighlight = lipgloss.Color("57")
	ColorSelected  = lipgloss.Color("229")
	ColorOK        = lipgloss.Color("42")
	ColorWarning   = lipgloss.Color("214")
	ColorCritical  = lipgloss.Color("196")
	ColorAccent    = lipgloss.Color("141")
)

// Shared styles.
//
//nolint:gochecknoglobals // Immutable lipgloss styles.
var (
	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle    = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	SubtleStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	InfoStyle     = lipgloss.NewStyle().Foreground(ColorHeader)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	CriticalStyle = lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)
	OKStyle       = lipgloss.NewStyle().Foreground(ColorOK)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
	BorderStyle = lipgloss.NewStyle().Foreground(ColorBorder)

	TableHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader).Padding(0, 1)
	TableCellStyle     = lipgloss.NewStyle().Padding(0, 1)
	TableSelectedStyle = lipgloss.NewStyle().Foreground(ColorSelected).Background(ColorHighlight)

	BadgeStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true)
)

// Sort indicators.
const (
	IconArrowUp    = "▲"
	IconArrowDown  = "▼"
	IconArrowRight = "▶"
	IconUnsorted   = "↕"
)

// badgeColors maps enum values that get a colored badge.
//
//nolint:gochecknoglobals // Read-only lookup table.
var badgeColors = map[string]lipgloss.Color{
	"Activo":     ColorOK,
	"Inactivo":   ColorCritical,
	"Admin":      lipgloss.Color("33"),
	"Editor":     ColorAccent,
	"Usuario":    ColorLabel,
	"Alta":       ColorCritical,
	"Media":      ColorWarning,
	"Baja":       ColorOK,
	"Completada": ColorOK,
	"En curso":   ColorWarning,
	"Pendiente":  ColorLabel,
}

// Badge renders value as a colored pill. Unknown values render as plain text.
func Badge(value string) string {
	c, ok := badgeColors[value]
	if !ok {
		return value
	}
	return BadgeStyle.Foreground(c).Render(value)
}

// HasBadge reports whether value renders as a colored badge.
func HasBadge(value string) bool {
	_, ok := badgeColors[value]
	return ok
}
