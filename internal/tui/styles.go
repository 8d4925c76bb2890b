package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekgrid/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorCurrent lipgloss.Color

	AppStyle   lipgloss.Style
	TitleStyle lipgloss.Style
	MetaStyle  lipgloss.Style

	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style

	TimeColumnStyle    lipgloss.Style
	TimeColumnNowStyle lipgloss.Style

	// Cells alternate between two shades per hour.
	CellOffStyle    lipgloss.Style
	CellOffAltStyle lipgloss.Style
	CellOnStyle     lipgloss.Style
	CellOnAltStyle  lipgloss.Style
	CursorOffStyle  lipgloss.Style
	CursorOnStyle   lipgloss.Style

	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	HelpSep     lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	base := lipgloss.NewStyle().Background(p.Bg).Foreground(p.Fg)

	return &Styles{
		colorCurrent: p.Current,

		AppStyle: base,
		TitleStyle: lipgloss.NewStyle().
			Background(p.Accent).
			Foreground(p.TextOnAccent).
			Bold(true).
			Padding(0, 1),
		MetaStyle: base.Foreground(p.FgMuted),

		DayHeaderStyle:      base.Foreground(p.Accent).Bold(true).Align(lipgloss.Center),
		DayHeaderTodayStyle: base.Foreground(p.Current).Bold(true).Underline(true).Align(lipgloss.Center),

		TimeColumnStyle:    base.Foreground(p.FgMuted),
		TimeColumnNowStyle: base.Foreground(p.Current).Bold(true),

		CellOffStyle:    lipgloss.NewStyle().Background(p.Bg).Foreground(p.FgMuted),
		CellOffAltStyle: lipgloss.NewStyle().Background(p.BgHighlight).Foreground(p.FgMuted),
		CellOnStyle:     lipgloss.NewStyle().Background(p.Available).Foreground(p.Available),
		CellOnAltStyle:  lipgloss.NewStyle().Background(p.AvailableAlt).Foreground(p.AvailableAlt),
		CursorOffStyle:  lipgloss.NewStyle().Background(p.BgSelection).Foreground(p.Fg),
		CursorOnStyle:   lipgloss.NewStyle().Background(p.CursorOn).Foreground(p.TextOnAvailable).Bold(true),

		StatusStyle: base.Foreground(p.Fg),
		ErrorStyle:  base.Foreground(p.Warning).Bold(true),
		HelpKey:     base.Foreground(p.Accent),
		HelpDesc:    base.Foreground(p.FgMuted),
		HelpSep:     base.Foreground(p.FgMuted),
	}
}
