package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekgrid/internal/tui/commands"
	"github.com/javiermolinar/weekgrid/internal/weekgrid"
)

// keyMap is the set of key bindings shown in the help footer.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Now      key.Binding
	Toggle   key.Binding
	Copy     key.Binding
	Clear    key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "earlier")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "later")),
		Left:     key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "prev day")),
		Right:    key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→/l", "next day")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "K"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "J"), key.WithHelp("pgdn", "page down")),
		Now:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "jump to now")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy json")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear week")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Copy, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PageUp, k.PageDown, k.Now},
		{k.Toggle, k.Copy, k.Clear, k.Reload},
		{k.Help, k.Quit},
	}
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logger.Debug("key pressed", slog.String("event.type", "tui.key"), slog.String("key", msg.String()))

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(0, -m.visibleRows())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(0, m.visibleRows())
	case key.Matches(msg, m.keys.Now):
		m.focusNow()

	case key.Matches(msg, m.keys.Toggle):
		// Keyboard taps behave like a touch: one cell, published at once.
		m.ctrl.TouchEnd(weekgrid.SourceTouch, m.cursor)
		cmd := m.flushPublished()
		return m, cmd

	case key.Matches(msg, m.keys.Clear):
		m.ctrl.Replace(nil)
		cmd := m.flushPublished()
		return m, cmd

	case key.Matches(msg, m.keys.Reload):
		return m, commands.LoadSchedule(m.store, m.schedule)

	case key.Matches(msg, m.keys.Copy):
		return m, commands.CopyIntervals(m.clipboard, m.ctrl.Intervals())

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.ensureCursorVisible()
	}

	return m, nil
}

// moveCursor moves the cursor by whole cells, clamped to the grid.
func (m *Model) moveCursor(dDay, dPart int) {
	perDay := m.ctrl.Grid().BlocksPerDay()
	m.cursor.Day = clamp(m.cursor.Day+dDay, 0, weekgrid.DaysPerWeek-1)
	m.cursor.HourPart = clamp(m.cursor.HourPart+dPart, 0, perDay-1)
	m.ensureCursorVisible()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
