package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekgrid/internal/weekgrid"
)

const wheelStep = 3

// handleMouseMsg forwards mouse input to the controller as pointer events.
// A left press starts a drag, motion with the button held paints, and any
// release ends the gesture, wherever it happens.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollBy(-wheelStep)

	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollBy(wheelStep)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		cell, ok := m.cellAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.cursor = cell
		m.ctrl.PointerDown(weekgrid.SourcePointer, cell)

	case msg.Action == tea.MouseActionMotion:
		if !m.ctrl.Dragging() {
			return m, nil
		}
		cell, ok := m.cellAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.cursor = cell
		m.ctrl.PointerEnter(weekgrid.SourcePointer, cell)

	case msg.Action == tea.MouseActionRelease:
		if m.ctrl.Dragging() {
			m.logger.Debug("drag released",
				slog.String("event.type", "tui.mouse.release"),
				slog.Int("x", msg.X),
				slog.Int("y", msg.Y),
			)
		}
		m.ctrl.PointerUp(weekgrid.SourcePointer)
		cmd := m.flushPublished()
		return m, cmd
	}

	return m, nil
}

// cellAt hit-tests a terminal position against the visible rows. Each
// terminal cell is tested at its center.
func (m Model) cellAt(x, y int) (weekgrid.Cell, bool) {
	if y < headerRows || y >= headerRows+m.visibleRows() {
		return weekgrid.Cell{}, false
	}
	return m.ctrl.Geometry().CellAt(float64(x)+0.5, float64(y+m.scroll)+0.5)
}
