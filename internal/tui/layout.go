package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/weekgrid"
)

// resizeGrid fits the controller geometry to the terminal. One block is one
// terminal row; the rows scroll, so the geometry covers the whole day and
// hit tests add the scroll offset.
func (m *Model) resizeGrid() {
	if m.width > 0 {
		m.colWidth = max(minColWidth, (m.width-timeColWidth)/weekgrid.DaysPerWeek)
	}
	width := timeColWidth + weekgrid.DaysPerWeek*m.colWidth
	height := headerRows + m.blocksPerDay()
	m.ctrl.Resize(float64(width), float64(height))
}

func (m Model) blocksPerDay() int {
	return m.ctrl.Grid().BlocksPerDay()
}

func (m Model) footerHeight() int {
	return 1 + lipgloss.Height(m.help.View(m.keys))
}

// visibleRows is the number of block rows that fit on screen.
func (m Model) visibleRows() int {
	perDay := m.blocksPerDay()
	if m.height <= 0 {
		return perDay
	}
	rows := m.height - headerRows - m.footerHeight()
	return clamp(rows, 1, perDay)
}

func (m *Model) scrollBy(n int) {
	m.scroll += n
	m.clampScroll()
}

func (m *Model) clampScroll() {
	m.scroll = clamp(m.scroll, 0, max(0, m.blocksPerDay()-m.visibleRows()))
}

func (m *Model) ensureCursorVisible() {
	rows := m.visibleRows()
	if m.cursor.HourPart < m.scroll {
		m.scroll = m.cursor.HourPart
	}
	if m.cursor.HourPart >= m.scroll+rows {
		m.scroll = m.cursor.HourPart - rows + 1
	}
	m.clampScroll()
}

// nowCell returns the block containing the current time.
func (m Model) nowCell() weekgrid.Cell {
	g := m.ctrl.Grid()
	i := dateutil.WeekOffset(m.now()) / g.SecondsPerBlock()
	return g.Coords(clamp(i, 0, g.Len()-1))
}

// focusNow moves the cursor to the current block and scrolls it to the
// middle of the screen.
func (m *Model) focusNow() {
	m.cursor = m.nowCell()
	m.scroll = m.cursor.HourPart - m.visibleRows()/2
	m.clampScroll()
}
