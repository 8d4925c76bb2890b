package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/scheduler"
	"github.com/javiermolinar/weekgrid/internal/summary"
	"github.com/javiermolinar/weekgrid/internal/weekgrid"
)

const (
	cursorGlyph = "◆"
	nowGlyph    = "•"
	fillGlyph   = "█"
)

// View renders the grid, the status line and the help footer.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading..."
	}
	if m.width < timeColWidth+weekgrid.DaysPerWeek*minColWidth || m.height < headerRows+m.footerHeight()+1 {
		return "Terminal too small"
	}

	lines := make([]string, 0, m.height)
	lines = append(lines, m.renderTitle(), m.renderDayHeader())
	lines = append(lines, m.renderRows()...)
	lines = append(lines, m.renderStatus(), m.help.View(m.keys))

	return m.styles.AppStyle.
		Width(m.width).
		Height(m.height).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderTitle() string {
	bph := m.ctrl.Grid().BlocksPerHour()
	intervals := m.ctrl.Intervals()
	meta := fmt.Sprintf(" %s · %d blocks/h · %s available",
		m.schedule, bph, dateutil.FormatDuration(summary.SummarizeWeek(bph, intervals).Total))
	if slot, ok := scheduler.New(bph, intervals).NextAvailableAt(m.now()); ok {
		if slot.Active() {
			meta += " · free until " + dateutil.FormatOffset(slot.End)
		} else {
			meta += " · next " + dateutil.FormatOffset(slot.Start)
		}
	}
	if m.ctrl.Dragging() {
		if m.ctrl.ToggleValue() {
			meta += " · painting"
		} else {
			meta += " · erasing"
		}
	}
	line := m.styles.TitleStyle.Render("weekgrid") + m.styles.MetaStyle.Render(meta)
	return ansi.Truncate(line, m.width, "…")
}

func (m Model) renderDayHeader() string {
	today := m.nowCell().Day

	var b strings.Builder
	b.WriteString(m.styles.TimeColumnStyle.Width(timeColWidth).Render(""))
	for day, label := range m.ctrl.Geometry().DayLabels() {
		style := m.styles.DayHeaderStyle
		if day == today {
			style = m.styles.DayHeaderTodayStyle
		}
		b.WriteString(style.Width(m.colWidth).Render(ansi.Truncate(label.Text, m.colWidth, "")))
	}
	return b.String()
}

func (m Model) renderRows() []string {
	g := m.ctrl.Grid()
	now := m.nowCell()
	rows := m.visibleRows()

	lines := make([]string, 0, rows)
	for r := 0; r < rows; r++ {
		part := m.scroll + r

		var b strings.Builder
		timeStyle := m.styles.TimeColumnStyle
		if part == now.HourPart {
			timeStyle = m.styles.TimeColumnNowStyle
		}
		b.WriteString(timeStyle.Width(timeColWidth).Render(blockLabel(part, g.SecondsPerBlock())))

		for day := 0; day < weekgrid.DaysPerWeek; day++ {
			b.WriteString(m.renderCell(weekgrid.Cell{Day: day, HourPart: part}, now))
		}
		lines = append(lines, b.String())
	}
	return lines
}

func (m Model) renderCell(c, now weekgrid.Cell) string {
	on := m.surface.on(c)
	oddHour := (c.HourPart/m.ctrl.Grid().BlocksPerHour())%2 == 1

	var style lipgloss.Style
	switch {
	case on && oddHour:
		style = m.styles.CellOnAltStyle
	case on:
		style = m.styles.CellOnStyle
	case oddHour:
		style = m.styles.CellOffAltStyle
	default:
		style = m.styles.CellOffStyle
	}

	text := ""
	if on {
		text = strings.Repeat(fillGlyph, m.colWidth)
	}

	switch {
	case c == m.cursor:
		style = m.styles.CursorOffStyle
		if on {
			style = m.styles.CursorOnStyle
		}
		text = cursorGlyph
	case c == now:
		style = style.Foreground(m.styles.colorCurrent)
		text = nowGlyph
	}

	return style.Width(m.colWidth).Align(lipgloss.Center).Render(text)
}

// blockLabel renders the start time of a block within its day.
func blockLabel(part, secondsPerBlock int) string {
	sec := part * secondsPerBlock
	return fmt.Sprintf("%02d:%02d", sec/3600, sec%3600/60)
}

func (m Model) renderStatus() string {
	if m.statusMsg != "" {
		style := m.styles.StatusStyle
		if m.statusErr {
			style = m.styles.ErrorStyle
		}
		return style.Render(ansi.Truncate(m.statusMsg, m.width, "…"))
	}

	g := m.ctrl.Grid()
	state := "off"
	if m.surface.on(m.cursor) {
		state = "on"
	}
	start := g.Index(m.cursor.Day, m.cursor.HourPart) * g.SecondsPerBlock()
	hint := fmt.Sprintf("%s · %s", dateutil.FormatOffset(start), state)
	return m.styles.MetaStyle.Render(ansi.Truncate(hint, m.width, "…"))
}
