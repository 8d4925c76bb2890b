package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekgrid/internal/tui/commands"
)

const (
	statusDuration = 3 * time.Second
	errorDuration  = 5 * time.Second
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeGrid()
		m.ensureCursorVisible()
		return m, nil

	case commands.LoadedMsg:
		if msg.Schedule != m.schedule {
			return m, nil
		}
		// Store contents are an out-of-band change: merged, never published.
		m.ctrl.OnExternalIntervalsChanged(msg.Intervals)
		m.intervals = m.ctrl.Intervals()
		if !m.loaded {
			m.loaded = true
			m.focusNow()
		}
		if m.dirty {
			// Edits made before the load now include the stored intervals.
			m.pending = m.intervals
		}
		if cmd := m.nextSave(); cmd != nil {
			return m, cmd
		}
		return m, m.setStatus(fmt.Sprintf("Loaded %d intervals", len(msg.Intervals)), false)

	case commands.SavedMsg:
		m.saving = false
		if cmd := m.nextSave(); cmd != nil {
			return m, cmd
		}
		return m, m.setStatus(fmt.Sprintf("Saved %d intervals", msg.Count), false)

	case commands.SaveFailedMsg:
		m.saving = false
		m.err = msg.Err
		status := m.setStatus(fmt.Sprintf("Error: %v", msg.Err), true)
		if cmd := m.nextSave(); cmd != nil {
			return m, tea.Batch(status, cmd)
		}
		return m, status

	case commands.CopiedMsg:
		return m, m.setStatus(fmt.Sprintf("Copied %d intervals to clipboard", msg.Count), false)

	case commands.ErrMsg:
		m.err = msg.Err
		return m, m.setStatus(fmt.Sprintf("Error: %v", msg.Err), true)

	case commands.StatusMsgCmd:
		return m, m.setStatus(msg.Msg, false)

	case commands.ClearStatusMsg:
		if !m.now().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	return m, nil
}

// flushPublished turns the last list the controller published into the
// bound list and queues it for saving.
func (m *Model) flushPublished() tea.Cmd {
	list, ok := m.outbox.take()
	if !ok {
		return nil
	}
	m.intervals = list
	m.pending, m.dirty = list, true
	return m.nextSave()
}

// nextSave starts a save of the newest pending list, unless one is already
// running or the schedule has not been loaded yet. The running save reports
// back with SavedMsg or SaveFailedMsg, which starts the next one.
func (m *Model) nextSave() tea.Cmd {
	if !m.loaded || m.saving || !m.dirty {
		return nil
	}
	list := m.pending
	m.pending, m.dirty = nil, false
	m.saving = true
	if !m.statusErr {
		m.statusMsg = "Saving..."
	}
	return commands.SaveSchedule(m.store, m.logger, m.schedule, m.ctrl.Grid().BlocksPerHour(), list)
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	d := statusDuration
	if isErr {
		d = errorDuration
	}
	m.statusMsg = text
	m.statusErr = isErr
	m.statusTime = m.now().Add(d)
	return tea.Tick(d, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}
