// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekgrid/internal/weekgrid"
)

// Store is the interval storage the TUI reads and writes.
type Store interface {
	LoadIntervals(ctx context.Context, name string) ([]weekgrid.Interval, error)
	SaveIntervals(ctx context.Context, name string, blocksPerHour int, intervals []weekgrid.Interval) error
}

// ErrNoStore is returned by commands that need a store when none is set.
var ErrNoStore = errors.New("no schedule store configured")

// LoadedMsg is sent when a schedule has been read from the store.
type LoadedMsg struct {
	Schedule  string
	Intervals []weekgrid.Interval
}

// SavedMsg is sent when a published interval list has been stored.
type SavedMsg struct {
	Schedule string
	Count    int
}

// CopiedMsg is sent when the interval list has been copied to the clipboard.
type CopiedMsg struct {
	Count int
}

// SaveFailedMsg is sent when a published interval list could not be stored.
type SaveFailedMsg struct {
	Schedule string
	Err      error
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// ClipboardWriter writes text to the system clipboard.
type ClipboardWriter func(string) error

// SystemClipboard writes through github.com/atotto/clipboard.
var SystemClipboard ClipboardWriter = clipboard.WriteAll

// LoadSchedule reads the interval list of a schedule.
func LoadSchedule(store Store, name string) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return ErrMsg{Err: ErrNoStore}
		}
		intervals, err := store.LoadIntervals(context.Background(), name)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading schedule %q: %w", name, err)}
		}
		return LoadedMsg{Schedule: name, Intervals: intervals}
	}
}

// SaveSchedule stores a published interval list.
func SaveSchedule(store Store, logger *slog.Logger, name string, blocksPerHour int, intervals []weekgrid.Interval) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return SaveFailedMsg{Schedule: name, Err: ErrNoStore}
		}
		if err := store.SaveIntervals(context.Background(), name, blocksPerHour, intervals); err != nil {
			return SaveFailedMsg{Schedule: name, Err: fmt.Errorf("saving schedule %q: %w", name, err)}
		}
		if logger != nil {
			logger.Info("schedule saved",
				slog.String("event.type", "store.save"),
				slog.String("schedule", name),
				slog.Int("intervals", len(intervals)),
				slog.Int("seconds", weekgrid.TotalDuration(intervals)),
			)
		}
		return SavedMsg{Schedule: name, Count: len(intervals)}
	}
}

// CopyIntervals writes the interval list as JSON to the clipboard.
func CopyIntervals(write ClipboardWriter, intervals []weekgrid.Interval) tea.Cmd {
	return func() tea.Msg {
		if intervals == nil {
			intervals = []weekgrid.Interval{}
		}
		data, err := json.Marshal(intervals)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("encoding intervals: %w", err)}
		}
		if write == nil {
			write = SystemClipboard
		}
		if err := write(string(data)); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return CopiedMsg{Count: len(intervals)}
	}
}

// Status returns a command that shows a temporary status message.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}
