// Package tui provides the terminal user interface for weekgrid.
package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekgrid/internal/config"
	"github.com/javiermolinar/weekgrid/internal/tui/commands"
	"github.com/javiermolinar/weekgrid/internal/tui/theme"
	"github.com/javiermolinar/weekgrid/internal/weekgrid"
)

const (
	timeColWidth    = 6 // "09:30 "
	headerRows      = 2 // title, day names
	minColWidth     = 3
	defaultColWidth = 10

	// DefaultSchedule is the schedule opened when none is named.
	DefaultSchedule = "default"
)

// Model is the main TUI model. It is the host of one grid widget: it owns
// the bound interval list, feeds store changes to the controller and saves
// what the controller publishes.
type Model struct {
	// Dependencies
	store     commands.Store
	config    *config.Config
	logger    *slog.Logger
	clipboard commands.ClipboardWriter
	now       func() time.Time

	// Theme and styles
	theme  *theme.Theme
	styles *Styles
	keys   keyMap
	help   help.Model

	// Widget
	ctrl    *weekgrid.Controller
	surface *cellSurface
	outbox  *outbox

	// Bound state
	schedule  string
	intervals []weekgrid.Interval // what the grid encodes after the last load or publish
	loaded    bool                // publishes are held until the first load

	// Saves run one at a time; only the newest unsaved list is kept.
	saving  bool
	pending []weekgrid.Interval
	dirty   bool

	cursor weekgrid.Cell

	// Terminal dimensions and layout
	width    int
	height   int
	colWidth int
	scroll   int // first visible block row

	// Messages
	statusMsg  string
	statusErr  bool
	statusTime time.Time

	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithSchedule selects the schedule the model edits.
func WithSchedule(name string) ModelOption {
	return func(m *Model) {
		if name != "" {
			m.schedule = name
		}
	}
}

// WithLogger sets the logger used by the model and its controller.
func WithLogger(logger *slog.Logger) ModelOption {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClock overrides the clock used to locate "now" in the week.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithClipboard overrides the clipboard writer.
func WithClipboard(write commands.ClipboardWriter) ModelOption {
	return func(m *Model) {
		if write != nil {
			m.clipboard = write
		}
	}
}

// New creates a new TUI model.
func New(store commands.Store, cfg *config.Config, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	h := help.New()
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	h.Styles.ShortSeparator = styles.HelpSep
	h.Styles.FullKey = styles.HelpKey
	h.Styles.FullDesc = styles.HelpDesc
	h.Styles.FullSeparator = styles.HelpSep
	h.Styles.Ellipsis = styles.HelpSep

	m := &Model{
		store:     store,
		config:    cfg,
		logger:    slog.New(slog.DiscardHandler),
		clipboard: commands.SystemClipboard,
		now:       time.Now,
		theme:     t,
		styles:    styles,
		keys:      defaultKeyMap(),
		help:      h,
		schedule:  DefaultSchedule,
		outbox:    &outbox{},
		colWidth:  defaultColWidth,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.surface = newCellSurface(cfg.Grid.BlocksPerHour)
	m.ctrl = weekgrid.NewController(cfg.Options(), m.surface, m.outbox.publish)
	m.ctrl.SetLogger(m.logger)
	m.ctrl.SetLayout(weekgrid.Layout{
		GridOffsetX:    timeColWidth,
		GridOffsetY:    headerRows,
		DayAxisOffsetY: 1,
	})
	m.resizeGrid()
	m.focusNow()

	return m
}

// Init loads the schedule from the store.
func (m Model) Init() tea.Cmd {
	return commands.LoadSchedule(m.store, m.schedule)
}

// Intervals returns the bound interval list.
func (m Model) Intervals() []weekgrid.Interval {
	return m.intervals
}

// Run starts the TUI.
func Run(store commands.Store, cfg *config.Config, opts ...ModelOption) error {
	model := New(store, cfg, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
