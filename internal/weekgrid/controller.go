package weekgrid

import (
	"log/slog"
)

// Source tells which kind of device produced an event.
type Source int

const (
	SourcePointer Source = iota
	SourceTouch
)

func (s Source) String() string {
	if s == SourceTouch {
		return "touch"
	}
	return "pointer"
}

// EventKind is the input channel an event arrived on.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerEnter
	PointerUp
	TouchEnd
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "pointer_down"
	case PointerEnter:
		return "pointer_enter"
	case PointerUp:
		return "pointer_up"
	case TouchEnd:
		return "touch_end"
	default:
		return "unknown"
	}
}

// Event is one input event targeted at a cell. PointerUp ignores Cell.
type Event struct {
	Kind   EventKind
	Source Source
	Cell   Cell
}

// Surface receives the visual state of cells that changed.
type Surface interface {
	PaintCell(c Cell, toggled bool)
}

// PublishFunc receives the interval list after every completed gesture.
type PublishFunc func([]Interval)

// dragSession is the state of one pointer-down to pointer-up gesture.
type dragSession struct {
	active      bool
	toggleValue bool
}

// Controller drives one grid widget. It is not safe for concurrent use; all
// calls are expected on the goroutine that delivers input events.
type Controller struct {
	opts     Options
	geometry Geometry
	layout   Layout

	grid    *Grid
	painted []bool // last state sent to the surface
	drag    dragSession

	surface Surface
	publish PublishFunc
	logger  *slog.Logger
}

// NewController creates a controller with an all-off grid. surface and
// publish may be nil.
func NewController(opts Options, surface Surface, publish PublishFunc) *Controller {
	c := &Controller{
		layout:  DefaultLayout(),
		surface: surface,
		publish: publish,
		logger:  slog.New(slog.DiscardHandler),
	}
	c.allocate(opts)
	return c
}

// SetLogger sets the logger used for gesture events.
func (c *Controller) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c.logger = logger.With(slog.String("component", "weekgrid"))
}

// SetLayout changes the axis offsets used for the geometry.
func (c *Controller) SetLayout(layout Layout) {
	c.layout = layout
	c.geometry = NewGeometry(c.opts, layout)
}

// Resize changes the surface size without touching the grid.
func (c *Controller) Resize(width, height float64) {
	c.opts.Width, c.opts.Height = width, height
	c.opts = c.opts.withDefaults()
	c.geometry = NewGeometry(c.opts, c.layout)
}

func (c *Controller) allocate(opts Options) {
	c.opts = opts.withDefaults()
	c.geometry = NewGeometry(c.opts, c.layout)
	c.grid = NewGrid(c.opts.BlocksPerHour)
	c.painted = make([]bool, c.grid.Len())
	c.drag = dragSession{}
}

// Reconfigure replaces the options. The grid is reallocated and zeroed, so
// toggles not yet published are lost; cells that were shown on are repainted
// off.
func (c *Controller) Reconfigure(opts Options) {
	old, oldPainted := c.grid, c.painted
	c.allocate(opts)
	if c.surface == nil {
		return
	}
	for i, on := range oldPainted {
		if on {
			c.surface.PaintCell(old.Coords(i), false)
		}
	}
}

// Options returns the effective options.
func (c *Controller) Options() Options {
	return c.opts
}

// Geometry returns the surface geometry for the current options.
func (c *Controller) Geometry() Geometry {
	return c.geometry
}

// Grid returns the grid owned by the controller.
func (c *Controller) Grid() *Grid {
	return c.grid
}

// Dragging reports whether a drag session is in progress.
func (c *Controller) Dragging() bool {
	return c.drag.active
}

// ToggleValue returns the value painted by the current drag session.
func (c *Controller) ToggleValue() bool {
	return c.drag.toggleValue
}

// Toggled reports the state of a cell; off-grid cells are off.
func (c *Controller) Toggled(cell Cell) bool {
	if !c.grid.Contains(cell) {
		return false
	}
	return c.grid.Get(c.grid.Index(cell.Day, cell.HourPart))
}

// Intervals encodes the current grid.
func (c *Controller) Intervals() []Interval {
	return ExtractIntervals(c.grid)
}

// Handle dispatches an event to the matching channel.
func (c *Controller) Handle(ev Event) {
	switch ev.Kind {
	case PointerDown:
		c.PointerDown(ev.Source, ev.Cell)
	case PointerEnter:
		c.PointerEnter(ev.Source, ev.Cell)
	case PointerUp:
		c.PointerUp(ev.Source)
	case TouchEnd:
		c.TouchEnd(ev.Source, ev.Cell)
	}
}

// PointerDown starts a drag session painting the inverse of the cell's state.
func (c *Controller) PointerDown(src Source, cell Cell) {
	if src == SourceTouch || !c.grid.Contains(cell) {
		return
	}
	i := c.grid.Index(cell.Day, cell.HourPart)
	c.drag = dragSession{active: true, toggleValue: !c.grid.cells[i]}
	c.setCell(i, c.drag.toggleValue)
	c.logger.Debug("drag started",
		slog.String("event.type", "grid.drag.start"),
		slog.Int("day", cell.Day),
		slog.Int("hour_part", cell.HourPart),
		slog.Bool("toggle_value", c.drag.toggleValue),
	)
}

// PointerEnter paints the session's value onto a hovered cell.
func (c *Controller) PointerEnter(src Source, cell Cell) {
	if src == SourceTouch || !c.drag.active || !c.grid.Contains(cell) {
		return
	}
	c.setCell(c.grid.Index(cell.Day, cell.HourPart), c.drag.toggleValue)
}

// PointerUp ends the drag session and publishes the interval list. Releasing
// without a session does nothing.
func (c *Controller) PointerUp(src Source) {
	if src == SourceTouch || !c.drag.active {
		return
	}
	c.drag = dragSession{}
	c.commit("drag")
}

// TouchEnd flips a single cell and publishes immediately.
func (c *Controller) TouchEnd(src Source, cell Cell) {
	if src != SourceTouch || !c.grid.Contains(cell) {
		return
	}
	i := c.grid.Index(cell.Day, cell.HourPart)
	c.setCell(i, !c.grid.cells[i])
	c.commit("touch")
}

// OnExternalIntervalsChanged merges an interval list that changed outside
// the controller into the grid and repaints the cells that became stale.
// The grid is not cleared first.
func (c *Controller) OnExternalIntervalsChanged(intervals []Interval) {
	ApplyIntervals(c.grid, intervals)
	repainted := c.repaintStale()
	c.logger.Debug("external intervals applied",
		slog.String("event.type", "grid.external_sync"),
		slog.Int("intervals", len(intervals)),
		slog.Int("repainted", repainted),
	)
}

// Replace resynchronizes the grid to exactly the given intervals, repaints
// what changed and publishes the result. Any drag session is dropped.
func (c *Controller) Replace(intervals []Interval) {
	c.drag = dragSession{}
	ReplaceIntervals(c.grid, intervals)
	c.repaintStale()
	c.commit("replace")
}

func (c *Controller) setCell(i int, v bool) {
	c.grid.cells[i] = v
	c.paint(i)
}

func (c *Controller) paint(i int) {
	c.painted[i] = c.grid.cells[i]
	if c.surface != nil {
		c.surface.PaintCell(c.grid.Coords(i), c.painted[i])
	}
}

func (c *Controller) repaintStale() int {
	n := 0
	for i, on := range c.grid.cells {
		if c.painted[i] != on {
			c.paint(i)
			n++
		}
	}
	return n
}

func (c *Controller) commit(gesture string) {
	intervals := ExtractIntervals(c.grid)
	c.logger.Debug("intervals published",
		slog.String("event.type", "grid.publish"),
		slog.String("gesture", gesture),
		slog.Int("intervals", len(intervals)),
	)
	if c.publish != nil {
		c.publish(intervals)
	}
}
