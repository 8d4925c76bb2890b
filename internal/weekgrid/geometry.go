package weekgrid

import (
	"fmt"
	"math"
	"time"
)

const (
	// DefaultWidth is the surface width used when none is configured.
	DefaultWidth = 800
	// DefaultHeight is the surface height used when none is configured.
	DefaultHeight = 600
)

// Options are the per-instance settings of a grid widget.
type Options struct {
	BlocksPerHour int
	Width         float64
	Height        float64
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		BlocksPerHour: DefaultBlocksPerHour,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
	}
}

// withDefaults replaces missing values with their defaults.
func (o Options) withDefaults() Options {
	if o.BlocksPerHour <= 0 {
		o.BlocksPerHour = DefaultBlocksPerHour
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	return o
}

// SecondsPerBlock returns the block length implied by the options.
func (o Options) SecondsPerBlock() int {
	return SecondsPerHour / o.withDefaults().BlocksPerHour
}

// Layout holds the axis offsets of a surface, in surface units.
type Layout struct {
	GridOffsetX     float64
	GridOffsetY     float64
	HourAxisOffsetX float64
	DayAxisOffsetY  float64
}

// DefaultLayout returns the offsets of a pixel surface.
func DefaultLayout() Layout {
	return Layout{
		GridOffsetX:     40,
		GridOffsetY:     30,
		HourAxisOffsetX: 6,
		DayAxisOffsetY:  20,
	}
}

// Rect is an axis-aligned rectangle in surface coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Label is a piece of axis text anchored at X, Y.
type Label struct {
	X, Y float64
	Text string
}

// weekStart is a Monday; day labels are taken from the week it starts.
var weekStart = time.Date(2014, time.October, 20, 0, 0, 0, 0, time.UTC)

// Geometry is the surface layout derived from Options and Layout.
type Geometry struct {
	Options Options
	Layout  Layout

	GridWidth   float64
	GridHeight  float64
	BlockWidth  float64
	BlockHeight float64
}

// NewGeometry derives block sizes from the surface size.
func NewGeometry(opts Options, layout Layout) Geometry {
	opts = opts.withDefaults()
	g := Geometry{
		Options:    opts,
		Layout:     layout,
		GridWidth:  opts.Width - layout.GridOffsetX,
		GridHeight: opts.Height - layout.GridOffsetY,
	}
	g.BlockWidth = g.GridWidth / DaysPerWeek
	g.BlockHeight = g.GridHeight / float64(HoursPerDay*opts.BlocksPerHour)
	return g
}

// CellRect returns the rectangle covered by a cell.
func (g Geometry) CellRect(c Cell) Rect {
	return Rect{
		X: g.Layout.GridOffsetX + float64(c.Day)*g.BlockWidth,
		Y: g.Layout.GridOffsetY + float64(c.HourPart)*g.BlockHeight,
		W: g.BlockWidth,
		H: g.BlockHeight,
	}
}

// CellAt returns the cell under the surface point (x, y). The second result
// is false when the point is outside the grid.
func (g Geometry) CellAt(x, y float64) (Cell, bool) {
	if g.BlockWidth <= 0 || g.BlockHeight <= 0 {
		return Cell{}, false
	}
	day := int(math.Floor((x - g.Layout.GridOffsetX) / g.BlockWidth))
	part := int(math.Floor((y - g.Layout.GridOffsetY) / g.BlockHeight))
	if day < 0 || day >= DaysPerWeek || part < 0 || part >= HoursPerDay*g.Options.BlocksPerHour {
		return Cell{}, false
	}
	return Cell{Day: day, HourPart: part}, true
}

// HourLabels returns the "0h".."23h" labels of the hour axis.
func (g Geometry) HourLabels() []Label {
	labels := make([]Label, 0, HoursPerDay)
	for hour := 0; hour < HoursPerDay; hour++ {
		labels = append(labels, Label{
			X:    g.Layout.HourAxisOffsetX,
			Y:    g.Layout.GridOffsetY + g.BlockHeight*float64(g.Options.BlocksPerHour*hour) + 6,
			Text: fmt.Sprintf("%dh", hour),
		})
	}
	return labels
}

// DayLabels returns the weekday names of the day axis, Monday first.
func (g Geometry) DayLabels() []Label {
	labels := make([]Label, 0, DaysPerWeek)
	for day := 0; day < DaysPerWeek; day++ {
		labels = append(labels, Label{
			X:    g.Layout.GridOffsetX + float64(day)*g.BlockWidth,
			Y:    g.Layout.DayAxisOffsetY,
			Text: DayName(day),
		})
	}
	return labels
}

// DayName returns the weekday name of a day offset, Monday being 0.
func DayName(day int) string {
	return weekStart.AddDate(0, 0, day).Format("Monday")
}
