// Package weekgrid implements the weekly availability grid: the fixed-size
// toggle grid, the conversion between that grid and a sparse interval list,
// and the pointer/touch state machine that mutates it.
package weekgrid

import (
	"fmt"
	"strings"
)

const (
	// DaysPerWeek is the number of day columns in the grid.
	DaysPerWeek = 7
	// HoursPerDay is the number of hours covered by each day column.
	HoursPerDay = 24
	// SecondsPerHour is the length of an hour in seconds.
	SecondsPerHour = 3600
	// SecondsPerWeek is the length of the week in seconds.
	SecondsPerWeek = DaysPerWeek * HoursPerDay * SecondsPerHour
	// DefaultBlocksPerHour is used when no positive value is configured.
	DefaultBlocksPerHour = 2
)

// Cell identifies one block in the grid.
type Cell struct {
	Day      int // 0 is the first day of the week (Monday)
	HourPart int // block offset within the day
}

// Index returns the flat grid index for a day and block offset.
// Valid inputs are day in [0,7) and hourPart in [0, 24*blocksPerHour);
// nothing is checked here.
func Index(day, hourPart, blocksPerHour int) int {
	return day*HoursPerDay*blocksPerHour + hourPart
}

// Grid holds the on/off state of every block in the week.
type Grid struct {
	cells         []bool
	blocksPerHour int
}

// NewGrid allocates an all-false grid. A non-positive blocksPerHour falls
// back to DefaultBlocksPerHour.
func NewGrid(blocksPerHour int) *Grid {
	if blocksPerHour <= 0 {
		blocksPerHour = DefaultBlocksPerHour
	}
	return &Grid{
		cells:         make([]bool, DaysPerWeek*HoursPerDay*blocksPerHour),
		blocksPerHour: blocksPerHour,
	}
}

// Len returns the number of blocks in the grid.
func (g *Grid) Len() int {
	return len(g.cells)
}

// BlocksPerHour returns the grid granularity.
func (g *Grid) BlocksPerHour() int {
	return g.blocksPerHour
}

// BlocksPerDay returns the number of blocks in one day column.
func (g *Grid) BlocksPerDay() int {
	return HoursPerDay * g.blocksPerHour
}

// SecondsPerBlock returns the length of one block in seconds.
func (g *Grid) SecondsPerBlock() int {
	return SecondsPerHour / g.blocksPerHour
}

// Index returns the flat index of a day and block offset for this grid.
func (g *Grid) Index(day, hourPart int) int {
	return Index(day, hourPart, g.blocksPerHour)
}

// Contains reports whether c addresses a block inside the grid.
func (g *Grid) Contains(c Cell) bool {
	return c.Day >= 0 && c.Day < DaysPerWeek && c.HourPart >= 0 && c.HourPart < g.BlocksPerDay()
}

// Coords converts a flat index back into a cell.
func (g *Grid) Coords(i int) Cell {
	perDay := g.BlocksPerDay()
	return Cell{Day: i / perDay, HourPart: i % perDay}
}

// Get returns the state of block i.
// It panics if i is outside [0, Len()).
func (g *Grid) Get(i int) bool {
	g.mustIndex(i)
	return g.cells[i]
}

// Set changes the state of block i.
// It panics if i is outside [0, Len()).
func (g *Grid) Set(i int, v bool) {
	g.mustIndex(i)
	g.cells[i] = v
}

func (g *Grid) mustIndex(i int) {
	if i < 0 || i >= len(g.cells) {
		panic(fmt.Sprintf("weekgrid: index %d out of range [0,%d)", i, len(g.cells)))
	}
}

// Reset turns every block off.
func (g *Grid) Reset() {
	clear(g.cells)
}

// Count returns the number of blocks that are on.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.cells {
		if v {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{cells: cells, blocksPerHour: g.blocksPerHour}
}

// String prints one line per day, '#' for on and '.' for off.
func (g *Grid) String() string {
	var sb strings.Builder
	perDay := g.BlocksPerDay()
	for day := 0; day < DaysPerWeek; day++ {
		for part := 0; part < perDay; part++ {
			if g.cells[day*perDay+part] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
