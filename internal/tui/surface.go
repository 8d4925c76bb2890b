package tui

import (
	"github.com/javiermolinar/weekgrid/internal/weekgrid"
)

// cellSurface holds what the controller last painted. The view draws from
// it rather than from the controller's grid.
type cellSurface struct {
	cells  []bool
	perDay int
	paints int
}

func newCellSurface(blocksPerHour int) *cellSurface {
	if blocksPerHour <= 0 {
		blocksPerHour = weekgrid.DefaultBlocksPerHour
	}
	perDay := weekgrid.HoursPerDay * blocksPerHour
	return &cellSurface{
		cells:  make([]bool, weekgrid.DaysPerWeek*perDay),
		perDay: perDay,
	}
}

// PaintCell implements weekgrid.Surface.
func (s *cellSurface) PaintCell(c weekgrid.Cell, toggled bool) {
	i := c.Day*s.perDay + c.HourPart
	if i < 0 || i >= len(s.cells) {
		return
	}
	s.cells[i] = toggled
	s.paints++
}

func (s *cellSurface) on(c weekgrid.Cell) bool {
	i := c.Day*s.perDay + c.HourPart
	if i < 0 || i >= len(s.cells) {
		return false
	}
	return s.cells[i]
}

// outbox collects the lists published by the controller until the update
// loop turns them into a save command.
type outbox struct {
	lists [][]weekgrid.Interval
}

func (o *outbox) publish(intervals []weekgrid.Interval) {
	o.lists = append(o.lists, intervals)
}

// take returns the most recent list and empties the outbox. Every list is
// complete, so older ones are superseded.
func (o *outbox) take() ([]weekgrid.Interval, bool) {
	if len(o.lists) == 0 {
		return nil, false
	}
	last := o.lists[len(o.lists)-1]
	o.lists = o.lists[:0]
	return last, true
}
