// Package scheduler answers time-aware questions about an availability list,
// such as whether a moment of the week is available and when the next
// available stretch starts.
package scheduler

import (
	"time"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/weekgrid"
)

// Slot is a run of consecutive available blocks.
type Slot struct {
	Start int // week offset of the first block
	End   int // offset just past the last block; exceeds the week when the slot wraps to Monday
	Wait  int // seconds from the queried offset to Start, 0 when the offset is inside the slot
}

// Active reports whether the queried offset falls inside the slot.
func (s Slot) Active() bool {
	return s.Wait == 0
}

// Duration returns the length of the slot in seconds.
func (s Slot) Duration() int {
	return s.End - s.Start
}

// Scheduler answers availability queries over a decoded grid.
type Scheduler struct {
	grid *weekgrid.Grid
}

// New decodes intervals onto a grid of the given resolution. Non-positive
// resolutions use the default.
func New(blocksPerHour int, intervals []weekgrid.Interval) *Scheduler {
	if blocksPerHour <= 0 {
		blocksPerHour = weekgrid.DefaultBlocksPerHour
	}
	g := weekgrid.NewGrid(blocksPerHour)
	weekgrid.ApplyIntervals(g, intervals)
	return &Scheduler{grid: g}
}

// IsAvailable reports whether the block containing the week offset is on.
func (s *Scheduler) IsAvailable(offset int) bool {
	return s.grid.Get(s.blockAt(offset))
}

// IsAvailableAt is IsAvailable for a wall clock time, measured in t's location.
func (s *Scheduler) IsAvailableAt(t time.Time) bool {
	return s.IsAvailable(dateutil.WeekOffset(t))
}

// NextAvailable returns the available slot containing the week offset, or
// the first one after it, searching at most one week ahead. The search wraps
// from Sunday to Monday. An active slot does not reach back across Monday
// 00:00. ok is false when nothing is available.
func (s *Scheduler) NextAvailable(offset int) (slot Slot, ok bool) {
	offset = normalize(offset)
	spb := s.grid.SecondsPerBlock()
	n := s.grid.Len()
	from := s.blockAt(offset)

	ahead := -1
	for d := 0; d < n; d++ {
		if s.grid.Get((from + d) % n) {
			ahead = d
			break
		}
	}
	if ahead < 0 {
		return Slot{}, false
	}

	first := from + ahead
	run := 1
	for run < n && s.grid.Get((first+run)%n) {
		run++
	}

	start := first
	if ahead == 0 {
		for start > 0 && run < n && s.grid.Get(start-1) {
			start--
			run++
		}
	}

	slot = Slot{Start: start % n * spb}
	slot.End = slot.Start + run*spb
	if ahead > 0 {
		slot.Wait = first*spb - offset
	}
	return slot, true
}

// NextAvailableAt is NextAvailable for a wall clock time, measured in t's
// location.
func (s *Scheduler) NextAvailableAt(t time.Time) (Slot, bool) {
	return s.NextAvailable(dateutil.WeekOffset(t))
}

// CanFit reports whether a stretch of the given length starting at the week
// offset lies entirely on available blocks.
func (s *Scheduler) CanFit(offset, seconds int) bool {
	if seconds <= 0 {
		return true
	}
	slot, ok := s.NextAvailable(offset)
	if !ok || !slot.Active() {
		return false
	}
	return normalize(offset)+seconds <= slot.End
}

func (s *Scheduler) blockAt(offset int) int {
	return normalize(offset) / s.grid.SecondsPerBlock()
}

func normalize(offset int) int {
	return ((offset % weekgrid.SecondsPerWeek) + weekgrid.SecondsPerWeek) % weekgrid.SecondsPerWeek
}
