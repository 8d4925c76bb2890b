// Package summary aggregates an availability list into per-week statistics.
package summary

import (
	"github.com/javiermolinar/weekgrid/internal/weekgrid"
)

// WeekSummary holds the aggregated availability of one week.
type WeekSummary struct {
	BlocksPerHour int
	Blocks        int                       // available blocks
	Total         int                       // available seconds
	PerDay        [weekgrid.DaysPerWeek]int // available seconds per day
	Intervals     []weekgrid.Interval       // normalized interval list
	Longest       weekgrid.Interval         // zero when nothing is available
	BusiestDay    int                       // -1 when nothing is available
	FirstBlock    [weekgrid.DaysPerWeek]int // first available block per day, -1 if none
	LastBlock     [weekgrid.DaysPerWeek]int // last available block per day, -1 if none
}

// SummarizeWeek decodes intervals onto a grid of the given resolution and
// measures it. Totals count whole blocks, so an interval ending one second
// before a boundary still counts its last block in full. Non-positive
// resolutions use the default.
func SummarizeWeek(blocksPerHour int, intervals []weekgrid.Interval) *WeekSummary {
	if blocksPerHour <= 0 {
		blocksPerHour = weekgrid.DefaultBlocksPerHour
	}
	g := weekgrid.NewGrid(blocksPerHour)
	weekgrid.ApplyIntervals(g, intervals)

	s := &WeekSummary{
		BlocksPerHour: blocksPerHour,
		BusiestDay:    -1,
		Intervals:     weekgrid.ExtractIntervals(g),
	}
	for day := range s.FirstBlock {
		s.FirstBlock[day], s.LastBlock[day] = -1, -1
	}

	spb := g.SecondsPerBlock()
	for i := 0; i < g.Len(); i++ {
		if !g.Get(i) {
			continue
		}
		c := g.Coords(i)
		s.Blocks++
		s.PerDay[c.Day] += spb
		if s.FirstBlock[c.Day] < 0 {
			s.FirstBlock[c.Day] = c.HourPart
		}
		s.LastBlock[c.Day] = c.HourPart
	}
	s.Total = s.Blocks * spb

	for day, seconds := range s.PerDay {
		if seconds > 0 && (s.BusiestDay < 0 || seconds > s.PerDay[s.BusiestDay]) {
			s.BusiestDay = day
		}
	}
	for _, iv := range s.Intervals {
		if iv.Duration > s.Longest.Duration {
			s.Longest = iv
		}
	}

	return s
}

// Empty reports whether nothing is available.
func (s *WeekSummary) Empty() bool {
	return s.Blocks == 0
}

// DaySpan returns the week offsets of the first available second of day and
// of the end of its last available block. ok is false for a day with no
// availability.
func (s *WeekSummary) DaySpan(day int) (start, end int, ok bool) {
	if day < 0 || day >= weekgrid.DaysPerWeek || s.FirstBlock[day] < 0 {
		return 0, 0, false
	}
	spb := weekgrid.SecondsPerHour / s.BlocksPerHour
	base := day * weekgrid.HoursPerDay * weekgrid.SecondsPerHour
	return base + s.FirstBlock[day]*spb, base + (s.LastBlock[day]+1)*spb, true
}
