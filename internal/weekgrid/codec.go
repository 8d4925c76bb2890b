package weekgrid

// ApplyIntervals turns on every block covered by the given intervals.
//
// A block t is covered when startBlock <= t < startBlock + Duration/secondsPerBlock,
// with startBlock = floor(StartAtS/secondsPerBlock) and the duration ratio
// kept exact, so a duration one second short of k blocks still covers k
// blocks. Blocks that are not covered keep their current state: this is a
// union, not a replacement. Blocks falling outside the week are skipped.
// Intervals are not validated; a non-positive duration covers nothing.
func ApplyIntervals(g *Grid, intervals []Interval) {
	spb := g.SecondsPerBlock()
	for _, iv := range intervals {
		start := floorDiv(iv.StartAtS, spb)
		for t := start; (t-start)*spb < iv.Duration; t++ {
			if t >= g.Len() {
				break
			}
			if t < 0 {
				continue
			}
			g.cells[t] = true
		}
	}
}

// ReplaceIntervals clears the grid and then applies the intervals.
func ReplaceIntervals(g *Grid, intervals []Interval) {
	g.Reset()
	ApplyIntervals(g, intervals)
}

// ExtractIntervals encodes every streak of consecutive on blocks as one
// interval, in ascending StartAtS order.
//
// The duration of each interval is one second less than the streak length,
// so adjacent intervals never share an endpoint. Consumers depend on this.
func ExtractIntervals(g *Grid) []Interval {
	spb := g.SecondsPerBlock()
	intervals := []Interval{}

	previous := false
	streakStart := 0
	for i, on := range g.cells {
		if previous && !on {
			intervals = append(intervals, Interval{
				StartAtS: streakStart * spb,
				Duration: (i-streakStart)*spb - 1,
			})
		}
		if on && !previous {
			streakStart = i
		}
		previous = on
	}

	// The last block of the week was on.
	if previous {
		intervals = append(intervals, Interval{
			StartAtS: streakStart * spb,
			Duration: (len(g.cells)-streakStart)*spb - 1,
		})
	}

	return intervals
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
