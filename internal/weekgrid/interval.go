package weekgrid

import "fmt"

// Interval is one contiguous available period, in seconds from the start of
// the week.
type Interval struct {
	StartAtS int `json:"start_at_s" toml:"start_at_s"`
	Duration int `json:"duration" toml:"duration"`
}

// End returns the offset at which the interval ends.
func (iv Interval) End() int {
	return iv.StartAtS + iv.Duration
}

func (iv Interval) String() string {
	return fmt.Sprintf("{start_at_s: %d, duration: %d}", iv.StartAtS, iv.Duration)
}

// TotalDuration sums the durations of a list of intervals.
func TotalDuration(intervals []Interval) int {
	total := 0
	for _, iv := range intervals {
		total += iv.Duration
	}
	return total
}
