package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/weekgrid"
)

// dayNameWidth is the width of the day column in coverage bars.
const dayNameWidth = 10

// PrintIntervalRow prints one interval as "Mon 09:00 → Mon 12:00 (3h)".
func PrintIntervalRow(w io.Writer, iv weekgrid.Interval) {
	span := dateutil.FormatSpan(iv.StartAtS, iv.Duration)
	fmt.Fprintf(w, "  %s %s\n", formatAvailable(span), formatMuted("("+dateutil.FormatDuration(iv.Duration)+")"))
}

// CoverageBar renders seconds out of a full day as a bar of the given width.
func CoverageBar(seconds, width int) string {
	if width <= 0 {
		return ""
	}
	filled := seconds * width / (weekgrid.HoursPerDay * weekgrid.SecondsPerHour)
	if seconds > 0 && filled == 0 {
		filled = 1
	}
	if filled > width {
		filled = width
	}
	return formatAvailable(strings.Repeat("█", filled)) + formatMuted(strings.Repeat("░", width-filled))
}

// PrintCoverage prints one bar per weekday, sized to the terminal.
func PrintCoverage(w io.Writer, coverage [weekgrid.DaysPerWeek]int, width int) {
	barWidth := width - dayNameWidth - 10
	if barWidth > 48 {
		barWidth = 48
	}
	for day, seconds := range coverage {
		fmt.Fprintf(w, "  %-*s %s %s\n",
			dayNameWidth, weekgrid.DayName(day),
			CoverageBar(seconds, barWidth),
			formatMuted(dateutil.FormatDuration(seconds)))
	}
}
