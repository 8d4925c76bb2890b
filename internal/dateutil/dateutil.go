// Package dateutil formats and parses positions inside the week.
//
// A week offset is a number of seconds since Monday 00:00.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	secondsPerDay  = 24 * 60 * 60
	secondsPerWeek = 7 * secondsPerDay
)

// ErrInvalidDay is returned when a weekday name is not recognised.
var ErrInvalidDay = errors.New("day must be a weekday name (monday..sunday)")

// dayMap maps weekday names and their three letter prefixes to day
// offsets, Monday being 0.
var dayMap = map[string]int{
	"monday":    0,
	"tuesday":   1,
	"wednesday": 2,
	"thursday":  3,
	"friday":    4,
	"saturday":  5,
	"sunday":    6,
}

// ParseDay parses a weekday name ("monday", "Mon", "TUE") into a day offset.
func ParseDay(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 3 {
		return 0, ErrInvalidDay
	}
	for name, day := range dayMap {
		if strings.HasPrefix(name, s) {
			return day, nil
		}
	}
	return 0, ErrInvalidDay
}

// WeekStart returns Monday 00:00 of the ISO week containing t.
func WeekStart(t time.Time) time.Time {
	t = TruncateToDay(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday becomes day 7 in ISO week
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

// WeekOffset returns the number of seconds between Monday 00:00 of t's week
// and t, in t's location.
func WeekOffset(t time.Time) int {
	start := WeekStart(t)
	day := int(TruncateToDay(t).Sub(start).Hours()+0.5) / 24
	return day*secondsPerDay + t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatOffset renders a week offset as "Mon 15:04". Offsets outside the
// week wrap around.
func FormatOffset(sec int) string {
	sec = ((sec % secondsPerWeek) + secondsPerWeek) % secondsPerWeek
	day := sec / secondsPerDay
	rest := sec % secondsPerDay
	return fmt.Sprintf("%s %02d:%02d", shortDay(day), rest/3600, rest%3600/60)
}

// FormatSpan renders the range covered by an interval, e.g.
// "Mon 09:00 → Mon 10:30". The end is rounded to the nearest minute.
func FormatSpan(startAtS, duration int) string {
	end := startAtS + roundToMinute(duration)
	return FormatOffset(startAtS) + " → " + FormatOffset(end)
}

// FormatDuration renders a number of seconds as "1h30m", rounded to the
// nearest minute.
func FormatDuration(seconds int) string {
	minutes := roundToMinute(seconds) / 60
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

func roundToMinute(seconds int) int {
	if seconds <= 0 {
		return 0
	}
	return (seconds + 30) / 60 * 60
}

func shortDay(day int) string {
	// 2014-10-20 was a Monday.
	return time.Date(2014, 10, 20+day, 0, 0, 0, 0, time.UTC).Format("Mon")
}
