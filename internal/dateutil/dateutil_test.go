package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"monday", 0, false},
		{"Mon", 0, false},
		{"TUE", 1, false},
		{"wednes", 2, false},
		{" sunday ", 6, false},
		{"sa", 0, true},
		{"", 0, true},
		{"funday", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDay(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDay) {
					t.Errorf("ParseDay(%q) error = %v, want ErrInvalidDay", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDay(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDay(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday", time.Date(2025, 1, 13, 15, 0, 0, 0, time.UTC), time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)},
		{"wednesday", time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC), time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)},
		{"sunday", time.Date(2025, 1, 19, 23, 59, 0, 0, time.UTC), time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekStart(tt.in); !got.Equal(tt.want) {
				t.Errorf("WeekStart(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWeekOffset(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want int
	}{
		{"monday midnight", time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), 0},
		{"monday 9:30", time.Date(2025, 1, 13, 9, 30, 0, 0, time.UTC), 9*3600 + 1800},
		{"tuesday 1am", time.Date(2025, 1, 14, 1, 0, 0, 0, time.UTC), 25 * 3600},
		{"sunday last second", time.Date(2025, 1, 19, 23, 59, 59, 0, time.UTC), 604799},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekOffset(tt.in); got != tt.want {
				t.Errorf("WeekOffset(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		sec  int
		want string
	}{
		{0, "Mon 00:00"},
		{9*3600 + 1800, "Mon 09:30"},
		{86400 + 7200, "Tue 02:00"},
		{604799, "Sun 23:59"},
		{604800, "Mon 00:00"},
		{-1800, "Sun 23:30"},
	}

	for _, tt := range tests {
		if got := FormatOffset(tt.sec); got != tt.want {
			t.Errorf("FormatOffset(%d) = %q, want %q", tt.sec, got, tt.want)
		}
	}
}

func TestFormatSpan(t *testing.T) {
	tests := []struct {
		start, duration int
		want            string
	}{
		{0, 1799, "Mon 00:00 → Mon 00:30"},
		{7200, 10799, "Mon 02:00 → Mon 05:00"},
		{603000, 1799, "Sun 23:30 → Mon 00:00"},
	}

	for _, tt := range tests {
		if got := FormatSpan(tt.start, tt.duration); got != tt.want {
			t.Errorf("FormatSpan(%d, %d) = %q, want %q", tt.start, tt.duration, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0m"},
		{-5, "0m"},
		{1799, "30m"},
		{3599, "1h"},
		{5399, "1h30m"},
		{10800, "3h"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
