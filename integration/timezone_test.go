package integration

import (
	"testing"
	"time"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/scheduler"
	"github.com/javiermolinar/weekgrid/internal/weekgrid"
)

// Availability is stored as wall clock offsets, so the same instant lands on
// different blocks depending on the viewer's location.
func TestSameInstantDifferentZones(t *testing.T) {
	sched := scheduler.New(2, []weekgrid.Interval{{StartAtS: 9 * 3600, Duration: 3599}}) // Mon 09:00-10:00

	instant := time.Date(2025, 1, 13, 8, 30, 0, 0, time.UTC) // Monday
	east := instant.In(time.FixedZone("UTC+1", 3600))
	west := instant.In(time.FixedZone("UTC-8", -8*3600))

	if sched.IsAvailableAt(instant) {
		t.Error("08:30 UTC should not be available")
	}
	if !sched.IsAvailableAt(east) {
		t.Error("09:30 UTC+1 should be available")
	}

	if got := dateutil.WeekOffset(west); got != 1800 {
		t.Errorf("west offset = %d, want Monday 00:30 (1800)", got)
	}
	if sched.IsAvailableAt(west) {
		t.Error("00:30 UTC-8 should not be available")
	}

	late := time.Date(2025, 1, 13, 2, 0, 0, 0, time.UTC).In(time.FixedZone("UTC-5", -5*3600))
	if got := dateutil.WeekOffset(late); got != 6*86400+21*3600 {
		t.Errorf("late offset = %d, want Sunday 21:00 (%d)", got, 6*86400+21*3600)
	}
}

func TestWeekOffsetAcrossDST(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}

	tests := []struct {
		name string
		t    time.Time
		want int
	}{
		{
			name: "spring forward sunday",
			t:    time.Date(2025, 3, 30, 12, 0, 0, 0, madrid),
			want: 6*86400 + 12*3600,
		},
		{
			name: "fall back sunday",
			t:    time.Date(2025, 10, 26, 20, 0, 0, 0, madrid),
			want: 6*86400 + 20*3600,
		},
		{
			name: "monday after the change",
			t:    time.Date(2025, 3, 31, 9, 0, 0, 0, madrid),
			want: 9 * 3600,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dateutil.WeekOffset(tt.t); got != tt.want {
				t.Errorf("WeekOffset(%v) = %d, want %d", tt.t, got, tt.want)
			}
		})
	}
}
