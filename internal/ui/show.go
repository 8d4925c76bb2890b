package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/scheduler"
	"github.com/javiermolinar/weekgrid/internal/summary"
	"github.com/javiermolinar/weekgrid/internal/weekgrid"
)

func (a *App) showCmd() *cobra.Command {
	var noColor bool
	var dayName string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the intervals of a schedule",
		Long: `Display the available intervals of a schedule, one per line, followed
by the longest stretch, the next available slot and a coverage bar per
weekday.

Example:
  weekgrid show
  weekgrid show --schedule work --day tue`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			day := -1
			if dayName != "" {
				d, err := dateutil.ParseDay(dayName)
				if err != nil {
					return err
				}
				day = d
			}

			sch, err := a.repo.GetSchedule(cmd.Context(), a.schedule)
			if err != nil {
				return fmt.Errorf("fetching schedule: %w", err)
			}

			out := cmd.OutOrStdout()
			if sch == nil {
				fmt.Fprintf(out, "No schedule named %q.\n", a.schedule)
				return nil
			}

			blockMinutes := weekgrid.SecondsPerHour / sch.BlocksPerHour / 60
			fmt.Fprintf(out, "=== %s ===\n", formatHeader(sch.Name))
			fmt.Fprintln(out, formatMuted(fmt.Sprintf("%d-minute blocks, updated %s",
				blockMinutes, sch.UpdatedAt.Local().Format("Mon Jan 2 15:04"))))
			fmt.Fprintln(out)

			shown := filterByDay(sch.Intervals, day)
			if len(shown) == 0 {
				fmt.Fprintln(out, "No available time.")
				return nil
			}
			for _, iv := range shown {
				PrintIntervalRow(out, iv)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, formatStats(fmt.Sprintf("Total: %s in %d intervals",
				dateutil.FormatDuration(weekgrid.TotalDuration(shown)), len(shown))))

			if day < 0 {
				sum := summary.SummarizeWeek(sch.BlocksPerHour, sch.Intervals)
				printHighlights(out, sum)
				printNextSlot(out, scheduler.New(sch.BlocksPerHour, sch.Intervals), a.now())
				fmt.Fprintln(out)
				PrintCoverage(out, sum.PerDay, termWidth())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	cmd.Flags().StringVarP(&dayName, "day", "d", "", "Only show intervals starting on this weekday")
	return cmd
}

// filterByDay keeps the intervals that start on day; a negative day keeps all.
func filterByDay(intervals []weekgrid.Interval, day int) []weekgrid.Interval {
	if day < 0 {
		return intervals
	}
	var result []weekgrid.Interval
	for _, iv := range intervals {
		if iv.StartAtS/(weekgrid.HoursPerDay*weekgrid.SecondsPerHour) == day {
			result = append(result, iv)
		}
	}
	return result
}

func printHighlights(w io.Writer, sum *summary.WeekSummary) {
	if sum.Empty() {
		return
	}
	fmt.Fprintln(w, formatStats(fmt.Sprintf("Longest: %s (%s)",
		dateutil.FormatSpan(sum.Longest.StartAtS, sum.Longest.Duration),
		dateutil.FormatDuration(sum.Longest.Duration))))
	fmt.Fprintln(w, formatStats("Busiest day: "+weekgrid.DayName(sum.BusiestDay)))
}

// printNextSlot reports whether now is available, or when availability
// starts next.
func printNextSlot(w io.Writer, s *scheduler.Scheduler, now time.Time) {
	slot, ok := s.NextAvailableAt(now)
	switch {
	case !ok:
		return
	case slot.Active():
		fmt.Fprintln(w, formatAvailable("Available now until "+dateutil.FormatOffset(slot.End)))
	default:
		fmt.Fprintln(w, formatStats(fmt.Sprintf("Next: %s (in %s)",
			dateutil.FormatOffset(slot.Start), dateutil.FormatDuration(slot.Wait))))
	}
}
