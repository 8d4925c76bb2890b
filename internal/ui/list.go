package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
)

func (a *App) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored schedules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			schedules, err := a.repo.ListSchedules(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing schedules: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(schedules) == 0 {
				fmt.Fprintln(out, "No schedules stored yet.")
				return nil
			}

			fmt.Fprintln(out, formatHeader(fmt.Sprintf("%-16s %6s %9s %9s  %s", "NAME", "BLOCKS", "INTERVALS", "TOTAL", "UPDATED")))
			for _, s := range schedules {
				marker := " "
				if s.Name == a.schedule {
					marker = "*"
				}
				fmt.Fprintf(out, "%-16s %6s %9d %9s  %s\n",
					s.Name+marker,
					fmt.Sprintf("%d/h", s.BlocksPerHour),
					s.IntervalCount,
					dateutil.FormatDuration(s.TotalSeconds),
					formatMuted(s.UpdatedAt.Local().Format("2006-01-02 15:04")))
			}
			return nil
		},
	}
}
