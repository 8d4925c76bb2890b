package ui

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print a schedule as a JSON interval list",
		Long: `Print the stored interval list of a schedule as JSON on stdout.

Each interval has start_at_s (seconds since Monday 00:00) and duration.

Example:
  weekgrid export --schedule work > work.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			intervals, err := a.repo.LoadIntervals(cmd.Context(), a.schedule)
			if err != nil {
				return fmt.Errorf("loading schedule: %w", err)
			}

			data, err := json.MarshalIndent(intervals, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding intervals: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
