package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekgrid/internal/db"
	"github.com/javiermolinar/weekgrid/internal/logging"
	"github.com/javiermolinar/weekgrid/internal/weekgrid"
)

func (a *App) clearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every interval from a schedule",
		Long: `Empty a schedule. The schedule itself is kept.

Example:
  weekgrid clear --schedule work --yes`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			if !yes && !promptYesNo(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Clear schedule %q?", a.schedule)) {
				return nil
			}

			ctx := cmd.Context()
			if err := a.repo.SaveIntervals(ctx, a.schedule, a.blocksPerHour(), []weekgrid.Interval{}); err != nil {
				return fmt.Errorf("clearing schedule: %w", err)
			}
			logging.FromContext(ctx).Info("schedule cleared",
				slog.String("event.type", "store.save"),
				slog.String("schedule", a.schedule),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %q\n", a.schedule)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func (a *App) deleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			name := args[0]
			if !yes && !promptYesNo(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete schedule %q?", name)) {
				return nil
			}

			err := a.repo.DeleteSchedule(cmd.Context(), name)
			if errors.Is(err, db.ErrScheduleNotFound) {
				return fmt.Errorf("no schedule named %q", name)
			}
			if err != nil {
				return fmt.Errorf("deleting schedule: %w", err)
			}
			logging.FromContext(cmd.Context()).Info("schedule deleted",
				slog.String("event.type", "store.delete"),
				slog.String("schedule", name),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func promptYesNo(in io.Reader, out io.Writer, question string) bool {
	reader := bufio.NewReader(in)
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}
