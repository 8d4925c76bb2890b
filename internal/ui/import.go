package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekgrid/internal/logging"
	"github.com/javiermolinar/weekgrid/internal/weekgrid"
)

func (a *App) importCmd() *cobra.Command {
	var merge bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a JSON interval list into a schedule",
		Long: `Read a JSON interval list (as written by export) and store it.

By default the schedule is replaced. With --merge the imported intervals are
added to what is already stored. Use - to read from stdin.

Example:
  weekgrid import work.json --schedule work
  weekgrid import extra.json --merge`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			incoming, err := readIntervals(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			var existing []weekgrid.Interval
			if merge {
				existing, err = a.repo.LoadIntervals(ctx, a.schedule)
				if err != nil {
					return fmt.Errorf("loading schedule: %w", err)
				}
			}

			stored := combineIntervals(a.blocksPerHour(), existing, incoming)
			if err := a.repo.SaveIntervals(ctx, a.schedule, a.blocksPerHour(), stored); err != nil {
				return fmt.Errorf("saving schedule: %w", err)
			}
			logging.FromContext(ctx).Info("schedule imported",
				slog.String("event.type", "store.save"),
				slog.String("schedule", a.schedule),
				slog.Bool("merge", merge),
				slog.Int("intervals", len(stored)),
			)

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d intervals into %q (%d stored)\n",
				len(incoming), a.schedule, len(stored))
			return nil
		},
	}

	cmd.Flags().BoolVar(&merge, "merge", false, "Add to the stored intervals instead of replacing them")
	return cmd
}

// readIntervals decodes a JSON interval list from a file, or from stdin when
// path is "-".
func readIntervals(stdin io.Reader, path string) ([]weekgrid.Interval, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading intervals: %w", err)
	}

	var intervals []weekgrid.Interval
	if err := json.Unmarshal(data, &intervals); err != nil {
		return nil, fmt.Errorf("parsing intervals: %w", err)
	}
	return intervals, nil
}

// combineIntervals normalizes existing plus incoming through a grid of the
// given resolution: overlapping or adjacent intervals are merged and parts
// outside the week are dropped.
func combineIntervals(blocksPerHour int, existing, incoming []weekgrid.Interval) []weekgrid.Interval {
	g := weekgrid.NewGrid(blocksPerHour)
	weekgrid.ReplaceIntervals(g, existing)
	weekgrid.ApplyIntervals(g, incoming)
	return weekgrid.ExtractIntervals(g)
}
