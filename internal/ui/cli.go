// Package ui provides the weekgrid command line interface.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekgrid/internal/config"
	"github.com/javiermolinar/weekgrid/internal/db"
	"github.com/javiermolinar/weekgrid/internal/logging"
	"github.com/javiermolinar/weekgrid/internal/tui"
	"github.com/javiermolinar/weekgrid/internal/weekgrid"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// Repository is the schedule storage used by the CLI.
type Repository interface {
	GetSchedule(ctx context.Context, name string) (*db.Schedule, error)
	LoadIntervals(ctx context.Context, name string) ([]weekgrid.Interval, error)
	SaveIntervals(ctx context.Context, name string, blocksPerHour int, intervals []weekgrid.Interval) error
	ListSchedules(ctx context.Context) ([]db.ScheduleSummary, error)
	DeleteSchedule(ctx context.Context, name string) error
	Close() error
}

// App holds the CLI application state.
type App struct {
	repo     Repository
	config   *config.Config
	root     *cobra.Command
	debug    bool   // Enable debug logging
	schedule string // Schedule the command works on

	logger   *slog.Logger
	closeLog func() error
	now      func() time.Time
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened lazily from the configured database path.
func NewApp(repo Repository, cfg *config.Config) *App {
	a := &App{
		repo:   repo,
		config: cfg,
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}

	a.root = &cobra.Command{
		Use:   "weekgrid",
		Short: "Paint your weekly availability in the terminal",
		Long: `weekgrid edits a weekly availability grid.

Drag with the mouse to paint or erase blocks, or move with the arrow keys
and press space. Every change is stored as a list of intervals measured in
seconds from Monday 00:00.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setupLogging,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			return tui.Run(a.repo, a.config,
				tui.WithSchedule(a.schedule),
				tui.WithLogger(a.logger),
				tui.WithClock(a.now),
			)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+logging.DebugLogPath+")")
	a.root.PersistentFlags().StringVarP(&a.schedule, "schedule", "s", tui.DefaultSchedule, "Name of the schedule to work on")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.clearCmd())
	a.root.AddCommand(a.deleteCmd())
	a.root.AddCommand(a.listCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "weekgrid %s (commit: %s)\n", Version, Commit)
		},
	}
}

func (a *App) setupLogging(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := logging.New(logging.Options{
		Level:   a.config.Log.Level,
		File:    a.config.Log.File,
		Debug:   a.debug,
		Command: cmd.CommandPath(),
		Version: Version,
	})
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	a.logger = logger
	a.closeLog = closeLog
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithLogger(ctx, logger))
	return nil
}

// ensureRepo opens the configured database if no repository was injected.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	dbPath := a.config.Storage.DBPath
	if dbPath == "" {
		return fmt.Errorf("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(dbPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	a.repo = repo
	return nil
}

// blocksPerHour is the resolution used for new schedules.
func (a *App) blocksPerHour() int {
	if bph := a.config.Options().BlocksPerHour; bph > 0 {
		return bph
	}
	return weekgrid.DefaultBlocksPerHour
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository and the log file.
func (a *App) Close() error {
	var err error
	if a.repo != nil {
		err = a.repo.Close()
	}
	if a.closeLog != nil {
		if cerr := a.closeLog(); err == nil {
			err = cerr
		}
	}
	return err
}
