// Package db provides SQLite storage for named availability schedules.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/weekgrid/internal/weekgrid"
)

// ErrScheduleNotFound is returned when a named schedule does not exist.
var ErrScheduleNotFound = errors.New("schedule not found")

// Schedule is a named interval list.
type Schedule struct {
	Name          string
	BlocksPerHour int
	UpdatedAt     time.Time
	Intervals     []weekgrid.Interval
}

// ScheduleSummary describes a stored schedule without its intervals.
type ScheduleSummary struct {
	Name          string
	BlocksPerHour int
	UpdatedAt     time.Time
	IntervalCount int
	TotalSeconds  int
}

// SQLite stores schedules in a SQLite database.
type SQLite struct {
	db  *sql.DB
	now func() time.Time
}

// New opens (or creates) the database at path and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// GetSchedule returns the named schedule, or nil if it does not exist.
func (s *SQLite) GetSchedule(ctx context.Context, name string) (*Schedule, error) {
	var (
		sch       Schedule
		updatedAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT name, blocks_per_hour, updated_at FROM schedules WHERE name = ?`, name,
	).Scan(&sch.Name, &sch.BlocksPerHour, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying schedule: %w", err)
	}

	sch.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated at: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT start_at_s, duration
		FROM intervals
		WHERE schedule = ?
		ORDER BY position
	`, name)
	if err != nil {
		return nil, fmt.Errorf("querying intervals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	sch.Intervals = []weekgrid.Interval{}
	for rows.Next() {
		var iv weekgrid.Interval
		if err := rows.Scan(&iv.StartAtS, &iv.Duration); err != nil {
			return nil, fmt.Errorf("scanning interval: %w", err)
		}
		sch.Intervals = append(sch.Intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating intervals: %w", err)
	}

	return &sch, nil
}

// LoadIntervals returns the intervals of a schedule; a missing schedule has
// no intervals.
func (s *SQLite) LoadIntervals(ctx context.Context, name string) ([]weekgrid.Interval, error) {
	sch, err := s.GetSchedule(ctx, name)
	if err != nil {
		return nil, err
	}
	if sch == nil {
		return []weekgrid.Interval{}, nil
	}
	return sch.Intervals, nil
}

// SaveIntervals replaces the interval list of a schedule, creating the
// schedule if needed. The list order is preserved.
func (s *SQLite) SaveIntervals(ctx context.Context, name string, blocksPerHour int, intervals []weekgrid.Interval) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO schedules (name, blocks_per_hour, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			blocks_per_hour = excluded.blocks_per_hour,
			updated_at = excluded.updated_at
	`, name, blocksPerHour, s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upserting schedule: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM intervals WHERE schedule = ?`, name); err != nil {
		return fmt.Errorf("clearing intervals: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO intervals (schedule, position, start_at_s, duration) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, iv := range intervals {
		if _, err := stmt.ExecContext(ctx, name, i, iv.StartAtS, iv.Duration); err != nil {
			return fmt.Errorf("inserting interval: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// ListSchedules returns every stored schedule ordered by name.
func (s *SQLite) ListSchedules(ctx context.Context) ([]ScheduleSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.name, s.blocks_per_hour, s.updated_at,
		       COUNT(i.position), COALESCE(SUM(i.duration), 0)
		FROM schedules s
		LEFT JOIN intervals i ON i.schedule = s.name
		GROUP BY s.name
		ORDER BY s.name
	`)
	if err != nil {
		return nil, fmt.Errorf("querying schedules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []ScheduleSummary
	for rows.Next() {
		var (
			sum       ScheduleSummary
			updatedAt string
		)
		if err := rows.Scan(&sum.Name, &sum.BlocksPerHour, &updatedAt, &sum.IntervalCount, &sum.TotalSeconds); err != nil {
			return nil, fmt.Errorf("scanning schedule: %w", err)
		}
		sum.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing updated at: %w", err)
		}
		result = append(result, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedules: %w", err)
	}

	return result, nil
}

// DeleteSchedule removes a schedule and its intervals.
func (s *SQLite) DeleteSchedule(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM intervals WHERE schedule = ?`, name); err != nil {
		return fmt.Errorf("deleting intervals: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM schedules WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting schedule: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", ErrScheduleNotFound, name)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
