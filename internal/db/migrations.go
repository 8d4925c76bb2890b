package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS schedules (
			name            TEXT PRIMARY KEY,
			blocks_per_hour INTEGER NOT NULL CHECK(blocks_per_hour > 0),
			updated_at      DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS intervals (
			schedule   TEXT NOT NULL REFERENCES schedules(name) ON DELETE CASCADE,
			position   INTEGER NOT NULL,
			start_at_s INTEGER NOT NULL,
			duration   INTEGER NOT NULL,
			PRIMARY KEY (schedule, position)
		);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating schedule tables: %w", err)
	}

	return nil
}
