package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id    INTEGER PRIMARY KEY AUTOINCREMENT,
			name  TEXT NOT NULL,
			age   INTEGER NOT NULL DEFAULT 0 CHECK(age >= 0),
			email TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_users_name ON users(name);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	return nil
}
