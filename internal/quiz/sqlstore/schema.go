package sqlstore

import (
	"context"

	"quizdoc/internal/db"
)

func (s *Store) initSchema(ctx context.Context) error {
	// Timestamps are unix nanoseconds, which need a 64-bit column on postgres.
	timestampType := "INTEGER"
	if s.driver == db.DriverPostgres {
		timestampType = "BIGINT"
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS quiz_document (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			questions_json TEXT NOT NULL,
			created_at_unix ` + timestampType + ` NOT NULL,
			updated_at_unix ` + timestampType + ` NOT NULL
		);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
