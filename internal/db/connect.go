package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "github.com/mattn/go-sqlite3"    // driver: sqlite3
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite3"
	DriverPostgres Driver = "postgres"
)

const (
	defaultSQLiteDSN   = "file:quiz.db?_busy_timeout=5000&_journal_mode=WAL"
	defaultPostgresDSN = "postgres://localhost:5432/quiz?sslmode=disable"
)

// Open opens and pings a database for the given driver. An empty dsn selects
// a local default.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite3"
		if strings.TrimSpace(dsn) == "" {
			dsn = defaultSQLiteDSN
		}
	case DriverPostgres:
		drvName = "pgx"
		if strings.TrimSpace(dsn) == "" {
			dsn = defaultPostgresDSN
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	conn, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// One writer at a time keeps sqlite from returning SQLITE_BUSY.
		conn.SetMaxOpenConns(1)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return conn, nil
}

// Rebind rewrites '?' placeholders into the numbered form postgres expects.
func Rebind(driver Driver, query string) string {
	if driver != DriverPostgres {
		return query
	}

	var builder strings.Builder
	builder.Grow(len(query) + 8)
	n := 0
	for idx := 0; idx < len(query); idx++ {
		if query[idx] == '?' {
			n++
			builder.WriteByte('$')
			builder.WriteString(strconv.Itoa(n))
			continue
		}
		builder.WriteByte(query[idx])
	}
	return builder.String()
}
