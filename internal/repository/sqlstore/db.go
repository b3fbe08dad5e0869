package sqlstore

import (
	"context"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const sqlitePrefix = "sqlite:"

// New connects to Postgres through pgx, or to SQLite when the DSN starts with "sqlite:".
func New(dsn string) (*sqlx.DB, error) {
	driver, source := driverFor(dsn)
	db, err := sqlx.Connect(driver, source)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	if driver == "sqlite" {
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

func driverFor(dsn string) (string, string) {
	trimmed := strings.TrimSpace(dsn)
	if strings.HasPrefix(trimmed, sqlitePrefix) {
		return "sqlite", strings.TrimPrefix(trimmed, sqlitePrefix)
	}
	return "pgx", trimmed
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS guide_like (
		visitor_id TEXT NOT NULL,
		guide_id INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (visitor_id, guide_id)
	)`,
	`CREATE TABLE IF NOT EXISTS launch_subscription (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		visitor_id TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// Migrate creates the tables used by the site. The statements are portable across both drivers.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
