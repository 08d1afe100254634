package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

var ErrNoDatabase = errors.New("no database configured")

const schema = `
	CREATE TABLE IF NOT EXISTS generation_events (
		id         CHAR(36)    NOT NULL PRIMARY KEY,
		length     TINYINT     NOT NULL,
		classes    VARCHAR(32) NOT NULL,
		strength   VARCHAR(8)  NOT NULL,
		created_at TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_generation_events_strength (strength)
	)`

// NewDB creates a new MySQL database connection pool with the given DSN.
// An empty DSN returns ErrNoDatabase.
func NewDB(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, ErrNoDatabase
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		slog.Warn("database ping failed, continuing without stats schema", "error", err)
		return db, nil
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		slog.Warn("creating generation_events table failed", "error", err)
	}

	return db, nil
}
