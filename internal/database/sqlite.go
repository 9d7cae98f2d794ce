package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/schoolhub/schoolhub-server/internal/config"
	_ "modernc.org/sqlite"
)

// NewSQLiteDB opens and validates the SQLite store file.
func NewSQLiteDB(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.DatabasePath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	// SQLite allows one writer at a time; a small pool keeps readers
	// concurrent without piling up SQLITE_BUSY errors.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping store: %w", err)
	}

	log.Info().
		Str("path", cfg.DatabasePath).
		Msg("SQLite store opened")

	return db, nil
}
