package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/schoolhub/schoolhub-server/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// demoAccount is a login account created on a freshly bootstrapped store.
type demoAccount struct {
	username string
	password string
	role     string
}

var demoAccounts = []demoAccount{
	{"Teacher A", "pass123", "teacher"},
	{"Teacher B", "pass123", "teacher"},
	{"Alice", "alice123", "student"},
	{"Bob", "bob123", "student"},
}

// Bootstrap ensures the store schema exists. When the users table is
// absent it runs the migration scripts from cfg.MigrationsDir and seeds
// the demo login accounts with bcrypt-hashed passwords. A missing
// migrations directory or a store file locked by another process is a
// fatal condition surfaced as an error.
func Bootstrap(ctx context.Context, db *sql.DB, cfg *config.Config, log zerolog.Logger) error {
	var one int
	err := db.QueryRowContext(ctx, `SELECT 1 FROM users LIMIT 1`).Scan(&one)
	if err == nil || errors.Is(err, sql.ErrNoRows) {
		return nil
	}

	log.Info().Str("dir", cfg.MigrationsDir).Msg("Store schema missing, initializing")

	if _, err := os.Stat(cfg.MigrationsDir); err != nil {
		return fmt.Errorf("migrations directory: %w", err)
	}

	m, err := migrate.New("file://"+cfg.MigrationsDir, "sqlite://"+cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}

	if err := seedDemoAccounts(ctx, db, cfg.BcryptCost); err != nil {
		return fmt.Errorf("seed demo accounts: %w", err)
	}

	log.Info().Int("accounts", len(demoAccounts)).Msg("Store initialized")
	return nil
}

// seedDemoAccounts inserts the demo users if the table is still empty.
// Accounts are created in Go rather than in the seed migration so the
// passwords go through bcrypt.
func seedDemoAccounts(ctx context.Context, db *sql.DB, bcryptCost int) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, acc := range demoAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcryptCost)
		if err != nil {
			return err
		}
		_, err = db.ExecContext(ctx,
			`INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?)`,
			acc.username, string(hash), acc.role,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
