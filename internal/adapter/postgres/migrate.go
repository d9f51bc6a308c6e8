package postgres

import (
	"context"
	"database/sql"
	"fmt"

	// Registers the "pgx" database/sql driver used by goose.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/toevol/toevol-backend/internal/config"
	"github.com/toevol/toevol-backend/migrations"
)

// Migrate applies all pending goose migrations from the embedded FS.
// goose needs a *sql.DB, so a short-lived database/sql connection is opened
// via the pgx stdlib driver and closed when migration finishes.
func Migrate(ctx context.Context, cfg config.DatabaseConfig) error {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
