// Package migrations embeds the SQL migration files so they can be used
// by the goose programmatic API in tests, the server bootstrap, and safereachctl.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// FS holds all *.sql migration files embedded at compile time.
// Pass this to goose.NewProvider instead of relying on a filesystem path at runtime.
//
//go:embed *.sql
var FS embed.FS

// Up applies every pending migration to db and returns the number applied.
func Up(ctx context.Context, db *sql.DB) (int, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, FS)
	if err != nil {
		return 0, fmt.Errorf("migrations.Up: create provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migrations.Up: %w", err)
	}
	return len(results), nil
}

// DownTo rolls migrations back until the schema is at version.
func DownTo(ctx context.Context, db *sql.DB, version int64) (int, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, FS)
	if err != nil {
		return 0, fmt.Errorf("migrations.DownTo: create provider: %w", err)
	}
	results, err := provider.DownTo(ctx, version)
	if err != nil {
		return 0, fmt.Errorf("migrations.DownTo: %w", err)
	}
	return len(results), nil
}

// Status reports every known migration and whether it has been applied.
func Status(ctx context.Context, db *sql.DB) ([]*goose.MigrationStatus, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, FS)
	if err != nil {
		return nil, fmt.Errorf("migrations.Status: create provider: %w", err)
	}
	st, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("migrations.Status: %w", err)
	}
	return st, nil
}
