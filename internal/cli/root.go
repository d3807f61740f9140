// Package cli implements safereachctl, the operator command line for the
// SafeReach backend: retention purges and schema migrations.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	DatabaseURL string
	Format      string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// errNoDatabase is returned when neither --database-url nor DATABASE_URL is set.
var errNoDatabase = errors.New("database URL not set: pass --database-url or set DATABASE_URL")

// NewRootCommand creates the root command for safereachctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "safereachctl",
		Short: "SafeReach operator tool",
		Long:  "Maintenance commands for the SafeReach backend: data retention and database migrations.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.DatabaseURL, "database-url", os.Getenv("DATABASE_URL"), "Postgres connection string")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewPurgeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))

	return cmd
}

// openPool connects to the configured database and verifies it answers.
func openPool(ctx context.Context, opts *RootOptions) (*pgxpool.Pool, error) {
	if opts.DatabaseURL == "" {
		return nil, errNoDatabase
	}
	pool, err := pgxpool.New(ctx, opts.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}
