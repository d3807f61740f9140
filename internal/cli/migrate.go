package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/pkordes/safereach/backend/migrations"
)

// MigrationRow is one line of migrate status --format json.
type MigrationRow struct {
	Version int64  `json:"version"`
	File    string `json:"file"`
	State   string `json:"state"`
}

// NewMigrateCommand creates the migrate command group.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}
	cmd.AddCommand(newMigrateUpCommand(rootOpts))
	cmd.AddCommand(newMigrateDownCommand(rootOpts))
	cmd.AddCommand(newMigrateStatusCommand(rootOpts))
	return cmd
}

func newMigrateUpCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := openPool(ctx, rootOpts)
			if err != nil {
				return err
			}
			defer pool.Close()
			db := stdlib.OpenDBFromPool(pool)
			defer db.Close()

			n, err := migrations.Up(ctx, db)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), rootOpts.Format, map[string]int{"applied": n}, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "applied %d migration(s)\n", n)
				return err
			})
		},
	}
}

func newMigrateDownCommand(rootOpts *RootOptions) *cobra.Command {
	var to int64

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations down to --to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if to < 0 {
				return fmt.Errorf("--to must be zero or a migration version, got %d", to)
			}
			ctx := cmd.Context()
			pool, err := openPool(ctx, rootOpts)
			if err != nil {
				return err
			}
			defer pool.Close()
			db := stdlib.OpenDBFromPool(pool)
			defer db.Close()

			n, err := migrations.DownTo(ctx, db, to)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), rootOpts.Format, map[string]int{"rolled_back": n}, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "rolled back %d migration(s)\n", n)
				return err
			})
		},
	}
	cmd.Flags().Int64Var(&to, "to", -1, "target version (0 removes every table)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newMigrateStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List migrations and whether each is applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := openPool(ctx, rootOpts)
			if err != nil {
				return err
			}
			defer pool.Close()
			db := stdlib.OpenDBFromPool(pool)
			defer db.Close()

			statuses, err := migrations.Status(ctx, db)
			if err != nil {
				return err
			}
			rows := make([]MigrationRow, 0, len(statuses))
			for _, s := range statuses {
				rows = append(rows, MigrationRow{Version: s.Source.Version, File: s.Source.Path, State: string(s.State)})
			}
			return emit(cmd.OutOrStdout(), rootOpts.Format, rows, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "VERSION\tFILE\tSTATE")
				for _, r := range rows {
					fmt.Fprintf(tw, "%d\t%s\t%s\n", r.Version, r.File, r.State)
				}
				return tw.Flush()
			})
		},
	}
}
