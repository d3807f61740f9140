package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkordes/safereach/backend/internal/domain"
	"github.com/pkordes/safereach/backend/internal/repo"
	"github.com/pkordes/safereach/backend/internal/service"
)

// PurgeOutput is the JSON shape printed by purge --format json.
type PurgeOutput struct {
	DeletedLocations int64     `json:"deleted_locations"`
	DeletedTrips     int64     `json:"deleted_trips"`
	Cutoff           time.Time `json:"cutoff_date"`
}

// NewPurgeCommand creates the purge command.
func NewPurgeCommand(rootOpts *RootOptions) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete old location samples and closed trips",
		Long: `Delete location samples recorded, and closed trips completed, more than
--days days ago. Open trips are kept whatever their age. Safe to run from cron.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 || days > domain.MaxRetentionDays {
				return fmt.Errorf("--days must be between 1 and %d, got %d", domain.MaxRetentionDays, days)
			}
			return runPurge(cmd, rootOpts, days)
		},
	}

	cmd.Flags().IntVar(&days, "days", domain.DefaultRetentionDays, "retention window in days")
	return cmd
}

func runPurge(cmd *cobra.Command, opts *RootOptions, days int) error {
	ctx := cmd.Context()
	pool, err := openPool(ctx, opts)
	if err != nil {
		return err
	}
	defer pool.Close()

	svc := service.NewRetentionService(repo.NewRetentionRepo(pool))
	res, err := svc.Purge(ctx, days)
	if err != nil {
		return err
	}

	out := PurgeOutput{DeletedLocations: res.DeletedLocations, DeletedTrips: res.DeletedTrips, Cutoff: res.Cutoff}
	return emit(cmd.OutOrStdout(), opts.Format, out, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "deleted %d locations and %d trips older than %s\n",
			out.DeletedLocations, out.DeletedTrips, out.Cutoff.Format(time.RFC3339))
		return err
	})
}
