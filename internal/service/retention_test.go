package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/safereach/backend/internal/domain"
	"github.com/pkordes/safereach/backend/internal/service"
)

type mockRetentionRepo struct {
	purge func(ctx context.Context, cutoff time.Time) (domain.PurgeResult, error)
}

func (m *mockRetentionRepo) Purge(ctx context.Context, cutoff time.Time) (domain.PurgeResult, error) {
	return m.purge(ctx, cutoff)
}

func TestRetentionService_Purge(t *testing.T) {
	var cutoff time.Time
	r := &mockRetentionRepo{
		purge: func(_ context.Context, c time.Time) (domain.PurgeResult, error) {
			cutoff = c
			return domain.PurgeResult{DeletedLocations: 12, DeletedTrips: 3, Cutoff: c}, nil
		},
	}
	before := time.Now().UTC()

	got, err := service.NewRetentionService(r).Purge(context.Background(), 30)

	require.NoError(t, err)
	assert.Equal(t, int64(12), got.DeletedLocations)
	assert.Equal(t, int64(3), got.DeletedTrips)
	assert.WithinDuration(t, before.AddDate(0, 0, -30), cutoff, time.Minute)
}

func TestRetentionService_Purge_RejectsNonPositiveDays(t *testing.T) {
	r := &mockRetentionRepo{
		purge: func(_ context.Context, _ time.Time) (domain.PurgeResult, error) {
			t.Fatal("repo must not be called")
			return domain.PurgeResult{}, nil
		},
	}
	svc := service.NewRetentionService(r)

	for _, days := range []int{0, -5} {
		_, err := svc.Purge(context.Background(), days)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestRetentionService_Purge_CapsDays(t *testing.T) {
	var gotCutoff time.Time
	r := &mockRetentionRepo{
		purge: func(_ context.Context, cutoff time.Time) (domain.PurgeResult, error) {
			gotCutoff = cutoff
			return domain.PurgeResult{Cutoff: cutoff}, nil
		},
	}
	svc := service.NewRetentionService(r)

	_, err := svc.Purge(context.Background(), domain.MaxRetentionDays)
	require.NoError(t, err)
	assert.Greater(t, gotCutoff.Year(), 1900)

	for _, days := range []int{domain.MaxRetentionDays + 1, 1_000_000_000} {
		gotCutoff = time.Time{}
		_, err := svc.Purge(context.Background(), days)
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "days must be at most 36500")
		assert.True(t, gotCutoff.IsZero(), "repo must not be called for %d", days)
	}
}

func TestRetentionService_Purge_RepoError(t *testing.T) {
	dbErr := errors.New("deadlock")
	r := &mockRetentionRepo{
		purge: func(_ context.Context, _ time.Time) (domain.PurgeResult, error) {
			return domain.PurgeResult{}, dbErr
		},
	}

	_, err := service.NewRetentionService(r).Purge(context.Background(), 1)

	assert.ErrorIs(t, err, dbErr)
}
