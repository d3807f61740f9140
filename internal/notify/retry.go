package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/pkordes/safereach/backend/internal/metrics"
)

// maxRetryDelay caps a single backoff step.
const maxRetryDelay = 2 * time.Second

// Retrying retries transient send failures with exponential backoff.
// Permanent failures are returned after the first attempt.
type Retrying struct {
	next    Sender
	retries uint64
	base    time.Duration
}

// NewRetrying wraps next with at most retries extra attempts.
func NewRetrying(next Sender, retries uint64, base time.Duration) *Retrying {
	return &Retrying{next: next, retries: retries, base: base}
}

// Send tries next until it succeeds, fails permanently, runs out of
// attempts or ctx ends.
func (r *Retrying) Send(ctx context.Context, to, body string) (string, error) {
	backoff := retry.NewExponential(r.base)
	backoff = retry.WithCappedDuration(maxRetryDelay, backoff)
	backoff = retry.WithMaxRetries(r.retries, backoff)

	var (
		id      string
		attempt int
	)
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			metrics.SMSRetries.Inc()
			slog.DebugContext(ctx, "retrying sms", "to", to, "attempt", attempt)
		}

		var err error
		id, err = r.next.Send(ctx, to, body)
		if err != nil && Transient(err) {
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		return "", err
	}
	return id, nil
}
