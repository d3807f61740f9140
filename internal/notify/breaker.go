package notify

import (
	"context"
	"errors"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/pkordes/safereach/backend/internal/metrics"
)

// ErrUnavailable is returned while the breaker is open.
var ErrUnavailable = errors.New("notify: sms provider unavailable")

// Breaker stops calling the provider after a run of transient failures and
// fails fast until the cooldown passes. Permanent errors, such as a bad
// number, do not count towards opening it.
type Breaker struct {
	name string
	next Sender
	cb   *gobreaker.CircuitBreaker[string]
}

// NewBreaker wraps next. The breaker opens after threshold consecutive
// transient failures and half-opens after cooldown.
func NewBreaker(name string, next Sender, threshold uint32, cooldown time.Duration) *Breaker {
	metrics.BreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !Transient(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state change", "name", name, "from", from.String(), "to", to.String())
			metrics.BreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})
	return &Breaker{name: name, next: next, cb: cb}
}

// Send forwards to next unless the breaker is open.
func (b *Breaker) Send(ctx context.Context, to, body string) (string, error) {
	id, err := b.cb.Execute(func() (string, error) {
		return b.next.Send(ctx, to, body)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.BreakerRejections.WithLabelValues(b.name).Inc()
		return "", ErrUnavailable
	}
	return id, err
}

// State returns the breaker's current state.
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
