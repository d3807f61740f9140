package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkordes/safereach/backend/internal/domain"
	"github.com/pkordes/safereach/backend/internal/metrics"
)

// Notifier sends one SMS and returns the provider's message id.
// Implementations live in internal/notify; tests use a hand-written fake.
type Notifier interface {
	Send(ctx context.Context, to, body string) (string, error)
}

// dispatchTimeout bounds one whole batch of sends.
const dispatchTimeout = 30 * time.Second

// dispatch sends body to every recipient in order and returns one Delivery
// per recipient. A failure for one number is recorded and the loop moves on.
//
// The sends run on a context detached from the caller's cancellation: once a
// trip has been claimed, a client hanging up must not abort the alert.
func dispatch(ctx context.Context, n Notifier, recipients []string, body string) []domain.Delivery {
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), dispatchTimeout)
	defer cancel()

	out := make([]domain.Delivery, 0, len(recipients))
	for _, phone := range recipients {
		id, err := n.Send(sendCtx, phone, body)
		d := domain.Delivery{Phone: phone, MessageID: id, Err: err}
		if err != nil {
			slog.WarnContext(ctx, "sms delivery failed", "phone", phone, "error", err)
			metrics.SMSDeliveries.WithLabelValues("failed").Inc()
		} else {
			metrics.SMSDeliveries.WithLabelValues("sent").Inc()
		}
		out = append(out, d)
	}
	return out
}

// countOK returns how many deliveries were accepted by the provider.
func countOK(ds []domain.Delivery) int {
	n := 0
	for _, d := range ds {
		if d.OK() {
			n++
		}
	}
	return n
}
