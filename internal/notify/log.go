package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Log is a Sender that writes messages to the structured log instead of
// sending them. It is used when no SMS provider is configured.
type Log struct{}

// Send logs the message and returns a synthetic id.
func (Log) Send(ctx context.Context, to, body string) (string, error) {
	id := "log-" + uuid.NewString()
	slog.InfoContext(ctx, "sms (not sent, no provider configured)", "to", to, "body", body, "message_id", id)
	return id, nil
}
