package service

import (
	"context"
	"log/slog"

	"github.com/pkordes/safereach/backend/internal/domain"
)

// MessageService sends ad-hoc SMS on behalf of a user, outside any trip.
type MessageService struct {
	notifier Notifier
}

// NewMessageService constructs a MessageService that sends through n.
func NewMessageService(n Notifier) *MessageService {
	return &MessageService{notifier: n}
}

// Send delivers msg.Body to every recipient and reports each outcome.
// Individual failures are returned as Delivery values, never as an error;
// the error return is reserved for invalid input.
func (s *MessageService) Send(ctx context.Context, msg domain.Message) ([]domain.Delivery, error) {
	msg.UserID = SanitizeUserID(msg.UserID)
	recipients := make([]string, 0, len(msg.Recipients))
	for _, r := range msg.Recipients {
		recipients = append(recipients, NormalizePhone(r))
	}
	msg.Recipients = recipients

	if err := validateStruct(msg); err != nil {
		return nil, err
	}

	deliveries := dispatch(ctx, s.notifier, msg.Recipients, msg.Body)
	slog.InfoContext(ctx, "messages sent",
		"user_id", msg.UserID,
		"succeeded", countOK(deliveries),
		"failed", len(deliveries)-countOK(deliveries),
	)
	return deliveries, nil
}
