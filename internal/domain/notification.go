package domain

import (
	"time"

	"github.com/google/uuid"
)

// Delivery is the outcome of one SMS to one recipient.
// Err is nil on success, in which case MessageID holds the provider's id.
type Delivery struct {
	Phone     string
	MessageID string
	Err       error
}

// OK reports whether the message was accepted by the provider.
func (d Delivery) OK() bool {
	return d.Err == nil
}

// Notification is a persisted Delivery attached to the trip that caused it.
type Notification struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Phone     string
	MessageID string
	Error     string
	SentAt    time.Time
}

// Message is the input to an ad-hoc send.
type Message struct {
	UserID     string   `validate:"required,max=100"`
	Body       string   `validate:"required,max=1000"`
	Recipients []string `validate:"dive,required"`
}
