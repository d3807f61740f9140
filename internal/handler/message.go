package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkordes/safereach/backend/internal/domain"
	"github.com/pkordes/safereach/backend/internal/handler/gen"
)

// SendMessage handles POST /send-message. Per-recipient failures are listed
// in the response; the request itself still succeeds.
func (s *Server) SendMessage(ctx context.Context, req gen.SendMessageRequestObject) (gen.SendMessageResponseObject, error) {
	deliveries, err := s.messages.Send(ctx, domain.Message{
		UserID:     req.Body.UserId,
		Body:       req.Body.Message,
		Recipients: req.Body.RecipientNumbers,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.SendMessage422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	success := 0
	failed := make([]gen.FailedDelivery, 0)
	for _, d := range deliveries {
		if d.OK() {
			success++
			continue
		}
		failed = append(failed, gen.FailedDelivery{Phone: d.Phone, Error: d.Err.Error()})
	}
	return gen.SendMessage200JSONResponse{
		Ok:           true,
		Message:      fmt.Sprintf("Sent to %d recipients", success),
		SuccessCount: success,
		Failed:       failed,
	}, nil
}
