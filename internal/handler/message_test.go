package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/safereach/backend/internal/domain"
	"github.com/pkordes/safereach/backend/internal/handler"
)

func TestSendMessage_200_ReportsFailures(t *testing.T) {
	svc := &mockMessageServicer{
		send: func(_ context.Context, msg domain.Message) ([]domain.Delivery, error) {
			return []domain.Delivery{
				{Phone: msg.Recipients[0], MessageID: "SM1"},
				{Phone: msg.Recipients[1], Err: errors.New("invalid number")},
			}, nil
		},
	}

	rec := do(newHTTPHandler(handler.Deps{Messages: svc}), http.MethodPost, "/send-message",
		jsonBody(t, map[string]any{
			"user_id":           "carol",
			"message":           "on my way",
			"recipient_numbers": []string{"+15550000001", "+15550000002"},
		}))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeMap(t, rec)
	assert.Equal(t, "Sent to 1 recipients", body["message"])
	assert.EqualValues(t, 1, body["success_count"])
	failed := body["failed"].([]any)
	require.Len(t, failed, 1)
	assert.Equal(t, "+15550000002", failed[0].(map[string]any)["phone"])
	assert.Equal(t, "invalid number", failed[0].(map[string]any)["error"])
}

func TestSendMessage_200_NoRecipients(t *testing.T) {
	var got domain.Message
	svc := &mockMessageServicer{
		send: func(_ context.Context, msg domain.Message) ([]domain.Delivery, error) {
			got = msg
			return nil, nil
		},
	}

	rec := do(newHTTPHandler(handler.Deps{Messages: svc}), http.MethodPost, "/send-message",
		jsonBody(t, map[string]any{"user_id": "carol", "message": "hi", "recipient_numbers": []string{}}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, got.Recipients)
	body := decodeMap(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.EqualValues(t, 0, body["success_count"])
	assert.Equal(t, []any{}, body["failed"])
}

func TestSendMessage_422(t *testing.T) {
	svc := &mockMessageServicer{
		send: func(_ context.Context, _ domain.Message) ([]domain.Delivery, error) {
			return nil, fmt.Errorf("%w: message is required", domain.ErrValidation)
		},
	}

	rec := do(newHTTPHandler(handler.Deps{Messages: svc}), http.MethodPost, "/send-message",
		jsonBody(t, map[string]any{"user_id": "carol", "recipient_numbers": []string{"+15550000001"}}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", errorCode(t, rec))
}
