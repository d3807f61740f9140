package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/safereach/backend/internal/domain"
	"github.com/pkordes/safereach/backend/internal/service"
)

func TestMessageService_Send(t *testing.T) {
	sms := &fakeNotifier{fail: map[string]error{"+15550000002": errors.New("invalid number")}}
	svc := service.NewMessageService(sms)

	got, err := svc.Send(context.Background(), domain.Message{
		UserID:     "carol",
		Body:       "running late",
		Recipients: []string{"+1 555 000 0001", "+1-555-000-0002"},
	})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "+15550000001", got[0].Phone)
	assert.True(t, got[0].OK())
	assert.Equal(t, "SM+15550000001", got[0].MessageID)
	assert.False(t, got[1].OK())
	assert.Len(t, sms.sent(), 2)
}

func TestMessageService_Send_NoRecipients(t *testing.T) {
	for name, recipients := range map[string][]string{"nil": nil, "empty": {}} {
		t.Run(name, func(t *testing.T) {
			sms := &fakeNotifier{}

			got, err := service.NewMessageService(sms).Send(context.Background(), domain.Message{
				UserID: "carol", Body: "hi", Recipients: recipients,
			})

			require.NoError(t, err)
			assert.Empty(t, got)
			assert.Empty(t, sms.sent())
		})
	}
}

func TestMessageService_Send_ValidationErrors(t *testing.T) {
	cases := map[string]domain.Message{
		"empty body":     {UserID: "carol", Recipients: []string{"+15550000001"}},
		"missing user":   {Body: "hi", Recipients: []string{"+15550000001"}},
		"blank number":   {UserID: "carol", Body: "hi", Recipients: []string{" "}},
		"body too large": {UserID: "carol", Body: string(make([]byte, 1001)), Recipients: []string{"+15550000001"}},
	}
	for name, msg := range cases {
		t.Run(name, func(t *testing.T) {
			sms := &fakeNotifier{}
			_, err := service.NewMessageService(sms).Send(context.Background(), msg)

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Empty(t, sms.sent())
		})
	}
}
