package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/twilio/twilio-go"
	twclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// twilioTimeout bounds one Messages API call.
const twilioTimeout = 10 * time.Second

// Twilio sends SMS through the Twilio Messages API.
type Twilio struct {
	api  *twilio.RestClient
	from string
}

// NewTwilio constructs a Twilio sender. from is the sending number in
// E.164 form.
func NewTwilio(accountSID, authToken, from string) *Twilio {
	api := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	api.SetTimeout(twilioTimeout)
	return &Twilio{api: api, from: from}
}

// Send creates one outbound message. The Twilio SDK has no context support,
// so ctx is only checked before the call.
func (t *Twilio) Send(ctx context.Context, to, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.from)
	params.SetBody(body)

	resp, err := t.api.Api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("notify.Twilio.Send: %w", err)
	}
	if resp.Sid == nil {
		return "", errors.New("notify.Twilio.Send: response has no message sid")
	}
	return *resp.Sid, nil
}

// Transient reports whether a send error is worth retrying: network
// failures, rate limiting and provider-side 5xx. A 4xx from Twilio, such as
// an unroutable number, will fail the same way every time.
func Transient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ErrClosed) {
		return false
	}
	var rest *twclient.TwilioRestError
	if errors.As(err, &rest) {
		return rest.Status == http.StatusTooManyRequests || rest.Status >= http.StatusInternalServerError
	}
	return true
}
