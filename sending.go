package mailtrap

import (
	"context"
	"net/http"

	"github.com/mailtrap/mailtrap-go/internal/api"
)

// SendingService sends mail through the host selected by the client's mode.
type SendingService struct {
	client    *api.Client
	sendPath  string
	batchPath string
}

// Send sends a single message.
func (s *SendingService) Send(ctx context.Context, mail SendableMail) (*SendResponse, error) {
	if mail == nil {
		return nil, &ValidationError{Errors: []string{"mail is required"}}
	}
	if err := mail.validate(); err != nil {
		return nil, err
	}
	var result SendResponse
	if err := s.client.Do(ctx, http.MethodPost, s.sendPath, nil, mail, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// BatchSend sends a batch of messages in one request. Messages rejected by
// the server are reported in the response rather than as an error.
func (s *SendingService) BatchSend(ctx context.Context, params BatchSendParams) (*BatchSendResponse, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	var result BatchSendResponse
	if err := s.client.Do(ctx, http.MethodPost, s.batchPath, nil, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
