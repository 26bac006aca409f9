package mailtrap

import (
	"context"
	"net/http"
	"net/url"
)

// ContactEventParams describes a custom event. Params values may be any
// JSON value, including nil.
type ContactEventParams struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params,omitzero"`
}

// ContactEvent is a recorded custom event.
type ContactEvent struct {
	ContactID    string         `json:"contact_id"`
	ContactEmail string         `json:"contact_email"`
	Name         string         `json:"name"`
	Params       map[string]any `json:"params"`
}

// ContactEventsService records contact events for the configured account.
type ContactEventsService struct {
	service
}

// Create records an event for a contact addressed by UUID or email.
func (s *ContactEventsService) Create(ctx context.Context, contactIdentifier string, params ContactEventParams) (*ContactEvent, error) {
	path, err := s.accountPath("contact events", "/contacts/"+url.PathEscape(contactIdentifier)+"/events")
	if err != nil {
		return nil, err
	}
	if params.Name == "" {
		return nil, &ValidationError{Errors: []string{"name is required"}}
	}
	var result ContactEvent
	if err := s.client.Do(ctx, http.MethodPost, path, nil, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
