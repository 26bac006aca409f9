package mailtrap

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// Contact subscription statuses.
const (
	ContactSubscribed   = "subscribed"
	ContactUnsubscribed = "unsubscribed"
)

// Contact is a marketing contact.
type Contact struct {
	ID        uuid.UUID      `json:"id"`
	Email     string         `json:"email"`
	Fields    map[string]any `json:"fields"`
	ListIDs   []int64        `json:"list_ids"`
	Status    string         `json:"status"`
	CreatedAt int64          `json:"created_at"`
	UpdatedAt int64          `json:"updated_at"`
}

// CreateContactParams describes a new contact.
type CreateContactParams struct {
	Email   string         `json:"email"`
	Fields  map[string]any `json:"fields,omitzero"`
	ListIDs []int64        `json:"list_ids,omitzero"`
}

// UpdateContactParams changes a contact. At least one field must be set.
type UpdateContactParams struct {
	Email           string         `json:"email,omitzero"`
	Fields          map[string]any `json:"fields,omitzero"`
	ListIDsIncluded []int64        `json:"list_ids_included,omitzero"`
	ListIDsExcluded []int64        `json:"list_ids_excluded,omitzero"`
	Unsubscribed    Optional[bool] `json:"unsubscribed,omitzero"`
}

// Validate reports an error when no field is set.
func (p UpdateContactParams) Validate() error {
	if p.Email == "" && p.Fields == nil && p.ListIDsIncluded == nil &&
		p.ListIDsExcluded == nil && !p.Unsubscribed.IsSet() {
		return errUpdateEmpty()
	}
	return nil
}

// ContactsService manages contacts of the configured account.
type ContactsService struct {
	service
}

type contactEnvelope struct {
	Data Contact `json:"data"`
}

// contactPath addresses a contact by UUID or email.
func (s *ContactsService) contactPath(idOrEmail string) (string, error) {
	return s.accountPath("contacts", "/contacts/"+url.PathEscape(idOrEmail))
}

// Get returns a contact by UUID or email.
func (s *ContactsService) Get(ctx context.Context, idOrEmail string) (*Contact, error) {
	path, err := s.contactPath(idOrEmail)
	if err != nil {
		return nil, err
	}
	var result contactEnvelope
	if err := s.client.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

// Create adds a contact.
func (s *ContactsService) Create(ctx context.Context, params CreateContactParams) (*Contact, error) {
	path, err := s.accountPath("contacts", "/contacts")
	if err != nil {
		return nil, err
	}
	if params.Email == "" {
		return nil, &ValidationError{Errors: []string{"email is required"}}
	}
	body := struct {
		Contact CreateContactParams `json:"contact"`
	}{params}

	var result contactEnvelope
	if err := s.client.Do(ctx, http.MethodPost, path, nil, body, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

// Update changes a contact addressed by UUID or email.
func (s *ContactsService) Update(ctx context.Context, idOrEmail string, params UpdateContactParams) (*Contact, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	path, err := s.contactPath(idOrEmail)
	if err != nil {
		return nil, err
	}
	body := struct {
		Contact UpdateContactParams `json:"contact"`
	}{params}

	var result contactEnvelope
	if err := s.client.Do(ctx, http.MethodPatch, path, nil, body, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

// Delete removes a contact addressed by UUID or email.
func (s *ContactsService) Delete(ctx context.Context, idOrEmail string) (*DeletedObject, error) {
	path, err := s.contactPath(idOrEmail)
	if err != nil {
		return nil, err
	}
	if err := s.client.Do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return nil, err
	}
	return &DeletedObject{ID: idOrEmail}, nil
}
