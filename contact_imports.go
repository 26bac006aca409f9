package mailtrap

import (
	"context"
	"fmt"
	"net/http"
)

// Contact import statuses.
const (
	ImportCreated  = "created"
	ImportStarted  = "started"
	ImportFinished = "finished"
	ImportFailed   = "failed"
)

// ContactImport reports the progress of a bulk import. Counts are filled in
// once the import has finished.
type ContactImport struct {
	ID                     int64  `json:"id"`
	Status                 string `json:"status"`
	CreatedContactsCount   int    `json:"created_contacts_count,omitempty"`
	UpdatedContactsCount   int    `json:"updated_contacts_count,omitempty"`
	ContactsOverLimitCount int    `json:"contacts_over_limit_count,omitempty"`
}

// ImportContactParams is one contact of a bulk import. Existing contacts
// with the same email are updated.
type ImportContactParams struct {
	Email           string         `json:"email"`
	Fields          map[string]any `json:"fields,omitzero"`
	ListIDsIncluded []int64        `json:"list_ids_included,omitzero"`
	ListIDsExcluded []int64        `json:"list_ids_excluded,omitzero"`
}

// ContactImportsService runs bulk contact imports for the configured account.
type ContactImportsService struct {
	service
}

// Import starts importing contacts. The import runs asynchronously; poll
// Get for its status.
func (s *ContactImportsService) Import(ctx context.Context, contacts []ImportContactParams) (*ContactImport, error) {
	path, err := s.accountPath("contact imports", "/contacts/imports")
	if err != nil {
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, &ValidationError{Errors: []string{"contacts must not be empty"}}
	}
	body := struct {
		Contacts []ImportContactParams `json:"contacts"`
	}{contacts}

	var result ContactImport
	if err := s.client.Do(ctx, http.MethodPost, path, nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get returns the status of an import.
func (s *ContactImportsService) Get(ctx context.Context, importID int64) (*ContactImport, error) {
	path, err := s.accountPath("contact imports", fmt.Sprintf("/contacts/imports/%d", importID))
	if err != nil {
		return nil, err
	}
	var result ContactImport
	if err := s.client.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
