package mailtrap

import (
	"context"
	"fmt"
	"net/http"
)

// ContactExportFilter selects contacts to export, e.g.
// {Name: "list_id", Operator: "in", Value: []int{1, 2, 3}}.
type ContactExportFilter struct {
	Name     string `json:"name"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

// CreateContactExportParams describes an export. A non-nil empty Filters
// exports every contact.
type CreateContactExportParams struct {
	Filters []ContactExportFilter `json:"filters,omitzero"`
}

// ContactExportDetail reports an export. URL is nil until the export has
// finished.
type ContactExportDetail struct {
	ID        int64   `json:"id"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
	URL       *string `json:"url"`
}

// ContactExportsService runs contact exports for the configured account.
type ContactExportsService struct {
	service
}

// Create starts an export.
func (s *ContactExportsService) Create(ctx context.Context, params CreateContactExportParams) (*ContactExportDetail, error) {
	path, err := s.accountPath("contact exports", "/contacts/exports")
	if err != nil {
		return nil, err
	}
	var result ContactExportDetail
	if err := s.client.Do(ctx, http.MethodPost, path, nil, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get returns the status of an export.
func (s *ContactExportsService) Get(ctx context.Context, exportID int64) (*ContactExportDetail, error) {
	path, err := s.accountPath("contact exports", fmt.Sprintf("/contacts/exports/%d", exportID))
	if err != nil {
		return nil, err
	}
	var result ContactExportDetail
	if err := s.client.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
