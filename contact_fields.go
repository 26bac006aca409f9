package mailtrap

import (
	"context"
	"fmt"
	"net/http"
)

// Contact field data types.
const (
	FieldTypeText    = "text"
	FieldTypeInteger = "integer"
	FieldTypeFloat   = "float"
	FieldTypeBoolean = "boolean"
	FieldTypeDate    = "date"
)

// ContactField is a custom contact attribute.
type ContactField struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	DataType string `json:"data_type"`
	MergeTag string `json:"merge_tag"`
}

// CreateContactFieldParams describes a new contact field.
type CreateContactFieldParams struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"`
	MergeTag string `json:"merge_tag"`
}

// UpdateContactFieldParams changes a contact field. The data type cannot
// change. At least one field must be set.
type UpdateContactFieldParams struct {
	Name     string `json:"name,omitzero"`
	MergeTag string `json:"merge_tag,omitzero"`
}

// Validate reports an error when no field is set.
func (p UpdateContactFieldParams) Validate() error {
	if p.Name == "" && p.MergeTag == "" {
		return errUpdateEmpty()
	}
	return nil
}

// ContactFieldsService manages contact fields of the configured account.
type ContactFieldsService struct {
	service
}

func (s *ContactFieldsService) path(suffix string) (string, error) {
	return s.accountPath("contact fields", "/contacts/fields"+suffix)
}

// List returns every contact field.
func (s *ContactFieldsService) List(ctx context.Context) ([]ContactField, error) {
	path, err := s.path("")
	if err != nil {
		return nil, err
	}
	var result []ContactField
	if err := s.client.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Get returns a contact field.
func (s *ContactFieldsService) Get(ctx context.Context, fieldID int64) (*ContactField, error) {
	path, err := s.path(fmt.Sprintf("/%d", fieldID))
	if err != nil {
		return nil, err
	}
	var result ContactField
	if err := s.client.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Create adds a contact field.
func (s *ContactFieldsService) Create(ctx context.Context, params CreateContactFieldParams) (*ContactField, error) {
	path, err := s.path("")
	if err != nil {
		return nil, err
	}
	var result ContactField
	if err := s.client.Do(ctx, http.MethodPost, path, nil, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Update changes a contact field.
func (s *ContactFieldsService) Update(ctx context.Context, fieldID int64, params UpdateContactFieldParams) (*ContactField, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	path, err := s.path(fmt.Sprintf("/%d", fieldID))
	if err != nil {
		return nil, err
	}
	var result ContactField
	if err := s.client.Do(ctx, http.MethodPatch, path, nil, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes a contact field.
func (s *ContactFieldsService) Delete(ctx context.Context, fieldID int64) (*DeletedObject, error) {
	path, err := s.path(fmt.Sprintf("/%d", fieldID))
	if err != nil {
		return nil, err
	}
	if err := s.client.Do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return nil, err
	}
	return deletedID(fieldID), nil
}
