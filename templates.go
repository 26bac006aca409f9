package mailtrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// EmailTemplate is a stored email template. UUID is the value to pass as
// TemplateUUID when sending.
type EmailTemplate struct {
	ID        int64     `json:"id"`
	UUID      uuid.UUID `json:"uuid"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Category  string    `json:"category"`
	BodyHTML  string    `json:"body_html"`
	BodyText  string    `json:"body_text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateEmailTemplateParams describes a new template.
type CreateEmailTemplateParams struct {
	Name     string `json:"name"`
	Subject  string `json:"subject"`
	Category string `json:"category"`
	BodyText string `json:"body_text,omitzero"`
	BodyHTML string `json:"body_html,omitzero"`
}

func (p CreateEmailTemplateParams) validate() error {
	var problems []string
	if p.Name == "" {
		problems = append(problems, "name is required")
	}
	if p.Subject == "" {
		problems = append(problems, "subject is required")
	}
	if p.Category == "" {
		problems = append(problems, "category is required")
	}
	return problemsError(problems)
}

// UpdateEmailTemplateParams changes a template. At least one field must be
// set.
type UpdateEmailTemplateParams struct {
	Name     string `json:"name,omitzero"`
	Subject  string `json:"subject,omitzero"`
	Category string `json:"category,omitzero"`
	BodyText string `json:"body_text,omitzero"`
	BodyHTML string `json:"body_html,omitzero"`
}

// Validate reports an error when no field is set.
func (p UpdateEmailTemplateParams) Validate() error {
	if p == (UpdateEmailTemplateParams{}) {
		return errUpdateEmpty()
	}
	return nil
}

// TemplatesService manages email templates of the configured account.
type TemplatesService struct {
	service
}

func (s *TemplatesService) path(suffix string) (string, error) {
	return s.accountPath("email templates", "/email_templates"+suffix)
}

// List returns every template.
func (s *TemplatesService) List(ctx context.Context) ([]EmailTemplate, error) {
	path, err := s.path("")
	if err != nil {
		return nil, err
	}
	var result []EmailTemplate
	if err := s.client.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Get returns a template.
func (s *TemplatesService) Get(ctx context.Context, templateID int64) (*EmailTemplate, error) {
	path, err := s.path(fmt.Sprintf("/%d", templateID))
	if err != nil {
		return nil, err
	}
	var result EmailTemplate
	if err := s.client.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Create adds a template.
func (s *TemplatesService) Create(ctx context.Context, params CreateEmailTemplateParams) (*EmailTemplate, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	path, err := s.path("")
	if err != nil {
		return nil, err
	}
	body := struct {
		EmailTemplate CreateEmailTemplateParams `json:"email_template"`
	}{params}

	var result EmailTemplate
	if err := s.client.Do(ctx, http.MethodPost, path, nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Update changes a template.
func (s *TemplatesService) Update(ctx context.Context, templateID int64, params UpdateEmailTemplateParams) (*EmailTemplate, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	path, err := s.path(fmt.Sprintf("/%d", templateID))
	if err != nil {
		return nil, err
	}
	body := struct {
		EmailTemplate UpdateEmailTemplateParams `json:"email_template"`
	}{params}

	var result EmailTemplate
	if err := s.client.Do(ctx, http.MethodPatch, path, nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes a template. The API answers 204 No Content.
func (s *TemplatesService) Delete(ctx context.Context, templateID int64) (*DeletedObject, error) {
	path, err := s.path(fmt.Sprintf("/%d", templateID))
	if err != nil {
		return nil, err
	}
	if err := s.client.Do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return nil, err
	}
	return deletedID(templateID), nil
}
