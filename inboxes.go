package mailtrap

import (
	"context"
	"fmt"
	"net/http"
)

// Inbox is a sandbox inbox that captures mail sent to it.
type Inbox struct {
	ID                      int64            `json:"id"`
	Name                    string           `json:"name"`
	Username                string           `json:"username"`
	Password                string           `json:"password,omitempty"`
	MaxSize                 int              `json:"max_size"`
	Status                  string           `json:"status"`
	EmailUsername           string           `json:"email_username"`
	EmailUsernameEnabled    bool             `json:"email_username_enabled"`
	SentMessagesCount       int              `json:"sent_messages_count"`
	ForwardedMessagesCount  int              `json:"forwarded_messages_count"`
	Used                    bool             `json:"used"`
	ForwardFromEmailAddress string           `json:"forward_from_email_address"`
	ProjectID               int64            `json:"project_id"`
	Domain                  string           `json:"domain"`
	POP3Domain              string           `json:"pop3_domain"`
	EmailDomain             string           `json:"email_domain"`
	APIDomain               string           `json:"api_domain"`
	EmailsCount             int              `json:"emails_count"`
	EmailsUnreadCount       int              `json:"emails_unread_count"`
	LastMessageSentAt       *string          `json:"last_message_sent_at"`
	SMTPPorts               []int            `json:"smtp_ports"`
	POP3Ports               []int            `json:"pop3_ports"`
	MaxMessageSize          int              `json:"max_message_size"`
	Permissions             InboxPermissions `json:"permissions"`
}

// InboxPermissions lists what the caller may do with an inbox.
type InboxPermissions struct {
	CanRead    bool `json:"can_read"`
	CanUpdate  bool `json:"can_update"`
	CanDestroy bool `json:"can_destroy"`
	CanLeave   bool `json:"can_leave"`
}

// CreateInboxParams names a new inbox.
type CreateInboxParams struct {
	Name string `json:"name"`
}

// UpdateInboxParams changes an inbox. At least one field must be set.
type UpdateInboxParams struct {
	Name          string `json:"name,omitzero"`
	EmailUsername string `json:"email_username,omitzero"`
}

// Validate reports an error when no field is set.
func (p UpdateInboxParams) Validate() error {
	if p.Name == "" && p.EmailUsername == "" {
		return errUpdateEmpty()
	}
	return nil
}

// InboxesService manages sandbox inboxes of the configured account.
type InboxesService struct {
	service
}

func (s *InboxesService) path(suffix string) (string, error) {
	return s.accountPath("inboxes", suffix)
}

func (s *InboxesService) do(ctx context.Context, method, suffix string, body any) (*Inbox, error) {
	path, err := s.path(suffix)
	if err != nil {
		return nil, err
	}
	var result Inbox
	if err := s.client.Do(ctx, method, path, nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// List returns every inbox of the account.
func (s *InboxesService) List(ctx context.Context) ([]Inbox, error) {
	path, err := s.path("/inboxes")
	if err != nil {
		return nil, err
	}
	var result []Inbox
	if err := s.client.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Get returns an inbox.
func (s *InboxesService) Get(ctx context.Context, inboxID int64) (*Inbox, error) {
	return s.do(ctx, http.MethodGet, fmt.Sprintf("/inboxes/%d", inboxID), nil)
}

// Create adds an inbox to a project.
func (s *InboxesService) Create(ctx context.Context, projectID int64, params CreateInboxParams) (*Inbox, error) {
	body := struct {
		Inbox CreateInboxParams `json:"inbox"`
	}{params}
	return s.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%d/inboxes", projectID), body)
}

// Update changes an inbox.
func (s *InboxesService) Update(ctx context.Context, inboxID int64, params UpdateInboxParams) (*Inbox, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	body := struct {
		Inbox UpdateInboxParams `json:"inbox"`
	}{params}
	return s.do(ctx, http.MethodPatch, fmt.Sprintf("/inboxes/%d", inboxID), body)
}

// Delete removes an inbox.
func (s *InboxesService) Delete(ctx context.Context, inboxID int64) (*DeletedObject, error) {
	path, err := s.path(fmt.Sprintf("/inboxes/%d", inboxID))
	if err != nil {
		return nil, err
	}
	var result DeletedObject
	if err := s.client.Do(ctx, http.MethodDelete, path, nil, nil, &result); err != nil {
		return nil, err
	}
	if result.ID == "" {
		return deletedID(inboxID), nil
	}
	return &result, nil
}

// Clean deletes every message of an inbox.
func (s *InboxesService) Clean(ctx context.Context, inboxID int64) (*Inbox, error) {
	return s.do(ctx, http.MethodPatch, fmt.Sprintf("/inboxes/%d/clean", inboxID), nil)
}

// MarkAsRead marks every message of an inbox as read.
func (s *InboxesService) MarkAsRead(ctx context.Context, inboxID int64) (*Inbox, error) {
	return s.do(ctx, http.MethodPatch, fmt.Sprintf("/inboxes/%d/all_read", inboxID), nil)
}

// ResetCredentials issues new SMTP/POP3 credentials.
func (s *InboxesService) ResetCredentials(ctx context.Context, inboxID int64) (*Inbox, error) {
	return s.do(ctx, http.MethodPatch, fmt.Sprintf("/inboxes/%d/reset_credentials", inboxID), nil)
}

// EnableEmailAddress toggles the inbox email address.
func (s *InboxesService) EnableEmailAddress(ctx context.Context, inboxID int64) (*Inbox, error) {
	return s.do(ctx, http.MethodPatch, fmt.Sprintf("/inboxes/%d/toggle_email_username", inboxID), nil)
}

// ResetEmailUsername restores the default email username.
func (s *InboxesService) ResetEmailUsername(ctx context.Context, inboxID int64) (*Inbox, error) {
	return s.do(ctx, http.MethodPatch, fmt.Sprintf("/inboxes/%d/reset_email_username", inboxID), nil)
}
