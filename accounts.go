package mailtrap

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mailtrap/mailtrap-go/internal/api"
)

// Account is an account the token has access to.
type Account struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	AccessLevels []int  `json:"access_levels"`
}

// Specifier types of an account access.
const (
	SpecifierUser     = "User"
	SpecifierInvite   = "Invite"
	SpecifierAPIToken = "ApiToken"
)

// Specifier identifies who an account access belongs to. Users and invites
// carry an email; API tokens carry a name and author.
type Specifier struct {
	ID                             int64  `json:"id"`
	Email                          string `json:"email,omitempty"`
	Name                           string `json:"name,omitempty"`
	TwoFactorAuthenticationEnabled bool   `json:"two_factor_authentication_enabled,omitempty"`
	AuthorID                       int64  `json:"author_id,omitempty"`
	Token                          string `json:"token,omitempty"`
	ExpiresAt                      string `json:"expires_at,omitempty"`
}

// AccountAccessResource is a resource an account access applies to.
type AccountAccessResource struct {
	ResourceID   int64  `json:"resource_id"`
	ResourceType string `json:"resource_type"`
	AccessLevel  int    `json:"access_level"`
}

// AccountAccessPermissions lists what the caller may do with an access.
type AccountAccessPermissions struct {
	CanRead    bool `json:"can_read"`
	CanUpdate  bool `json:"can_update"`
	CanDestroy bool `json:"can_destroy"`
	CanLeave   bool `json:"can_leave"`
}

// AccountAccess is one user, invite or API token with access to an account.
type AccountAccess struct {
	ID            int64                    `json:"id"`
	SpecifierType string                   `json:"specifier_type"`
	Specifier     Specifier                `json:"specifier"`
	Resources     []AccountAccessResource  `json:"resources"`
	Permissions   AccountAccessPermissions `json:"permissions"`
}

// AccountAccessFilterParams narrows an account access listing. Each list is
// sent as a repeated query parameter.
type AccountAccessFilterParams struct {
	ProjectIDs []string `url:"project_ids"`
	InboxIDs   []string `url:"inbox_ids"`
	DomainIDs  []string `url:"domain_ids"`
}

// AccountsService lists accounts.
type AccountsService struct {
	client *api.Client
}

// List returns every account the token has access to.
func (s *AccountsService) List(ctx context.Context) ([]Account, error) {
	var result []Account
	if err := s.client.Do(ctx, http.MethodGet, "/api/accounts", nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// AccountAccessesService manages who can access an account.
type AccountAccessesService struct {
	client *api.Client
}

// List returns the accesses of an account. filter may be nil.
func (s *AccountAccessesService) List(ctx context.Context, accountID int64, filter *AccountAccessFilterParams) ([]AccountAccess, error) {
	var result []AccountAccess
	path := accountPath(accountID, "/account_accesses")
	if err := s.client.Do(ctx, http.MethodGet, path, api.FlattenQuery(filter), nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes an access from an account.
func (s *AccountAccessesService) Delete(ctx context.Context, accountID, accessID int64) (*DeletedObject, error) {
	var result DeletedObject
	path := accountPath(accountID, fmt.Sprintf("/account_accesses/%d", accessID))
	if err := s.client.Do(ctx, http.MethodDelete, path, nil, nil, &result); err != nil {
		return nil, err
	}
	if result.ID == "" {
		return deletedID(accessID), nil
	}
	return &result, nil
}
