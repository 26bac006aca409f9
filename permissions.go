package mailtrap

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mailtrap/mailtrap-go/internal/api"
)

// PermissionResource is a node of the account resource tree. Resources
// nest to arbitrary depth, e.g. account > project > inbox.
type PermissionResource struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Type        string               `json:"type"`
	AccessLevel int                  `json:"access_level"`
	Resources   []PermissionResource `json:"resources"`
}

// Walk calls fn for r and every descendant, depth first.
func (r PermissionResource) Walk(fn func(PermissionResource)) {
	fn(r)
	for _, child := range r.Resources {
		child.Walk(fn)
	}
}

// PermissionResourceParams grants, changes or revokes (Destroy) access to
// one resource.
type PermissionResourceParams struct {
	ResourceID   string         `json:"resource_id"`
	ResourceType string         `json:"resource_type"`
	AccessLevel  string         `json:"access_level,omitzero"`
	Destroy      Optional[bool] `json:"_destroy,omitzero"`
}

// UpdatePermissionsResponse confirms a bulk permission update.
type UpdatePermissionsResponse struct {
	Message string `json:"message"`
}

// PermissionsService manages account permissions.
type PermissionsService struct {
	client *api.Client
}

// Resources returns the resource tree of an account.
func (s *PermissionsService) Resources(ctx context.Context, accountID int64) ([]PermissionResource, error) {
	var result []PermissionResource
	if err := s.client.Do(ctx, http.MethodGet, accountPath(accountID, "/permissions/resources"), nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// BulkUpdate applies several permission changes to one account access.
func (s *PermissionsService) BulkUpdate(ctx context.Context, accountID, accessID int64, permissions []PermissionResourceParams) (*UpdatePermissionsResponse, error) {
	if len(permissions) == 0 {
		return nil, &ValidationError{Errors: []string{"permissions must not be empty"}}
	}
	body := struct {
		Permissions []PermissionResourceParams `json:"permissions"`
	}{permissions}

	var result UpdatePermissionsResponse
	path := accountPath(accountID, fmt.Sprintf("/account_accesses/%d/permissions/bulk", accessID))
	if err := s.client.Do(ctx, http.MethodPut, path, nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
