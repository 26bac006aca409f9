package mailtrap

import (
	"context"
	"fmt"
	"net/http"
)

// Project groups sandbox inboxes.
type Project struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	ShareLinks  *ProjectShareLinks `json:"share_links,omitempty"`
	Inboxes     []Inbox            `json:"inboxes"`
	Permissions ProjectPermissions `json:"permissions"`
}

// ProjectShareLinks are the invitation links of a project.
type ProjectShareLinks struct {
	Admin  string `json:"admin"`
	Viewer string `json:"viewer"`
}

// ProjectPermissions lists what the caller may do with a project.
type ProjectPermissions struct {
	CanRead    bool `json:"can_read"`
	CanUpdate  bool `json:"can_update"`
	CanDestroy bool `json:"can_destroy"`
	CanLeave   bool `json:"can_leave"`
}

// ProjectParams names a project.
type ProjectParams struct {
	Name string `json:"name"`
}

type projectBody struct {
	Project ProjectParams `json:"project"`
}

// ProjectsService manages sandbox projects of the configured account.
type ProjectsService struct {
	service
}

func (s *ProjectsService) path(suffix string) (string, error) {
	return s.accountPath("projects", "/projects"+suffix)
}

// List returns every project.
func (s *ProjectsService) List(ctx context.Context) ([]Project, error) {
	path, err := s.path("")
	if err != nil {
		return nil, err
	}
	var result []Project
	if err := s.client.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Get returns a project.
func (s *ProjectsService) Get(ctx context.Context, projectID int64) (*Project, error) {
	path, err := s.path(fmt.Sprintf("/%d", projectID))
	if err != nil {
		return nil, err
	}
	var result Project
	if err := s.client.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Create adds a project.
func (s *ProjectsService) Create(ctx context.Context, params ProjectParams) (*Project, error) {
	path, err := s.path("")
	if err != nil {
		return nil, err
	}
	var result Project
	if err := s.client.Do(ctx, http.MethodPost, path, nil, projectBody{params}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Update renames a project.
func (s *ProjectsService) Update(ctx context.Context, projectID int64, params ProjectParams) (*Project, error) {
	path, err := s.path(fmt.Sprintf("/%d", projectID))
	if err != nil {
		return nil, err
	}
	var result Project
	if err := s.client.Do(ctx, http.MethodPatch, path, nil, projectBody{params}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes a project and its inboxes.
func (s *ProjectsService) Delete(ctx context.Context, projectID int64) (*DeletedObject, error) {
	path, err := s.path(fmt.Sprintf("/%d", projectID))
	if err != nil {
		return nil, err
	}
	var result DeletedObject
	if err := s.client.Do(ctx, http.MethodDelete, path, nil, nil, &result); err != nil {
		return nil, err
	}
	if result.ID == "" {
		return deletedID(projectID), nil
	}
	return &result, nil
}
