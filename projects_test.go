package mailtrap

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailtrap/mailtrap-go/internal/testserver"
)

const projectBodyJSON = `{
	"id": 2293,
	"name": "My Project",
	"share_links": {"admin": "https://mailtrap.io/projects/2293/admin_share", "viewer": "https://mailtrap.io/projects/2293/viewer_share"},
	"inboxes": [{"id": 3227, "name": "Inbox", "project_id": 2293}],
	"permissions": {"can_read": true, "can_update": true, "can_destroy": true, "can_leave": false}
}`

func TestProjects_CRUD(t *testing.T) {
	srv := testserver.New(t)
	srv.Handle(http.MethodGet, "/api/accounts/{account}/projects", http.StatusOK, "["+projectBodyJSON+"]")
	srv.Handle(http.MethodGet, "/api/accounts/{account}/projects/{id}", http.StatusOK, projectBodyJSON)
	srv.Handle(http.MethodPost, "/api/accounts/{account}/projects", http.StatusOK, projectBodyJSON)
	srv.Handle(http.MethodPatch, "/api/accounts/{account}/projects/{id}", http.StatusOK, projectBodyJSON)
	c := newTestClient(t, srv)
	ctx := context.Background()

	projects, err := c.Projects().List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "My Project", projects[0].Name)
	require.NotNil(t, projects[0].ShareLinks)
	assert.Contains(t, projects[0].ShareLinks.Admin, "admin_share")
	require.Len(t, projects[0].Inboxes, 1)
	assert.Equal(t, int64(3227), projects[0].Inboxes[0].ID)

	project, err := c.Projects().Get(ctx, 2293)
	require.NoError(t, err)
	assert.True(t, project.Permissions.CanDestroy)
	assert.Equal(t, "/api/accounts/321/projects/2293", srv.LastRequest(t).Path)

	_, err = c.Projects().Create(ctx, ProjectParams{Name: "My Project"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"project": {"name": "My Project"}}`, string(srv.LastRequest(t).Body))

	_, err = c.Projects().Update(ctx, 2293, ProjectParams{Name: "Renamed"})
	require.NoError(t, err)
	req := srv.LastRequest(t)
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.JSONEq(t, `{"project": {"name": "Renamed"}}`, string(req.Body))
}

func TestProjects_Delete(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"numeric id", http.StatusOK, `{"id": 2293}`},
		{"string id", http.StatusOK, `{"id": "2293"}`},
		{"no content", http.StatusNoContent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := testserver.New(t)
			srv.Handle(http.MethodDelete, "/api/accounts/{account}/projects/{id}", tt.status, tt.body)
			c := newTestClient(t, srv)

			deleted, err := c.Projects().Delete(context.Background(), 2293)
			require.NoError(t, err)
			assert.Equal(t, "2293", deleted.ID)
		})
	}
}

func TestDeletedObject_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"id": 12}`, "12"},
		{`{"id": "018dd5e3-f6d2-7c00-8f9b-e5c3f2d8a132"}`, "018dd5e3-f6d2-7c00-8f9b-e5c3f2d8a132"},
		{`{"id": null}`, ""},
		{`{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var d DeletedObject
			require.NoError(t, json.Unmarshal([]byte(tt.body), &d))
			assert.Equal(t, tt.want, d.ID)
		})
	}
}
