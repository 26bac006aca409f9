package mailtrap

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailtrap/mailtrap-go/internal/testserver"
)

const inboxBody = `{
	"id": 3227,
	"name": "Admin Inbox",
	"username": "b3a87978452ae1",
	"password": "6be9fcfc613a7c",
	"max_size": 0,
	"status": "active",
	"email_username": "b7eae548c3-54c542",
	"email_username_enabled": false,
	"sent_messages_count": 52,
	"forwarded_messages_count": 0,
	"used": false,
	"forward_from_email_address": "a3538-i4088@forward.mailtrap.info",
	"project_id": 2293,
	"domain": "localhost",
	"pop3_domain": "localhost",
	"email_domain": "localhost",
	"api_domain": "localhost",
	"emails_count": 0,
	"emails_unread_count": 0,
	"last_message_sent_at": null,
	"smtp_ports": [25, 465, 587, 2525],
	"pop3_ports": [1100, 9950],
	"max_message_size": 5242880,
	"permissions": {"can_read": true, "can_update": true, "can_destroy": true, "can_leave": false}
}`

func TestInboxes_ListAndGet(t *testing.T) {
	srv := testserver.New(t)
	srv.Handle(http.MethodGet, "/api/accounts/{account}/inboxes", http.StatusOK, "["+inboxBody+"]")
	srv.Handle(http.MethodGet, "/api/accounts/{account}/inboxes/{id}", http.StatusOK, inboxBody)
	c := newTestClient(t, srv)
	ctx := context.Background()

	inboxes, err := c.Inboxes().List(ctx)
	require.NoError(t, err)
	require.Len(t, inboxes, 1)
	assert.Equal(t, "Admin Inbox", inboxes[0].Name)
	assert.Equal(t, []int{25, 465, 587, 2525}, inboxes[0].SMTPPorts)
	assert.Nil(t, inboxes[0].LastMessageSentAt)

	inbox, err := c.Inboxes().Get(ctx, 3227)
	require.NoError(t, err)
	assert.Equal(t, int64(2293), inbox.ProjectID)
	assert.Equal(t, "/api/accounts/321/inboxes/3227", srv.LastRequest(t).Path)
}

func TestInboxes_Create(t *testing.T) {
	srv := testserver.New(t)
	srv.Handle(http.MethodPost, "/api/accounts/{account}/projects/{project}/inboxes", http.StatusOK, inboxBody)
	c := newTestClient(t, srv)

	inbox, err := c.Inboxes().Create(context.Background(), 2293, CreateInboxParams{Name: "Admin Inbox"})
	require.NoError(t, err)
	assert.Equal(t, int64(3227), inbox.ID)

	req := srv.LastRequest(t)
	assert.Equal(t, "/api/accounts/321/projects/2293/inboxes", req.Path)
	assert.JSONEq(t, `{"inbox": {"name": "Admin Inbox"}}`, string(req.Body))
}

func TestInboxes_Update(t *testing.T) {
	srv := testserver.New(t)
	srv.Handle(http.MethodPatch, "/api/accounts/{account}/inboxes/{id}", http.StatusOK, inboxBody)
	c := newTestClient(t, srv)

	_, err := c.Inboxes().Update(context.Background(), 3227, UpdateInboxParams{EmailUsername: "qa-inbox"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"inbox": {"email_username": "qa-inbox"}}`, string(srv.LastRequest(t).Body))

	_, err = c.Inboxes().Update(context.Background(), 3227, UpdateInboxParams{})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Len(t, srv.Requests(), 1)
}

func TestInboxes_Delete(t *testing.T) {
	srv := testserver.New(t)
	srv.Handle(http.MethodDelete, "/api/accounts/{account}/inboxes/{id}", http.StatusOK, inboxBody)
	c := newTestClient(t, srv)

	deleted, err := c.Inboxes().Delete(context.Background(), 3227)
	require.NoError(t, err)
	assert.Equal(t, "3227", deleted.ID)
}

func TestInboxes_Actions(t *testing.T) {
	srv := testserver.New(t)
	srv.Handle(http.MethodPatch, "/api/accounts/{account}/inboxes/{id}/{action}", http.StatusOK, inboxBody)
	c := newTestClient(t, srv)
	ctx := context.Background()

	actions := []struct {
		path string
		call func() (*Inbox, error)
	}{
		{"/api/accounts/321/inboxes/3227/clean", func() (*Inbox, error) { return c.Inboxes().Clean(ctx, 3227) }},
		{"/api/accounts/321/inboxes/3227/all_read", func() (*Inbox, error) { return c.Inboxes().MarkAsRead(ctx, 3227) }},
		{"/api/accounts/321/inboxes/3227/reset_credentials", func() (*Inbox, error) { return c.Inboxes().ResetCredentials(ctx, 3227) }},
		{"/api/accounts/321/inboxes/3227/toggle_email_username", func() (*Inbox, error) { return c.Inboxes().EnableEmailAddress(ctx, 3227) }},
		{"/api/accounts/321/inboxes/3227/reset_email_username", func() (*Inbox, error) { return c.Inboxes().ResetEmailUsername(ctx, 3227) }},
	}

	for _, a := range actions {
		t.Run(a.path, func(t *testing.T) {
			inbox, err := a.call()
			require.NoError(t, err)
			assert.Equal(t, int64(3227), inbox.ID)

			req := srv.LastRequest(t)
			assert.Equal(t, http.MethodPatch, req.Method)
			assert.Equal(t, a.path, req.Path)
			assert.Empty(t, req.Body)
		})
	}
}

func TestInboxes_ForbiddenAndServerErrors(t *testing.T) {
	srv := testserver.New(t)
	srv.Handle(http.MethodGet, "/api/accounts/{account}/inboxes/{id}", http.StatusForbidden, `{"errors": "Access forbidden"}`)
	srv.Handle(http.MethodGet, "/api/accounts/{account}/inboxes", http.StatusBadGateway, `<html>bad gateway</html>`)
	c := newTestClient(t, srv)
	ctx := context.Background()

	_, err := c.Inboxes().Get(ctx, 1)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.NotErrorIs(t, err, ErrUnauthorized)

	_, err = c.Inboxes().List(ctx)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.ErrorIs(t, err, ErrServer)
	assert.Equal(t, []string{"server error"}, apiErr.Errors())
	assert.Nil(t, apiErr.Raw)
}
