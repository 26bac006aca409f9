package mailtrap

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailtrap/mailtrap-go/internal/testserver"
)

func TestAccounts_List(t *testing.T) {
	srv := testserver.New(t)
	srv.Handle(http.MethodGet, "/api/accounts", http.StatusOK,
		`[{"id": 26730, "name": "James", "access_levels": [100]}, {"id": 26731, "name": "John", "access_levels": [1000]}]`)
	c := newTestClient(t, srv)

	accounts, err := c.Accounts().List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []Account{
		{ID: 26730, Name: "James", AccessLevels: []int{100}},
		{ID: 26731, Name: "John", AccessLevels: []int{1000}},
	}, accounts)
}

func TestAccounts_ListUnauthorized(t *testing.T) {
	srv := testserver.New(t)
	srv.Handle(http.MethodGet, "/api/accounts", http.StatusUnauthorized, `{"error":"Incorrect API token"}`)
	c := newTestClient(t, srv)

	_, err := c.Accounts().List(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.EqualError(t, err, "mailtrap: unauthorized (status 401): Incorrect API token")
}

const accountAccessesBody = `[
	{
		"id": 4788,
		"specifier_type": "User",
		"specifier": {"id": 3982, "email": "john@example.com", "name": "John", "two_factor_authentication_enabled": true},
		"resources": [{"resource_id": 3938, "resource_type": "account", "access_level": 1000}],
		"permissions": {"can_read": true, "can_update": true, "can_destroy": false, "can_leave": false}
	},
	{
		"id": 4789,
		"specifier_type": "ApiToken",
		"specifier": {"id": 3983, "name": "ci", "author_id": 3982, "token": "****abcd", "expires_at": "2030-01-01T00:00:00Z"},
		"resources": [],
		"permissions": {"can_read": true, "can_update": false, "can_destroy": true, "can_leave": false}
	}
]`

func TestAccountAccesses_List(t *testing.T) {
	srv := testserver.New(t)
	srv.Handle(http.MethodGet, "/api/accounts/{account}/account_accesses", http.StatusOK, accountAccessesBody)
	c := newTestClient(t, srv)

	accesses, err := c.AccountAccesses().List(context.Background(), 1111, nil)
	require.NoError(t, err)
	require.Len(t, accesses, 2)

	req := srv.LastRequest(t)
	assert.Equal(t, "/api/accounts/1111/account_accesses", req.Path)
	assert.Empty(t, req.Query)

	assert.Equal(t, SpecifierUser, accesses[0].SpecifierType)
	assert.Equal(t, "john@example.com", accesses[0].Specifier.Email)
	assert.True(t, accesses[0].Specifier.TwoFactorAuthenticationEnabled)
	assert.Equal(t, []AccountAccessResource{{ResourceID: 3938, ResourceType: "account", AccessLevel: 1000}}, accesses[0].Resources)

	assert.Equal(t, SpecifierAPIToken, accesses[1].SpecifierType)
	assert.Equal(t, int64(3982), accesses[1].Specifier.AuthorID)
	assert.True(t, accesses[1].Permissions.CanDestroy)
}

func TestAccountAccesses_ListWithFilters(t *testing.T) {
	srv := testserver.New(t)
	srv.Handle(http.MethodGet, "/api/accounts/{account}/account_accesses", http.StatusOK, `[]`)
	c := newTestClient(t, srv)

	_, err := c.AccountAccesses().List(context.Background(), 1111, &AccountAccessFilterParams{
		ProjectIDs: []string{"3938", "3939"},
		InboxIDs:   []string{"12"},
	})
	require.NoError(t, err)

	assert.Equal(t, url.Values{
		"project_ids": {"3938", "3939"},
		"inbox_ids":   {"12"},
	}, srv.LastRequest(t).Query)
}

func TestAccountAccesses_Delete(t *testing.T) {
	srv := testserver.New(t)
	srv.Handle(http.MethodDelete, "/api/accounts/{account}/account_accesses/{id}", http.StatusOK, `{"id": 4788}`)
	c := newTestClient(t, srv)

	deleted, err := c.AccountAccesses().Delete(context.Background(), 1111, 4788)
	require.NoError(t, err)

	assert.Equal(t, "4788", deleted.ID)
	assert.Equal(t, "/api/accounts/1111/account_accesses/4788", srv.LastRequest(t).Path)
}

func TestAccountAccesses_DeleteNotFound(t *testing.T) {
	srv := testserver.New(t)
	srv.Handle(http.MethodDelete, "/api/accounts/{account}/account_accesses/{id}", http.StatusNotFound, `{"error":"Not Found"}`)
	c := newTestClient(t, srv)

	_, err := c.AccountAccesses().Delete(context.Background(), 1111, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBilling_CurrentUsage(t *testing.T) {
	srv := testserver.New(t)
	srv.Handle(http.MethodGet, "/api/accounts/{account}/billing/usage", http.StatusOK, `{
		"billing": {"cycle_start": "2024-02-15T21:11:59.624Z", "cycle_end": "2024-03-15T21:11:59.624Z"},
		"testing": {
			"plan": {"name": "Individual"},
			"usage": {
				"sent_messages_count": {"current": 1234, "limit": 5000},
				"forwarded_messages_count": {"current": 0, "limit": 100}
			}
		},
		"sending": {
			"plan": {"name": "Basic 10K"},
			"usage": {"sent_messages_count": {"current": 6789, "limit": 10000}}
		}
	}`)
	c := newTestClient(t, srv)

	usage, err := c.Billing().CurrentUsage(context.Background(), 1111)
	require.NoError(t, err)

	assert.Equal(t, "/api/accounts/1111/billing/usage", srv.LastRequest(t).Path)
	assert.Equal(t, 2024, usage.Billing.CycleStart.Year())
	assert.Equal(t, "Individual", usage.Testing.Plan.Name)
	assert.Equal(t, MessageCount{Current: 1234, Limit: 5000}, usage.Testing.Usage.SentMessagesCount)
	assert.Equal(t, MessageCount{Current: 0, Limit: 100}, usage.Testing.Usage.ForwardedMessagesCount)
	assert.Equal(t, "Basic 10K", usage.Sending.Plan.Name)
	assert.Equal(t, 6789, usage.Sending.Usage.SentMessagesCount.Current)
}

func TestPermissions_Resources(t *testing.T) {
	srv := testserver.New(t)
	srv.Handle(http.MethodGet, "/api/accounts/{account}/permissions/resources", http.StatusOK, `[
		{
			"id": 4001, "name": "My Account", "type": "account", "access_level": 1000,
			"resources": [
				{
					"id": 3938, "name": "Project", "type": "project", "access_level": 1000,
					"resources": [{"id": 3757, "name": "Inbox", "type": "inbox", "access_level": 100, "resources": []}]
				}
			]
		}
	]`)
	c := newTestClient(t, srv)

	resources, err := c.Permissions().Resources(context.Background(), 1111)
	require.NoError(t, err)
	require.Len(t, resources, 1)

	var types []string
	resources[0].Walk(func(r PermissionResource) {
		types = append(types, r.Type)
	})
	assert.Equal(t, []string{"account", "project", "inbox"}, types)
	assert.Equal(t, 100, resources[0].Resources[0].Resources[0].AccessLevel)
}

func TestPermissions_BulkUpdate(t *testing.T) {
	srv := testserver.New(t)
	srv.Handle(http.MethodPut, "/api/accounts/{account}/account_accesses/{id}/permissions/bulk", http.StatusOK,
		`{"message": "Permissions have been updated!"}`)
	c := newTestClient(t, srv)

	resp, err := c.Permissions().BulkUpdate(context.Background(), 1111, 4788, []PermissionResourceParams{
		{ResourceID: "3938", ResourceType: "project", AccessLevel: "10"},
		{ResourceID: "3757", ResourceType: "inbox", Destroy: Opt(true)},
		{ResourceID: "3758", ResourceType: "inbox", AccessLevel: "100", Destroy: Opt(false)},
	})
	require.NoError(t, err)
	assert.Equal(t, "Permissions have been updated!", resp.Message)

	req := srv.LastRequest(t)
	assert.Equal(t, "/api/accounts/1111/account_accesses/4788/permissions/bulk", req.Path)
	assert.JSONEq(t, `{"permissions": [
		{"resource_id": "3938", "resource_type": "project", "access_level": "10"},
		{"resource_id": "3757", "resource_type": "inbox", "_destroy": true},
		{"resource_id": "3758", "resource_type": "inbox", "access_level": "100", "_destroy": false}
	]}`, string(req.Body))
}

func TestPermissions_BulkUpdateRequiresPermissions(t *testing.T) {
	srv := testserver.New(t)
	c := newTestClient(t, srv)

	_, err := c.Permissions().BulkUpdate(context.Background(), 1111, 4788, nil)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, srv.Requests())
}
