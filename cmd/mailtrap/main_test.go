package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailtrap/mailtrap-go/internal/testserver"
)

func setupEnv(t *testing.T, srv *testserver.Server) {
	t.Helper()
	t.Setenv("MAILTRAP_TOKEN", "cli-token")
	t.Setenv("MAILTRAP_ACCOUNT_ID", "321")
	t.Setenv("MAILTRAP_SCHEME", "http")
	t.Setenv("MAILTRAP_GENERAL_HOST", srv.Host())
	t.Setenv("MAILTRAP_SENDING_HOST", srv.Hostname())
	t.Setenv("MAILTRAP_PORT", strconv.Itoa(srv.Port()))
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(append([]string{"mailtrap"}, args...), Streams{Stdout: &stdout, Stderr: &stderr})
	return stdout.String(), err
}

func TestRun_Usage(t *testing.T) {
	_, err := runCommand(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage: mailtrap")
}

func TestRun_RequiresToken(t *testing.T) {
	t.Setenv("MAILTRAP_TOKEN", "")

	_, err := runCommand(t, "accounts")
	assert.EqualError(t, err, "MAILTRAP_TOKEN is required")
}

func TestRun_UnknownCommand(t *testing.T) {
	srv := testserver.New(t)
	setupEnv(t, srv)

	_, err := runCommand(t, "frobnicate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command: frobnicate")
}

func TestRun_Accounts(t *testing.T) {
	srv := testserver.New(t)
	srv.Handle(http.MethodGet, "/api/accounts", http.StatusOK, `[{"id": 1, "name": "Main", "access_levels": [1000]}]`)
	setupEnv(t, srv)

	out, err := runCommand(t, "accounts")
	require.NoError(t, err)

	var accounts []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &accounts))
	require.Len(t, accounts, 1)
	assert.Equal(t, "Main", accounts[0]["name"])
	assert.Equal(t, "Bearer cli-token", srv.LastRequest(t).Header.Get("Authorization"))
}

func TestRun_Billing(t *testing.T) {
	srv := testserver.New(t)
	srv.Handle(http.MethodGet, "/api/accounts/{account}/billing/usage", http.StatusOK,
		`{"billing": {"cycle_start": "2024-02-15T21:11:59Z", "cycle_end": "2024-03-15T21:11:59Z"}}`)
	setupEnv(t, srv)

	_, err := runCommand(t, "billing")
	require.NoError(t, err)
	assert.Equal(t, "/api/accounts/321/billing/usage", srv.LastRequest(t).Path)
}

func TestRun_Send(t *testing.T) {
	srv := testserver.New(t)
	srv.Handle(http.MethodPost, "/api/send", http.StatusOK, `{"success": true, "message_ids": ["m-1"]}`)
	setupEnv(t, srv)

	out, err := runCommand(t, "send",
		"-from", "sender@example.com",
		"-to", "joe@example.com, jane@example.com",
		"-subject", "Hello",
		"-text", "Hi!",
	)
	require.NoError(t, err)
	assert.Contains(t, out, `"m-1"`)

	assert.JSONEq(t, `{
		"from": {"email": "sender@example.com"},
		"to": [{"email": "joe@example.com"}, {"email": "jane@example.com"}],
		"subject": "Hello",
		"text": "Hi!"
	}`, string(srv.LastRequest(t).Body))
}

func TestRun_SendSandbox(t *testing.T) {
	srv := testserver.New(t)
	srv.Handle(http.MethodPost, "/api/send/{inbox}", http.StatusOK, `{"success": true, "message_ids": ["m-1"]}`)
	setupEnv(t, srv)
	t.Setenv("MAILTRAP_SANDBOX", "true")
	t.Setenv("MAILTRAP_INBOX_ID", "77")

	_, err := runCommand(t, "send", "-from", "a@example.com", "-to", "b@example.com", "-template", "tpl-1")
	require.NoError(t, err)
	assert.Equal(t, "/api/send/77", srv.LastRequest(t).Path)
}

func TestRun_APIErrorIsReturned(t *testing.T) {
	srv := testserver.New(t)
	srv.Handle(http.MethodGet, "/api/accounts/{account}/contacts/{id}", http.StatusNotFound, `{"errors": "Not Found"}`)
	setupEnv(t, srv)

	_, err := runCommand(t, "contact", "missing@example.com")
	assert.EqualError(t, err, "mailtrap: not found (status 404): Not Found")
}

func TestLoadSettings_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mailtrap.yml")
	require.NoError(t, os.WriteFile(path, []byte("token: from-file\naccountid: 99\n"), 0o600))
	t.Setenv("MAILTRAP_TOKEN", "")
	t.Setenv("MAILTRAP_ACCOUNT_ID", "")

	settings, err := loadSettings(path, filepath.Join(dir, "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, "from-file", settings.Token)
	assert.Equal(t, int64(99), settings.AccountID)
	assert.Equal(t, 443, settings.Port)
	assert.Equal(t, "https", settings.Scheme)
}

func TestParseAddresses(t *testing.T) {
	assert.Nil(t, parseAddresses(""))
	assert.Len(t, parseAddresses("a@example.com,, b@example.com "), 2)
}
