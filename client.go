package mailtrap

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mailtrap/mailtrap-go/internal/api"
)

// Client is the Mailtrap API client. It is immutable after New and safe for
// concurrent use.
type Client struct {
	cfg     *clientConfig
	general *api.Client
	sending *api.Client

	accounts        *AccountsService
	accountAccesses *AccountAccessesService
	billing         *BillingService
	permissions     *PermissionsService
	contacts        *ContactsService
	contactLists    *ContactListsService
	contactFields   *ContactFieldsService
	contactImports  *ContactImportsService
	contactExports  *ContactExportsService
	contactEvents   *ContactEventsService
	templates       *TemplatesService
	projects        *ProjectsService
	inboxes         *InboxesService
	sendingService  *SendingService
}

// New creates a new Mailtrap client.
//
// The sending mode is fixed at construction. WithBulk and WithSandbox are
// mutually exclusive, and sandbox mode requires WithInboxID.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	general, err := buildAPIClient(token, cfg, cfg.generalBaseURL())
	if err != nil {
		return nil, err
	}
	sending, err := buildAPIClient(token, cfg, cfg.sendingBaseURL())
	if err != nil {
		return nil, err
	}

	c := &Client{
		cfg:     cfg,
		general: general,
		sending: sending,
	}

	scoped := service{client: general, accountID: cfg.accountID}
	c.accounts = &AccountsService{client: general}
	c.accountAccesses = &AccountAccessesService{client: general}
	c.billing = &BillingService{client: general}
	c.permissions = &PermissionsService{client: general}
	c.contacts = &ContactsService{scoped}
	c.contactLists = &ContactListsService{scoped}
	c.contactFields = &ContactFieldsService{scoped}
	c.contactImports = &ContactImportsService{scoped}
	c.contactExports = &ContactExportsService{scoped}
	c.contactEvents = &ContactEventsService{scoped}
	c.templates = &TemplatesService{scoped}
	c.projects = &ProjectsService{scoped}
	c.inboxes = &InboxesService{scoped}
	c.sendingService = &SendingService{client: sending, sendPath: cfg.sendPath(), batchPath: cfg.batchPath()}

	return c, nil
}

// buildAPIClient creates and configures an API client for one host.
func buildAPIClient(token string, cfg *clientConfig, baseURL string) (*api.Client, error) {
	apiOpts := []api.Option{
		api.WithBaseURL(baseURL),
	}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}
	if cfg.logger != nil {
		apiOpts = append(apiOpts, api.WithLogger(cfg.logger))
	}
	return api.New(token, apiOpts...)
}

func (c *clientConfig) validate() error {
	switch {
	case c.bulk && c.sandbox:
		return &ConfigurationError{Message: "bulk mode is not applicable for sandbox API"}
	case c.sandbox && c.inboxID == "":
		return &ConfigurationError{Message: "inbox ID is required for sandbox API"}
	case !c.sandbox && c.inboxID != "":
		return &ConfigurationError{Message: "inbox ID is only applicable for sandbox API"}
	}
	return nil
}

func (c *clientConfig) resolvedSendingHost() string {
	switch {
	case c.sendingHost != "":
		return strings.TrimRight(c.sendingHost, "/")
	case c.sandbox:
		return SandboxSendingHost
	case c.bulk:
		return BulkSendingHost
	default:
		return SendingHost
	}
}

func (c *clientConfig) sendingBaseURL() string {
	return fmt.Sprintf("%s://%s:%d", c.scheme, c.resolvedSendingHost(), c.port)
}

func (c *clientConfig) generalBaseURL() string {
	return fmt.Sprintf("%s://%s", c.scheme, strings.TrimRight(c.generalHost, "/"))
}

func (c *clientConfig) sendPath() string {
	if c.sandbox {
		return "/api/send/" + url.PathEscape(c.inboxID)
	}
	return "/api/send"
}

func (c *clientConfig) batchPath() string {
	if c.sandbox {
		return "/api/batch/" + url.PathEscape(c.inboxID)
	}
	return "/api/batch"
}

// BaseURL returns the sending base URL, e.g. "https://send.api.mailtrap.io:443".
func (c *Client) BaseURL() string {
	return c.cfg.sendingBaseURL()
}

// APISendURL returns the URL single sends are posted to. In sandbox mode the
// inbox ID is appended to the path.
func (c *Client) APISendURL() string {
	return c.BaseURL() + c.cfg.sendPath()
}

// Headers returns the headers sent with every request.
func (c *Client) Headers() http.Header {
	return c.sending.Headers()
}

// AccountID returns the configured account ID, or 0.
func (c *Client) AccountID() int64 {
	return c.cfg.accountID
}

// Accounts returns the accounts service.
func (c *Client) Accounts() *AccountsService { return c.accounts }

// AccountAccesses returns the account accesses service.
func (c *Client) AccountAccesses() *AccountAccessesService { return c.accountAccesses }

// Billing returns the billing service.
func (c *Client) Billing() *BillingService { return c.billing }

// Permissions returns the permissions service.
func (c *Client) Permissions() *PermissionsService { return c.permissions }

// Contacts returns the contacts service.
func (c *Client) Contacts() *ContactsService { return c.contacts }

// ContactLists returns the contact lists service.
func (c *Client) ContactLists() *ContactListsService { return c.contactLists }

// ContactFields returns the contact fields service.
func (c *Client) ContactFields() *ContactFieldsService { return c.contactFields }

// ContactImports returns the contact imports service.
func (c *Client) ContactImports() *ContactImportsService { return c.contactImports }

// ContactExports returns the contact exports service.
func (c *Client) ContactExports() *ContactExportsService { return c.contactExports }

// ContactEvents returns the contact events service.
func (c *Client) ContactEvents() *ContactEventsService { return c.contactEvents }

// Templates returns the email templates service.
func (c *Client) Templates() *TemplatesService { return c.templates }

// Projects returns the sandbox projects service.
func (c *Client) Projects() *ProjectsService { return c.projects }

// Inboxes returns the sandbox inboxes service.
func (c *Client) Inboxes() *InboxesService { return c.inboxes }

// Sending returns the sending service bound to the configured mode.
func (c *Client) Sending() *SendingService { return c.sendingService }

// Send sends a single message. It is shorthand for c.Sending().Send.
func (c *Client) Send(ctx context.Context, mail SendableMail) (*SendResponse, error) {
	return c.sendingService.Send(ctx, mail)
}

// BatchSend sends a batch. It is shorthand for c.Sending().BatchSend.
func (c *Client) BatchSend(ctx context.Context, params BatchSendParams) (*BatchSendResponse, error) {
	return c.sendingService.BatchSend(ctx, params)
}
