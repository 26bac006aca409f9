package mailtrap

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Default hosts and port.
const (
	GeneralHost        = "mailtrap.io"
	SendingHost        = "send.api.mailtrap.io"
	BulkSendingHost    = "bulk.api.mailtrap.io"
	SandboxSendingHost = "sandbox.api.mailtrap.io"
	DefaultPort        = 443
)

const defaultScheme = "https"

// clientConfig holds configuration for the client.
type clientConfig struct {
	accountID   int64
	sendingHost string
	generalHost string
	port        int
	scheme      string
	bulk        bool
	sandbox     bool
	inboxID     string
	httpClient  *http.Client
	timeout     time.Duration
	logger      logrus.FieldLogger
}

func defaultConfig() *clientConfig {
	return &clientConfig{
		generalHost: GeneralHost,
		port:        DefaultPort,
		scheme:      defaultScheme,
	}
}

// Option configures the client.
type Option func(*clientConfig)

// WithAccountID sets the account used by account-scoped services
// (contacts, templates, projects and inboxes).
func WithAccountID(id int64) Option {
	return func(c *clientConfig) {
		c.accountID = id
	}
}

// WithSendingHost overrides the sending host. A custom host takes precedence
// over the bulk and sandbox hosts. A trailing slash is ignored.
func WithSendingHost(host string) Option {
	return func(c *clientConfig) {
		c.sendingHost = host
	}
}

// WithGeneralHost overrides the host used for account management calls.
// It may include a port.
func WithGeneralHost(host string) Option {
	return func(c *clientConfig) {
		c.generalHost = host
	}
}

// WithPort sets the sending port.
func WithPort(port int) Option {
	return func(c *clientConfig) {
		c.port = port
	}
}

// WithScheme sets the URL scheme for all hosts. Defaults to https.
func WithScheme(scheme string) Option {
	return func(c *clientConfig) {
		c.scheme = scheme
	}
}

// WithBulk routes sending through the bulk stream. It cannot be combined
// with WithSandbox.
func WithBulk() Option {
	return func(c *clientConfig) {
		c.bulk = true
	}
}

// WithSandbox routes sending to a sandbox inbox. WithInboxID is required.
func WithSandbox() Option {
	return func(c *clientConfig) {
		c.sandbox = true
	}
}

// WithInboxID sets the sandbox inbox that receives sent mail. It is only
// valid together with WithSandbox.
func WithInboxID(id string) Option {
	return func(c *clientConfig) {
		c.inboxID = id
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger enables request tracing at Debug level.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
