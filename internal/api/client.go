package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mailtrap/mailtrap-go/internal/apierrors"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies this library to the API.
	DefaultUserAgent = "mailtrap-go (https://github.com/mailtrap/mailtrap-go)"
)

// Client is the HTTP API client for a single Mailtrap host.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
	timeout    time.Duration
	logger     logrus.FieldLogger
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL, e.g. "https://send.api.mailtrap.io:443".
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the timeout of the default HTTP client. It has no effect
// when a custom client was supplied.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a new API client.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, apierrors.ErrMissingToken
	}

	c := &Client{
		baseURL:   "https://mailtrap.io",
		token:     token,
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
		logger:    discardLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	return c, nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// BaseURL returns the scheme://host:port the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Headers returns the headers sent with every request.
func (c *Client) Headers() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+c.token)
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	h.Set("User-Agent", c.userAgent)
	return h
}

// Do performs exactly one HTTP round trip. A non-nil body is sent as JSON and
// a 2xx response is decoded into result when result is non-nil. Non-2xx
// responses are returned as *apierrors.APIError.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "marshal request body")
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header = c.Headers()

	logger := c.logger.
		WithField("method", method).
		WithField("external_request", u)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).Debug("mailtrap request failed")
		return &apierrors.NetworkError{Err: err, Method: method, URL: u}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apierrors.NetworkError{Err: errors.Wrap(err, "read response body"), Method: method, URL: u}
	}

	logger.
		WithField("response_status_code", resp.StatusCode).
		WithField("duration", time.Since(start)).
		Debug("mailtrap request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apierrors.FromResponse(resp.StatusCode, respBody)
	}

	if result == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return &apierrors.DecodeError{StatusCode: resp.StatusCode, Body: respBody, Err: err}
	}
	return nil
}
