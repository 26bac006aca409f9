// Package apierrors provides shared error types for the Mailtrap client.
package apierrors

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingToken is returned when no API token is provided.
	ErrMissingToken = errors.New("API token is required")

	// ErrUnauthorized is returned for 401 responses.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned for 403 responses.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrServer is returned for 5xx responses.
	ErrServer = errors.New("server error")

	// ErrValidation is returned for 422 responses and for parameters
	// rejected before a request is sent.
	ErrValidation = errors.New("validation failed")

	// ErrConfiguration is matched by every ConfigurationError.
	ErrConfiguration = errors.New("invalid client configuration")
)

// Kind classifies an APIError by HTTP status.
type Kind int

const (
	// KindAPI covers 4xx statuses without a dedicated kind.
	KindAPI Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindRateLimited
	KindValidation
	KindServer
)

// ClassifyStatus maps an HTTP status code to its Kind.
func ClassifyStatus(status int) Kind {
	switch {
	case status == 401:
		return KindUnauthorized
	case status == 403:
		return KindForbidden
	case status == 404:
		return KindNotFound
	case status == 429:
		return KindRateLimited
	case status == 422:
		return KindValidation
	case status >= 500:
		return KindServer
	default:
		return KindAPI
	}
}

// String returns the canonical phrase for the kind.
func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not found"
	case KindRateLimited:
		return "rate limit exceeded"
	case KindValidation:
		return "validation failed"
	case KindServer:
		return "server error"
	default:
		return "api error"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindUnauthorized:
		return ErrUnauthorized
	case KindForbidden:
		return ErrForbidden
	case KindNotFound:
		return ErrNotFound
	case KindRateLimited:
		return ErrRateLimited
	case KindValidation:
		return ErrValidation
	case KindServer:
		return ErrServer
	}
	return nil
}

// APIError represents a non-2xx response from the Mailtrap API.
type APIError struct {
	StatusCode int
	Kind       Kind
	// Detail is the parsed "errors" payload.
	Detail ErrorDetail
	// Raw is the "errors" (or "error") value exactly as the server sent it.
	// It is nil when the body had neither key or was not JSON.
	Raw json.RawMessage
	// Message is Detail rendered for humans.
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("mailtrap: %s (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("mailtrap: %s (status %d)", e.Kind, e.StatusCode)
}

// Errors returns the flattened error lines.
func (e *APIError) Errors() []string {
	return e.Detail.Lines()
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// NetworkError represents a transport-level failure.
type NetworkError struct {
	Err    error
	Method string
	URL    string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a successful response body is not valid JSON
// for the expected result type.
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response (status %d): %v", e.StatusCode, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ConfigurationError is returned when client options conflict or a
// required setting is missing. It is always raised before any request.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "mailtrap: configuration: " + e.Message
}

// Is implements errors.Is for sentinel error matching.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// ValidationError reports parameters rejected on the client side.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// Is implements errors.Is for sentinel error matching.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
