package mailtrap

import (
	"github.com/mailtrap/mailtrap-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingToken is returned when no API token is provided.
	ErrMissingToken = apierrors.ErrMissingToken

	// ErrUnauthorized is matched by 401 responses.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrForbidden is matched by 403 responses.
	ErrForbidden = apierrors.ErrForbidden

	// ErrNotFound is matched by 404 responses.
	ErrNotFound = apierrors.ErrNotFound

	// ErrRateLimited is matched by 429 responses.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrServer is matched by 5xx responses.
	ErrServer = apierrors.ErrServer

	// ErrValidation is matched by 422 responses and by parameters rejected
	// before any request is sent.
	ErrValidation = apierrors.ErrValidation

	// ErrConfiguration is matched by every ConfigurationError.
	ErrConfiguration = apierrors.ErrConfiguration
)

// APIError represents a non-2xx response from the Mailtrap API. Its Detail
// holds either a list of messages or per-field messages in server order.
type APIError = apierrors.APIError

// ErrorKind classifies an APIError by HTTP status.
type ErrorKind = apierrors.Kind

// Error kinds.
const (
	KindAPI          = apierrors.KindAPI
	KindUnauthorized = apierrors.KindUnauthorized
	KindForbidden    = apierrors.KindForbidden
	KindNotFound     = apierrors.KindNotFound
	KindRateLimited  = apierrors.KindRateLimited
	KindValidation   = apierrors.KindValidation
	KindServer       = apierrors.KindServer
)

// ErrorDetail is the parsed "errors" payload of a failed response.
type ErrorDetail = apierrors.ErrorDetail

// FieldError holds the messages reported for one request field.
type FieldError = apierrors.FieldError

// NetworkError represents a transport-level failure.
type NetworkError = apierrors.NetworkError

// DecodeError is returned when a successful response body cannot be decoded.
type DecodeError = apierrors.DecodeError

// ConfigurationError is returned when client options conflict or a required
// setting is missing.
type ConfigurationError = apierrors.ConfigurationError

// ValidationError reports parameters rejected before a request is sent.
type ValidationError = apierrors.ValidationError

const updateRequiresField = "at least one field must be provided for update action"

// errUpdateEmpty is returned by Validate on update params with nothing set.
func errUpdateEmpty() error {
	return &ValidationError{Errors: []string{updateRequiresField}}
}
