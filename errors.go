package loxo

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrMissingDomain is matched by a [ConfigurationError] for an empty domain.
	ErrMissingDomain = errors.New("loxo domain is not configured")

	// ErrMissingAgencySlug is matched by a [ConfigurationError] for an empty agency slug.
	ErrMissingAgencySlug = errors.New("loxo agency slug is not configured")

	// ErrMissingAPIKey is matched by a [ConfigurationError] for an empty API key.
	ErrMissingAPIKey = errors.New("loxo API key is not configured")

	// ErrInvalidOptions is wrapped when client options fail validation.
	ErrInvalidOptions = errors.New("invalid options")

	// ErrInvalidRequest is returned when a [Request] is malformed. No network call is made.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidArgument is returned for unusable arguments, such as a resume that
	// cannot be read. No network call is made.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnauthorized is matched by an [APIError] with status 401.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrForbidden is matched by an [APIError] with status 403.
	ErrForbidden = errors.New("access forbidden")

	// ErrNotFound is matched by an [APIError] with status 404.
	ErrNotFound = errors.New("resource not found")

	// ErrUnprocessable is matched by an [APIError] with status 422.
	ErrUnprocessable = errors.New("unprocessable entity")

	// ErrRateLimited is matched by an [APIError] with status 429.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrUnexpected is wrapped by the [APIError] returned if the retry loop ends
	// without an outcome. It indicates a defect in the client.
	ErrUnexpected = errors.New("unexpected error occurred during API request")
)

// ConfigField identifies a required configuration setting.
type ConfigField string

const (
	FieldDomain     ConfigField = "domain"
	FieldAgencySlug ConfigField = "agency_slug"
	FieldAPIKey     ConfigField = "api_key"
)

// ConfigurationError is returned by [NewConfig] and [New] when a required
// setting is missing. It is never returned by a request.
type ConfigurationError struct {
	Field   ConfigField
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Is implements errors.Is for the ErrMissing* sentinels.
func (e *ConfigurationError) Is(target error) bool {
	switch e.Field {
	case FieldDomain:
		return target == ErrMissingDomain
	case FieldAgencySlug:
		return target == ErrMissingAgencySlug
	case FieldAPIKey:
		return target == ErrMissingAPIKey
	}
	return false
}

func missingField(field ConfigField) *ConfigurationError {
	var sentinel error
	switch field {
	case FieldDomain:
		sentinel = ErrMissingDomain
	case FieldAgencySlug:
		sentinel = ErrMissingAgencySlug
	default:
		sentinel = ErrMissingAPIKey
	}
	return &ConfigurationError{Field: field, Message: sentinel.Error()}
}

// APIError is returned for every failed call. StatusCode is 0 when no HTTP
// response was received. Response holds the decoded error body (never nil) and
// Body the raw one.
type APIError struct {
	StatusCode int
	Message    string
	Response   map[string]any
	Body       string
	Attempts   int
	Err        error
}

func (e *APIError) Error() string {
	return e.Message
}

// Unwrap returns the transport or context error, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// IsClientError reports whether the server answered with a 4xx status. Such
// errors are never retried.
func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsServerError reports whether the server answered with a non-2xx, non-4xx status.
func (e *APIError) IsServerError() bool {
	return e.StatusCode != 0 && !e.IsClientError() && (e.StatusCode < 200 || e.StatusCode >= 300)
}

// IsTransportError reports whether no HTTP response was received.
func (e *APIError) IsTransportError() bool {
	return e.StatusCode == 0
}

// Is implements errors.Is for sentinel error matching by status code.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return target == ErrUnauthorized
	case http.StatusForbidden:
		return target == ErrForbidden
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusUnprocessableEntity:
		return target == ErrUnprocessable
	case http.StatusTooManyRequests:
		return target == ErrRateLimited
	}
	return false
}

// errorDetail extracts a human-readable detail from a decoded error body.
// Loxo answers with {"error": ...}, {"message": ...} or {"errors": {...}}.
func errorDetail(body map[string]any, raw string) string {
	for _, key := range []string{"error", "message"} {
		if s, ok := body[key].(string); ok && s != "" {
			return s
		}
	}

	if errs, ok := body["errors"]; ok {
		return fmt.Sprint(errs)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "(empty error body)"
	}

	return raw
}
