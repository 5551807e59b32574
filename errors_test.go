package loxo

import (
	"context"
	"errors"
	"testing"
)

func TestAPIError_Is(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status  int
		matches error
	}{
		{401, ErrUnauthorized},
		{403, ErrForbidden},
		{404, ErrNotFound},
		{422, ErrUnprocessable},
		{429, ErrRateLimited},
	}

	all := []error{ErrUnauthorized, ErrForbidden, ErrNotFound, ErrUnprocessable, ErrRateLimited}

	for _, tt := range tests {
		err := error(&APIError{StatusCode: tt.status})

		for _, sentinel := range all {
			got := errors.Is(err, sentinel)
			want := sentinel == tt.matches
			if got != want {
				t.Errorf("status %d: errors.Is(%v) = %v, want %v", tt.status, sentinel, got, want)
			}
		}
	}
}

func TestAPIError_Classification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status    int
		client    bool
		server    bool
		transport bool
	}{
		{0, false, false, true},
		{302, false, true, false},
		{400, true, false, false},
		{499, true, false, false},
		{500, false, true, false},
		{503, false, true, false},
	}

	for _, tt := range tests {
		e := &APIError{StatusCode: tt.status}

		if e.IsClientError() != tt.client || e.IsServerError() != tt.server || e.IsTransportError() != tt.transport {
			t.Errorf("status %d: client=%v server=%v transport=%v", tt.status, e.IsClientError(), e.IsServerError(), e.IsTransportError())
		}
	}
}

func TestAPIError_Unwrap(t *testing.T) {
	t.Parallel()

	err := error(&APIError{Message: "API request canceled: context canceled", Err: context.Canceled})

	if !errors.Is(err, context.Canceled) {
		t.Error("expected wrapped context.Canceled")
	}

	if err.Error() != "API request canceled: context canceled" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestConfigurationError_Is(t *testing.T) {
	t.Parallel()

	err := error(missingField(FieldAPIKey))

	if !errors.Is(err, ErrMissingAPIKey) {
		t.Error("expected ErrMissingAPIKey")
	}

	if errors.Is(err, ErrMissingDomain) {
		t.Error("did not expect ErrMissingDomain")
	}
}

func TestErrorDetail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     map[string]any
		raw      string
		expected string
	}{
		{"error wins", map[string]any{"error": "a", "message": "b"}, "", "a"},
		{"message", map[string]any{"message": "b"}, "", "b"},
		{"empty error falls through", map[string]any{"error": "", "message": "b"}, "", "b"},
		{"errors", map[string]any{"errors": []any{"x"}}, "", "[x]"},
		{"raw", map[string]any{}, " Service Unavailable \n", "Service Unavailable"},
		{"empty", map[string]any{}, "", "(empty error body)"},
	}

	for _, tt := range tests {
		if got := errorDetail(tt.body, tt.raw); got != tt.expected {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.expected, got)
		}
	}
}
