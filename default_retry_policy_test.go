package loxo

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-resty/resty/v2"
)

func TestDefaultRetryPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		response    *resty.Response
		err         error
		shouldRetry bool
	}{
		{"transport error", nil, errors.New("connection reset"), true},
		{"nil response", nil, nil, true},
		{"200", responseWithStatus(200), nil, false},
		{"204", responseWithStatus(204), nil, false},
		{"302", responseWithStatus(302), nil, true},
		{"400", responseWithStatus(400), nil, false},
		{"401", responseWithStatus(401), nil, false},
		{"404", responseWithStatus(404), nil, false},
		{"422", responseWithStatus(422), nil, false},
		{"429", responseWithStatus(429), nil, false},
		{"500", responseWithStatus(500), nil, true},
		{"502", responseWithStatus(502), nil, true},
		{"503", responseWithStatus(503), nil, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := DefaultRetryPolicy(tt.response, tt.err); got != tt.shouldRetry {
				t.Errorf("expected %v, got %v", tt.shouldRetry, got)
			}
		})
	}
}

func responseWithStatus(status int) *resty.Response {
	return &resty.Response{RawResponse: &http.Response{StatusCode: status}}
}
