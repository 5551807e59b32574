package loxo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"pgregory.net/rapid"
)

// expectedCalls walks statuses the way the retry loop should: stop at the
// first 2xx or 4xx, otherwise use every attempt.
func expectedCalls(statuses []int) (calls int, status int) {
	for i, s := range statuses {
		if isSuccess(s) || isClientError(s) {
			return i + 1, s
		}
	}
	return len(statuses), statuses[len(statuses)-1]
}

func TestRetryLoopProperty(t *testing.T) {
	t.Parallel()

	statusGen := rapid.SampledFrom([]int{200, 201, 204, 302, 400, 401, 404, 422, 429, 500, 502, 503})

	rapid.Check(t, func(rt *rapid.T) {
		attempts := rapid.IntRange(1, 6).Draw(rt, "attempts")
		statuses := rapid.SliceOfN(statusGen, attempts, attempts).Draw(rt, "statuses")
		method := rapid.SampledFrom([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}).Draw(rt, "method")

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			n := int(calls.Add(1))
			if n > len(statuses) {
				w.WriteHeader(http.StatusTeapot)
				return
			}
			w.WriteHeader(statuses[n-1])
		}))
		defer server.Close()

		client, err := New("test.example.co", "test-agency", "test-api-key",
			WithBaseURLTemplate(server.URL+"/api/{agency_slug}"),
			WithRetryAttempts(attempts),
			WithRetryDelay(0),
		)
		if err != nil {
			rt.Fatalf("failed to create client: %v", err)
		}

		result, err := client.Execute(context.Background(), Request{Method: method, Path: "jobs"})

		wantCalls, wantStatus := expectedCalls(statuses)

		if int(calls.Load()) != wantCalls {
			rt.Fatalf("expected %d calls, got %d", wantCalls, calls.Load())
		}

		if isSuccess(wantStatus) {
			if err != nil {
				rt.Fatalf("expected success, got %v", err)
			}
			if result == nil {
				rt.Fatal("expected non-nil result")
			}
			return
		}

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			rt.Fatalf("expected *APIError, got %T: %v", err, err)
		}

		if apiErr.StatusCode != wantStatus {
			rt.Fatalf("expected status %d, got %d", wantStatus, apiErr.StatusCode)
		}

		if apiErr.Attempts != wantCalls {
			rt.Fatalf("expected %d attempts recorded, got %d", wantCalls, apiErr.Attempts)
		}

		if apiErr.Response == nil {
			rt.Fatal("expected non-nil error body")
		}
	})
}

func TestParamsListOrderProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		ids := rapid.SliceOf(rapid.Int64()).Draw(rt, "ids")

		values, err := Params{"ids": ids}.Values()
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}

		got := values["ids[]"]
		if len(got) != len(ids) {
			rt.Fatalf("expected %d values, got %d", len(ids), len(got))
		}

		for i, id := range ids {
			if got[i] != strconv.FormatInt(id, 10) {
				rt.Fatalf("value %d: expected %d, got %s", i, id, got[i])
			}
		}
	})
}
