package loxo

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"
)

func TestResources(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	params := Params{"per_page": 10}
	payload := map[string]any{"x": "y"}

	tests := []struct {
		name      string
		call      func(c *Client) (Result, error)
		method    string
		path      string
		wantQuery string
		wantBody  bool
	}{
		{"GetActivityTypes", func(c *Client) (Result, error) { return c.GetActivityTypes(ctx, params) }, http.MethodGet, "activity_types", "per_page=10", false},
		{"GetAddressTypes", func(c *Client) (Result, error) { return c.GetAddressTypes(ctx, nil) }, http.MethodGet, "address_types", "", false},
		{"GetBonusPaymentTypes", func(c *Client) (Result, error) { return c.GetBonusPaymentTypes(ctx, nil) }, http.MethodGet, "bonus_payment_types", "", false},
		{"GetBonusTypes", func(c *Client) (Result, error) { return c.GetBonusTypes(ctx, nil) }, http.MethodGet, "bonus_types", "", false},
		{"GetJobStatuses", func(c *Client) (Result, error) { return c.GetJobStatuses(ctx, nil) }, http.MethodGet, "job_statuses", "", false},
		{"GetJobTypes", func(c *Client) (Result, error) { return c.GetJobTypes(ctx, nil) }, http.MethodGet, "job_types", "", false},
		{"GetPersonTypes", func(c *Client) (Result, error) { return c.GetPersonTypes(ctx, nil) }, http.MethodGet, "person_types", "", false},
		{"GetSourceTypes", func(c *Client) (Result, error) { return c.GetSourceTypes(ctx, nil) }, http.MethodGet, "source_types", "", false},
		{"GetUsers", func(c *Client) (Result, error) { return c.GetUsers(ctx, params) }, http.MethodGet, "users", "per_page=10", false},
		{"GetWorkflows", func(c *Client) (Result, error) { return c.GetWorkflows(ctx, nil) }, http.MethodGet, "workflows", "", false},
		{"GetWorkflowStages", func(c *Client) (Result, error) { return c.GetWorkflowStages(ctx, nil) }, http.MethodGet, "workflow_stages", "", false},
		{"GetCompanies", func(c *Client) (Result, error) { return c.GetCompanies(ctx, params) }, http.MethodGet, "companies", "per_page=10", false},
		{"GetCompany", func(c *Client) (Result, error) { return c.GetCompany(ctx, 11) }, http.MethodGet, "companies/11", "", false},
		{"CreateCompany", func(c *Client) (Result, error) { return c.CreateCompany(ctx, payload) }, http.MethodPost, "companies", "", true},
		{"UpdateCompany", func(c *Client) (Result, error) { return c.UpdateCompany(ctx, 11, payload) }, http.MethodPut, "companies/11", "", true},
		{"GetJobs", func(c *Client) (Result, error) { return c.GetJobs(ctx, params) }, http.MethodGet, "jobs", "per_page=10", false},
		{"GetJob", func(c *Client) (Result, error) { return c.GetJob(ctx, 22) }, http.MethodGet, "jobs/22", "", false},
		{"CreateJob", func(c *Client) (Result, error) { return c.CreateJob(ctx, payload) }, http.MethodPost, "jobs", "", true},
		{"UpdateJob", func(c *Client) (Result, error) { return c.UpdateJob(ctx, 22, payload) }, http.MethodPut, "jobs/22", "", true},
		{"GetJobCandidates", func(c *Client) (Result, error) { return c.GetJobCandidates(ctx, 22, params) }, http.MethodGet, "jobs/22/candidates", "per_page=10", false},
		{"GetPeople", func(c *Client) (Result, error) { return c.GetPeople(ctx, params) }, http.MethodGet, "people", "per_page=10", false},
		{"GetPerson", func(c *Client) (Result, error) { return c.GetPerson(ctx, 33) }, http.MethodGet, "people/33", "", false},
		{"CreatePerson", func(c *Client) (Result, error) { return c.CreatePerson(ctx, payload) }, http.MethodPost, "people", "", true},
		{"UpdatePerson", func(c *Client) (Result, error) { return c.UpdatePerson(ctx, 33, payload) }, http.MethodPut, "people/33", "", true},
		{"GetPersonEducationProfiles", func(c *Client) (Result, error) { return c.GetPersonEducationProfiles(ctx, 33) }, http.MethodGet, "people/33/education_profiles", "", false},
		{"CreatePersonEducationProfile", func(c *Client) (Result, error) { return c.CreatePersonEducationProfile(ctx, 33, payload) }, http.MethodPost, "people/33/education_profiles", "", true},
		{"GetPersonEvents", func(c *Client) (Result, error) { return c.GetPersonEvents(ctx, params) }, http.MethodGet, "person_events", "per_page=10", false},
		{"CreatePersonEvent", func(c *Client) (Result, error) { return c.CreatePersonEvent(ctx, payload) }, http.MethodPost, "person_events", "", true},
		{"GetWebhooks", func(c *Client) (Result, error) { return c.GetWebhooks(ctx) }, http.MethodGet, "webhooks", "", false},
		{"GetWebhook", func(c *Client) (Result, error) { return c.GetWebhook(ctx, 44) }, http.MethodGet, "webhooks/44", "", false},
		{"CreateWebhook", func(c *Client) (Result, error) { return c.CreateWebhook(ctx, payload) }, http.MethodPost, "webhooks", "", true},
		{"UpdateWebhook", func(c *Client) (Result, error) { return c.UpdateWebhook(ctx, 44, payload) }, http.MethodPut, "webhooks/44", "", true},
		{"DeleteWebhook", func(c *Client) (Result, error) { return c.DeleteWebhook(ctx, 44) }, http.MethodDelete, "webhooks/44", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != tt.method {
					t.Errorf("expected %s, got %s", tt.method, r.Method)
				}

				if r.URL.Path != "/api/test-agency/"+tt.path {
					t.Errorf("expected path %s, got %s", tt.path, r.URL.Path)
				}

				if r.URL.RawQuery != tt.wantQuery {
					t.Errorf("expected query %q, got %q", tt.wantQuery, r.URL.RawQuery)
				}

				raw, _ := io.ReadAll(r.Body)
				if tt.wantBody {
					var body map[string]any
					if err := json.Unmarshal(raw, &body); err != nil || !reflect.DeepEqual(body, payload) {
						t.Errorf("expected body %v, got %s", payload, raw)
					}
				} else if len(raw) != 0 {
					t.Errorf("expected no body, got %s", raw)
				}

				_, _ = w.Write([]byte(`{"id": 1}`))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)

			result, err := tt.call(client)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result["id"] != float64(1) {
				t.Errorf("unexpected result %v", result)
			}
		})
	}
}

func TestApplyToJob(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/test-agency/jobs/5/apply" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("failed to parse multipart form: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.FormValue("name") != "Ada Lovelace" || r.FormValue("email") != "ada@example.com" {
			t.Errorf("unexpected fields %v", r.MultipartForm.Value)
		}

		if got := r.MultipartForm.Value["tags[]"]; !reflect.DeepEqual(got, []string{"go", "rust"}) {
			t.Errorf("unexpected tags %v", got)
		}

		file, header, err := r.FormFile("resume")
		if err != nil {
			t.Errorf("missing resume: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()

		content, _ := io.ReadAll(file)
		if header.Filename != "resume.pdf" || string(content) != "%PDF-1.7" {
			t.Errorf("unexpected resume %s: %q", header.Filename, content)
		}

		_, _ = w.Write([]byte(`{"person": {"id": 99}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	result, err := client.ApplyToJob(context.Background(), 5, map[string]any{
		"name":   "Ada Lovelace",
		"email":  "ada@example.com",
		"tags":   []string{"go", "rust"},
		"resume": []byte("%PDF-1.7"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result["person"].(map[string]any)["id"] != float64(99) {
		t.Errorf("unexpected result %v", result)
	}
}

func TestApplyToJob_InvalidResumeSendsNothing(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.ApplyToJob(context.Background(), 5, map[string]any{"name": "Ada", "resume": "/no/such/file.pdf"})

	if err == nil || err.Error() != "invalid argument: resume must be a file reader, bytes or a valid file path" {
		t.Errorf("unexpected error: %v", err)
	}

	if calls.Load() != 0 {
		t.Errorf("expected no request, got %d", calls.Load())
	}
}
