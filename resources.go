package loxo

import (
	"context"
	"fmt"
)

// GetActivityTypes lists activity types. Supported params: workflow_id, show_hidden.
func (c *Client) GetActivityTypes(ctx context.Context, params Params) (Result, error) {
	return c.Get(ctx, "activity_types", params)
}

func (c *Client) GetAddressTypes(ctx context.Context, params Params) (Result, error) {
	return c.Get(ctx, "address_types", params)
}

func (c *Client) GetBonusPaymentTypes(ctx context.Context, params Params) (Result, error) {
	return c.Get(ctx, "bonus_payment_types", params)
}

func (c *Client) GetBonusTypes(ctx context.Context, params Params) (Result, error) {
	return c.Get(ctx, "bonus_types", params)
}

func (c *Client) GetJobStatuses(ctx context.Context, params Params) (Result, error) {
	return c.Get(ctx, "job_statuses", params)
}

func (c *Client) GetJobTypes(ctx context.Context, params Params) (Result, error) {
	return c.Get(ctx, "job_types", params)
}

func (c *Client) GetPersonTypes(ctx context.Context, params Params) (Result, error) {
	return c.Get(ctx, "person_types", params)
}

func (c *Client) GetSourceTypes(ctx context.Context, params Params) (Result, error) {
	return c.Get(ctx, "source_types", params)
}

func (c *Client) GetUsers(ctx context.Context, params Params) (Result, error) {
	return c.Get(ctx, "users", params)
}

func (c *Client) GetWorkflows(ctx context.Context, params Params) (Result, error) {
	return c.Get(ctx, "workflows", params)
}

func (c *Client) GetWorkflowStages(ctx context.Context, params Params) (Result, error) {
	return c.Get(ctx, "workflow_stages", params)
}

// GetCompanies searches companies. Supported params include scroll_id, query
// (Lucene syntax), company_type_id, list_id and company_global_status_id.
func (c *Client) GetCompanies(ctx context.Context, params Params) (Result, error) {
	return c.Get(ctx, "companies", params)
}

func (c *Client) GetCompany(ctx context.Context, companyID int64) (Result, error) {
	return c.Get(ctx, fmt.Sprintf("companies/%d", companyID), nil)
}

// CreateCompany creates a company. company is sent as the JSON body, usually
// as {"company": {"name": ..., "url": ...}}.
func (c *Client) CreateCompany(ctx context.Context, company map[string]any) (Result, error) {
	return c.Post(ctx, "companies", company)
}

func (c *Client) UpdateCompany(ctx context.Context, companyID int64, company map[string]any) (Result, error) {
	return c.Put(ctx, fmt.Sprintf("companies/%d", companyID), company)
}

// GetJobs searches jobs. Supported params include per_page, page, query,
// published, job_status_ids, job_category_ids and owned_by_ids.
func (c *Client) GetJobs(ctx context.Context, params Params) (Result, error) {
	return c.Get(ctx, "jobs", params)
}

func (c *Client) GetJob(ctx context.Context, jobID int64) (Result, error) {
	return c.Get(ctx, fmt.Sprintf("jobs/%d", jobID), nil)
}

func (c *Client) CreateJob(ctx context.Context, job map[string]any) (Result, error) {
	return c.Post(ctx, "jobs", job)
}

func (c *Client) UpdateJob(ctx context.Context, jobID int64, job map[string]any) (Result, error) {
	return c.Put(ctx, fmt.Sprintf("jobs/%d", jobID), job)
}

func (c *Client) GetJobCandidates(ctx context.Context, jobID int64, params Params) (Result, error) {
	return c.Get(ctx, fmt.Sprintf("jobs/%d/candidates", jobID), params)
}

// ApplyToJob submits a candidate application as multipart/form-data. See
// [ApplicationParts] for how application is encoded; an unusable resume is
// rejected before any request is sent.
func (c *Client) ApplyToJob(ctx context.Context, jobID int64, application map[string]any) (Result, error) {
	parts, err := ApplicationParts(application)
	if err != nil {
		return nil, err
	}

	return c.PostMultipart(ctx, fmt.Sprintf("jobs/%d/apply", jobID), parts)
}

// GetPeople searches people (candidates). Supported params include scroll_id,
// per_page, query, include_ids, exclude_ids and list_id.
func (c *Client) GetPeople(ctx context.Context, params Params) (Result, error) {
	return c.Get(ctx, "people", params)
}

func (c *Client) GetPerson(ctx context.Context, personID int64) (Result, error) {
	return c.Get(ctx, fmt.Sprintf("people/%d", personID), nil)
}

func (c *Client) CreatePerson(ctx context.Context, person map[string]any) (Result, error) {
	return c.Post(ctx, "people", person)
}

func (c *Client) UpdatePerson(ctx context.Context, personID int64, person map[string]any) (Result, error) {
	return c.Put(ctx, fmt.Sprintf("people/%d", personID), person)
}

func (c *Client) GetPersonEducationProfiles(ctx context.Context, personID int64) (Result, error) {
	return c.Get(ctx, fmt.Sprintf("people/%d/education_profiles", personID), nil)
}

func (c *Client) CreatePersonEducationProfile(ctx context.Context, personID int64, profile map[string]any) (Result, error) {
	return c.Post(ctx, fmt.Sprintf("people/%d/education_profiles", personID), profile)
}

func (c *Client) GetPersonEvents(ctx context.Context, params Params) (Result, error) {
	return c.Get(ctx, "person_events", params)
}

func (c *Client) CreatePersonEvent(ctx context.Context, event map[string]any) (Result, error) {
	return c.Post(ctx, "person_events", event)
}

func (c *Client) GetWebhooks(ctx context.Context) (Result, error) {
	return c.Get(ctx, "webhooks", nil)
}

func (c *Client) GetWebhook(ctx context.Context, webhookID int64) (Result, error) {
	return c.Get(ctx, fmt.Sprintf("webhooks/%d", webhookID), nil)
}

func (c *Client) CreateWebhook(ctx context.Context, webhook map[string]any) (Result, error) {
	return c.Post(ctx, "webhooks", webhook)
}

func (c *Client) UpdateWebhook(ctx context.Context, webhookID int64, webhook map[string]any) (Result, error) {
	return c.Put(ctx, fmt.Sprintf("webhooks/%d", webhookID), webhook)
}

func (c *Client) DeleteWebhook(ctx context.Context, webhookID int64) (Result, error) {
	return c.Delete(ctx, fmt.Sprintf("webhooks/%d", webhookID))
}
