package loxo

import "context"

// API is the set of operations offered by [Client]. Depend on it to substitute
// the client in tests.
type API interface {
	Domain() string
	AgencySlug() string
	BaseURL() string

	Execute(ctx context.Context, req Request) (Result, error)
	Get(ctx context.Context, path string, params Params) (Result, error)
	Post(ctx context.Context, path string, body any) (Result, error)
	PostForm(ctx context.Context, path string, params Params) (Result, error)
	PostMultipart(ctx context.Context, path string, parts []Part) (Result, error)
	Put(ctx context.Context, path string, body any) (Result, error)
	Delete(ctx context.Context, path string) (Result, error)

	GetActivityTypes(ctx context.Context, params Params) (Result, error)
	GetAddressTypes(ctx context.Context, params Params) (Result, error)
	GetBonusPaymentTypes(ctx context.Context, params Params) (Result, error)
	GetBonusTypes(ctx context.Context, params Params) (Result, error)
	GetJobStatuses(ctx context.Context, params Params) (Result, error)
	GetJobTypes(ctx context.Context, params Params) (Result, error)
	GetPersonTypes(ctx context.Context, params Params) (Result, error)
	GetSourceTypes(ctx context.Context, params Params) (Result, error)
	GetUsers(ctx context.Context, params Params) (Result, error)
	GetWorkflows(ctx context.Context, params Params) (Result, error)
	GetWorkflowStages(ctx context.Context, params Params) (Result, error)

	GetCompanies(ctx context.Context, params Params) (Result, error)
	GetCompany(ctx context.Context, companyID int64) (Result, error)
	CreateCompany(ctx context.Context, company map[string]any) (Result, error)
	UpdateCompany(ctx context.Context, companyID int64, company map[string]any) (Result, error)

	GetJobs(ctx context.Context, params Params) (Result, error)
	GetJob(ctx context.Context, jobID int64) (Result, error)
	CreateJob(ctx context.Context, job map[string]any) (Result, error)
	UpdateJob(ctx context.Context, jobID int64, job map[string]any) (Result, error)
	GetJobCandidates(ctx context.Context, jobID int64, params Params) (Result, error)
	ApplyToJob(ctx context.Context, jobID int64, application map[string]any) (Result, error)

	GetPeople(ctx context.Context, params Params) (Result, error)
	GetPerson(ctx context.Context, personID int64) (Result, error)
	CreatePerson(ctx context.Context, person map[string]any) (Result, error)
	UpdatePerson(ctx context.Context, personID int64, person map[string]any) (Result, error)
	GetPersonEducationProfiles(ctx context.Context, personID int64) (Result, error)
	CreatePersonEducationProfile(ctx context.Context, personID int64, profile map[string]any) (Result, error)
	GetPersonEvents(ctx context.Context, params Params) (Result, error)
	CreatePersonEvent(ctx context.Context, event map[string]any) (Result, error)

	GetWebhooks(ctx context.Context) (Result, error)
	GetWebhook(ctx context.Context, webhookID int64) (Result, error)
	CreateWebhook(ctx context.Context, webhook map[string]any) (Result, error)
	UpdateWebhook(ctx context.Context, webhookID int64, webhook map[string]any) (Result, error)
	DeleteWebhook(ctx context.Context, webhookID int64) (Result, error)
}
