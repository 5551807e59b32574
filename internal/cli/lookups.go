package cli

import (
	"context"
	"sort"

	loxo "github.com/peteraglen/loxo-go-client"
)

type lookupFunc func(ctx context.Context, c loxo.API) (loxo.Result, error)

// lookups are the read-only reference lists of an agency, keyed by endpoint.
var lookups = map[string]lookupFunc{
	"activity_types": func(ctx context.Context, c loxo.API) (loxo.Result, error) {
		return c.GetActivityTypes(ctx, nil)
	},
	"address_types": func(ctx context.Context, c loxo.API) (loxo.Result, error) {
		return c.GetAddressTypes(ctx, nil)
	},
	"bonus_payment_types": func(ctx context.Context, c loxo.API) (loxo.Result, error) {
		return c.GetBonusPaymentTypes(ctx, nil)
	},
	"bonus_types": func(ctx context.Context, c loxo.API) (loxo.Result, error) {
		return c.GetBonusTypes(ctx, nil)
	},
	"job_statuses": func(ctx context.Context, c loxo.API) (loxo.Result, error) {
		return c.GetJobStatuses(ctx, nil)
	},
	"job_types": func(ctx context.Context, c loxo.API) (loxo.Result, error) {
		return c.GetJobTypes(ctx, nil)
	},
	"person_types": func(ctx context.Context, c loxo.API) (loxo.Result, error) {
		return c.GetPersonTypes(ctx, nil)
	},
	"source_types": func(ctx context.Context, c loxo.API) (loxo.Result, error) {
		return c.GetSourceTypes(ctx, nil)
	},
	"users": func(ctx context.Context, c loxo.API) (loxo.Result, error) {
		return c.GetUsers(ctx, nil)
	},
	"workflows": func(ctx context.Context, c loxo.API) (loxo.Result, error) {
		return c.GetWorkflows(ctx, nil)
	},
	"workflow_stages": func(ctx context.Context, c loxo.API) (loxo.Result, error) {
		return c.GetWorkflowStages(ctx, nil)
	},
}

func lookupNames() []string {
	names := make([]string, 0, len(lookups))
	for name := range lookups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
