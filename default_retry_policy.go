package loxo

import (
	"github.com/go-resty/resty/v2"
)

// DefaultRetryPolicy is the default retry condition used by [Client]. It is
// consulted only for failed attempts that are not client errors, and retries
// all of them: transport failures (no response, including timeouts) and any
// status outside 2xx and 4xx. The HTTP method is not considered, so POST and
// PUT are retried like GET.
//
// Supply a custom function via [WithRetryPolicy] to narrow this behaviour.
func DefaultRetryPolicy(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}

	if r == nil {
		return true
	}

	status := r.StatusCode()

	return !isSuccess(status) && !isClientError(status)
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func isClientError(status int) bool {
	return status >= 400 && status < 500
}
