package loxo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Request describes one API call. At most one of Query, JSON, Form and Parts
// may be set.
type Request struct {
	Method string
	Path   string
	Query  Params
	JSON   any
	Form   Params
	Parts  []Part
}

// Result is a decoded JSON response. It is never nil: an empty or non-JSON
// body decodes to an empty map, and a top-level array or scalar is stored
// under the "data" key.
type Result map[string]any

type bodyKind int

const (
	bodyNone bodyKind = iota
	bodyJSON
	bodyForm
	bodyMultipart
)

type preparedRequest struct {
	method string
	path   string
	kind   bodyKind
	query  url.Values
	form   url.Values
	body   []byte
	parts  []Part
}

type attemptOutcome int

const (
	outcomeSuccess attemptOutcome = iota
	outcomeRetryable
	outcomeTerminal
)

// attemptResult is the tagged result of a single attempt.
type attemptResult struct {
	outcome attemptOutcome
	result  Result
	status  int
	body    map[string]any
	raw     string
	cause   error
}

// Execute performs req with the configured retry policy.
//
// A 2xx response is decoded and returned. A 4xx response fails immediately.
// Any other status, and any failure to get a response at all, is retried up
// to RetryAttempts attempts in total with a constant RetryDelay between them;
// the method is not taken into account, so POST and PUT requests may be sent
// more than once. Every failure is returned as an *APIError, except malformed
// requests, which return an error wrapping ErrInvalidRequest or
// ErrInvalidArgument before any network call.
//
// Cancelling ctx stops the retry loop and returns an *APIError with status 0.
func (c *Client) Execute(ctx context.Context, req Request) (Result, error) {
	if c == nil {
		return nil, errors.New("loxo client is nil")
	}

	prepared, err := prepare(req)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	attempts := c.config.RetryAttempts()
	delay := c.config.RetryDelay()

	for attempt := 1; attempt <= attempts; attempt++ {
		c.logger.Debugf("loxo: %s %s attempt %d/%d (request_id=%s)", prepared.method, prepared.path, attempt, attempts, requestID)

		res := c.attempt(ctx, prepared, requestID)

		switch res.outcome {
		case outcomeSuccess:
			return res.result, nil

		case outcomeTerminal:
			apiErr := c.terminalError(res, attempt)
			c.logger.Errorf("loxo: %s %s: %s (request_id=%s)", prepared.method, prepared.path, apiErr.Message, requestID)
			return nil, apiErr

		case outcomeRetryable:
			if attempt == attempts {
				apiErr := c.exhaustedError(res, attempt)
				c.logger.Errorf("loxo: %s %s: %s (request_id=%s)", prepared.method, prepared.path, apiErr.Message, requestID)
				return nil, apiErr
			}

			c.logger.Warnf("loxo: %s %s failed (%s), retrying in %s (attempt %d/%d, request_id=%s)",
				prepared.method, prepared.path, c.describe(res), delay, attempt, attempts, requestID)

			if err := c.sleep(ctx, delay); err != nil {
				return nil, c.canceledError(err, attempt)
			}
		}
	}

	// Unreachable: every iteration returns on its last attempt.
	return nil, &APIError{
		Message:  ErrUnexpected.Error(),
		Response: map[string]any{},
		Attempts: attempts,
		Err:      ErrUnexpected,
	}
}

func (c *Client) attempt(ctx context.Context, p *preparedRequest, requestID string) attemptResult {
	r := c.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", requestID)

	if len(p.query) > 0 {
		r.SetQueryParamsFromValues(p.query)
	}

	switch p.kind {
	case bodyMultipart:
		fields, err := multipartFields(p.parts)
		if err != nil {
			return attemptResult{outcome: outcomeTerminal, cause: err}
		}
		r.SetMultipartFields(fields...)
	case bodyForm:
		r.SetFormDataFromValues(p.form)
	case bodyJSON:
		r.SetHeader("Content-Type", "application/json").SetBody(p.body)
	default:
		r.SetHeader("Content-Type", "application/json")
	}

	resp, err := r.Execute(p.method, p.path)

	return c.classify(ctx, resp, err)
}

// classify maps one transport outcome onto the retry state machine.
func (c *Client) classify(ctx context.Context, resp *resty.Response, err error) attemptResult {
	if err != nil {
		if ctx.Err() != nil {
			return attemptResult{outcome: outcomeTerminal, body: map[string]any{}, cause: ctx.Err()}
		}

		res := attemptResult{outcome: outcomeRetryable, body: map[string]any{}, cause: err}
		if !c.config.options.retryPolicy(resp, err) {
			res.outcome = outcomeTerminal
		}
		return res
	}

	raw := resp.Body()
	status := resp.StatusCode()

	if isSuccess(status) {
		return attemptResult{outcome: outcomeSuccess, status: status, result: Result(decodeBody(raw))}
	}

	res := attemptResult{
		outcome: outcomeRetryable,
		status:  status,
		body:    decodeBody(raw),
		raw:     string(raw),
	}

	if isClientError(status) || !c.config.options.retryPolicy(resp, nil) {
		res.outcome = outcomeTerminal
	}

	return res
}

func (c *Client) terminalError(res attemptResult, attempts int) *APIError {
	switch {
	case res.status == 0 && errors.Is(res.cause, ErrInvalidRequest):
		return &APIError{
			Message:  c.config.redact(res.cause.Error()),
			Response: map[string]any{},
			Attempts: attempts,
			Err:      res.cause,
		}
	case res.status == 0 && (errors.Is(res.cause, context.Canceled) || errors.Is(res.cause, context.DeadlineExceeded)):
		return c.canceledError(res.cause, attempts)
	case res.status == 0:
		return &APIError{
			Message:  c.config.redact(fmt.Sprintf("API request failed: %v", res.cause)),
			Response: map[string]any{},
			Attempts: attempts,
			Err:      res.cause,
		}
	}

	return &APIError{
		StatusCode: res.status,
		Message:    c.config.redact(fmt.Sprintf("API request failed with status %d: %s", res.status, errorDetail(res.body, res.raw))),
		Response:   res.body,
		Body:       res.raw,
		Attempts:   attempts,
	}
}

func (c *Client) exhaustedError(res attemptResult, attempts int) *APIError {
	if res.status == 0 {
		return &APIError{
			Message:  c.config.redact(fmt.Sprintf("API request failed after %d attempts: %v", attempts, res.cause)),
			Response: map[string]any{},
			Attempts: attempts,
			Err:      res.cause,
		}
	}

	return &APIError{
		StatusCode: res.status,
		Message: c.config.redact(fmt.Sprintf("API request failed after %d attempts with status %d: %s",
			attempts, res.status, errorDetail(res.body, res.raw))),
		Response: res.body,
		Body:     res.raw,
		Attempts: attempts,
	}
}

func (c *Client) canceledError(err error, attempts int) *APIError {
	return &APIError{
		Message:  fmt.Sprintf("API request canceled: %v", err),
		Response: map[string]any{},
		Attempts: attempts,
		Err:      err,
	}
}

func (c *Client) describe(res attemptResult) string {
	if res.status == 0 {
		return c.config.redact(res.cause.Error())
	}
	return fmt.Sprintf("status %d", res.status)
}

func prepare(req Request) (*preparedRequest, error) {
	method := strings.ToUpper(strings.TrimSpace(req.Method))

	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return nil, fmt.Errorf("%w: unsupported method %q", ErrInvalidRequest, req.Method)
	}

	path := strings.TrimSpace(req.Path)

	if u, err := url.Parse(path); err != nil || u.IsAbs() || u.Host != "" {
		return nil, fmt.Errorf("%w: path %q must be relative to the base URL", ErrInvalidRequest, req.Path)
	}

	p := &preparedRequest{method: method, path: path}

	payloads := 0

	if req.Query != nil {
		payloads++
		values, err := req.Query.Values()
		if err != nil {
			return nil, err
		}
		p.query = values
	}

	if req.JSON != nil {
		payloads++
		body, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, fmt.Errorf("%w: encoding JSON body: %w", ErrInvalidArgument, err)
		}
		p.kind = bodyJSON
		p.body = body
	}

	if req.Form != nil {
		payloads++
		values, err := req.Form.Values()
		if err != nil {
			return nil, err
		}
		p.kind = bodyForm
		p.form = values
	}

	if req.Parts != nil {
		payloads++
		if _, err := multipartFields(req.Parts); err != nil {
			return nil, err
		}
		p.kind = bodyMultipart
		p.parts = req.Parts
	}

	if payloads > 1 {
		return nil, fmt.Errorf("%w: only one of query, JSON, form or multipart may be set", ErrInvalidRequest)
	}

	return p, nil
}

func decodeBody(raw []byte) map[string]any {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return map[string]any{}
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return map[string]any{}
	}

	switch t := v.(type) {
	case map[string]any:
		return t
	case nil:
		return map[string]any{}
	default:
		return map[string]any{"data": t}
	}
}
