package loxo

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client is a Loxo API client. It is safe for concurrent use; every call
// carries its own retry state and the configuration never changes.
type Client struct {
	config *Config
	client *resty.Client
	logger RequestLogger
	sleep  func(ctx context.Context, d time.Duration) error
}

var _ API = (*Client)(nil)

// New validates the settings and returns a ready client. See [NewConfig].
func New(domain, agencySlug, apiKey string, opts ...Option) (*Client, error) {
	cfg, err := NewConfig(domain, agencySlug, apiKey, opts...)
	if err != nil {
		return nil, err
	}

	return NewWithConfig(cfg)
}

// NewFromProvider reads the settings from p. See [NewConfigFromProvider].
func NewFromProvider(p ConfigProvider, opts ...Option) (*Client, error) {
	cfg, err := NewConfigFromProvider(p, opts...)
	if err != nil {
		return nil, err
	}

	return NewWithConfig(cfg)
}

// NewWithConfig returns a client for an already validated configuration.
func NewWithConfig(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config must not be nil")
	}

	o := cfg.options

	rc := resty.New().
		SetBaseURL(cfg.baseURL).
		SetTimeout(o.timeout).
		SetHeader("Accept", "application/json").
		SetHeaders(o.requestHeaders).
		SetAuthToken(cfg.apiKey).
		SetLogger(o.requestLogger).
		SetRetryCount(0).
		SetDisableWarn(true)

	if o.transport != nil {
		rc.SetTransport(o.transport)
	}

	return &Client{
		config: cfg,
		client: rc,
		logger: o.requestLogger,
		sleep:  sleepContext,
	}, nil
}

// Config returns the configuration the client was built with.
func (c *Client) Config() *Config {
	return c.config
}

func (c *Client) Domain() string {
	return c.config.Domain()
}

func (c *Client) AgencySlug() string {
	return c.config.AgencySlug()
}

func (c *Client) BaseURL() string {
	return c.config.BaseURL()
}

// Get sends params as the query string.
func (c *Client) Get(ctx context.Context, path string, params Params) (Result, error) {
	return c.Execute(ctx, Request{Method: http.MethodGet, Path: path, Query: params})
}

// Post sends body as JSON.
func (c *Client) Post(ctx context.Context, path string, body any) (Result, error) {
	return c.Execute(ctx, Request{Method: http.MethodPost, Path: path, JSON: body})
}

// PostForm sends params as an application/x-www-form-urlencoded body.
func (c *Client) PostForm(ctx context.Context, path string, params Params) (Result, error) {
	return c.Execute(ctx, Request{Method: http.MethodPost, Path: path, Form: params})
}

// PostMultipart sends parts as a multipart/form-data body.
func (c *Client) PostMultipart(ctx context.Context, path string, parts []Part) (Result, error) {
	return c.Execute(ctx, Request{Method: http.MethodPost, Path: path, Parts: parts})
}

// Put sends body as JSON.
func (c *Client) Put(ctx context.Context, path string, body any) (Result, error) {
	return c.Execute(ctx, Request{Method: http.MethodPut, Path: path, JSON: body})
}

func (c *Client) Delete(ctx context.Context, path string) (Result, error) {
	return c.Execute(ctx, Request{Method: http.MethodDelete, Path: path})
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
