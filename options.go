package loxo

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURLTemplate is the base address used when no template is configured.
// The {domain} and {agency_slug} tokens are the only placeholders recognised.
const DefaultBaseURLTemplate = "https://{domain}/api/{agency_slug}"

const (
	maxRetryAttempts = 100
	maxRetryDelay    = time.Minute
	maxTimeout       = 5 * time.Minute
)

type Option func(*Options)

type Options struct {
	timeout         time.Duration
	retryAttempts   int
	retryDelay      time.Duration
	baseURLTemplate string
	requestLogger   RequestLogger
	retryPolicy     func(*resty.Response, error) bool
	requestHeaders  map[string]string
	transport       http.RoundTripper
}

func newClientOptions() *Options {
	return &Options{
		timeout:         30 * time.Second,
		retryAttempts:   3,
		retryDelay:      time.Second,
		baseURLTemplate: DefaultBaseURLTemplate,
		requestLogger:   &NoopLogger{},
		retryPolicy:     DefaultRetryPolicy,
		requestHeaders:  map[string]string{},
	}
}

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithRetryAttempts sets the total number of attempts per call, including the first one.
func WithRetryAttempts(attempts int) Option {
	return func(o *Options) {
		if attempts >= 1 {
			o.retryAttempts = attempts
		}
	}
}

// WithRetryDelay sets the constant delay between attempts. Zero disables the delay.
func WithRetryDelay(delay time.Duration) Option {
	return func(o *Options) {
		if delay >= 0 {
			o.retryDelay = delay
		}
	}
}

// WithBaseURLTemplate overrides [DefaultBaseURLTemplate].
func WithBaseURLTemplate(template string) Option {
	return func(o *Options) {
		template = strings.TrimSpace(template)
		if template != "" {
			o.baseURLTemplate = template
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithRetryPolicy decides which server and transport failures are retried.
// Client errors (4xx) are never retried, whatever the policy returns.
func WithRetryPolicy(policy func(*resty.Response, error) bool) Option {
	return func(o *Options) {
		if policy != nil {
			o.retryPolicy = policy
		}
	}
}

// WithRequestHeader adds a header to every request. Accept, Content-Type and
// Authorization are managed by the client and cannot be overridden.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || isProtectedHeader(header) {
			return
		}

		o.requestHeaders[header] = value
	}
}

// WithTransport replaces the HTTP transport used by the underlying resty client.
func WithTransport(transport http.RoundTripper) Option {
	return func(o *Options) {
		if transport != nil {
			o.transport = transport
		}
	}
}

func (o *Options) Validate() error {
	if o.retryAttempts < 1 {
		return errors.New("retryAttempts must be at least 1")
	}

	if o.retryAttempts > maxRetryAttempts {
		return fmt.Errorf("retryAttempts must not exceed %d", maxRetryAttempts)
	}

	if o.retryDelay < 0 {
		return errors.New("retryDelay must be non-negative")
	}

	if o.retryDelay > maxRetryDelay {
		return fmt.Errorf("retryDelay must not exceed %s", maxRetryDelay)
	}

	if o.timeout <= 0 {
		return errors.New("timeout must be positive")
	}

	if o.timeout > maxTimeout {
		return fmt.Errorf("timeout must not exceed %s", maxTimeout)
	}

	if strings.TrimSpace(o.baseURLTemplate) == "" {
		return errors.New("baseURLTemplate must not be empty")
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	if o.retryPolicy == nil {
		return errors.New("retryPolicy must not be nil")
	}

	return nil
}

func isProtectedHeader(header string) bool {
	return strings.EqualFold(header, "Content-Type") ||
		strings.EqualFold(header, "Accept") ||
		strings.EqualFold(header, "Authorization")
}
