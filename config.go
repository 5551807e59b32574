package loxo

import (
	"fmt"
	"strings"
	"time"
)

// Config is the validated client configuration. It can only be obtained from
// [NewConfig] or [NewConfigFromProvider] and never changes afterwards.
type Config struct {
	domain     string
	agencySlug string
	apiKey     string
	baseURL    string
	options    *Options
}

// NewConfig validates the required settings and applies opts on top of the
// defaults. A missing setting yields a *ConfigurationError naming it; invalid
// options yield an error wrapping ErrInvalidOptions.
func NewConfig(domain, agencySlug, apiKey string, opts ...Option) (*Config, error) {
	domain = strings.TrimSpace(domain)
	agencySlug = strings.TrimSpace(agencySlug)
	apiKey = strings.TrimSpace(apiKey)

	if domain == "" {
		return nil, missingField(FieldDomain)
	}

	if agencySlug == "" {
		return nil, missingField(FieldAgencySlug)
	}

	if apiKey == "" {
		return nil, missingField(FieldAPIKey)
	}

	options := newClientOptions()

	for _, o := range opts {
		o(options)
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return &Config{
		domain:     domain,
		agencySlug: agencySlug,
		apiKey:     apiKey,
		baseURL:    ResolveBaseURL(options.baseURLTemplate, domain, agencySlug),
		options:    options,
	}, nil
}

// ResolveBaseURL substitutes the {domain} and {agency_slug} tokens in template.
// No other placeholders are recognised.
func ResolveBaseURL(template, domain, agencySlug string) string {
	return strings.NewReplacer("{domain}", domain, "{agency_slug}", agencySlug).Replace(template)
}

func (c *Config) Domain() string {
	return c.domain
}

func (c *Config) AgencySlug() string {
	return c.agencySlug
}

// BaseURL returns the resolved base address all endpoint paths are relative to.
func (c *Config) BaseURL() string {
	return c.baseURL
}

func (c *Config) Timeout() time.Duration {
	return c.options.timeout
}

// RetryAttempts returns the total number of attempts per call.
func (c *Config) RetryAttempts() int {
	return c.options.retryAttempts
}

func (c *Config) RetryDelay() time.Duration {
	return c.options.retryDelay
}

// String renders the configuration with the API key masked.
func (c *Config) String() string {
	return fmt.Sprintf("domain=%s agency_slug=%s api_key=%s base_url=%s timeout=%s retry_attempts=%d retry_delay=%s",
		c.domain, c.agencySlug, MaskSecret(c.apiKey), c.baseURL, c.options.timeout, c.options.retryAttempts, c.options.retryDelay)
}

// MaskSecret shows the first 4 characters of s followed by "****".
func MaskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}

// redact removes every occurrence of the API key from msg.
func (c *Config) redact(msg string) string {
	if c.apiKey == "" {
		return msg
	}
	return strings.ReplaceAll(msg, c.apiKey, MaskSecret(c.apiKey))
}
