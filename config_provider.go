package loxo

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Configuration keys read by [NewConfigFromProvider].
const (
	KeyDomain        = "domain"
	KeyAgencySlug    = "agency_slug"
	KeyAPIKey        = "api_key"
	KeyTimeout       = "timeout"
	KeyRetryAttempts = "retry_attempts"
	KeyRetryDelay    = "retry_delay"
	KeyBaseURL       = "base_url"
)

// ConfigProvider is a key-value source of settings. *viper.Viper satisfies it.
type ConfigProvider interface {
	GetString(key string) string
}

// MapProvider is a [ConfigProvider] backed by a plain map.
type MapProvider map[string]string

func (m MapProvider) GetString(key string) string {
	return m[key]
}

// NewConfigFromProvider reads the Key* settings from p and builds a [Config].
// timeout is in seconds and retry_delay in milliseconds unless given as a Go
// duration ("45s", "250ms"). Empty optional keys keep their defaults. opts are
// applied after the provider values and win over them.
func NewConfigFromProvider(p ConfigProvider, opts ...Option) (*Config, error) {
	var fromProvider []Option

	if v := strings.TrimSpace(p.GetString(KeyTimeout)); v != "" {
		d, err := parseDuration(v, time.Second)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", KeyTimeout, v, err)
		}
		fromProvider = append(fromProvider, WithTimeout(d))
	}

	if v := strings.TrimSpace(p.GetString(KeyRetryAttempts)); v != "" {
		n, err := cast.ToIntE(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", KeyRetryAttempts, v, err)
		}
		fromProvider = append(fromProvider, WithRetryAttempts(n))
	}

	if v := strings.TrimSpace(p.GetString(KeyRetryDelay)); v != "" {
		d, err := parseDuration(v, time.Millisecond)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", KeyRetryDelay, v, err)
		}
		fromProvider = append(fromProvider, WithRetryDelay(d))
	}

	if v := p.GetString(KeyBaseURL); v != "" {
		fromProvider = append(fromProvider, WithBaseURLTemplate(v))
	}

	return NewConfig(
		p.GetString(KeyDomain),
		p.GetString(KeyAgencySlug),
		p.GetString(KeyAPIKey),
		append(fromProvider, opts...)...,
	)
}

// parseDuration accepts a bare integer, interpreted in unit, or a Go duration string.
func parseDuration(v string, unit time.Duration) (time.Duration, error) {
	if n, err := cast.ToInt64E(v); err == nil {
		return time.Duration(n) * unit, nil
	}
	return time.ParseDuration(v)
}
