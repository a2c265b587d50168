// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"crateaudit-cli/internal/audit"
	"crateaudit-cli/internal/registry"
)

var (
	// ErrInvalidBaseURL is returned when registry.base_url is not an absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("invalid registry base URL")
	// ErrInvalidUserAgent is returned when registry.user_agent is whitespace-only.
	ErrInvalidUserAgent = errors.New("invalid registry user agent")
	// ErrInvalidDuration is returned when a duration field does not parse.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrInvalidCrateName is returned when the crates list contains an empty entry.
	ErrInvalidCrateName = errors.New("invalid crate name")
)

type (
	// Config is the full application configuration.
	Config struct {
		Registry RegistryConfig `mapstructure:"registry"`
		// Pacing is the delay between successive registry lookups,
		// as a Go duration string (e.g. "100ms").
		Pacing string `mapstructure:"pacing"`
		// Crates overrides the built-in audit list when non-empty.
		Crates []string `mapstructure:"crates"`
		UI     UIConfig `mapstructure:"ui"`
	}

	// RegistryConfig configures the crates.io API client.
	RegistryConfig struct {
		BaseURL   string `mapstructure:"base_url"`
		UserAgent string `mapstructure:"user_agent"`
		// Timeout bounds a single lookup, as a Go duration string.
		Timeout string `mapstructure:"timeout"`
	}

	// UIConfig holds user interface settings.
	UIConfig struct {
		Verbose bool `mapstructure:"verbose"`
	}
)

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Registry: RegistryConfig{
			BaseURL:   registry.DefaultBaseURL,
			UserAgent: registry.DefaultUserAgent,
			Timeout:   registry.DefaultTimeout.String(),
		},
		Pacing: audit.DefaultPacing.String(),
		UI: UIConfig{
			Verbose: false,
		},
	}
}

// Validate checks constraints the CUE schema cannot express: URL shape,
// duration syntax, and non-empty crate names.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Registry.BaseURL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("registry.base_url %q: %w", c.Registry.BaseURL, ErrInvalidBaseURL)
	}

	if strings.TrimSpace(c.Registry.UserAgent) == "" {
		return fmt.Errorf("registry.user_agent: %w", ErrInvalidUserAgent)
	}

	if _, err := time.ParseDuration(c.Registry.Timeout); err != nil {
		return fmt.Errorf("registry.timeout %q: %w", c.Registry.Timeout, ErrInvalidDuration)
	}

	if _, err := time.ParseDuration(c.Pacing); err != nil {
		return fmt.Errorf("pacing %q: %w", c.Pacing, ErrInvalidDuration)
	}

	for i, name := range c.Crates {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("crates[%d]: %w", i, ErrInvalidCrateName)
		}
	}

	return nil
}

// PacingInterval returns the parsed pacing duration.
// Call Validate first; an unparsable value falls back to the default.
func (c *Config) PacingInterval() time.Duration {
	d, err := time.ParseDuration(c.Pacing)
	if err != nil {
		return audit.DefaultPacing
	}
	return d
}

// RequestTimeout returns the parsed registry timeout.
// Call Validate first; an unparsable value falls back to the default.
func (c *Config) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.Registry.Timeout)
	if err != nil {
		return registry.DefaultTimeout
	}
	return d
}

// CrateList returns the crates to audit: the configured override when set,
// otherwise the built-in default list.
func (c *Config) CrateList() []string {
	if len(c.Crates) > 0 {
		return append([]string(nil), c.Crates...)
	}
	return audit.DefaultCrates()
}
