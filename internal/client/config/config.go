package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds runtime settings for the blogctl CLI.
//
// TokenKey, UserKey and RefreshTokenKey are the names of the entries in the
// local store; SecretKey is the passphrase their values are encrypted with.
type Config struct {
	APIBaseURL      string
	UploadBaseURL   string
	SecretKey       string
	TokenKey        string
	UserKey         string
	RefreshTokenKey string
	StorePath       string
	RequestTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults. SecretKey is deliberately
// left empty so an unconfigured install fails validation instead of
// encrypting credentials with a well-known key.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api/v1"
	c.UploadBaseURL = "http://localhost:8080"
	c.TokenKey = "auth_token"
	c.UserKey = "auth_user"
	c.RefreshTokenKey = "auth_refresh_token"
	c.StorePath = "blogctl.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment and command-line flags. Later sources take
// precedence over earlier ones. The result is validated before it is returned.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field a running client depends on and names the first
// offending one.
func (c *Config) Validate() error {
	if err := checkBaseURL("api base url", c.APIBaseURL); err != nil {
		return err
	}
	if err := checkBaseURL("upload base url", c.UploadBaseURL); err != nil {
		return err
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret key is not set (BLOGCTL_SECRET_KEY)")
	}
	if c.TokenKey == "" {
		return fmt.Errorf("token key name is empty")
	}
	if c.UserKey == "" {
		return fmt.Errorf("user key name is empty")
	}
	if c.RefreshTokenKey == "" {
		return fmt.Errorf("refresh token key name is empty")
	}
	if c.StorePath == "" {
		return fmt.Errorf("store path is empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	return nil
}

func checkBaseURL(name, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is not set", name)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s %q is malformed: %w", name, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s %q must use http or https", name, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s %q has no host", name, raw)
	}
	return nil
}
