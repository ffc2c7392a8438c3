package config

import (
	"os"
	"time"
)

const envPrefix = "BLOGCTL_"

// parseEnv applies environment overrides with the BLOGCTL_ prefix. Empty
// variables are ignored; a malformed duration is ignored too and the previous
// value stands.
func parseEnv(cfg *Config) {
	get := func(key string) string { return os.Getenv(envPrefix + key) }

	if value := get("API_BASE_URL"); value != "" {
		cfg.APIBaseURL = value
	}
	if value := get("UPLOAD_BASE_URL"); value != "" {
		cfg.UploadBaseURL = value
	}
	if value := get("SECRET_KEY"); value != "" {
		cfg.SecretKey = value
	}
	if value := get("TOKEN_KEY"); value != "" {
		cfg.TokenKey = value
	}
	if value := get("USER_KEY"); value != "" {
		cfg.UserKey = value
	}
	if value := get("REFRESH_TOKEN_KEY"); value != "" {
		cfg.RefreshTokenKey = value
	}
	if value := get("STORE_PATH"); value != "" {
		cfg.StorePath = value
	}
	if value := get("REQUEST_TIMEOUT"); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
