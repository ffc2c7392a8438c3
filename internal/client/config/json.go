package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mbs-dev/blogctl/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout is
// given in seconds; values are copied into the runtime Config afterwards.
type JsonConfig struct {
	APIBaseURL         string `json:"api_base_url"`
	UploadBaseURL      string `json:"upload_base_url"`
	SecretKey          string `json:"secret_key"`
	TokenKey           string `json:"token_key"`
	UserKey            string `json:"user_key"`
	RefreshTokenKey    string `json:"refresh_token_key"`
	StorePath          string `json:"store_path"`
	RequestTimeoutSecs int    `json:"request_timeout_seconds"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flag. Empty JSON fields leave the current value in place,
// so a partial file only overrides what it names. Panics on read or unmarshal
// errors; an unreadable config file is not something to continue past.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.UploadBaseURL != "" {
		cfg.UploadBaseURL = jc.UploadBaseURL
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.TokenKey != "" {
		cfg.TokenKey = jc.TokenKey
	}
	if jc.UserKey != "" {
		cfg.UserKey = jc.UserKey
	}
	if jc.RefreshTokenKey != "" {
		cfg.RefreshTokenKey = jc.RefreshTokenKey
	}
	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.RequestTimeoutSecs > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSecs) * time.Second
	}
}
