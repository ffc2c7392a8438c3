// Package config loads runtime configuration for the blogctl CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables with the BLOGCTL_ prefix (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-u string   base URL for uploaded assets (thumbnails)
//	-d string   path of the local credential database
//	-t int      request timeout in seconds
//
// The secret used for local credential encryption has no default and no flag;
// it must come from BLOGCTL_SECRET_KEY or the JSON file. LoadConfig validates
// the assembled configuration and returns an error naming the offending field
// when a value is missing or malformed.
package config
