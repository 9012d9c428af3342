// Package config handles loading, parsing, and validating application
// configuration from environment variables, with sensible defaults for
// local development. Environment variables take precedence over defaults.
package config
