package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080" validate:"required,numeric"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// SessionHeader names the request header identifying a browsing session.
	SessionHeader string `mapstructure:"session_header" default:"X-Session-ID" validate:"required"`
	// ShutdownTimeoutSeconds bounds graceful shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"10" validate:"min=1"`
}

// DefaultOwner is the session owner used when a request carries no session header.
const DefaultOwner = "anonymous"

// maxOwnerLength bounds owner ids, which end up in storage keys and object names.
const maxOwnerLength = 64

// Owner normalizes a raw session header value into an owner id. Characters outside
// [A-Za-z0-9_-] are dropped; an empty result falls back to DefaultOwner.
func (c Config) Owner(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if b.Len() >= maxOwnerLength {
			break
		}
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return DefaultOwner
	}
	return b.String()
}
