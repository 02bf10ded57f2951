// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure for server settings and the rule that turns a
// session header into an owner id.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key, the session header name and the
// graceful shutdown timeout.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by feature handlers to resolve the owner of a request:
//
//	owner := cfg.Owner(c.Get(cfg.SessionHeader))
package server
