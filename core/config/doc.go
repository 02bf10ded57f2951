// Package config provides configuration management for the catalog service.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from `default` struct tags, and the loaded result
// is checked against `validate` tags before it is returned.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, API key, session header
//   - Log: Logging level and format
//   - Database: MySQL connection for favourites
//   - Storage: S3/MinIO credentials and the snapshot bucket
//   - Upstream: catalog API base URL, key, rate limit and circuit breaker
//   - Cache: response cache driver (memory, redis, none)
//   - Catalog: page sizes, batch size, team cap and default leagues
//   - Selection: badger directory for saved league selections
//
// Environment variables map to nested keys by replacing dots with underscores,
// e.g. UPSTREAM_API_KEY sets upstream.api_key.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
