package upstream

// Config holds configuration for the upstream sports catalog API.
type Config struct {
	// BaseURL is the API root, without the key segment.
	BaseURL string `mapstructure:"base_url" default:"https://www.thesportsdb.com/api/v1/json" validate:"required,url"`
	// APIKey is the key path segment. "123" is the public test key.
	APIKey string `mapstructure:"api_key" default:"123" validate:"required"`
	// RequestsPerMinute bounds the outgoing request rate.
	RequestsPerMinute int `mapstructure:"requests_per_minute" default:"100" validate:"min=1"`
	// Burst is the number of requests allowed above the steady rate.
	Burst int `mapstructure:"burst" default:"5" validate:"min=1"`
	// TimeoutSeconds bounds a single HTTP request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15" validate:"min=1"`
	// CacheTTLSeconds is how long successful responses are cached. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300" validate:"min=0"`
	// BreakerFailures is the number of consecutive failures that opens the circuit.
	BreakerFailures int `mapstructure:"breaker_failures" default:"5" validate:"min=1"`
	// BreakerTimeoutSeconds is how long the circuit stays open before probing again.
	BreakerTimeoutSeconds int `mapstructure:"breaker_timeout_seconds" default:"60" validate:"min=1"`
}
