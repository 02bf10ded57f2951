package cache

// Config holds configuration for the upstream response cache.
type Config struct {
	// Driver selects the backend: "memory", "redis" or "none".
	Driver string `mapstructure:"driver" default:"memory" validate:"oneof=memory redis none"`
	// RedisURL is the connection URL used by the redis driver.
	RedisURL string `mapstructure:"redis_url" default:"redis://localhost:6379/0"`
	// Prefix is prepended to every key written by this service.
	Prefix string `mapstructure:"prefix" default:"catalog:"`
	// SweepIntervalSeconds is how often the memory driver drops expired entries.
	SweepIntervalSeconds int `mapstructure:"sweep_interval_seconds" default:"300"`
}

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverNone   = "none"
)
