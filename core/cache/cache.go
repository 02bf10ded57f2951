package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache stores raw upstream payloads by key with a TTL.
type Cache interface {
	// Get returns the payload stored under key. The bool is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a payload under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Driver returns the backend name, used as a metrics label.
	Driver() string
	// Close releases the backend.
	Close() error
}

// New creates the cache backend selected by cfg.
func New(cfg Config) (Cache, error) {
	switch cfg.Driver {
	case DriverMemory, "":
		return NewMemory(cfg.Prefix, time.Duration(cfg.SweepIntervalSeconds)*time.Second), nil
	case DriverRedis:
		return NewRedis(cfg.RedisURL, cfg.Prefix)
	case DriverNone:
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
}

// Noop never stores anything.
type Noop struct{}

func (Noop) Get(ctx context.Context, key string) ([]byte, bool, error) { return nil, false, nil }

func (Noop) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error { return nil }

func (Noop) Driver() string { return DriverNone }

func (Noop) Close() error { return nil }
