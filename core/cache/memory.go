package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	data      []byte
	expiresAt time.Time
}

// Memory is a thread-safe in-process TTL cache.
type Memory struct {
	mu      sync.RWMutex
	prefix  string
	entries map[string]entry
	stop    chan struct{}
	once    sync.Once
}

// NewMemory creates an in-memory cache. A positive sweep interval starts a goroutine
// that drops expired entries until Close is called.
func NewMemory(prefix string, sweep time.Duration) *Memory {
	m := &Memory{
		prefix:  prefix,
		entries: make(map[string]entry),
		stop:    make(chan struct{}),
	}
	if sweep > 0 {
		go m.sweepLoop(sweep)
	}
	return m
}

// Get returns the payload under key if it has not expired.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[m.prefix+key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false, nil
	}
	return e.data, true, nil
}

// Set stores a payload under key for ttl.
func (m *Memory) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[m.prefix+key] = entry{
		data:      value,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Sweep removes expired entries and returns how many were dropped.
func (m *Memory) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	removed := 0
	for key, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, key)
			removed++
		}
	}
	return removed
}

func (m *Memory) Driver() string {
	return DriverMemory
}

// Close stops the sweep goroutine.
func (m *Memory) Close() error {
	m.once.Do(func() { close(m.stop) })
	return nil
}

func (m *Memory) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.Sweep()
		case <-m.stop:
			return
		}
	}
}
