package upstream

import (
	"context"
	"net/url"
	"time"

	"sports-catalog/core/metrics"

	"go.uber.org/zap"
)

// get returns the raw body of an endpoint, serving it from the response cache when
// possible. Concurrent misses for the same key share one upstream request.
func (c *HTTPClient) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	key := endpoint + "?" + params.Encode()
	driver := c.cache.Driver()

	data, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.log.Warn("Failed to read response cache", zap.String("key", key), zap.Error(err))
	}
	if ok {
		metrics.CacheHits.WithLabelValues(driver).Inc()
		return data, nil
	}
	metrics.CacheMisses.WithLabelValues(driver).Inc()

	// The shared request outlives any single caller; each caller waits on its own ctx.
	ch := c.sf.DoChan(key, func() (any, error) {
		sharedCtx, cancel := c.detach(ctx)
		defer cancel()

		body, err := c.breaker.Execute(func() ([]byte, error) {
			return c.do(sharedCtx, endpoint, params)
		})
		if err != nil {
			return nil, err
		}

		if ttl := time.Duration(c.cfg.CacheTTLSeconds) * time.Second; ttl > 0 {
			if err := c.cache.Set(sharedCtx, key, body, ttl); err != nil {
				c.log.Warn("Failed to write response cache", zap.String("key", key), zap.Error(err))
			}
		}
		return body, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

// detach returns a context that keeps ctx's values but not its cancellation, bounded by
// the request timeout.
func (c *HTTPClient) detach(ctx context.Context) (context.Context, context.CancelFunc) {
	base := context.WithoutCancel(ctx)
	if c.cfg.TimeoutSeconds <= 0 {
		return context.WithCancel(base)
	}
	return context.WithTimeout(base, time.Duration(c.cfg.TimeoutSeconds)*time.Second)
}
