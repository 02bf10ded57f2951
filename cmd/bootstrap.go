package cmd

import (
	"fmt"

	"sports-catalog/core/cache"
	"sports-catalog/core/config"
	"sports-catalog/core/logger"
	"sports-catalog/core/upstream"

	"go.uber.org/zap"
)

// runtime holds the components every command needs.
type runtime struct {
	cfg    *config.Config
	log    *zap.Logger
	cache  cache.Cache
	client *upstream.HTTPClient
}

// bootstrap loads the configuration and builds the logger, response cache and
// upstream client.
func bootstrap() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := cache.New(cfg.Cache)
	if err != nil {
		logg.Warn("Response cache unavailable, continuing without it", zap.Error(err))
		store = cache.Noop{}
	}

	return &runtime{
		cfg:    cfg,
		log:    logg,
		cache:  store,
		client: upstream.NewClient(cfg.Upstream, store, logg),
	}, nil
}

func (r *runtime) Close() {
	_ = r.cache.Close()
	_ = r.log.Sync()
}
