package upstream

import (
	"context"
	"errors"
	"net/http"
	"time"

	"sports-catalog/core/cache"

	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// ErrNotFound is returned by single-entity lookups when the API has no match.
var ErrNotFound = errors.New("not found")

// Client is the contract of the upstream sports catalog.
type Client interface {
	// FetchTeamsByLeague lists the teams of a league.
	FetchTeamsByLeague(ctx context.Context, league string) ([]Team, error)
	// FetchTeamByName searches teams by display name (0 or 1 expected).
	FetchTeamByName(ctx context.Context, name string) ([]Team, error)
	// FetchTeamByID looks up a single team.
	FetchTeamByID(ctx context.Context, id string) (*Team, error)
	// FetchPlayersByTeam lists the squad of a team.
	FetchPlayersByTeam(ctx context.Context, teamID string) ([]Player, error)
	// FetchMatchesByTeam lists the upcoming events of a team.
	FetchMatchesByTeam(ctx context.Context, teamID string) ([]Match, error)
}

// HTTPClient talks to the v1 JSON API. Every request goes through the response cache,
// a singleflight group, a circuit breaker and a token bucket, in that order.
type HTTPClient struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[[]byte]
	cache   cache.Cache
	sf      singleflight.Group
	log     *zap.Logger
}

// Ensure HTTPClient implements Client.
var _ Client = (*HTTPClient)(nil)

// NewClient creates an upstream client. store may be nil to disable caching.
func NewClient(cfg Config, store cache.Cache, log *zap.Logger) *HTTPClient {
	if log == nil {
		log = zap.NewNop()
	}
	if store == nil {
		store = cache.Noop{}
	}

	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Limit(float64(cfg.RequestsPerMinute) / 60.0)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &HTTPClient{
		cfg:     cfg,
		http:    &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		limiter: rate.NewLimiter(limit, burst),
		breaker: newBreaker("sportsdb-api", cfg, log),
		cache:   store,
		log:     log,
	}
}
