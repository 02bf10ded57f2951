package catalog

import (
	"strings"
	"time"

	"sports-catalog/core/aggregate"
)

// Config holds the browsing engine settings.
type Config struct {
	// DefaultLeagues is the comma separated selection used when a session has none.
	DefaultLeagues string `mapstructure:"default_leagues" default:"English Premier League,La Liga,Serie A,Bundesliga" validate:"required"`
	// TeamCap truncates the resolved team list of the players and matches engines.
	TeamCap int `mapstructure:"team_cap" default:"8" validate:"min=0"`
	// BatchSize is the number of teams drained per fetch.
	BatchSize int `mapstructure:"batch_size" default:"4" validate:"min=1"`
	// Concurrency bounds concurrent upstream calls per fan-out.
	Concurrency int `mapstructure:"concurrency" default:"4" validate:"min=1"`
	// EmptyRetries bounds extra drains when a batch adds nothing new.
	EmptyRetries int `mapstructure:"empty_retries" default:"3" validate:"min=0"`

	TeamsPageSize   int `mapstructure:"teams_page_size" default:"12" validate:"min=1"`
	PlayersPageSize int `mapstructure:"players_page_size" default:"16" validate:"min=1"`
	MatchesPageSize int `mapstructure:"matches_page_size" default:"12" validate:"min=1"`

	// EnrichMaxNames caps the team names looked up per badge enrichment pass.
	EnrichMaxNames int `mapstructure:"enrich_max_names" default:"50" validate:"min=1"`
	// EnrichTimeoutSeconds bounds a background enrichment pass.
	EnrichTimeoutSeconds int `mapstructure:"enrich_timeout_seconds" default:"30" validate:"min=1"`
	// AsyncEnrich runs badge enrichment in the background after each fetch.
	AsyncEnrich bool `mapstructure:"async_enrich" default:"true"`

	// MaxSessions bounds live sessions per kind; the least recently used is evicted.
	MaxSessions int `mapstructure:"max_sessions" default:"1000" validate:"min=1"`
	// SessionTTLMinutes expires idle sessions.
	SessionTTLMinutes int `mapstructure:"session_ttl_minutes" default:"30" validate:"min=1"`
}

// Leagues returns the default selection as a list.
func (c Config) Leagues() []string {
	return aggregate.CleanSources(strings.Split(c.DefaultLeagues, ","))
}

// SessionTTL returns the idle session lifetime.
func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// Options returns the engine options of one kind. The teams engine lists every team of
// the selection, so it is uncapped and drains a full page of teams at a time.
func (c Config) Options(kind string) aggregate.Options {
	opts := aggregate.Options{
		BatchSize:      c.BatchSize,
		EntityCap:      c.TeamCap,
		Concurrency:    c.Concurrency,
		EmptyRetries:   c.EmptyRetries,
		MaxEnrichNames: c.EnrichMaxNames,
		EnrichTimeout:  time.Duration(c.EnrichTimeoutSeconds) * time.Second,
		AsyncEnrich:    c.AsyncEnrich,
	}

	switch kind {
	case KindTeams:
		opts.PageSize = c.TeamsPageSize
		opts.BatchSize = c.TeamsPageSize
		opts.EntityCap = 0
	case KindPlayers:
		opts.PageSize = c.PlayersPageSize
	case KindMatches:
		opts.PageSize = c.MatchesPageSize
	}
	return opts
}
