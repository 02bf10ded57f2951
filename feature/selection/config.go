package selection

// Config holds configuration for the saved league selection store.
type Config struct {
	// Path is the badger directory. Ignored when InMemory is set.
	Path string `mapstructure:"path" default:"data/selection" validate:"required"`
	// InMemory keeps selections in memory only (lost on restart).
	InMemory bool `mapstructure:"in_memory" default:"false"`
	// MaxLeagues bounds the number of leagues a selection may hold.
	MaxLeagues int `mapstructure:"max_leagues" default:"10" validate:"min=1"`
}
