package aggregate

import (
	"context"
	"fmt"
	"time"
)

// KeyFunc extracts the identity key of a record. An empty key means the record has no
// usable identity.
type KeyFunc[T any] func(T) string

// FetchFunc loads the records belonging to one unit of work (a source or an entity).
type FetchFunc[In, Out any] func(ctx context.Context, in In) ([]Out, error)

// Adapter supplies the kind-specific parts of an engine: how to list the mid-level
// entities of a source, how to fetch the leaf records of an entity, and how both are keyed.
type Adapter[M, L any] interface {
	// Name returns the unique name of this adapter (e.g., "players", "matches").
	Name() string

	// FetchSource lists the mid-level entities of one source.
	FetchSource(ctx context.Context, source string) ([]M, error)

	// EntityKey returns the identity key of a mid-level entity.
	EntityKey(entity M) string

	// FetchRecords lists the leaf records owned by one mid-level entity.
	FetchRecords(ctx context.Context, entity M) ([]L, error)

	// RecordKey returns the identity key of a leaf record.
	RecordKey(record L) string
}

// Joiner fills missing display attributes of accumulated records by a name-keyed lookup.
type Joiner[L any] interface {
	// MissingNames returns the display names referenced by a record that still lack
	// a resolved attribute.
	MissingNames(record L) []string

	// Lookup resolves one name. An empty result with a nil error means unresolved.
	Lookup(ctx context.Context, name string) (string, error)

	// Apply returns an enriched copy of the record. resolve reports the attribute for a
	// name and whether one is known. The bool result reports whether the record changed.
	Apply(record L, resolve func(name string) (string, bool)) (L, bool)
}

// ChangeKind identifies the outcome of a RequestMore call.
type ChangeKind int

const (
	// Busy means another fetch is in flight and the call was a no-op.
	Busy ChangeKind = iota
	// Revealed means already-accumulated records were made visible without network work.
	Revealed
	// Fetched means a batch was drained and its new unique records were made visible.
	Fetched
	// Exhausted means every entity has been drained and every record is visible.
	Exhausted
)

func (k ChangeKind) String() string {
	switch k {
	case Busy:
		return "busy"
	case Revealed:
		return "revealed"
	case Fetched:
		return "fetched"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// MarshalText encodes the kind by name.
func (k ChangeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ViewChange describes how the visible window moved after a RequestMore call.
type ViewChange struct {
	// Kind is the outcome of the call.
	Kind ChangeKind `json:"kind"`

	// Count is the number of records newly made visible.
	Count int `json:"count"`

	// Added is the number of new unique records merged by a Fetched change. Records
	// beyond the first page stay hidden until later Revealed changes.
	Added int `json:"added"`

	// Generation is the engine generation the call was issued under.
	Generation uint64 `json:"generation"`
}

// Options tunes the engine.
type Options struct {
	// PageSize is the number of accumulated records revealed per local page.
	PageSize int

	// BatchSize is the number of mid-level entities drained per fetch.
	BatchSize int

	// EntityCap truncates the resolved entity list. Zero or less means unlimited.
	EntityCap int

	// Concurrency bounds the number of concurrent upstream calls per fan-out.
	Concurrency int

	// EmptyRetries is how many extra batches a single RequestMore may drain when a
	// batch contributes only duplicates.
	EmptyRetries int

	// MaxEnrichNames caps the distinct names looked up per enrichment pass.
	MaxEnrichNames int

	// EnrichTimeout bounds a background enrichment pass.
	EnrichTimeout time.Duration

	// AsyncEnrich launches an enrichment pass after every fetch that added records.
	AsyncEnrich bool
}

// DefaultOptions returns the options used when a field is left zero.
func DefaultOptions() Options {
	return Options{
		PageSize:       12,
		BatchSize:      4,
		EntityCap:      8,
		Concurrency:    4,
		EmptyRetries:   3,
		MaxEnrichNames: 50,
		EnrichTimeout:  30 * time.Second,
		AsyncEnrich:    true,
	}
}

// withDefaults fills zero fields from DefaultOptions. EntityCap and EmptyRetries keep
// their zero value because zero is meaningful for both.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.PageSize <= 0 {
		o.PageSize = d.PageSize
	}
	if o.BatchSize <= 0 {
		o.BatchSize = d.BatchSize
	}
	if o.Concurrency <= 0 {
		o.Concurrency = d.Concurrency
	}
	if o.EmptyRetries < 0 {
		o.EmptyRetries = 0
	}
	if o.MaxEnrichNames <= 0 {
		o.MaxEnrichNames = d.MaxEnrichNames
	}
	if o.EnrichTimeout <= 0 {
		o.EnrichTimeout = d.EnrichTimeout
	}
	return o
}
