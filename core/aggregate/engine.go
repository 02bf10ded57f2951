package aggregate

import (
	"context"
	"sync"
	"time"

	"sports-catalog/core/metrics"

	"go.uber.org/zap"
)

// Snapshot is a consistent view of an engine's progress counters.
type Snapshot struct {
	Generation  uint64 `json:"generation"`
	Entities    int    `json:"entities"`
	Drained     int    `json:"drained"`
	Accumulated int    `json:"accumulated"`
	Revealed    int    `json:"revealed"`
	InFlight    bool   `json:"in_flight"`
	Exhausted   bool   `json:"exhausted"`
}

// Engine is the window pager over an accumulator of leaf records L drained from
// mid-level entities M. All state is guarded by one mutex; network work runs outside it.
type Engine[M, L any] struct {
	adapter  Adapter[M, L]
	joiner   Joiner[L]
	resolver *Resolver[M]
	opts     Options
	log      *zap.Logger

	mu         sync.Mutex
	generation uint64
	cursor     Cursor[M]
	acc        *OrderedMap[L]
	revealed   int
	inFlight   bool

	// badges caches enrichment lookups by normalized name. A nil value means the
	// lookup succeeded but found nothing.
	badges map[string]*string

	// failures counts failed lookups per normalized name in this generation.
	failures      map[string]int
	enriching     bool
	enrichPending bool
	background    sync.WaitGroup
}

// New creates an engine for one kind of leaf record. joiner may be nil.
func New[M, L any](adapter Adapter[M, L], joiner Joiner[L], opts Options, log *zap.Logger) *Engine[M, L] {
	if log == nil {
		log = zap.NewNop()
	}
	opts = opts.withDefaults()
	log = log.With(zap.String("engine", adapter.Name()))

	return &Engine[M, L]{
		adapter:  adapter,
		joiner:   joiner,
		resolver: NewResolver(adapter.FetchSource, adapter.EntityKey, opts.EntityCap, opts.Concurrency, log),
		opts:     opts,
		log:      log,
		acc:      NewOrderedMap[L](),
		badges:   make(map[string]*string),
		failures: make(map[string]int),
	}
}

// Name returns the adapter name.
func (e *Engine[M, L]) Name() string {
	return e.adapter.Name()
}

// Reset discards all accumulated state, starts a new generation and resolves the
// selection into a fresh cursor. Results of operations issued under earlier generations
// are discarded when they arrive. It returns the new generation.
func (e *Engine[M, L]) Reset(ctx context.Context, selection []string) uint64 {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.cursor = NewCursor[M](nil)
	e.acc = NewOrderedMap[L]()
	e.revealed = 0
	e.badges = make(map[string]*string)
	e.failures = make(map[string]int)
	// Resolution counts as the in-flight fetch of the new generation.
	e.inFlight = true
	e.mu.Unlock()

	e.log.Debug("Resetting engine",
		zap.Uint64("generation", gen),
		zap.Strings("selection", selection),
	)

	entities := e.resolver.Resolve(ctx, selection)

	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.generation {
		metrics.EngineStaleResults.WithLabelValues(e.adapter.Name(), "resolve").Inc()
		e.log.Debug("Discarding stale resolution", zap.Uint64("generation", gen))
		return gen
	}

	e.cursor = NewCursor(entities)
	e.inFlight = false
	metrics.EngineRecords.WithLabelValues(e.adapter.Name()).Set(0)

	e.log.Info("Engine reset",
		zap.Uint64("generation", gen),
		zap.Int("entities", len(entities)),
	)
	return gen
}

// RequestMore grows the visible window. It reveals already-accumulated records when
// there are any, otherwise drains the next batch of entities. Only one drain runs at a
// time; concurrent callers get Busy.
func (e *Engine[M, L]) RequestMore(ctx context.Context) ViewChange {
	e.mu.Lock()
	gen := e.generation

	if e.inFlight {
		e.mu.Unlock()
		return e.record(ViewChange{Kind: Busy, Generation: gen})
	}

	if available := e.acc.Len() - e.revealed; available > 0 {
		n := min(e.opts.PageSize, available)
		e.revealed += n
		e.mu.Unlock()
		return e.record(ViewChange{Kind: Revealed, Count: n, Generation: gen})
	}

	if e.cursor.Exhausted() {
		e.mu.Unlock()
		return e.record(ViewChange{Kind: Exhausted, Generation: gen})
	}

	e.inFlight = true
	cursor := e.cursor
	e.mu.Unlock()

	added, shown := e.drain(ctx, gen, cursor)

	if added > 0 && e.joiner != nil && e.opts.AsyncEnrich {
		e.startEnrich()
	}

	return e.record(ViewChange{Kind: Fetched, Count: shown, Added: added, Generation: gen})
}

// drain fetches batches until one contributes new records, the retry bound is hit or the
// cursor runs out. Each batch is merged as a whole and at most one page of it is made
// visible. It returns the number of records added and the number revealed.
func (e *Engine[M, L]) drain(ctx context.Context, gen uint64, cursor Cursor[M]) (int, int) {
	onErr := func(entity M, err error) {
		e.log.Warn("Failed to fetch records",
			zap.String("entity", e.adapter.EntityKey(entity)),
			zap.Error(err),
		)
	}

	added := 0
	for attempt := 0; ; attempt++ {
		start := time.Now()
		records, next := DrainNext(ctx, cursor, e.opts.BatchSize, e.opts.Concurrency, e.adapter.FetchRecords, onErr)
		metrics.RecordBatch(e.adapter.Name(), time.Since(start))

		e.mu.Lock()
		if gen != e.generation {
			// The guard now belongs to the new generation; leave it alone.
			e.mu.Unlock()
			metrics.EngineStaleResults.WithLabelValues(e.adapter.Name(), "drain").Inc()
			e.log.Debug("Discarding stale batch", zap.Uint64("generation", gen))
			return 0, 0
		}

		if ctx.Err() != nil {
			// Entities of a cancelled batch were never really attempted.
			e.inFlight = false
			e.mu.Unlock()
			return added, 0
		}

		e.cursor = next
		n := Merge(e.acc, records, e.adapter.RecordKey)
		shown := min(n, e.opts.PageSize)
		e.revealed += shown
		added += n
		metrics.EngineRecords.WithLabelValues(e.adapter.Name()).Set(float64(e.acc.Len()))

		e.log.Debug("Merged batch",
			zap.Uint64("generation", gen),
			zap.Int("drained", next.Drained()),
			zap.Int("fetched", len(records)),
			zap.Int("added", n),
		)

		if n > 0 || next.Exhausted() || attempt >= e.opts.EmptyRetries {
			e.inFlight = false
			e.mu.Unlock()
			return added, shown
		}
		e.mu.Unlock()
		cursor = next
	}
}

func (e *Engine[M, L]) record(change ViewChange) ViewChange {
	metrics.EngineRequests.WithLabelValues(e.adapter.Name(), change.Kind.String()).Inc()
	return change
}

// CurrentVisible returns a copy of the visible prefix of the accumulator.
func (e *Engine[M, L]) CurrentVisible() []L {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.acc.Prefix(e.revealed)
}

// IsExhausted reports whether every entity has been drained and every accumulated
// record is visible.
func (e *Engine[M, L]) IsExhausted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.exhaustedLocked()
}

func (e *Engine[M, L]) exhaustedLocked() bool {
	return !e.inFlight && e.cursor.Exhausted() && e.revealed == e.acc.Len()
}

// Generation returns the current generation.
func (e *Engine[M, L]) Generation() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generation
}

// Snapshot returns the engine's progress counters.
func (e *Engine[M, L]) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{
		Generation:  e.generation,
		Entities:    e.cursor.Len(),
		Drained:     e.cursor.Drained(),
		Accumulated: e.acc.Len(),
		Revealed:    e.revealed,
		InFlight:    e.inFlight,
		Exhausted:   e.exhaustedLocked(),
	}
}

// Wait blocks until background enrichment passes have finished.
func (e *Engine[M, L]) Wait() {
	e.background.Wait()
}
