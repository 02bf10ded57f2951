package aggregate

import (
	"cmp"
	"context"
	"slices"

	"sports-catalog/core/metrics"

	"go.uber.org/zap"
)

// Enrich runs one enrichment pass synchronously and returns the number of records that
// were updated. It is a no-op without a joiner. Lookups that fail are not cached and are
// retried by the next pass.
func (e *Engine[M, L]) Enrich(ctx context.Context) int {
	if e.joiner == nil {
		return 0
	}

	e.mu.Lock()
	gen := e.generation
	names := e.pendingNamesLocked()
	e.mu.Unlock()

	lookup := func(ctx context.Context, name string) ([]string, error) {
		badge, err := e.joiner.Lookup(ctx, name)
		if err != nil {
			return nil, err
		}
		return []string{badge}, nil
	}
	onErr := func(name string, err error) {
		metrics.EnrichmentLookups.WithLabelValues(e.adapter.Name(), "error").Inc()
		e.log.Debug("Enrichment lookup failed",
			zap.String("name", name),
			zap.Error(err),
		)
	}

	results := FanOut(ctx, names, e.opts.Concurrency, lookup, onErr)

	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.generation {
		metrics.EngineStaleResults.WithLabelValues(e.adapter.Name(), "enrich").Inc()
		return 0
	}

	for i, name := range names {
		if results[i] == nil {
			e.failures[NormalizeName(name)]++
			continue
		}
		badge := results[i][0]
		key := NormalizeName(name)
		if badge == "" {
			metrics.EnrichmentLookups.WithLabelValues(e.adapter.Name(), "unresolved").Inc()
			e.badges[key] = nil
			continue
		}
		metrics.EnrichmentLookups.WithLabelValues(e.adapter.Name(), "resolved").Inc()
		e.badges[key] = &badge
	}

	resolve := func(name string) (string, bool) {
		badge, ok := e.badges[NormalizeName(name)]
		if !ok || badge == nil {
			return "", false
		}
		return *badge, true
	}

	updated := 0
	for _, key := range e.acc.Keys() {
		record, _ := e.acc.Get(key)
		if enriched, changed := e.joiner.Apply(record, resolve); changed {
			e.acc.Replace(key, enriched)
			updated++
		}
	}

	if len(names) > 0 || updated > 0 {
		e.log.Debug("Enrichment pass finished",
			zap.Uint64("generation", gen),
			zap.Int("names", len(names)),
			zap.Int("updated", updated),
		)
	}
	return updated
}

// pendingNamesLocked collects the distinct names referenced by accumulated records that
// have not been resolved yet, capped at MaxEnrichNames. Names with fewer failed lookups
// come first, so names that keep failing cannot starve the rest.
func (e *Engine[M, L]) pendingNamesLocked() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, record := range e.acc.Values() {
		for _, name := range e.joiner.MissingNames(record) {
			key := NormalizeName(name)
			if key == "" {
				continue
			}
			if _, known := e.badges[key]; known {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			names = append(names, name)
		}
	}

	slices.SortStableFunc(names, func(a, b string) int {
		return cmp.Compare(e.failures[NormalizeName(a)], e.failures[NormalizeName(b)])
	})
	if len(names) > e.opts.MaxEnrichNames {
		names = names[:e.opts.MaxEnrichNames]
	}
	return names
}

// startEnrich launches a background pass, or marks one as pending if a pass is already
// running. It never takes the pager guard.
func (e *Engine[M, L]) startEnrich() {
	e.mu.Lock()
	if e.enriching {
		e.enrichPending = true
		e.mu.Unlock()
		return
	}
	e.enriching = true
	e.background.Add(1)
	e.mu.Unlock()

	go func() {
		defer e.background.Done()
		for {
			ctx, cancel := context.WithTimeout(context.Background(), e.opts.EnrichTimeout)
			e.Enrich(ctx)
			cancel()

			e.mu.Lock()
			if !e.enrichPending {
				e.enriching = false
				e.mu.Unlock()
				return
			}
			e.enrichPending = false
			e.mu.Unlock()
		}
	}()
}
