// Package aggregate provides a generic, incremental multi-source aggregation engine.
//
// The engine browses a hierarchical upstream catalog (sources -> mid-level entities ->
// leaf records) and exposes a deduplicated, monotonically growing list to the caller
// without re-fetching data it has already seen and without waiting for the whole catalog.
//
// # Architecture
//
// The engine is assembled from small components, leaves first:
//
// 1. OrderedMap / Merge: key-based merge that preserves first-seen order. A record whose
// key function yields no key gets a synthetic unique key and is never deduplicated.
//
// 2. Resolver: turns an ordered selection of sources into a deduplicated list of
// mid-level entities, falling back to a sequential scan when the concurrent path is empty.
//
// 3. Cursor / DrainNext: an immutable progress marker over the mid-level entities. Each
// drain fetches one bounded batch concurrently; a failing entity degrades to an empty result.
//
// 4. Engine: owns the accumulator, the cursor and the visible window. RequestMore either
// reveals already-accumulated records or drains the next batch, guarded so that only one
// fetch is in flight. Reset starts a new generation; results from older generations are
// discarded on arrival.
//
// 5. Joiner: an optional best-effort enrichment pass that fills missing display attributes
// by a name-keyed lookup without touching ordering or identity.
//
// # Usage Example
//
//	engine := aggregate.New[upstream.Team, upstream.Player](adapter, aggregate.DefaultOptions(), logger)
//	engine.Reset(ctx, []string{"English Premier League", "La Liga"})
//
//	change := engine.RequestMore(ctx)
//	if change.Kind == aggregate.Exhausted {
//	    // nothing left to load for this selection
//	}
//	visible := engine.CurrentVisible()
//
// # Failure Model
//
// Nothing in this package returns an error to the caller. Upstream failures degrade to
// empty results for the unit that failed; the only visible effect is slower progress.
package aggregate
