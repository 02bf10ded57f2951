package aggregate

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Resolver turns an ordered selection of sources into a deduplicated list of
// mid-level entities.
type Resolver[M any] struct {
	fetch       FetchFunc[string, M]
	key         KeyFunc[M]
	cap         int
	concurrency int
	log         *zap.Logger
}

// NewResolver creates a resolver. cap truncates the result (zero or less means unlimited).
func NewResolver[M any](fetch FetchFunc[string, M], key KeyFunc[M], cap, concurrency int, log *zap.Logger) *Resolver[M] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver[M]{
		fetch:       fetch,
		key:         key,
		cap:         cap,
		concurrency: concurrency,
		log:         log,
	}
}

// Resolve fetches every selected source concurrently and merges the results in
// selection order, first-seen wins. If that produces nothing, the selection is scanned
// again one source at a time and the first non-empty source is adopted. The result is
// never nil.
func (r *Resolver[M]) Resolve(ctx context.Context, selection []string) []M {
	sources := CleanSources(selection)
	onErr := func(source string, err error) {
		r.log.Warn("Failed to fetch source",
			zap.String("source", source),
			zap.Error(err),
		)
	}

	merged := NewOrderedMap[M]()
	for _, group := range FanOut(ctx, sources, r.concurrency, r.fetch, onErr) {
		Merge(merged, group, r.key)
	}

	if merged.Len() == 0 {
		for _, source := range sources {
			if ctx.Err() != nil {
				break
			}
			items, err := r.fetch(ctx, source)
			if err != nil {
				onErr(source, err)
				continue
			}
			if len(items) == 0 {
				continue
			}
			r.log.Info("Adopted fallback source",
				zap.String("source", source),
				zap.Int("entities", len(items)),
			)
			Merge(merged, items, r.key)
			break
		}
	}

	out := merged.Values()
	if r.cap > 0 && len(out) > r.cap {
		out = out[:r.cap]
	}
	return out
}

// CleanSources trims names and drops blanks and repeats, keeping order.
func CleanSources(sources []string) []string {
	seen := make(map[string]struct{}, len(sources))
	out := make([]string, 0, len(sources))
	for _, s := range sources {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
