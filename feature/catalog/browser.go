package catalog

import (
	"context"
	"strings"

	"sports-catalog/core/aggregate"
	"sports-catalog/core/upstream"

	"go.uber.org/zap"
)

// browser hides the record type of an engine from the session layer.
type browser interface {
	Reset(ctx context.Context, selection []string) uint64
	RequestMore(ctx context.Context) aggregate.ViewChange
	Snapshot() aggregate.Snapshot
	// Visible returns the visible window, filtered by a case-insensitive substring of
	// the display name when query is not blank.
	Visible(query string) (items any, count int)
	Enrich(ctx context.Context) int
	Wait()
}

type engineBrowser[L any] struct {
	engine *aggregate.Engine[upstream.Team, L]
	label  func(L) string
}

func (b *engineBrowser[L]) Reset(ctx context.Context, selection []string) uint64 {
	return b.engine.Reset(ctx, selection)
}

func (b *engineBrowser[L]) RequestMore(ctx context.Context) aggregate.ViewChange {
	return b.engine.RequestMore(ctx)
}

func (b *engineBrowser[L]) Snapshot() aggregate.Snapshot {
	return b.engine.Snapshot()
}

func (b *engineBrowser[L]) Visible(query string) (any, int) {
	items := b.engine.CurrentVisible()
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items, len(items)
	}

	filtered := make([]L, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(b.label(item)), query) {
			filtered = append(filtered, item)
		}
	}
	return filtered, len(filtered)
}

func (b *engineBrowser[L]) Enrich(ctx context.Context) int {
	return b.engine.Enrich(ctx)
}

func (b *engineBrowser[L]) Wait() {
	b.engine.Wait()
}

// newBrowser builds the engine of one kind.
func newBrowser(kind string, client upstream.Client, cfg Config, log *zap.Logger) (browser, error) {
	src := teamSource{client: client}
	opts := cfg.Options(kind)

	switch kind {
	case KindTeams:
		return &engineBrowser[upstream.Team]{
			engine: aggregate.New[upstream.Team, upstream.Team](teamsAdapter{src}, nil, opts, log),
			label:  func(t upstream.Team) string { return t.Name },
		}, nil
	case KindPlayers:
		return &engineBrowser[upstream.Player]{
			engine: aggregate.New[upstream.Team, upstream.Player](playersAdapter{src}, nil, opts, log),
			label:  func(p upstream.Player) string { return p.Name },
		}, nil
	case KindMatches:
		return &engineBrowser[upstream.Match]{
			engine: aggregate.New[upstream.Team, upstream.Match](matchesAdapter{src}, badgeJoiner{client: client}, opts, log),
			label:  func(m upstream.Match) string { return m.Event },
		}, nil
	default:
		return nil, ErrUnknownKind
	}
}
