package aggregate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	ID        string
	Event     string
	Home      string
	Away      string
	HomeBadge *string
	AwayBadge *string
}

type fixtureAdapter struct {
	teams    []team
	fixtures map[string][]fixture
}

func (a *fixtureAdapter) Name() string { return "fixtures" }

func (a *fixtureAdapter) FetchSource(ctx context.Context, source string) ([]team, error) {
	return a.teams, nil
}

func (a *fixtureAdapter) EntityKey(t team) string { return teamKey(t) }

func (a *fixtureAdapter) FetchRecords(ctx context.Context, t team) ([]fixture, error) {
	return a.fixtures[t.ID], nil
}

func (a *fixtureAdapter) RecordKey(f fixture) string { return f.ID }

// badgeJoiner looks names up in a fixed table.
type badgeJoiner struct {
	mu      sync.Mutex
	badges  map[string]string
	errs    map[string]error
	lookups map[string]int
}

func (j *badgeJoiner) MissingNames(f fixture) []string {
	var names []string
	if f.HomeBadge == nil {
		names = append(names, f.Home)
	}
	if f.AwayBadge == nil {
		names = append(names, f.Away)
	}
	return names
}

func (j *badgeJoiner) Lookup(ctx context.Context, name string) (string, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.lookups == nil {
		j.lookups = make(map[string]int)
	}
	j.lookups[name]++
	if err := j.errs[name]; err != nil {
		return "", err
	}
	return j.badges[name], nil
}

func (j *badgeJoiner) Apply(f fixture, resolve func(string) (string, bool)) (fixture, bool) {
	changed := false
	if f.HomeBadge == nil {
		if badge, ok := resolve(f.Home); ok {
			f.HomeBadge = &badge
			changed = true
		}
	}
	if f.AwayBadge == nil {
		if badge, ok := resolve(f.Away); ok {
			f.AwayBadge = &badge
			changed = true
		}
	}
	return f, changed
}

func (j *badgeJoiner) count(name string) int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.lookups[name]
}

func TestEnrich_PartialLookupFailure(t *testing.T) {
	adapter := &fixtureAdapter{
		teams: []team{{ID: "1", Name: "Red Warriors"}},
		fixtures: map[string][]fixture{
			"1": {
				{ID: "e0", Event: "Opening Match", Home: "Green Rovers", Away: "Grey Town"},
				{ID: "e1", Event: "Red Warriors vs Blue Strikers", Home: "Red Warriors", Away: "Blue Strikers"},
			},
		},
	}
	joiner := &badgeJoiner{
		badges: map[string]string{"Red Warriors": "https://img/red.png"},
		errs:   map[string]error{"Blue Strikers": errors.New("lookup failed")},
	}

	e := New[team, fixture](adapter, joiner, Options{BatchSize: 1, PageSize: 10, AsyncEnrich: true}, zap.NewNop())
	e.Reset(context.Background(), []string{"L1"})
	require.Equal(t, Fetched, e.RequestMore(context.Background()).Kind)
	e.Wait()
	e.Enrich(context.Background())

	visible := e.CurrentVisible()
	require.Len(t, visible, 2)
	assert.Equal(t, "e0", visible[0].ID)

	match := visible[1]
	assert.Equal(t, "e1", match.ID)
	assert.Equal(t, "Red Warriors vs Blue Strikers", match.Event)
	require.NotNil(t, match.HomeBadge)
	assert.Equal(t, "https://img/red.png", *match.HomeBadge)
	assert.Nil(t, match.AwayBadge)

	// Unresolved names are cached, failures are retried.
	assert.Equal(t, 1, joiner.count("Grey Town"))
	assert.Equal(t, 2, joiner.count("Blue Strikers"))
}

func TestEnrich_CapsDistinctNames(t *testing.T) {
	var fixtures []fixture
	for i := 0; i < 40; i++ {
		fixtures = append(fixtures, fixture{
			ID:   fmt.Sprintf("e%d", i),
			Home: fmt.Sprintf("Home %d", i),
			Away: fmt.Sprintf("Away %d", i),
		})
	}
	adapter := &fixtureAdapter{
		teams:    []team{{ID: "1"}},
		fixtures: map[string][]fixture{"1": fixtures},
	}
	joiner := &badgeJoiner{}

	e := New[team, fixture](adapter, joiner, Options{BatchSize: 1, MaxEnrichNames: 50}, zap.NewNop())
	e.Reset(context.Background(), []string{"L1"})

	e.mu.Lock()
	Merge(e.acc, fixtures, adapter.RecordKey)
	names := e.pendingNamesLocked()
	e.mu.Unlock()

	assert.Len(t, names, 50)
	assert.Equal(t, "Home 0", names[0])
	assert.Equal(t, "Away 0", names[1])
}

func TestEnrich_FailingNamesDoNotStarveOthers(t *testing.T) {
	failing := errors.New("lookup failed")
	joiner := &badgeJoiner{
		badges: map[string]string{"Red": "red.png", "Blue": "blue.png"},
		errs:   make(map[string]error),
	}

	var fixtures []fixture
	for i := 0; i < 30; i++ {
		home, away := fmt.Sprintf("bad%da", i), fmt.Sprintf("bad%db", i)
		joiner.errs[home] = failing
		joiner.errs[away] = failing
		fixtures = append(fixtures, fixture{ID: fmt.Sprintf("e%d", i), Home: home, Away: away})
	}
	fixtures = append(fixtures, fixture{ID: "last", Event: "Red vs Blue", Home: "Red", Away: "Blue"})

	adapter := &fixtureAdapter{
		teams:    []team{{ID: "1"}},
		fixtures: map[string][]fixture{"1": fixtures},
	}
	e := New[team, fixture](adapter, joiner, Options{BatchSize: 1, PageSize: 100, MaxEnrichNames: 50}, zap.NewNop())
	e.Reset(context.Background(), []string{"L1"})
	require.Equal(t, Fetched, e.RequestMore(context.Background()).Kind)

	// The first pass fills the cap with failing names.
	assert.Equal(t, 0, e.Enrich(context.Background()))
	assert.Equal(t, 0, joiner.count("Red"))

	// Names never tried go ahead of names that already failed.
	assert.Equal(t, 1, e.Enrich(context.Background()))
	assert.Equal(t, 1, joiner.count("Red"))
	assert.Equal(t, 1, joiner.count("Blue"))

	visible := e.CurrentVisible()
	last := visible[len(visible)-1]
	require.NotNil(t, last.HomeBadge)
	require.NotNil(t, last.AwayBadge)
	assert.Equal(t, "red.png", *last.HomeBadge)
	assert.Equal(t, "blue.png", *last.AwayBadge)
}

// gatedJoiner blocks every lookup until gate is closed.
type gatedJoiner struct {
	badgeJoiner
	started chan struct{}
	once    sync.Once
	gate    chan struct{}
}

func (j *gatedJoiner) Lookup(ctx context.Context, name string) (string, error) {
	j.once.Do(func() { close(j.started) })
	<-j.gate
	return j.badgeJoiner.Lookup(ctx, name)
}

func TestEnrich_BackgroundPassDoesNotBlockPaging(t *testing.T) {
	adapter := &fixtureAdapter{
		teams: []team{{ID: "1"}, {ID: "2"}},
		fixtures: map[string][]fixture{
			"1": {
				{ID: "e1", Home: "A", Away: "B"},
				{ID: "e2", Home: "C", Away: "D"},
			},
			"2": {{ID: "e3", Home: "E", Away: "F"}},
		},
	}
	joiner := &gatedJoiner{
		badgeJoiner: badgeJoiner{badges: map[string]string{"A": "a.png"}},
		started:     make(chan struct{}),
		gate:        make(chan struct{}),
	}
	e := New[team, fixture](adapter, joiner, Options{BatchSize: 1, PageSize: 1, AsyncEnrich: true}, zap.NewNop())
	e.Reset(context.Background(), []string{"L1"})

	released := false
	release := func() {
		if !released {
			released = true
			close(joiner.gate)
		}
	}
	defer release()

	require.Equal(t, Fetched, e.RequestMore(context.Background()).Kind)
	<-joiner.started

	assert.False(t, e.Snapshot().InFlight)
	assert.Equal(t, Revealed, e.RequestMore(context.Background()).Kind)
	assert.False(t, e.Snapshot().InFlight)
	assert.Equal(t, Fetched, e.RequestMore(context.Background()).Kind)
	assert.Len(t, e.CurrentVisible(), 3)

	release()
	e.Wait()

	visible := e.CurrentVisible()
	require.NotNil(t, visible[0].HomeBadge)
	assert.Equal(t, "a.png", *visible[0].HomeBadge)
}

func TestEnrich_StaleGenerationIsDiscarded(t *testing.T) {
	adapter := &fixtureAdapter{
		teams: []team{{ID: "1"}},
		fixtures: map[string][]fixture{
			"1": {{ID: "e1", Home: "A", Away: "B"}},
		},
	}
	e := New[team, fixture](adapter, nil, Options{BatchSize: 1}, zap.NewNop())

	// A joiner that resets the engine mid-lookup.
	joiner := &resettingJoiner{badgeJoiner: badgeJoiner{badges: map[string]string{"A": "a.png", "B": "b.png"}}}
	e.joiner = joiner
	joiner.reset = func() { e.Reset(context.Background(), nil) }

	e.Reset(context.Background(), []string{"L1"})
	e.RequestMore(context.Background())

	assert.Equal(t, 0, e.Enrich(context.Background()))
	assert.Empty(t, e.CurrentVisible())
}

type resettingJoiner struct {
	badgeJoiner
	once  sync.Once
	reset func()
}

func (j *resettingJoiner) Lookup(ctx context.Context, name string) (string, error) {
	j.once.Do(j.reset)
	return j.badgeJoiner.Lookup(ctx, name)
}

func TestEnrich_NoJoiner(t *testing.T) {
	e := newTestEngine(newFakeAdapter(), Options{})
	assert.Equal(t, 0, e.Enrich(context.Background()))
}
