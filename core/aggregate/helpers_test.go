package aggregate

import (
	"context"
	"fmt"
	"sync"
)

type team struct {
	ID     string
	Name   string
	League string
}

type record struct {
	ID      string
	TeamID  string
	Payload string
}

func teamKey(t team) string {
	return Identity(t.ID, NormalizeName(t.Name))
}

func recordKey(r record) string {
	return r.ID
}

// fakeAdapter serves canned teams and records and counts calls.
type fakeAdapter struct {
	mu sync.Mutex

	// sources maps a league to successive responses; the last one repeats.
	sources   map[string][][]team
	sourceErr map[string]error
	records   map[string][]record
	recordErr map[string]error

	// gates blocks FetchRecords for a team until the channel is closed.
	gates map[string]chan struct{}

	sourceCalls map[string]int
	recordCalls []string
}

func newFakeAdapter() *fakeAdapter {
	return &fakeAdapter{
		sources:     make(map[string][][]team),
		sourceErr:   make(map[string]error),
		records:     make(map[string][]record),
		recordErr:   make(map[string]error),
		gates:       make(map[string]chan struct{}),
		sourceCalls: make(map[string]int),
	}
}

func (f *fakeAdapter) Name() string {
	return "fake"
}

func (f *fakeAdapter) FetchSource(ctx context.Context, source string) ([]team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	call := f.sourceCalls[source]
	f.sourceCalls[source]++

	if err := f.sourceErr[source]; err != nil {
		return nil, err
	}
	responses := f.sources[source]
	if len(responses) == 0 {
		return nil, nil
	}
	if call >= len(responses) {
		call = len(responses) - 1
	}
	return responses[call], nil
}

func (f *fakeAdapter) EntityKey(t team) string {
	return teamKey(t)
}

func (f *fakeAdapter) FetchRecords(ctx context.Context, t team) ([]record, error) {
	f.mu.Lock()
	gate := f.gates[t.ID]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.recordCalls = append(f.recordCalls, t.ID)
	if err := f.recordErr[t.ID]; err != nil {
		return nil, err
	}
	return f.records[t.ID], nil
}

func (f *fakeAdapter) RecordKey(r record) string {
	return recordKey(r)
}

func (f *fakeAdapter) calls(source string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sourceCalls[source]
}

// makeTeams builds n teams with ids prefix-0..prefix-(n-1).
func makeTeams(prefix, league string, n int) []team {
	out := make([]team, n)
	for i := range out {
		out[i] = team{
			ID:     fmt.Sprintf("%s-%d", prefix, i),
			Name:   fmt.Sprintf("%s Team %d", prefix, i),
			League: league,
		}
	}
	return out
}

func ids[T any](items []T, key func(T) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = key(item)
	}
	return out
}
