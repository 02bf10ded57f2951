package catalog

import (
	"context"
	"time"

	"sports-catalog/core/upstream"
	"sports-catalog/core/upstream/mocks"
	"sports-catalog/feature/selection"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func testConfig() Config {
	return Config{
		DefaultLeagues:       "English Premier League, La Liga",
		TeamCap:              8,
		BatchSize:            2,
		Concurrency:          2,
		EmptyRetries:         3,
		TeamsPageSize:        12,
		PlayersPageSize:      16,
		MatchesPageSize:      12,
		EnrichMaxNames:       50,
		EnrichTimeoutSeconds: 5,
		MaxSessions:          10,
		SessionTTLMinutes:    30,
	}
}

func ptr(s string) *string { return &s }

var (
	arsenal   = upstream.Team{ID: "1", Name: "Arsenal", League: "English Premier League", Badge: "arsenal.png"}
	chelsea   = upstream.Team{ID: "2", Name: "Chelsea", League: "English Premier League", Badge: "chelsea.png"}
	barcelona = upstream.Team{ID: "3", Name: "Barcelona", League: "La Liga", Badge: "barca.png"}
)

// newClient returns an upstream mock serving two leagues.
func newClient() *mocks.Client {
	client := new(mocks.Client)
	client.On("FetchTeamsByLeague", mock.Anything, "English Premier League").
		Return([]upstream.Team{arsenal, chelsea}, nil)
	client.On("FetchTeamsByLeague", mock.Anything, "La Liga").
		Return([]upstream.Team{barcelona, arsenal}, nil)
	return client
}

type fakeSelection struct {
	saved map[string][]string
	err   error
}

func (f fakeSelection) Read(_ context.Context, owner string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	leagues, ok := f.saved[owner]
	if !ok {
		return nil, selection.ErrNotFound
	}
	return leagues, nil
}

func newTestService(client upstream.Client, sel SelectionReader, exporter *Exporter) *Service {
	return NewService(client, sel, exporter, testConfig(), zap.NewNop())
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }
