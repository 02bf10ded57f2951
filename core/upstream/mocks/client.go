package mocks

import (
	"context"

	"sports-catalog/core/upstream"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of upstream.Client
type Client struct {
	mock.Mock
}

func (m *Client) FetchTeamsByLeague(ctx context.Context, league string) ([]upstream.Team, error) {
	args := m.Called(ctx, league)
	teams, _ := args.Get(0).([]upstream.Team)
	return teams, args.Error(1)
}

func (m *Client) FetchTeamByName(ctx context.Context, name string) ([]upstream.Team, error) {
	args := m.Called(ctx, name)
	teams, _ := args.Get(0).([]upstream.Team)
	return teams, args.Error(1)
}

func (m *Client) FetchTeamByID(ctx context.Context, id string) (*upstream.Team, error) {
	args := m.Called(ctx, id)
	team, _ := args.Get(0).(*upstream.Team)
	return team, args.Error(1)
}

func (m *Client) FetchPlayersByTeam(ctx context.Context, teamID string) ([]upstream.Player, error) {
	args := m.Called(ctx, teamID)
	players, _ := args.Get(0).([]upstream.Player)
	return players, args.Error(1)
}

func (m *Client) FetchMatchesByTeam(ctx context.Context, teamID string) ([]upstream.Match, error) {
	args := m.Called(ctx, teamID)
	matches, _ := args.Get(0).([]upstream.Match)
	return matches, args.Error(1)
}
