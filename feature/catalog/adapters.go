package catalog

import (
	"context"
	"strings"

	"sports-catalog/core/aggregate"
	"sports-catalog/core/upstream"
)

const (
	KindTeams   = "teams"
	KindPlayers = "players"
	KindMatches = "matches"
)

// Kinds lists the browsable kinds in display order.
var Kinds = []string{KindTeams, KindPlayers, KindMatches}

// TeamKey identifies a team by id, else by normalized name.
func TeamKey(t upstream.Team) string {
	return aggregate.Identity(t.ID, aggregate.NormalizeName(t.Name))
}

// PlayerKey identifies a player by id, else by name and team.
func PlayerKey(p upstream.Player) string {
	return aggregate.Identity(p.ID, aggregate.Composite(p.Name, p.Team))
}

// MatchKey identifies a match by id, else by event title and date.
func MatchKey(m upstream.Match) string {
	return aggregate.Identity(m.ID, aggregate.Composite(m.Event, m.Date))
}

// teamSource lists the teams of a league. It is shared by every adapter.
type teamSource struct {
	client upstream.Client
}

func (s teamSource) FetchSource(ctx context.Context, league string) ([]upstream.Team, error) {
	return s.client.FetchTeamsByLeague(ctx, league)
}

func (s teamSource) EntityKey(t upstream.Team) string {
	return TeamKey(t)
}

// teamsAdapter browses the teams themselves: every team is its own single leaf.
type teamsAdapter struct {
	teamSource
}

func (a teamsAdapter) Name() string { return KindTeams }

func (a teamsAdapter) FetchRecords(_ context.Context, t upstream.Team) ([]upstream.Team, error) {
	return []upstream.Team{t}, nil
}

func (a teamsAdapter) RecordKey(t upstream.Team) string { return TeamKey(t) }

// playersAdapter browses the squads of the resolved teams.
type playersAdapter struct {
	teamSource
}

func (a playersAdapter) Name() string { return KindPlayers }

func (a playersAdapter) FetchRecords(ctx context.Context, t upstream.Team) ([]upstream.Player, error) {
	if t.ID == "" {
		return nil, nil
	}
	players, err := a.client.FetchPlayersByTeam(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	for i := range players {
		if players[i].TeamID == "" {
			players[i].TeamID = t.ID
		}
		if players[i].Team == "" {
			players[i].Team = t.Name
		}
	}
	return players, nil
}

func (a playersAdapter) RecordKey(p upstream.Player) string { return PlayerKey(p) }

// matchesAdapter browses the upcoming events of the resolved teams.
type matchesAdapter struct {
	teamSource
}

func (a matchesAdapter) Name() string { return KindMatches }

func (a matchesAdapter) FetchRecords(ctx context.Context, t upstream.Team) ([]upstream.Match, error) {
	if t.ID == "" {
		return nil, nil
	}
	matches, err := a.client.FetchMatchesByTeam(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	for i := range matches {
		if matches[i].TeamID == "" {
			matches[i].TeamID = t.ID
		}
	}
	return matches, nil
}

func (a matchesAdapter) RecordKey(m upstream.Match) string { return MatchKey(m) }

// badgeJoiner resolves missing match badges by looking teams up by name.
type badgeJoiner struct {
	client upstream.Client
}

func (j badgeJoiner) MissingNames(m upstream.Match) []string {
	var names []string
	if m.HomeBadge == nil && strings.TrimSpace(m.HomeTeam) != "" {
		names = append(names, m.HomeTeam)
	}
	if m.AwayBadge == nil && strings.TrimSpace(m.AwayTeam) != "" {
		names = append(names, m.AwayTeam)
	}
	return names
}

func (j badgeJoiner) Lookup(ctx context.Context, name string) (string, error) {
	teams, err := j.client.FetchTeamByName(ctx, name)
	if err != nil {
		return "", err
	}
	for _, t := range teams {
		if t.Badge != "" {
			return t.Badge, nil
		}
	}
	return "", nil
}

func (j badgeJoiner) Apply(m upstream.Match, resolve func(string) (string, bool)) (upstream.Match, bool) {
	changed := false
	if m.HomeBadge == nil {
		if badge, ok := resolve(m.HomeTeam); ok {
			m.HomeBadge = &badge
			changed = true
		}
	}
	if m.AwayBadge == nil {
		if badge, ok := resolve(m.AwayTeam); ok {
			m.AwayBadge = &badge
			changed = true
		}
	}
	return m, changed
}

var (
	_ aggregate.Adapter[upstream.Team, upstream.Team]   = teamsAdapter{}
	_ aggregate.Adapter[upstream.Team, upstream.Player] = playersAdapter{}
	_ aggregate.Adapter[upstream.Team, upstream.Match]  = matchesAdapter{}
	_ aggregate.Joiner[upstream.Match]                  = badgeJoiner{}
)
