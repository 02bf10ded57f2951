package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sports-catalog/core/metrics"
	"sports-catalog/core/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// StatusError is returned for non-200 upstream responses.
type StatusError struct {
	Endpoint string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s returned %d: %s", e.Endpoint, e.Code, e.Body)
}

// do performs one rate-limited GET against the API.
func (c *HTTPClient) do(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for rate limiter: %w", err)
	}

	u := strings.TrimRight(c.cfg.BaseURL, "/") + "/" + url.PathEscape(c.cfg.APIKey) + "/" + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Endpoint: endpoint, Code: resp.StatusCode, Body: truncate(body, 200)}
	}

	return body, nil
}

// fetch loads an endpoint and decodes it into out, recording metrics under operation.
func (c *HTTPClient) fetch(ctx context.Context, operation, endpoint string, params url.Values, out any) error {
	start := time.Now()

	body, err := c.get(ctx, endpoint, params)
	if err != nil {
		outcome := "error"
		if isRejected(err) {
			outcome = "rejected"
		}
		metrics.RecordUpstream(operation, outcome, time.Since(start))
		c.log.Debug("Upstream request failed",
			zap.String("operation", operation),
			zap.String("params", params.Encode()),
			zap.Error(err),
		)
		return err
	}

	// The API answers an empty body for unknown ids on some endpoints.
	if len(strings.TrimSpace(string(body))) == 0 {
		metrics.RecordUpstream(operation, "ok", time.Since(start))
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		metrics.RecordUpstream(operation, "error", time.Since(start))
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}

	metrics.RecordUpstream(operation, "ok", time.Since(start))
	return nil
}

// FetchTeamsByLeague lists the teams of a league.
func (c *HTTPClient) FetchTeamsByLeague(ctx context.Context, league string) ([]Team, error) {
	var env teamsEnvelope
	if err := c.fetch(ctx, "teams_by_league", "search_all_teams.php", url.Values{"l": {league}}, &env); err != nil {
		return nil, err
	}
	return convertTeams(env.Teams), nil
}

// FetchTeamByName searches teams by display name.
func (c *HTTPClient) FetchTeamByName(ctx context.Context, name string) ([]Team, error) {
	var env teamsEnvelope
	if err := c.fetch(ctx, "team_by_name", "searchteams.php", url.Values{"t": {name}}, &env); err != nil {
		return nil, err
	}
	return convertTeams(env.Teams), nil
}

// FetchTeamByID looks up a single team. It returns ErrNotFound when the id is unknown.
func (c *HTTPClient) FetchTeamByID(ctx context.Context, id string) (*Team, error) {
	var env teamsEnvelope
	if err := c.fetch(ctx, "team_by_id", "lookupteam.php", url.Values{"id": {id}}, &env); err != nil {
		return nil, err
	}
	teams := convertTeams(env.Teams)
	if len(teams) == 0 {
		return nil, ErrNotFound
	}
	return &teams[0], nil
}

// FetchPlayersByTeam lists the squad of a team.
func (c *HTTPClient) FetchPlayersByTeam(ctx context.Context, teamID string) ([]Player, error) {
	var env playersEnvelope
	if err := c.fetch(ctx, "players_by_team", "lookup_all_players.php", url.Values{"id": {teamID}}, &env); err != nil {
		return nil, err
	}

	players := make([]Player, 0, len(env.Player))
	for _, p := range env.Player {
		player := Player{
			ID:          utils.ToString(p.IDPlayer),
			Name:        strings.TrimSpace(p.StrPlayer),
			TeamID:      utils.ToString(p.IDTeam),
			Team:        p.StrTeam,
			Position:    p.StrPosition,
			Nationality: p.StrNationality,
			Thumb:       p.StrThumb,
			Cutout:      p.StrCutout,
		}
		if player.TeamID == "" {
			player.TeamID = teamID
		}
		players = append(players, player)
	}
	return players, nil
}

// FetchMatchesByTeam lists the upcoming events of a team.
func (c *HTTPClient) FetchMatchesByTeam(ctx context.Context, teamID string) ([]Match, error) {
	var env eventsEnvelope
	if err := c.fetch(ctx, "matches_by_team", "eventsnext.php", url.Values{"id": {teamID}}, &env); err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(env.Events))
	for _, e := range env.Events {
		matches = append(matches, Match{
			ID:        utils.ToString(e.IDEvent),
			Event:     strings.TrimSpace(e.StrEvent),
			League:    e.StrLeague,
			Date:      e.DateEvent,
			Time:      e.StrTime,
			HomeTeam:  e.StrHomeTeam,
			AwayTeam:  e.StrAwayTeam,
			HomeBadge: optional(e.StrHomeTeamBadge),
			AwayBadge: optional(e.StrAwayTeamBadge),
			Thumb:     e.StrThumb,
			TeamID:    teamID,
		})
	}
	return matches, nil
}

func convertTeams(raw []rawTeam) []Team {
	teams := make([]Team, 0, len(raw))
	for _, t := range raw {
		badge := t.StrBadge
		if badge == "" {
			badge = t.StrTeamBadge
		}
		teams = append(teams, Team{
			ID:          utils.ToString(t.IDTeam),
			Name:        strings.TrimSpace(t.StrTeam),
			League:      t.StrLeague,
			Badge:       badge,
			Country:     t.StrCountry,
			Stadium:     t.StrStadium,
			Description: t.StrDescriptionEN,
			FormedYear:  utils.ToInt(t.IntFormedYear),
		})
	}
	return teams
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// truncate returns a shortened body for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
