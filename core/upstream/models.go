package upstream

// Team is a club as listed by a league.
type Team struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	League      string `json:"league"`
	Badge       string `json:"badge,omitempty"`
	Country     string `json:"country,omitempty"`
	Stadium     string `json:"stadium,omitempty"`
	Description string `json:"description,omitempty"`
	FormedYear  int    `json:"formed_year,omitempty"`
}

// Player is a squad member of a team.
type Player struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TeamID      string `json:"team_id"`
	Team        string `json:"team"`
	Position    string `json:"position,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	Thumb       string `json:"thumb,omitempty"`
	Cutout      string `json:"cutout,omitempty"`
}

// Match is an upcoming event of a team. Badges are nil until resolved.
type Match struct {
	ID        string  `json:"id"`
	Event     string  `json:"event"`
	League    string  `json:"league,omitempty"`
	Date      string  `json:"date,omitempty"`
	Time      string  `json:"time,omitempty"`
	HomeTeam  string  `json:"home_team"`
	AwayTeam  string  `json:"away_team"`
	HomeBadge *string `json:"home_badge"`
	AwayBadge *string `json:"away_badge"`
	Thumb     string  `json:"thumb,omitempty"`
	TeamID    string  `json:"team_id"`
}

// Wire shapes of the v1 JSON API. Identifiers are decoded loosely because the API
// mixes strings and numbers across endpoints.

type teamsEnvelope struct {
	Teams []rawTeam `json:"teams"`
}

type rawTeam struct {
	IDTeam           any    `json:"idTeam"`
	StrTeam          string `json:"strTeam"`
	StrLeague        string `json:"strLeague"`
	StrBadge         string `json:"strBadge"`
	StrTeamBadge     string `json:"strTeamBadge"`
	StrCountry       string `json:"strCountry"`
	StrStadium       string `json:"strStadium"`
	StrDescriptionEN string `json:"strDescriptionEN"`
	IntFormedYear    any    `json:"intFormedYear"`
}

type playersEnvelope struct {
	Player []rawPlayer `json:"player"`
}

type rawPlayer struct {
	IDPlayer       any    `json:"idPlayer"`
	StrPlayer      string `json:"strPlayer"`
	IDTeam         any    `json:"idTeam"`
	StrTeam        string `json:"strTeam"`
	StrPosition    string `json:"strPosition"`
	StrNationality string `json:"strNationality"`
	StrThumb       string `json:"strThumb"`
	StrCutout      string `json:"strCutout"`
}

type eventsEnvelope struct {
	Events []rawEvent `json:"events"`
}

type rawEvent struct {
	IDEvent          any    `json:"idEvent"`
	StrEvent         string `json:"strEvent"`
	StrLeague        string `json:"strLeague"`
	DateEvent        string `json:"dateEvent"`
	StrTime          string `json:"strTime"`
	StrHomeTeam      string `json:"strHomeTeam"`
	StrAwayTeam      string `json:"strAwayTeam"`
	StrHomeTeamBadge string `json:"strHomeTeamBadge"`
	StrAwayTeamBadge string `json:"strAwayTeamBadge"`
	StrThumb         string `json:"strThumb"`
}
