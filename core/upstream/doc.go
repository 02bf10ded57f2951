// Package upstream is the client of the public sports catalog API (TheSportsDB v1).
//
// # Endpoints
//
//	search_all_teams.php?l=<league>   teams of a league
//	searchteams.php?t=<name>          teams by display name
//	lookupteam.php?id=<id>            one team
//	lookup_all_players.php?id=<id>    squad of a team
//	eventsnext.php?id=<id>            upcoming events of a team
//
// # Request Path
//
// Each call is served from the response cache when possible. Misses for the same URL
// are collapsed with singleflight, pass through a circuit breaker that opens after a run
// of consecutive failures, and finally wait on a token bucket before hitting the network.
//
// A null list in a response (the API's way of saying "nothing") decodes to an empty
// slice, not an error. Only FetchTeamByID reports ErrNotFound.
package upstream
