// Package favourites lets a session mark teams as favourites.
//
// Favourites are stored with GORM in the favourite_teams table, one row per
// (owner, team). Toggling an unknown team looks it up upstream first so the row
// carries the team's name, league and badge. Without a database connection the
// feature is disabled and its routes are not registered.
//
// # Routes
//
//	GET  /favourites          favourites of the session
//	POST /favourites/toggle   body {"team_id": "..."}
package favourites
