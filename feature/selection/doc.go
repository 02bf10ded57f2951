// Package selection persists the league selection each session browses.
//
// Selections live in BadgerDB under "selection:<owner>" as JSON. The catalog reads them
// when a reset request carries no leagues of its own; owners without a saved selection
// get the configured default leagues.
//
// # Routes
//
//	GET /selection   saved selection (or defaults)
//	PUT /selection   replace the selection, body {"leagues": [...]}
package selection
