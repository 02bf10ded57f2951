// Package catalog exposes the aggregation engines over HTTP as browsing sessions.
//
// Every (session, kind) pair owns one engine. Kinds are:
//
//   - teams: the teams of the selected leagues, uncapped, one page of teams per batch
//   - players: the squads of the first TeamCap resolved teams
//   - matches: the upcoming events of the first TeamCap resolved teams, with missing
//     badges resolved in the background by team name
//
// A reset picks its leagues from the request body, then the session's saved selection,
// then the configured defaults. Idle sessions expire after SessionTTLMinutes and the
// least recently used session is evicted when MaxSessions is reached.
//
// # Routes
//
//	POST /catalog/:kind/reset           new generation
//	POST /catalog/:kind/more            reveal or fetch the next page
//	GET  /catalog/:kind                 visible window
//	GET  /catalog/:kind/search?q=       visible window filtered by name
//	POST /catalog/:kind/enrich          synchronous enrichment pass
//	POST /catalog/:kind/export          write the window to object storage
//	GET  /catalog/:kind/exports         list snapshots
//	GET  /catalog/:kind/exports/:name   download a snapshot
//	GET  /teams/:id                     team details
package catalog
