// Package integrity provides health checks of the service's own infrastructure.
//
// # Checks Provided
//
//   - Structure: the snapshot folders (snapshots/teams, snapshots/players,
//     snapshots/matches) exist in the storage bucket. Fixing creates the bucket
//     when needed and a marker object per missing folder.
//   - Database: the favourites table exists with every column of its model.
//     Fixing runs the GORM auto-migration.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/database : Runs database check (supports ?fix=true).
package integrity
