// Package database handles the optional MySQL connection used for favourites.
//
// It provides a wrapper around GORM to configure MySQL connections based on the
// application's configuration. The catalog itself never needs a database; when the
// connection fails the server keeps running and the favourites feature stays disabled.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns back the integrity check that verifies the
// favourites table has the columns the model expects.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Database unavailable", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "favourite_teams", []string{"owner", "team_id"})
package database
