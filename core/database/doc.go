// Package database handles the optional SQL connection and schema inspection.
//
// It wraps GORM to configure MySQL (or SQLite, for local runs and tests) connections based
// on the application's configuration. The database is one of the places the canonical
// location registry can be read from; it never stores availability.
//
// # Connect
//
// Connect establishes a connection and verifies it with a bounded ping.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns so the integrity feature can verify that the
// registry table matches the location model.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Optional database connection failed", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "library_locations")
package database
