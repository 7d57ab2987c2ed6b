// Package database handles optional database connections and schema inspection.
//
// By default the demo keeps its items in memory (driver "memory") and never
// touches this package. Setting DATABASE_DRIVER to mysql, postgres or sqlite
// makes the items feature persist through GORM instead.
//
// # Connect
//
// Connect builds the dialector for the configured driver, opens it with GORM's
// logger silenced, tunes the pool, and pings with the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns back `hotwire-demo migrate --check`, which
// reports whether the items table matches what the application expects.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "items", []string{"id", "name"})
package database
