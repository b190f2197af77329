// Package database handles database connections for the collection server.
//
// It provides a thin wrapper around GORM (Go Object Relational Mapping) that
// configures MySQL connections for production and sqlite connections for
// tests based on the application's configuration.
//
// # Connect
//
// The Connect function establishes a connection using the configured driver.
// For MySQL it applies connection pool limits and verifies the connection
// with a ping; for sqlite it opens the given DSN directly (":memory:" is
// commonly used by tests).
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
