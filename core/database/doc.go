// Package database handles the optional database connection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections based on
// the application's configuration. The database only backs lookup history; the service
// runs without it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
