// Package config provides configuration management for the games-in-common service.
//
// Values come from, in increasing precedence: the `default` struct tags, an optional
// games-in-common.yaml in the config directory, a .env file loaded through godotenv, and
// the process environment. Viper does the merging; LoadConfig validates the result and
// reports every invalid setting at once.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, player cap)
//   - Steam: Web API key, endpoints, rate limit and worker count
//   - Cache: Redis connection details
//   - Catalog: cache lifetimes per entity
//   - Storage: S3/MinIO credentials, bucket and snapshot retention
//   - Log: Logging level and format
//   - Database: optional MySQL or SQLite connection for lookup history
//
// Environment variables map to nested keys by replacing dots with underscores,
// e.g. STEAM_API_KEY sets steam.api_key and CATALOG_GAMES_TTL sets catalog.games_ttl.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
