package cachestore

// Config holds configuration for the Redis connection.
type Config struct {
	// Addr is host:port of the Redis server.
	Addr string `mapstructure:"addr" default:"localhost:6379"`
	// Password for AUTH. Empty disables it.
	Password string `mapstructure:"password" default:""`
	// DB is the logical database index.
	DB int `mapstructure:"db" default:"0"`
	// TimeoutSeconds bounds dial, read and write operations.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"5"`
}
