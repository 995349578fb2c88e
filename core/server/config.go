package server

// DefaultMaxPlayers is used when MaxPlayers is not set.
const DefaultMaxPlayers = 32

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// MaxPlayers caps the number of identifiers accepted in one request.
	MaxPlayers int `mapstructure:"max_players" default:"32"`
}

// PlayerLimit returns the effective per-request player cap.
func (c Config) PlayerLimit() int {
	if c.MaxPlayers <= 0 {
		return DefaultMaxPlayers
	}
	return c.MaxPlayers
}
