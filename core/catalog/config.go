package catalog

import "time"

// Config holds cache lifetimes per entity.
type Config struct {
	// GamesTTL is how long an owned-games set stays cached.
	GamesTTL time.Duration `mapstructure:"games_ttl" default:"15m"`
	// NicknameTTL is how long a nickname stays cached.
	NicknameTTL time.Duration `mapstructure:"nickname_ttl" default:"72h"`
	// FriendsTTL is how long a friend list stays cached.
	FriendsTTL time.Duration `mapstructure:"friends_ttl" default:"15m"`
	// VanityTTL is how long a vanity name mapping stays cached. Zero keeps it forever.
	VanityTTL time.Duration `mapstructure:"vanity_ttl" default:"0s"`
}

// DefaultConfig returns the lifetimes used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		GamesTTL:    900 * time.Second,
		NicknameTTL: 3 * 24 * time.Hour,
		FriendsTTL:  900 * time.Second,
	}
}
