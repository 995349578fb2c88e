package history

import "time"

// Lookup kinds.
const (
	KindCommonGames = "common_games"
	KindFriends     = "friends"
)

// LookupRecord is one completed lookup.
type LookupRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Kind        string    `gorm:"size:32;index" json:"kind"`
	Players     string    `gorm:"size:2048" json:"players"`
	PlayerCount int       `json:"player_count"`
	ResultCount int       `json:"result_count"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

// RecentPlayer is a player that appeared in at least one lookup.
type RecentPlayer struct {
	SteamID     string    `gorm:"primaryKey;size:17" json:"steam_id"`
	Nickname    string    `gorm:"size:255" json:"nickname"`
	LookupCount int       `json:"lookup_count"`
	LastSeenAt  time.Time `gorm:"index" json:"last_seen_at"`
}
