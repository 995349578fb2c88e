package catalog

import "games-in-common/core/steam"

// Key prefixes are shared with existing deployments and must not change.
const (
	appNamePrefix  = "appid:"
	vanityPrefix   = "steamIdFor:"
	gamesPrefix    = "gamesOwnedBy:"
	nicknamePrefix = "nicknameOf:"
	friendsPrefix  = "friendsOf:"
)

// emptyLibraryMember marks a cached library that Steam returned empty.
const emptyLibraryMember = "none"

// Entity kinds used as metric labels.
const (
	kindAppName  = "app_name"
	kindVanity   = "steam_id"
	kindGames    = "owned_games"
	kindNickname = "nickname"
	kindFriends  = "friends"
)

func appNameKey(id steam.AppID) string { return appNamePrefix + id.String() }
func vanityKey(vanity string) string { return vanityPrefix + vanity }
func gamesKey(id steam.PlayerID) string { return gamesPrefix + id.String() }
func nicknameKey(id steam.PlayerID) string { return nicknamePrefix + id.String() }
func friendsKey(id steam.PlayerID) string { return friendsPrefix + id.String() }
