package aggregate

import (
	"context"
	"sort"

	"games-in-common/core/catalog"
	"games-in-common/core/steam"
)

// UnknownNickname is shown for friends whose nickname could not be fetched.
const UnknownNickname = "<unknown>"

// Source is the data the engine reads. It is satisfied by *catalog.Catalog.
type Source interface {
	NicknamesFor(ctx context.Context, ids []steam.PlayerID) map[steam.PlayerID]string
	GamesForPlayer(ctx context.Context, id steam.PlayerID) (catalog.Library, error)
	FriendsOfPlayer(ctx context.Context, id steam.PlayerID) ([]steam.PlayerID, error)
	GameName(ctx context.Context, id steam.AppID) (string, bool)
}

// Player is a resolved player with an optional nickname.
type Player struct {
	ID       steam.PlayerID `json:"steam_id"`
	Nickname string         `json:"nickname,omitempty"`
}

// Display renders the player as "nick (id)", or just the id without a nickname.
func (p Player) Display() string {
	if p.Nickname == "" {
		return p.ID.String()
	}
	return p.Nickname + " (" + p.ID.String() + ")"
}

// Name returns the nickname, or the id without one.
func (p Player) Name() string {
	if p.Nickname == "" {
		return p.ID.String()
	}
	return p.Nickname
}

// Game is an app with its resolved name. Name falls back to the numeric id.
type Game struct {
	AppID steam.AppID `json:"app_id"`
	Name  string      `json:"name"`
}

// CommonGamesResult is the outcome of CommonGames.
type CommonGamesResult struct {
	// Players in input order.
	Players []Player `json:"players"`
	// CommonToAll is the set of apps every player owns.
	CommonToAll catalog.Library `json:"-"`
	// CommonToAllButOne maps each player to the apps everyone else owns but they do not.
	// It is nil for two players or fewer.
	CommonToAllButOne map[steam.PlayerID]catalog.Library `json:"-"`
	// Games is CommonToAll with names, sorted by name.
	Games []Game `json:"games"`
	// AllButOne is CommonToAllButOne with names, in player order, omitting empty entries.
	AllButOne []MissingGames `json:"all_but_one,omitempty"`
}

// MissingGames lists the games everyone but Player owns.
type MissingGames struct {
	Player Player `json:"player"`
	Games  []Game `json:"games"`
}

// Friend is one entry of a friends listing.
type Friend struct {
	ID       steam.PlayerID `json:"steam_id"`
	Nickname string         `json:"nickname"`
}

// FriendsResult is the outcome of FriendsOf.
type FriendsResult struct {
	// Players are the players whose friends were requested, in input order.
	Players []Player `json:"players"`
	// Friends is the union of all readable friend lists, sorted by id.
	Friends []Friend `json:"friends"`
}

func sortPlayers(ids []steam.PlayerID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

func sortGames(games []Game) {
	sort.Slice(games, func(i, j int) bool {
		if games[i].Name != games[j].Name {
			return games[i].Name < games[j].Name
		}
		return games[i].AppID < games[j].AppID
	})
}
