package steam

import (
	"context"
	"errors"
	"regexp"
	"strconv"
)

// ErrNoMatch is returned when Steam answered but had nothing for the query.
var ErrNoMatch = errors.New("no match")

// MaxSummariesPerRequest is the GetPlayerSummaries id limit.
const MaxSummariesPerRequest = 100

var canonicalPattern = regexp.MustCompile(`^\d{17}$`)

// PlayerID is a canonical 17-digit Steam ID.
type PlayerID string

// IsCanonical reports whether s has the canonical 17-digit form.
func IsCanonical(s string) bool {
	return canonicalPattern.MatchString(s)
}

func (id PlayerID) String() string {
	return string(id)
}

// AppID identifies a game or application in the Steam catalog.
type AppID int

func (id AppID) String() string {
	return strconv.Itoa(int(id))
}

// App is one entry of the Steam app list.
type App struct {
	AppID AppID  `json:"appid"`
	Name  string `json:"name"`
}

// API is the set of remote operations used by the catalog and the seeder.
type API interface {
	ResolveVanityURL(ctx context.Context, vanity string) (PlayerID, error)
	GetOwnedGames(ctx context.Context, id PlayerID) ([]AppID, error)
	GetFriendList(ctx context.Context, id PlayerID) ([]PlayerID, error)
	GetPlayerSummaries(ctx context.Context, ids []PlayerID) (map[PlayerID]string, error)
	GetAppName(ctx context.Context, appID AppID) (string, error)
	GetAppList(ctx context.Context) ([]App, error)
}

type vanityResponse struct {
	Response struct {
		SteamID string `json:"steamid"`
		Success int    `json:"success"`
		Message string `json:"message"`
	} `json:"response"`
}

type ownedGamesResponse struct {
	Response struct {
		GameCount int `json:"game_count"`
		Games     []struct {
			AppID           AppID `json:"appid"`
			PlaytimeForever int   `json:"playtime_forever"`
		} `json:"games"`
	} `json:"response"`
}

type friendListResponse struct {
	FriendsList struct {
		Friends []struct {
			SteamID      PlayerID `json:"steamid"`
			Relationship string   `json:"relationship"`
			FriendSince  int64    `json:"friend_since"`
		} `json:"friends"`
	} `json:"friendslist"`
}

type playerSummariesResponse struct {
	Response struct {
		Players []struct {
			SteamID     PlayerID `json:"steamid"`
			PersonaName string   `json:"personaname"`
		} `json:"players"`
	} `json:"response"`
}

// AppListDocument is the GetAppList v2 payload. It is also the snapshot format kept in
// object storage.
type AppListDocument struct {
	AppList struct {
		Apps []App `json:"apps"`
	} `json:"applist"`
}
