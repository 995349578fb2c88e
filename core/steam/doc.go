// Package steam is the stateless adapter for the Steam Web API and store pages.
//
// It issues one HTTP request per call and parses each endpoint into an explicit response
// schema. There is no caching and no concurrency policy here: the catalog package caches,
// the workerpool package fans out.
//
// # Operations
//
//   - ResolveVanityURL: vanity name -> 17-digit Steam ID (ISteamUser/ResolveVanityURL).
//   - GetOwnedGames: owned app ids for a player (IPlayerService/GetOwnedGames).
//   - GetFriendList: friend Steam IDs for a player (ISteamUser/GetFriendList).
//   - GetPlayerSummaries: nicknames for up to 100 players (ISteamUser/GetPlayerSummaries).
//   - GetAppName: game name scraped from the store page <title>, used when the catalog
//     has no name for an app.
//   - GetAppList: the full app id -> name list (ISteamApps/GetAppList), used for seeding.
//
// # Result Semantics
//
// Transport failures, unexpected status codes and malformed payloads are returned as
// failure.RemoteUnavailableError. A well-formed response without data is not an error:
// GetOwnedGames returns an empty slice for a private or empty library, GetFriendList
// returns an empty slice for a private friend list (Steam answers 401), and
// ResolveVanityURL / GetAppName return ErrNoMatch.
//
// Every request waits on a shared token-bucket limiter (golang.org/x/time/rate) and is
// bounded by the client timeout.
package steam
