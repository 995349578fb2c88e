package aggregate

import (
	"games-in-common/core/catalog"
	"games-in-common/core/steam"
)

// Intersect returns the apps present in every library, folding left to right.
// No libraries yields an empty result.
func Intersect(libs ...catalog.Library) catalog.Library {
	if len(libs) == 0 {
		return catalog.Library{}
	}
	acc := libs[0].Clone()
	for _, lib := range libs[1:] {
		for id := range acc {
			if !lib.Has(id) {
				delete(acc, id)
			}
		}
	}
	return acc
}

// AllButOne returns, for each player, the apps every other player owns but that player
// does not. It is only meaningful for more than two players; with fewer it returns nil.
func AllButOne(players []steam.PlayerID, libs map[steam.PlayerID]catalog.Library) map[steam.PlayerID]catalog.Library {
	if len(players) <= 2 {
		return nil
	}

	out := make(map[steam.PlayerID]catalog.Library, len(players))
	for i, odd := range players {
		others := make([]catalog.Library, 0, len(players)-1)
		for j, p := range players {
			if j != i {
				others = append(others, libs[p])
			}
		}
		missing := Intersect(others...)
		for id := range missing {
			if libs[odd].Has(id) {
				delete(missing, id)
			}
		}
		out[odd] = missing
	}
	return out
}

// Union merges id lists, dropping duplicates. The result is sorted.
func Union(lists ...[]steam.PlayerID) []steam.PlayerID {
	seen := make(map[steam.PlayerID]struct{})
	var out []steam.PlayerID
	for _, list := range lists {
		for _, id := range list {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	sortPlayers(out)
	return out
}
