package aggregate

import (
	"context"

	"games-in-common/core/catalog"
	"games-in-common/core/failure"
	"games-in-common/core/steam"
	"games-in-common/core/workerpool"

	"go.uber.org/zap"
)

// Engine runs aggregations against a Source.
type Engine struct {
	src     Source
	workers int
	logger  *zap.Logger
}

// New creates an Engine. workers bounds the concurrent lookups of every batch.
func New(src Source, workers int, logger *zap.Logger) *Engine {
	return &Engine{src: src, workers: workers, logger: logger}
}

// CommonGames computes the games owned by all players and, for more than two players, the
// games owned by everyone but one. Any player whose library cannot be fetched or is empty
// aborts the whole computation with a *failure.MultiFailure listing every such player.
func (e *Engine) CommonGames(ctx context.Context, ids []steam.PlayerID) (*CommonGamesResult, error) {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil, failure.ErrNoPlayers
	}

	players := e.players(ctx, ids)
	display := make(map[steam.PlayerID]string, len(players))
	for _, p := range players {
		display[p.ID] = p.Display()
	}

	pool := workerpool.New(e.workers, func(ctx context.Context, id steam.PlayerID) (catalog.Library, error) {
		lib, err := e.src.GamesForPlayer(ctx, id)
		if err != nil {
			return nil, failure.Remote("GetOwnedGames", display[id], err)
		}
		if len(lib) == 0 {
			return nil, &failure.PrivateOwnedGamesError{Player: display[id]}
		}
		return lib, nil
	})

	batch, err := pool.Run(ctx, ids)
	if err != nil {
		return nil, err
	}
	if err := batch.Err(); err != nil {
		e.logger.Info("Aborting common games lookup",
			zap.Int("players", len(ids)),
			zap.Int("failures", len(batch.Failures())))
		return nil, err
	}

	libs := make(map[steam.PlayerID]catalog.Library, len(ids))
	for _, r := range batch.Results {
		libs[r.Input] = r.Output
	}
	ordered := make([]catalog.Library, len(ids))
	for i, id := range ids {
		ordered[i] = libs[id]
	}

	result := &CommonGamesResult{
		Players:           players,
		CommonToAll:       Intersect(ordered...),
		CommonToAllButOne: AllButOne(ids, libs),
	}

	wanted := result.CommonToAll.Clone()
	for _, missing := range result.CommonToAllButOne {
		for id := range missing {
			wanted[id] = struct{}{}
		}
	}
	names := e.gameNames(ctx, wanted.Sorted())

	result.Games = toGames(result.CommonToAll, names)
	if result.CommonToAllButOne != nil {
		for _, p := range players {
			missing := result.CommonToAllButOne[p.ID]
			if len(missing) == 0 {
				continue
			}
			result.AllButOne = append(result.AllButOne, MissingGames{
				Player: p,
				Games:  toGames(missing, names),
			})
		}
	}

	e.logger.Debug("Computed common games",
		zap.Int("players", len(ids)),
		zap.Int("common", len(result.CommonToAll)))
	return result, nil
}

// FriendsOf lists the union of the friends of all players with their nicknames. Players
// whose friend list fails or is empty are reported in the returned error, which is a
// *failure.MultiFailure, while the result still holds every friend that could be read.
func (e *Engine) FriendsOf(ctx context.Context, ids []steam.PlayerID) (*FriendsResult, error) {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil, failure.ErrNoPlayers
	}

	players := e.players(ctx, ids)
	display := make(map[steam.PlayerID]string, len(players))
	for _, p := range players {
		display[p.ID] = p.Display()
	}

	pool := workerpool.New(e.workers, func(ctx context.Context, id steam.PlayerID) ([]steam.PlayerID, error) {
		friends, err := e.src.FriendsOfPlayer(ctx, id)
		if err != nil {
			return nil, failure.Remote("GetFriendList", display[id], err)
		}
		if len(friends) == 0 {
			return nil, &failure.PrivateFriendsError{Player: display[id]}
		}
		return friends, nil
	})

	batch, err := pool.Run(ctx, ids)
	if err != nil {
		return nil, err
	}

	union := Union(batch.Outputs()...)
	nicks := e.src.NicknamesFor(ctx, union)

	result := &FriendsResult{
		Players: players,
		Friends: make([]Friend, 0, len(union)),
	}
	for _, id := range union {
		nick, ok := nicks[id]
		if !ok {
			nick = UnknownNickname
		}
		result.Friends = append(result.Friends, Friend{ID: id, Nickname: nick})
	}

	return result, batch.Err()
}

func (e *Engine) players(ctx context.Context, ids []steam.PlayerID) []Player {
	nicks := e.src.NicknamesFor(ctx, ids)
	players := make([]Player, len(ids))
	for i, id := range ids {
		players[i] = Player{ID: id, Nickname: nicks[id]}
	}
	return players
}

// gameNames resolves names concurrently. Apps without a name are absent from the map.
func (e *Engine) gameNames(ctx context.Context, apps []steam.AppID) map[steam.AppID]string {
	pool := workerpool.New(e.workers, func(ctx context.Context, id steam.AppID) (string, error) {
		name, ok := e.src.GameName(ctx, id)
		if !ok {
			return "", steam.ErrNoMatch
		}
		return name, nil
	})

	names := make(map[steam.AppID]string, len(apps))
	batch, err := pool.Run(ctx, apps)
	if err != nil {
		return names
	}
	for _, r := range batch.Succeeded() {
		names[r.Input] = r.Output
	}
	return names
}

func toGames(lib catalog.Library, names map[steam.AppID]string) []Game {
	games := make([]Game, 0, len(lib))
	for _, id := range lib.Sorted() {
		name, ok := names[id]
		if !ok {
			name = id.String()
		}
		games = append(games, Game{AppID: id, Name: name})
	}
	sortGames(games)
	return games
}

func dedupe(ids []steam.PlayerID) []steam.PlayerID {
	seen := make(map[steam.PlayerID]struct{}, len(ids))
	out := make([]steam.PlayerID, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
