package catalog

import (
	"context"
	"errors"
	"sort"

	"games-in-common/core/cachestore"
	"games-in-common/core/failure"
	"games-in-common/core/metrics"
	"games-in-common/core/steam"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Catalog serves Steam data through the cache store. Concurrent misses on one key share
// a single remote call, which keeps the first caller's context values but not its
// cancellation; the Steam client's own timeout bounds it.
type Catalog struct {
	api     steam.API
	store   cachestore.Store
	cfg     Config
	logger  *zap.Logger
	metrics metrics.Recorder
	sf      singleflight.Group
}

// New creates a Catalog. A nil recorder disables metrics.
func New(api steam.API, store cachestore.Store, cfg Config, logger *zap.Logger, rec metrics.Recorder) *Catalog {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Catalog{
		api:     api,
		store:   store,
		cfg:     cfg,
		logger:  logger,
		metrics: rec,
	}
}

// GameName returns the human name of an app. The boolean is false when neither the cache
// nor the store page yields a name.
func (c *Catalog) GameName(ctx context.Context, id steam.AppID) (string, bool) {
	key := appNameKey(id)
	if name, ok := c.cachedString(ctx, kindAppName, key); ok {
		return name, true
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		ctx := shared(ctx)
		name, err := c.api.GetAppName(ctx, id)
		if err != nil {
			return "", err
		}
		if _, err := c.store.SetNX(ctx, key, name, 0); err != nil {
			c.writeFailed(kindAppName, key, err)
		}
		return name, nil
	})
	if err != nil {
		if !errors.Is(err, steam.ErrNoMatch) {
			c.logger.Warn("Failed to look up game name", zap.Int("app_id", int(id)), zap.Error(err))
		}
		return "", false
	}
	return v.(string), true
}

// SeedGameName stores a name only if none is cached yet and reports whether it wrote.
func (c *Catalog) SeedGameName(ctx context.Context, id steam.AppID, name string) (bool, error) {
	return c.store.SetNX(ctx, appNameKey(id), name, 0)
}

// SteamIDForVanity maps a vanity name to a Steam ID. It returns steam.ErrNoMatch when
// Steam does not know the name; such results are not cached.
func (c *Catalog) SteamIDForVanity(ctx context.Context, vanity string) (steam.PlayerID, error) {
	key := vanityKey(vanity)
	if id, ok := c.cachedString(ctx, kindVanity, key); ok && steam.IsCanonical(id) {
		return steam.PlayerID(id), nil
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		ctx := shared(ctx)
		id, err := c.api.ResolveVanityURL(ctx, vanity)
		if err != nil {
			return steam.PlayerID(""), err
		}
		if err := c.store.Set(ctx, key, id.String(), c.cfg.VanityTTL); err != nil {
			c.writeFailed(kindVanity, key, err)
		}
		return id, nil
	})
	if err != nil {
		return "", err
	}
	return v.(steam.PlayerID), nil
}

// GamesForPlayer returns the library of id. An empty library is a valid result meaning
// the profile is private or owns nothing. Remote failures match failure.ErrRemoteUnavailable.
func (c *Catalog) GamesForPlayer(ctx context.Context, id steam.PlayerID) (Library, error) {
	key := gamesKey(id)
	if lib, ok := c.cachedLibrary(ctx, key); ok {
		return lib, nil
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		ctx := shared(ctx)
		games, err := c.api.GetOwnedGames(ctx, id)
		if err != nil {
			return nil, failure.Remote("GetOwnedGames", id.String(), err)
		}
		lib := NewLibrary(games...)
		if err := c.store.SAdd(ctx, key, c.cfg.GamesTTL, lib.members()...); err != nil {
			c.writeFailed(kindGames, key, err)
		}
		return lib, nil
	})
	if err != nil {
		return nil, err
	}
	// singleflight shares the value between callers.
	return v.(Library).Clone(), nil
}

// FriendsOfPlayer returns the friends of id sorted by Steam ID. An empty slice means the
// friend list is private or empty; it is not cached.
func (c *Catalog) FriendsOfPlayer(ctx context.Context, id steam.PlayerID) ([]steam.PlayerID, error) {
	key := friendsKey(id)
	members, err := c.store.SMembers(ctx, key)
	switch {
	case err != nil:
		c.readFailed(kindFriends, key, err)
	case len(members) > 0:
		c.metrics.RecordCacheHit(kindFriends)
		friends := make([]steam.PlayerID, 0, len(members))
		for _, m := range members {
			if steam.IsCanonical(m) {
				friends = append(friends, steam.PlayerID(m))
			}
		}
		sortIDs(friends)
		return friends, nil
	default:
		c.metrics.RecordCacheMiss(kindFriends)
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		ctx := shared(ctx)
		friends, err := c.api.GetFriendList(ctx, id)
		if err != nil {
			return nil, failure.Remote("GetFriendList", id.String(), err)
		}
		if len(friends) == 0 {
			return []steam.PlayerID{}, nil
		}
		members := make([]string, len(friends))
		for i, f := range friends {
			members[i] = f.String()
		}
		if err := c.store.SAdd(ctx, key, c.cfg.FriendsTTL, members...); err != nil {
			c.writeFailed(kindFriends, key, err)
		}
		return friends, nil
	})
	if err != nil {
		return nil, err
	}

	friends := append([]steam.PlayerID(nil), v.([]steam.PlayerID)...)
	sortIDs(friends)
	return friends, nil
}

// Nickname returns the current nickname of id.
func (c *Catalog) Nickname(ctx context.Context, id steam.PlayerID) (string, bool) {
	nick, ok := c.NicknamesFor(ctx, []steam.PlayerID{id})[id]
	return nick, ok
}

// NicknamesFor returns nicknames for as many of ids as can be found. Cached entries are
// used as is; the rest are fetched in batches of steam.MaxSummariesPerRequest. Failed
// batches are logged and skipped.
func (c *Catalog) NicknamesFor(ctx context.Context, ids []steam.PlayerID) map[steam.PlayerID]string {
	found := make(map[steam.PlayerID]string, len(ids))
	var missing []steam.PlayerID
	seen := make(map[steam.PlayerID]struct{}, len(ids))

	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if nick, ok := c.cachedString(ctx, kindNickname, nicknameKey(id)); ok {
			found[id] = nick
			continue
		}
		missing = append(missing, id)
	}

	for start := 0; start < len(missing); start += steam.MaxSummariesPerRequest {
		end := min(start+steam.MaxSummariesPerRequest, len(missing))
		chunk := missing[start:end]

		nicks, err := c.api.GetPlayerSummaries(ctx, chunk)
		if err != nil {
			c.logger.Warn("Failed to fetch player nicknames",
				zap.Int("count", len(chunk)),
				zap.Error(err))
			continue
		}
		for id, nick := range nicks {
			if _, wanted := seen[id]; !wanted {
				continue
			}
			found[id] = nick
			if err := c.store.Set(ctx, nicknameKey(id), nick, c.cfg.NicknameTTL); err != nil {
				c.writeFailed(kindNickname, nicknameKey(id), err)
			}
		}
	}

	return found
}

func (c *Catalog) cachedString(ctx context.Context, kind, key string) (string, bool) {
	v, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		c.metrics.RecordCacheHit(kind)
		return v, true
	case errors.Is(err, cachestore.ErrMiss):
		c.metrics.RecordCacheMiss(kind)
	default:
		c.readFailed(kind, key, err)
	}
	return "", false
}

func (c *Catalog) cachedLibrary(ctx context.Context, key string) (Library, bool) {
	exists, err := c.store.Exists(ctx, key)
	if err != nil {
		c.readFailed(kindGames, key, err)
		return nil, false
	}
	if !exists {
		c.metrics.RecordCacheMiss(kindGames)
		return nil, false
	}

	members, err := c.store.SMembers(ctx, key)
	if err != nil {
		c.readFailed(kindGames, key, err)
		return nil, false
	}
	// Expired between the two calls.
	if len(members) == 0 {
		c.metrics.RecordCacheMiss(kindGames)
		return nil, false
	}

	c.metrics.RecordCacheHit(kindGames)
	return libraryFromMembers(members), true
}

func (c *Catalog) readFailed(kind, key string, err error) {
	c.metrics.RecordCacheError(kind)
	c.logger.Warn("Cache read failed, treating as miss", zap.String("key", key), zap.Error(err))
}

func (c *Catalog) writeFailed(kind, key string, err error) {
	c.metrics.RecordCacheError(kind)
	c.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
}

// shared detaches a coalesced fetch from the cancellation of whichever caller started
// it, so that callers joining the flight are not failed by someone else's cancel.
func shared(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}

func sortIDs(ids []steam.PlayerID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
