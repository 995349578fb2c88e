package cachestore_test

import (
	"context"
	"testing"
	"time"

	"games-in-common/core/cachestore"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*cachestore.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := cachestore.NewRedisStoreFromClient(client)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestNewRedisStore(t *testing.T) {
	t.Run("Connects", func(t *testing.T) {
		mr := miniredis.RunT(t)
		store, err := cachestore.NewRedisStore(context.Background(), cachestore.Config{Addr: mr.Addr()})
		require.NoError(t, err)
		assert.NoError(t, store.Close())
	})

	t.Run("Unreachable", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		addr := mr.Addr()
		mr.Close()

		_, err = cachestore.NewRedisStore(context.Background(), cachestore.Config{Addr: addr, TimeoutSeconds: 1})
		assert.Error(t, err)
	})
}

func TestGetSet(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "nicknameOf:1")
	assert.ErrorIs(t, err, cachestore.ErrMiss)

	require.NoError(t, store.Set(ctx, "nicknameOf:1", "Gabe", time.Hour))
	v, err := store.Get(ctx, "nicknameOf:1")
	require.NoError(t, err)
	assert.Equal(t, "Gabe", v)
}

func TestSetNX(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	wrote, err := store.SetNX(ctx, "appid:620", "Portal 2", 0)
	require.NoError(t, err)
	assert.True(t, wrote)

	wrote, err = store.SetNX(ctx, "appid:620", "Something Else", 0)
	require.NoError(t, err)
	assert.False(t, wrote)

	v, _ := store.Get(ctx, "appid:620")
	assert.Equal(t, "Portal 2", v)
	assert.Equal(t, time.Duration(0), mr.TTL("appid:620"))
}

func TestSetExpiry(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.SAdd(ctx, "gamesOwnedBy:1", 900*time.Second, "10", "20"))

	exists, err := store.Exists(ctx, "gamesOwnedBy:1")
	require.NoError(t, err)
	assert.True(t, exists)

	mr.FastForward(899 * time.Second)
	exists, _ = store.Exists(ctx, "gamesOwnedBy:1")
	assert.True(t, exists)

	mr.FastForward(2 * time.Second)
	exists, _ = store.Exists(ctx, "gamesOwnedBy:1")
	assert.False(t, exists)
}

func TestSAddReplacesSet(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.SAdd(ctx, "friendsOf:1", time.Minute, "a", "b"))
	require.NoError(t, store.SAdd(ctx, "friendsOf:1", time.Minute, "c"))

	members, err := store.SMembers(ctx, "friendsOf:1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"c"}, members)

	members, err = store.SMembers(ctx, "friendsOf:missing")
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestStoreErrors(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()
	mr.SetError("LOADING")

	_, err := store.Get(ctx, "k")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, cachestore.ErrMiss)

	assert.Error(t, store.Set(ctx, "k", "v", 0))
	_, err = store.Exists(ctx, "k")
	assert.Error(t, err)
}
