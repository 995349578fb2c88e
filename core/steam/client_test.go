package steam_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"games-in-common/core/failure"
	"games-in-common/core/steam"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *steam.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return steam.NewClient(steam.Config{
		APIKey:            "secret",
		BaseURL:           srv.URL,
		StoreURL:          srv.URL,
		TimeoutSeconds:    5,
		RequestsPerSecond: 1000,
		Burst:             1000,
	}, zap.NewNop(), nil)
}

func TestResolveVanityURL(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ISteamUser/ResolveVanityURL/v0001/", r.URL.Path)
			assert.Equal(t, "gabelogannewell", r.URL.Query().Get("vanityurl"))
			assert.Equal(t, "secret", r.URL.Query().Get("key"))
			_, _ = w.Write([]byte(`{"response":{"steamid":"76561197960287930","success":1}}`))
		})

		id, err := client.ResolveVanityURL(context.Background(), "gabelogannewell")
		require.NoError(t, err)
		assert.Equal(t, steam.PlayerID("76561197960287930"), id)
	})

	t.Run("NoMatch", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"response":{"success":42,"message":"No match"}}`))
		})

		_, err := client.ResolveVanityURL(context.Background(), "nobody")
		assert.ErrorIs(t, err, steam.ErrNoMatch)
	})

	t.Run("ServerError", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.ResolveVanityURL(context.Background(), "someone")
		assert.ErrorIs(t, err, failure.ErrRemoteUnavailable)
	})
}

func TestGetOwnedGames(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "76561197960287930", r.URL.Query().Get("steamid"))
			_, _ = w.Write([]byte(`{"response":{"game_count":2,"games":[{"appid":10},{"appid":620}]}}`))
		})

		games, err := client.GetOwnedGames(context.Background(), "76561197960287930")
		require.NoError(t, err)
		assert.Equal(t, []steam.AppID{10, 620}, games)
	})

	t.Run("PrivateProfileIsEmpty", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"response":{}}`))
		})

		games, err := client.GetOwnedGames(context.Background(), "76561197960287930")
		require.NoError(t, err)
		assert.Empty(t, games)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		})

		_, err := client.GetOwnedGames(context.Background(), "76561197960287930")
		var remote *failure.RemoteUnavailableError
		require.True(t, errors.As(err, &remote))
		assert.Equal(t, "GetOwnedGames", remote.Op)
	})
}

func TestGetFriendList(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"friendslist":{"friends":[{"steamid":"76561197960287931"},{"steamid":"bogus"}]}}`))
		})

		friends, err := client.GetFriendList(context.Background(), "76561197960287930")
		require.NoError(t, err)
		assert.Equal(t, []steam.PlayerID{"76561197960287931"}, friends)
	})

	t.Run("UnauthorizedMeansPrivate", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		friends, err := client.GetFriendList(context.Background(), "76561197960287930")
		require.NoError(t, err)
		assert.Empty(t, friends)
	})
}

func TestGetPlayerSummaries(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "76561197960287930,76561197960287931", r.URL.Query().Get("steamids"))
			_, _ = w.Write([]byte(`{"response":{"players":[{"steamid":"76561197960287930","personaname":"Rabscuttle"}]}}`))
		})

		nicks, err := client.GetPlayerSummaries(context.Background(), []steam.PlayerID{"76561197960287930", "76561197960287931"})
		require.NoError(t, err)
		assert.Equal(t, map[steam.PlayerID]string{"76561197960287930": "Rabscuttle"}, nicks)
	})

	t.Run("TooManyIDs", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("no request expected")
		})

		ids := make([]steam.PlayerID, steam.MaxSummariesPerRequest+1)
		_, err := client.GetPlayerSummaries(context.Background(), ids)
		assert.Error(t, err)
	})
}

func TestGetAppName(t *testing.T) {
	page := func(title string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><head><title>" + title + "</title></head><body></body></html>"))
		}
	}

	t.Run("PlainTitle", func(t *testing.T) {
		client := newTestClient(t, page("Portal 2 on Steam"))
		name, err := client.GetAppName(context.Background(), 620)
		require.NoError(t, err)
		assert.Equal(t, "Portal 2", name)
	})

	t.Run("DiscountTitle", func(t *testing.T) {
		client := newTestClient(t, page("Save 75% on Portal 2 on Steam"))
		name, err := client.GetAppName(context.Background(), 620)
		require.NoError(t, err)
		assert.Equal(t, "Portal 2", name)
	})

	t.Run("StoreFront", func(t *testing.T) {
		client := newTestClient(t, page("Welcome to Steam"))
		_, err := client.GetAppName(context.Background(), 1)
		assert.ErrorIs(t, err, steam.ErrNoMatch)
	})

	t.Run("Path", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.True(t, strings.HasSuffix(r.URL.Path, "/app/620"))
			page("Portal 2 on Steam")(w, r)
		})
		_, err := client.GetAppName(context.Background(), 620)
		assert.NoError(t, err)
	})
}

func TestGetAppList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ISteamApps/GetAppList/v2/", r.URL.Path)
		_, _ = w.Write([]byte(`{"applist":{"apps":[{"appid":10,"name":"Counter-Strike"},{"appid":620,"name":"Portal 2"}]}}`))
	})

	apps, err := client.GetAppList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []steam.App{{AppID: 10, Name: "Counter-Strike"}, {AppID: 620, Name: "Portal 2"}}, apps)
}
