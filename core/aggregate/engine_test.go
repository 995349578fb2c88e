package aggregate_test

import (
	"context"
	"errors"
	"testing"

	"games-in-common/core/aggregate"
	"games-in-common/core/catalog"
	"games-in-common/core/failure"
	"games-in-common/core/steam"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	p1 = steam.PlayerID("76561197960287930")
	p2 = steam.PlayerID("76561197960287931")
	p3 = steam.PlayerID("76561197960287932")
)

type fakeSource struct {
	libs       map[steam.PlayerID]catalog.Library
	libErrs    map[steam.PlayerID]error
	friends    map[steam.PlayerID][]steam.PlayerID
	friendErrs map[steam.PlayerID]error
	nicks      map[steam.PlayerID]string
	names      map[steam.AppID]string
}

func (f *fakeSource) NicknamesFor(_ context.Context, ids []steam.PlayerID) map[steam.PlayerID]string {
	out := make(map[steam.PlayerID]string)
	for _, id := range ids {
		if nick, ok := f.nicks[id]; ok {
			out[id] = nick
		}
	}
	return out
}

func (f *fakeSource) GamesForPlayer(_ context.Context, id steam.PlayerID) (catalog.Library, error) {
	if err := f.libErrs[id]; err != nil {
		return nil, err
	}
	return f.libs[id].Clone(), nil
}

func (f *fakeSource) FriendsOfPlayer(_ context.Context, id steam.PlayerID) ([]steam.PlayerID, error) {
	if err := f.friendErrs[id]; err != nil {
		return nil, err
	}
	return f.friends[id], nil
}

func (f *fakeSource) GameName(_ context.Context, id steam.AppID) (string, bool) {
	name, ok := f.names[id]
	return name, ok
}

func newEngine(src aggregate.Source) *aggregate.Engine {
	return aggregate.New(src, 3, zap.NewNop())
}

func TestCommonGamesTwoPlayers(t *testing.T) {
	src := &fakeSource{
		libs: map[steam.PlayerID]catalog.Library{
			p1: catalog.NewLibrary(10, 20, 30),
			p2: catalog.NewLibrary(20, 30, 40),
		},
		names: map[steam.AppID]string{20: "Team Fortress Classic", 30: "Day of Defeat"},
	}

	result, err := newEngine(src).CommonGames(context.Background(), []steam.PlayerID{p1, p2})
	require.NoError(t, err)

	assert.Equal(t, catalog.NewLibrary(20, 30), result.CommonToAll)
	assert.Nil(t, result.CommonToAllButOne)
	assert.Equal(t, []aggregate.Game{
		{AppID: 30, Name: "Day of Defeat"},
		{AppID: 20, Name: "Team Fortress Classic"},
	}, result.Games)
}

func TestCommonGamesThreePlayers(t *testing.T) {
	src := &fakeSource{
		libs: map[steam.PlayerID]catalog.Library{
			p1: catalog.NewLibrary(1, 2, 3),
			p2: catalog.NewLibrary(1, 2),
			p3: catalog.NewLibrary(1, 2, 3, 4),
		},
		nicks: map[steam.PlayerID]string{p2: "Robin"},
		names: map[steam.AppID]string{1: "A", 2: "B"},
	}

	result, err := newEngine(src).CommonGames(context.Background(), []steam.PlayerID{p1, p2, p3})
	require.NoError(t, err)

	assert.Equal(t, catalog.NewLibrary(1, 2), result.CommonToAll)
	assert.Equal(t, catalog.NewLibrary(3), result.CommonToAllButOne[p2])
	assert.Empty(t, result.CommonToAllButOne[p1])
	assert.Empty(t, result.CommonToAllButOne[p3])

	require.Len(t, result.AllButOne, 1)
	assert.Equal(t, "Robin (76561197960287931)", result.AllButOne[0].Player.Display())
	// No name for 3, so the id is used.
	assert.Equal(t, []aggregate.Game{{AppID: 3, Name: "3"}}, result.AllButOne[0].Games)
}

func TestCommonGamesPrivateLibraryAborts(t *testing.T) {
	src := &fakeSource{
		libs: map[steam.PlayerID]catalog.Library{
			p1: catalog.NewLibrary(1, 2),
			p2: catalog.NewLibrary(),
		},
		nicks: map[steam.PlayerID]string{p2: "Robin"},
	}

	result, err := newEngine(src).CommonGames(context.Background(), []steam.PlayerID{p1, p2})
	assert.Nil(t, result)

	var mf *failure.MultiFailure
	require.True(t, errors.As(err, &mf))
	require.Equal(t, 1, mf.Len())

	var private *failure.PrivateOwnedGamesError
	require.True(t, errors.As(mf.Errors()[0], &private))
	assert.Equal(t, "user Robin (76561197960287931) has set their list of games to private", private.Error())
}

func TestCommonGamesCollectsEveryFailure(t *testing.T) {
	src := &fakeSource{
		libs: map[steam.PlayerID]catalog.Library{
			p1: catalog.NewLibrary(1),
			p3: catalog.NewLibrary(),
		},
		libErrs: map[steam.PlayerID]error{p2: errors.New("timeout")},
	}

	_, err := newEngine(src).CommonGames(context.Background(), []steam.PlayerID{p1, p2, p3})

	var mf *failure.MultiFailure
	require.True(t, errors.As(err, &mf))
	assert.Equal(t, 2, mf.Len())
	assert.ErrorIs(t, err, failure.ErrRemoteUnavailable)
}

func TestCommonGamesNoPlayers(t *testing.T) {
	_, err := newEngine(&fakeSource{}).CommonGames(context.Background(), nil)
	assert.ErrorIs(t, err, failure.ErrNoPlayers)
}

func TestCommonGamesIsCommutative(t *testing.T) {
	src := &fakeSource{
		libs: map[steam.PlayerID]catalog.Library{
			p1: catalog.NewLibrary(1, 2, 3, 5, 8),
			p2: catalog.NewLibrary(2, 3, 5, 7),
			p3: catalog.NewLibrary(1, 2, 3, 5, 7, 11),
		},
	}
	engine := newEngine(src)

	orders := [][]steam.PlayerID{
		{p1, p2, p3},
		{p3, p1, p2},
		{p2, p3, p1},
	}

	var first *aggregate.CommonGamesResult
	for _, order := range orders {
		result, err := engine.CommonGames(context.Background(), order)
		require.NoError(t, err)
		if first == nil {
			first = result
			continue
		}
		assert.Equal(t, first.CommonToAll, result.CommonToAll)
		assert.Equal(t, first.CommonToAllButOne, result.CommonToAllButOne)
	}
}

func TestFriendsOfPartialFailure(t *testing.T) {
	friendA := steam.PlayerID("76561197960287940")
	friendB := steam.PlayerID("76561197960287941")
	src := &fakeSource{
		friends:    map[steam.PlayerID][]steam.PlayerID{p2: {friendB, friendA}},
		friendErrs: map[steam.PlayerID]error{p1: errors.New("502 bad gateway")},
		nicks:      map[steam.PlayerID]string{friendA: "Alice"},
	}

	result, err := newEngine(src).FriendsOf(context.Background(), []steam.PlayerID{p1, p2})
	require.NotNil(t, result)
	assert.Equal(t, []aggregate.Friend{
		{ID: friendA, Nickname: "Alice"},
		{ID: friendB, Nickname: aggregate.UnknownNickname},
	}, result.Friends)

	var mf *failure.MultiFailure
	require.True(t, errors.As(err, &mf))
	assert.Equal(t, 1, mf.Len())
	assert.ErrorIs(t, err, failure.ErrRemoteUnavailable)
}

func TestFriendsOfAllFail(t *testing.T) {
	src := &fakeSource{
		friends: map[steam.PlayerID][]steam.PlayerID{p1: {}, p2: nil},
	}

	result, err := newEngine(src).FriendsOf(context.Background(), []steam.PlayerID{p1, p2})
	require.NotNil(t, result)
	assert.Empty(t, result.Friends)

	var private *failure.PrivateFriendsError
	assert.True(t, errors.As(err, &private))
	assert.Len(t, failure.Lines(err), 2)
}
