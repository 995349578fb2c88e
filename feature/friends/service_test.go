package friends_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"games-in-common/core/aggregate"
	"games-in-common/core/failure"
	"games-in-common/core/steam"
	"games-in-common/feature/friends"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	gabe  = steam.PlayerID("76561197960287930")
	robin = steam.PlayerID("76561197960287931")
)

type mockResolver struct{ mock.Mock }

func (m *mockResolver) ResolveAll(ctx context.Context, raw []string) ([]steam.PlayerID, error) {
	args := m.Called(ctx, raw)
	ids, _ := args.Get(0).([]steam.PlayerID)
	return ids, args.Error(1)
}

type mockAggregator struct{ mock.Mock }

func (m *mockAggregator) FriendsOf(ctx context.Context, ids []steam.PlayerID) (*aggregate.FriendsResult, error) {
	args := m.Called(ctx, ids)
	result, _ := args.Get(0).(*aggregate.FriendsResult)
	return result, args.Error(1)
}

func sampleResult() *aggregate.FriendsResult {
	return &aggregate.FriendsResult{
		Players: []aggregate.Player{{ID: gabe, Nickname: "Gabe"}, {ID: robin}},
		Friends: []aggregate.Friend{
			{ID: "76561197960287940", Nickname: "Alice"},
			{ID: "76561197960287941", Nickname: aggregate.UnknownNickname},
		},
	}
}

func TestFriendsOf(t *testing.T) {
	resolver := new(mockResolver)
	engine := new(mockAggregator)
	svc := friends.NewService(resolver, engine, nil, zap.NewNop(), 10)

	resolver.On("ResolveAll", mock.Anything, []string{"gaben", "robin"}).Return([]steam.PlayerID{gabe, robin}, nil)
	engine.On("FriendsOf", mock.Anything, []steam.PlayerID{gabe, robin}).Return(sampleResult(), nil)

	report, err := svc.FriendsOf(context.Background(), []string{"gaben", "robin"})
	require.NoError(t, err)
	assert.Empty(t, report.Errors)
	assert.Equal(t, "Friends of Gabe, 76561197960287931:\n"+
		"76561197960287940 = Alice\n"+
		"76561197960287941 = <unknown>", report.Text)
}

func TestFriendsOfPartialFailure(t *testing.T) {
	resolver := new(mockResolver)
	engine := new(mockAggregator)
	svc := friends.NewService(resolver, engine, nil, zap.NewNop(), 10)

	var resolveErr failure.MultiFailure
	resolveErr.Append(&failure.ProfileNotFoundError{Query: "ghost"})
	var friendsErr failure.MultiFailure
	friendsErr.Append(&failure.PrivateFriendsError{Player: "76561197960287931"})

	resolver.On("ResolveAll", mock.Anything, mock.Anything).Return([]steam.PlayerID{gabe, robin}, resolveErr.ErrOrNil())
	engine.On("FriendsOf", mock.Anything, mock.Anything).Return(sampleResult(), friendsErr.ErrOrNil())

	report, err := svc.FriendsOf(context.Background(), []string{"gaben", "robin", "ghost"})

	var mf *failure.MultiFailure
	require.True(t, errors.As(err, &mf))
	assert.Equal(t, 2, mf.Len())
	assert.ElementsMatch(t, []string{
		"no public Steam profile found matching 'ghost'",
		"user 76561197960287931 has set their friends list to private",
	}, report.Errors)
	assert.NotEmpty(t, report.Text)
}

func TestFriendsOfNothingResolved(t *testing.T) {
	resolver := new(mockResolver)
	engine := new(mockAggregator)
	svc := friends.NewService(resolver, engine, nil, zap.NewNop(), 10)

	var mf failure.MultiFailure
	mf.Append(&failure.ProfileNotFoundError{Query: "ghost"})
	resolver.On("ResolveAll", mock.Anything, mock.Anything).Return(nil, mf.ErrOrNil())

	report, err := svc.FriendsOf(context.Background(), []string{"ghost"})
	require.Error(t, err)
	assert.Nil(t, report.Result)
	assert.Equal(t, []string{"no public Steam profile found matching 'ghost'"}, report.Errors)
	engine.AssertNotCalled(t, "FriendsOf", mock.Anything, mock.Anything)
}

func TestFriendsOfNoInput(t *testing.T) {
	svc := friends.NewService(new(mockResolver), new(mockAggregator), nil, zap.NewNop(), 10)
	_, err := svc.FriendsOf(context.Background(), []string{" "})
	assert.ErrorIs(t, err, friends.ErrNoPlayers)
}

func TestHandleGetFriends(t *testing.T) {
	resolver := new(mockResolver)
	engine := new(mockAggregator)
	svc := friends.NewService(resolver, engine, nil, zap.NewNop(), 10)

	var friendsErr failure.MultiFailure
	friendsErr.Append(failure.Remote("GetFriendList", "76561197960287931", errors.New("502")))
	resolver.On("ResolveAll", mock.Anything, mock.Anything).Return([]steam.PlayerID{gabe, robin}, nil)
	engine.On("FriendsOf", mock.Anything, mock.Anything).Return(sampleResult(), friendsErr.ErrOrNil())

	app := fiber.New()
	require.NoError(t, friends.NewFeature(svc).Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/friends?players=gaben,robin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report friends.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Len(t, report.Errors, 1)
	require.NotNil(t, report.Result)
	assert.Len(t, report.Result.Friends, 2)

	resp, err = app.Test(httptest.NewRequest("GET", "/friends", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
