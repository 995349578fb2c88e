package mocks

import (
	"context"

	"games-in-common/core/steam"

	"github.com/stretchr/testify/mock"
)

// API is a mock implementation of steam.API
type API struct {
	mock.Mock
}

func (m *API) ResolveVanityURL(ctx context.Context, vanity string) (steam.PlayerID, error) {
	args := m.Called(ctx, vanity)
	return args.Get(0).(steam.PlayerID), args.Error(1)
}

func (m *API) GetOwnedGames(ctx context.Context, id steam.PlayerID) ([]steam.AppID, error) {
	args := m.Called(ctx, id)
	if games, ok := args.Get(0).([]steam.AppID); ok {
		return games, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *API) GetFriendList(ctx context.Context, id steam.PlayerID) ([]steam.PlayerID, error) {
	args := m.Called(ctx, id)
	if friends, ok := args.Get(0).([]steam.PlayerID); ok {
		return friends, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *API) GetPlayerSummaries(ctx context.Context, ids []steam.PlayerID) (map[steam.PlayerID]string, error) {
	args := m.Called(ctx, ids)
	if nicks, ok := args.Get(0).(map[steam.PlayerID]string); ok {
		return nicks, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *API) GetAppName(ctx context.Context, appID steam.AppID) (string, error) {
	args := m.Called(ctx, appID)
	return args.String(0), args.Error(1)
}

func (m *API) GetAppList(ctx context.Context) ([]steam.App, error) {
	args := m.Called(ctx)
	if apps, ok := args.Get(0).([]steam.App); ok {
		return apps, args.Error(1)
	}
	return nil, args.Error(1)
}
