package appnames

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"games-in-common/core/steam"
	"games-in-common/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLister struct {
	apps []steam.App
	err  error
}

func (f *fakeLister) GetAppList(context.Context) ([]steam.App, error) {
	return f.apps, f.err
}

type memoryNames struct {
	mu    sync.Mutex
	names map[steam.AppID]string
	fail  map[steam.AppID]bool
}

func newMemoryNames() *memoryNames {
	return &memoryNames{names: map[steam.AppID]string{}, fail: map[steam.AppID]bool{}}
}

func (m *memoryNames) SeedGameName(_ context.Context, id steam.AppID, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail[id] {
		return false, errors.New("store unavailable")
	}
	if _, ok := m.names[id]; ok {
		return false, nil
	}
	m.names[id] = name
	return true, nil
}

func (m *memoryNames) GameName(_ context.Context, id steam.AppID) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	name, ok := m.names[id]
	return name, ok
}

func snapshotBody(t *testing.T, apps ...steam.App) io.ReadCloser {
	t.Helper()
	var doc steam.AppListDocument
	doc.AppList.Apps = apps
	body, err := json.Marshal(doc)
	require.NoError(t, err)
	return io.NopCloser(bytes.NewReader(body))
}

func newTestService(lister AppLister, names NameCache, client *mocks.Client) *Service {
	svc := NewService(lister, names, client, Options{
		Bucket:  "snapshots",
		Prefix:  "catalog/",
		Keep:    2,
		Workers: 3,
	}, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 10, 15, 8, 30, 0, 0, time.UTC) }
	return svc
}

func TestSeedFromExistingSnapshot(t *testing.T) {
	client := new(mocks.Client)
	names := newMemoryNames()
	names.names[10] = "Counter-Strike"
	names.fail[30] = true

	client.On("ListObjects", mock.Anything, "snapshots", mock.Anything).
		Return(mocks.Keys("catalog/applist-20261001T000000Z.json", "catalog/applist-20261010T000000Z.json", "catalog/readme.txt"))
	client.On("GetObject", mock.Anything, "snapshots", "catalog/applist-20261010T000000Z.json", mock.Anything).
		Return(snapshotBody(t,
			steam.App{AppID: 10, Name: "CS reissue"},
			steam.App{AppID: 20, Name: "Tom Clancy&#39;s Rainbow Six&reg;"},
			steam.App{AppID: 30, Name: "Day of Defeat"},
			steam.App{AppID: 40, Name: "   "},
		), nil)

	svc := newTestService(&fakeLister{}, names, client)
	report, err := svc.Seed(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, &SeedReport{
		Snapshot: "catalog/applist-20261010T000000Z.json",
		Total:    3,
		Written:  1,
		Skipped:  1,
		Failed:   1,
	}, report)
	assert.Equal(t, "Counter-Strike", names.names[10])
	assert.Equal(t, "Tom Clancy's Rainbow Six®", names.names[20])
	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSeedTakesSnapshotWhenNoneExists(t *testing.T) {
	client := new(mocks.Client)
	names := newMemoryNames()
	lister := &fakeLister{apps: []steam.App{{AppID: 620, Name: "Portal 2"}}}
	const object = "catalog/applist-20261015T083000Z.json"

	client.On("ListObjects", mock.Anything, "snapshots", mock.Anything).Return(mocks.Keys()).Once()
	client.On("BucketExists", mock.Anything, "snapshots").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "snapshots", mock.Anything).Return(nil)
	client.On("PutObject", mock.Anything, "snapshots", object, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	client.On("ListObjects", mock.Anything, "snapshots", mock.Anything).Return(mocks.Keys(object)).Once()
	client.On("GetObject", mock.Anything, "snapshots", object, mock.Anything).
		Return(snapshotBody(t, lister.apps...), nil)

	svc := newTestService(lister, names, client)
	report, err := svc.Seed(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, object, report.Snapshot)
	assert.Equal(t, 1, report.Written)
	assert.Equal(t, "Portal 2", names.names[620])
	client.AssertExpectations(t)
}

func TestSnapshotPrunesOldest(t *testing.T) {
	client := new(mocks.Client)
	lister := &fakeLister{apps: []steam.App{{AppID: 10, Name: "Counter-Strike"}}}

	client.On("BucketExists", mock.Anything, "snapshots").Return(true, nil)
	client.On("PutObject", mock.Anything, "snapshots", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	client.On("ListObjects", mock.Anything, "snapshots", mock.Anything).Return(mocks.Keys(
		"catalog/applist-20261001T000000Z.json",
		"catalog/applist-20261005T000000Z.json",
		"catalog/applist-20261015T083000Z.json",
	))
	client.On("RemoveObject", mock.Anything, "snapshots", "catalog/applist-20261001T000000Z.json", mock.Anything).Return(nil)

	svc := newTestService(lister, newMemoryNames(), client)
	name, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "catalog/applist-20261015T083000Z.json", name)
	client.AssertNumberOfCalls(t, "RemoveObject", 1)
}

func TestSnapshotFetchFailure(t *testing.T) {
	client := new(mocks.Client)
	svc := newTestService(&fakeLister{err: errors.New("steam down")}, newMemoryNames(), client)

	_, err := svc.Snapshot(context.Background())
	assert.ErrorContains(t, err, "steam down")
	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleGetName(t *testing.T) {
	names := newMemoryNames()
	names.names[620] = "Portal 2"
	app := fiber.New()
	NewHandler(newTestService(&fakeLister{}, names, new(mocks.Client))).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/appnames/620", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/appnames/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/appnames/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
