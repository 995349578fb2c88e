package appnames

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"sync/atomic"
	"time"

	"games-in-common/core/steam"
	"games-in-common/core/storage"
	"games-in-common/core/workerpool"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const (
	snapshotStem   = "applist-"
	snapshotExt    = ".json"
	snapshotLayout = "20060102T150405Z"
)

// ErrNoSnapshot is returned when the bucket holds no app list snapshot.
var ErrNoSnapshot = errors.New("no app list snapshot found")

// AppLister fetches the full app list.
type AppLister interface {
	GetAppList(ctx context.Context) ([]steam.App, error)
}

// NameCache is the write side of the app name cache.
type NameCache interface {
	SeedGameName(ctx context.Context, id steam.AppID, name string) (bool, error)
	GameName(ctx context.Context, id steam.AppID) (string, bool)
}

// Options configures where snapshots live.
type Options struct {
	Bucket  string
	Prefix  string
	Keep    int
	Workers int
}

// SeedReport summarizes one seeding run.
type SeedReport struct {
	Snapshot string `json:"snapshot"`
	Total    int    `json:"total"`
	Written  int    `json:"written"`
	Skipped  int    `json:"skipped"`
	Failed   int    `json:"failed"`
}

// Service snapshots the app list and seeds the name cache.
type Service struct {
	api    AppLister
	cache  NameCache
	client storage.Client
	opts   Options
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new app names service.
func NewService(api AppLister, cache NameCache, client storage.Client, opts Options, logger *zap.Logger) *Service {
	return &Service{
		api:    api,
		cache:  cache,
		client: client,
		opts:   opts,
		logger: logger,
		now:    time.Now,
	}
}

// Snapshot downloads the app list and stores it as a new snapshot. It returns the
// object name.
func (s *Service) Snapshot(ctx context.Context) (string, error) {
	apps, err := s.api.GetAppList(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch app list: %w", err)
	}

	if err := storage.EnsureBucket(ctx, s.client, s.opts.Bucket); err != nil {
		return "", err
	}

	var doc steam.AppListDocument
	doc.AppList.Apps = apps
	name := s.opts.Prefix + snapshotStem + s.now().UTC().Format(snapshotLayout) + snapshotExt
	size, err := storage.PutJSON(ctx, s.client, s.opts.Bucket, name, doc)
	if err != nil {
		return "", fmt.Errorf("failed to store snapshot: %w", err)
	}

	s.logger.Info("Stored app list snapshot", zap.String("object", name), zap.Int("apps", len(apps)), zap.Int("bytes", size))
	s.prune(ctx)
	return name, nil
}

// Seed writes every app of the newest snapshot into the name cache. With refresh, or
// when no snapshot exists yet, a new snapshot is taken first.
func (s *Service) Seed(ctx context.Context, refresh bool) (*SeedReport, error) {
	var name string
	if !refresh {
		latest, err := s.latestSnapshot(ctx)
		switch {
		case err == nil:
			name = latest
		case !errors.Is(err, ErrNoSnapshot):
			return nil, err
		}
	}
	if name == "" {
		snap, err := s.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		name = snap
	}

	apps, err := s.loadSnapshot(ctx, name)
	if err != nil {
		return nil, err
	}

	var written, skipped atomic.Int64
	pool := workerpool.New(s.opts.Workers, func(ctx context.Context, app steam.App) (struct{}, error) {
		ok, err := s.cache.SeedGameName(ctx, app.AppID, app.Name)
		if err != nil {
			return struct{}{}, err
		}
		if ok {
			written.Add(1)
		} else {
			skipped.Add(1)
		}
		return struct{}{}, nil
	})

	queue := make(chan steam.App, s.opts.Workers*4+1)
	go func() {
		defer close(queue)
		for _, app := range apps {
			select {
			case queue <- app:
			case <-ctx.Done():
				return
			}
		}
	}()

	batch, err := pool.Drain(ctx, queue)
	if err != nil {
		return nil, err
	}

	report := &SeedReport{
		Snapshot: name,
		Total:    len(apps),
		Written:  int(written.Load()),
		Skipped:  int(skipped.Load()),
		Failed:   len(batch.Failures()),
	}
	s.logger.Info("Seeded app names",
		zap.String("snapshot", name),
		zap.Int("total", report.Total),
		zap.Int("written", report.Written),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed))
	return report, nil
}

// Name returns the cached or scraped name of an app.
func (s *Service) Name(ctx context.Context, id steam.AppID) (string, bool) {
	return s.cache.GameName(ctx, id)
}

// snapshots lists snapshot object names, oldest first. Timestamps sort lexically.
func (s *Service) snapshots(ctx context.Context) ([]string, error) {
	return storage.ListKeys(ctx, s.client, s.opts.Bucket, s.opts.Prefix, func(key string) bool {
		base := strings.TrimPrefix(key, s.opts.Prefix)
		return strings.HasPrefix(base, snapshotStem) && strings.HasSuffix(base, snapshotExt)
	})
}

func (s *Service) latestSnapshot(ctx context.Context) (string, error) {
	names, err := s.snapshots(ctx)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", ErrNoSnapshot
	}
	return names[len(names)-1], nil
}

func (s *Service) prune(ctx context.Context) {
	if s.opts.Keep <= 0 {
		return
	}
	names, err := s.snapshots(ctx)
	if err != nil {
		s.logger.Warn("Failed to list snapshots for pruning", zap.Error(err))
		return
	}
	for len(names) > s.opts.Keep {
		old := names[0]
		names = names[1:]
		if err := s.client.RemoveObject(ctx, s.opts.Bucket, old, minio.RemoveObjectOptions{}); err != nil {
			s.logger.Warn("Failed to remove old snapshot", zap.String("object", old), zap.Error(err))
			continue
		}
		s.logger.Debug("Removed old snapshot", zap.String("object", old))
	}
}

func (s *Service) loadSnapshot(ctx context.Context, name string) ([]steam.App, error) {
	var doc steam.AppListDocument
	if err := storage.GetJSON(ctx, s.client, s.opts.Bucket, name, &doc); err != nil {
		return nil, err
	}

	apps := make([]steam.App, 0, len(doc.AppList.Apps))
	for _, app := range doc.AppList.Apps {
		name := strings.TrimSpace(html.UnescapeString(app.Name))
		if name == "" {
			continue
		}
		apps = append(apps, steam.App{AppID: app.AppID, Name: name})
	}
	return apps, nil
}
