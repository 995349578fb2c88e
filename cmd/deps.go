package cmd

import (
	"context"
	"fmt"

	"games-in-common/core/aggregate"
	"games-in-common/core/cachestore"
	"games-in-common/core/catalog"
	"games-in-common/core/config"
	"games-in-common/core/database"
	"games-in-common/core/logger"
	"games-in-common/core/metrics"
	"games-in-common/core/resolver"
	"games-in-common/core/steam"
	"games-in-common/core/storage"
	"games-in-common/feature/appnames"
	"games-in-common/feature/friends"
	"games-in-common/feature/games"
	"games-in-common/feature/history"
	"games-in-common/feature/players"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app holds the wired components shared by the server and the one-shot commands.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	store    cachestore.Store
	steam    *steam.Client
	catalog  *catalog.Catalog
	resolver *resolver.Resolver
	engine   *aggregate.Engine
	storage  storage.Client
	db       *gorm.DB

	history  *history.Feature
	games    *games.Service
	friends  *friends.Service
	players  *players.Service
	appnames *appnames.Service
}

// newApp loads configuration and connects every dependency. Redis is required; object
// storage and the database are optional and only logged when unavailable.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if cfg.Steam.APIKey == "" {
		logg.Warn("STEAM_API_KEY is not set; Steam Web API calls will be rejected")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.NewCollector(registry)

	store, err := cachestore.NewRedisStore(ctx, cfg.Cache)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:      cfg,
		logger:   logg,
		registry: registry,
		store:    store,
	}

	a.steam = steam.NewClient(cfg.Steam, logg.Named("steam"), rec)
	a.catalog = catalog.New(a.steam, store, cfg.Catalog, logg.Named("catalog"), rec)
	a.resolver = resolver.New(a.catalog, cfg.Steam.Workers, logg.Named("resolver"))
	a.engine = aggregate.New(a.catalog, cfg.Steam.Workers, logg.Named("aggregate"))

	if client, err := storage.NewClient(cfg.Storage); err != nil {
		logg.Warn("Object storage unavailable; app list snapshots disabled", zap.Error(err))
	} else {
		a.storage = client
	}

	if cfg.Database.Enabled {
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			a.db = conn
			logg.Info("Connected to history database", zap.String("driver", cfg.Database.Driver))
		}
	}

	a.history = history.NewFeature(a.db, logg.Named("history"))
	if err := a.history.Service().Migrate(); err != nil {
		logg.Warn("History migration failed; history disabled", zap.Error(err))
		a.history = history.NewFeature(nil, logg.Named("history"))
	}

	maxPlayers := cfg.Server.PlayerLimit()
	a.games = games.NewService(a.resolver, a.engine, a.history.Service(), logg.Named("games"), maxPlayers)
	a.friends = friends.NewService(a.resolver, a.engine, a.history.Service(), logg.Named("friends"), maxPlayers)
	a.players = players.NewService(a.resolver, a.catalog, cfg.Steam.Workers, logg.Named("players"))
	a.appnames = appnames.NewService(a.steam, a.catalog, a.storage, appnames.Options{
		Bucket:  cfg.Storage.Bucket,
		Prefix:  cfg.Storage.SnapshotPrefix,
		Keep:    cfg.Storage.KeepSnapshots,
		Workers: cfg.Steam.Workers,
	}, logg.Named("appnames"))

	return a, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("Failed to close cache store", zap.Error(err))
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = a.logger.Sync()
}
