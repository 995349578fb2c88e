package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"games-in-common/core/cachestore"
	"games-in-common/core/catalog"
	"games-in-common/core/database"
	"games-in-common/core/logger"
	"games-in-common/core/server"
	"games-in-common/core/steam"
	"games-in-common/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// Config is the root configuration. Each section is owned by the package it configures.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Steam holds configuration for the Steam Web API client.
	Steam steam.Config `mapstructure:"steam"`
	// Cache holds configuration for the Redis cache store.
	Cache cachestore.Config `mapstructure:"cache"`
	// Catalog holds the cache lifetimes per entity.
	Catalog catalog.Config `mapstructure:"catalog"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
}

// FileName is the optional YAML file read from the config directory. Environment
// variables and .env entries override it.
const FileName = "games-in-common"

// LoadConfig reads defaults, then the optional YAML file in dir, then .env and the
// environment, and validates the result.
func LoadConfig(dir string) (*Config, error) {
	// Missing .env is normal outside development.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	bindValues(v, Config{}, "")

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read %s.yaml: %w", FileName, err)
		}
	}

	// STEAM_API_KEY -> steam.api_key
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings that would only fail later at runtime.
func (c *Config) Validate() error {
	var errs error
	if c.Steam.Workers <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("steam.workers must be positive, got %d", c.Steam.Workers))
	}
	if c.Steam.RequestsPerSecond <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("steam.requests_per_second must be positive, got %v", c.Steam.RequestsPerSecond))
	}
	if c.Cache.Addr == "" {
		errs = multierr.Append(errs, errors.New("cache.addr is required"))
	}
	for name, ttl := range map[string]time.Duration{
		"catalog.games_ttl":    c.Catalog.GamesTTL,
		"catalog.nickname_ttl": c.Catalog.NicknameTTL,
		"catalog.friends_ttl":  c.Catalog.FriendsTTL,
		"catalog.vanity_ttl":   c.Catalog.VanityTTL,
	} {
		if ttl < 0 {
			errs = multierr.Append(errs, fmt.Errorf("%s must not be negative, got %s", name, ttl))
		}
	}
	if c.Database.Enabled {
		switch c.Database.Driver {
		case "mysql", "sqlite":
		default:
			errs = multierr.Append(errs, fmt.Errorf("database.driver %q is not supported", c.Database.Driver))
		}
	}
	if errs != nil {
		return fmt.Errorf("invalid configuration: %w", errs)
	}
	return nil
}

// bindValues registers a default for every mapstructure-tagged leaf of iface, so that
// AutomaticEnv can find each key even when its default is empty.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// time.Duration is an int64, so only real structs recurse.
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
