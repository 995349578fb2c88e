package history

import (
	"context"

	"games-in-common/core/aggregate"

	"go.uber.org/zap"
)

const (
	defaultLimit = 20
	maxLimit     = 200
)

// Report is the history listing.
type Report struct {
	Players []RecentPlayer `json:"players"`
	Lookups []LookupRecord `json:"lookups"`
}

// Service records and lists lookup history.
type Service struct {
	repo   *Repository
	logger *zap.Logger
}

// NewService creates a new history service.
func NewService(repo *Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Record stores a lookup. Failures are logged and swallowed so that history never breaks
// a lookup.
func (s *Service) Record(ctx context.Context, kind string, players []aggregate.Player, resultCount int) {
	if err := s.repo.Record(ctx, kind, players, resultCount); err != nil {
		s.logger.Warn("Failed to record lookup history",
			zap.String("kind", kind),
			zap.Int("players", len(players)),
			zap.Error(err))
	}
}

// Migrate creates or updates the history tables.
func (s *Service) Migrate() error {
	return s.repo.Migrate()
}

// List returns recent players and lookups.
func (s *Service) List(ctx context.Context, limit int) (*Report, error) {
	limit = clampLimit(limit)

	players, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	lookups, err := s.repo.Lookups(ctx, limit)
	if err != nil {
		return nil, err
	}
	return &Report{Players: players, Lookups: lookups}, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultLimit
	case limit > maxLimit:
		return maxLimit
	default:
		return limit
	}
}
