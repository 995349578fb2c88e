package history

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"games-in-common/core/aggregate"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDisabled is returned by reads when no database is configured.
var ErrDisabled = errors.New("lookup history is disabled")

// Repository persists lookup history.
type Repository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRepository creates a Repository. A nil db disables persistence.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Enabled reports whether a database is attached.
func (r *Repository) Enabled() bool {
	return r != nil && r.db != nil
}

// Migrate creates or updates the history tables.
func (r *Repository) Migrate() error {
	if !r.Enabled() {
		return nil
	}
	return r.db.AutoMigrate(&LookupRecord{}, &RecentPlayer{})
}

// Record stores a lookup and bumps every player's counter in one transaction.
func (r *Repository) Record(ctx context.Context, kind string, players []aggregate.Player, resultCount int) error {
	if !r.Enabled() || len(players) == 0 {
		return nil
	}

	now := r.now().UTC()
	ids := make([]string, len(players))
	rows := make([]RecentPlayer, len(players))
	for i, p := range players {
		ids[i] = p.ID.String()
		rows[i] = RecentPlayer{
			SteamID:     p.ID.String(),
			Nickname:    p.Nickname,
			LookupCount: 1,
			LastSeenAt:  now,
		}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record := LookupRecord{
			Kind:        kind,
			Players:     strings.Join(ids, ","),
			PlayerCount: len(players),
			ResultCount: resultCount,
			CreatedAt:   now,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		updates := clause.AssignmentColumns([]string{"nickname", "last_seen_at"})
		updates = append(updates, clause.Assignment{
			Column: clause.Column{Name: "lookup_count"},
			Value:  gorm.Expr("lookup_count + 1"),
		})
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "steam_id"}},
			DoUpdates: updates,
		}).Create(&rows).Error
	})
	if err != nil {
		return fmt.Errorf("failed to record lookup: %w", err)
	}
	return nil
}

// Recent returns the most recently seen players, newest first.
func (r *Repository) Recent(ctx context.Context, limit int) ([]RecentPlayer, error) {
	if !r.Enabled() {
		return nil, ErrDisabled
	}
	var players []RecentPlayer
	err := r.db.WithContext(ctx).
		Order("last_seen_at DESC").
		Order("steam_id").
		Limit(limit).
		Find(&players).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent players: %w", err)
	}
	return players, nil
}

// Lookups returns the latest lookups, newest first.
func (r *Repository) Lookups(ctx context.Context, limit int) ([]LookupRecord, error) {
	if !r.Enabled() {
		return nil, ErrDisabled
	}
	var records []LookupRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list lookups: %w", err)
	}
	return records, nil
}
