package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tunestream/tunes-api/internal/domain"
	"github.com/tunestream/tunes-api/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// ListSongs retrieves songs ordered by creation time, newest first
func (s *pgStore) ListSongs(ctx context.Context, maxTierOrdinal *int) ([]*schema.Song, error) {
	query := s.db.WithContext(ctx).Order("created_at DESC")
	if maxTierOrdinal != nil {
		query = query.Where("tier_required <= ?", *maxTierOrdinal)
	}

	var songs []*schema.Song
	if err := query.Find(&songs).Error; err != nil {
		return nil, fmt.Errorf("failed to list songs: %w", err)
	}

	return songs, nil
}

// GetSongByID retrieves a song by id, returning (nil, nil) when absent
func (s *pgStore) GetSongByID(ctx context.Context, id string) (*schema.Song, error) {
	var song schema.Song
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&song).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get song: %w", err)
	}

	return &song, nil
}

// CreateSong persists a new song
func (s *pgStore) CreateSong(ctx context.Context, song *schema.Song) error {
	if err := s.db.WithContext(ctx).Create(song).Error; err != nil {
		return fmt.Errorf("failed to create song: %w", err)
	}

	return nil
}

// DeleteSong removes a song by id, reporting whether a row was deleted.
// Deleting a nonexistent id returns (false, nil), not success.
func (s *pgStore) DeleteSong(ctx context.Context, id string) (bool, error) {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.Song{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete song: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// GetSubscription retrieves the subscription row for a wallet address,
// returning (nil, nil) when the wallet has none on file
func (s *pgStore) GetSubscription(ctx context.Context, userAddress string) (*schema.Subscription, error) {
	var sub schema.Subscription
	err := s.db.WithContext(ctx).Where("user_address = ?", userAddress).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return &sub, nil
}

// UpsertSubscription atomically inserts or updates the subscription row for
// sub.UserAddress. A single INSERT ... ON CONFLICT DO UPDATE keeps concurrent
// reconciliations for the same address from interleaving partial writes; the
// latest purchase wins wholesale. started_at keeps its original value on
// conflict.
func (s *pgStore) UpsertSubscription(ctx context.Context, sub *schema.Subscription) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_address"}},
		DoUpdates: clause.AssignmentColumns([]string{"tier", "expires_at", "tx_digest", "updated_at"}),
	}).Create(sub).Error
	if err != nil {
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}

	return nil
}

// RecordPlay appends a play_history row and increments the song's play
// counter in a single transaction. The increment is a SQL expression, not a
// read-modify-write, so concurrent plays of the same song don't lose updates.
func (s *pgStore) RecordPlay(ctx context.Context, songID, userAddress, txDigest string, playedAt time.Time) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry := schema.PlayHistory{
			SongID:      songID,
			UserAddress: userAddress,
			TxDigest:    txDigest,
			PlayedAt:    playedAt,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to append play history: %w", err)
		}

		result := tx.Model(&schema.Song{}).
			Where("id = ?", songID).
			UpdateColumn("plays", gorm.Expr("plays + 1"))
		if result.Error != nil {
			return fmt.Errorf("failed to increment play count: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("failed to increment play count: %w", domain.ErrSongNotFound)
		}

		return nil
	})
}

// GetPlayHistory retrieves the most recent plays for a wallet joined with
// song metadata, newest first
func (s *pgStore) GetPlayHistory(ctx context.Context, userAddress string, limit int) ([]*PlayHistoryEntry, error) {
	var entries []*PlayHistoryEntry
	err := s.db.WithContext(ctx).
		Table("play_history").
		Select("play_history.song_id, play_history.user_address, play_history.tx_digest, play_history.played_at, songs.title, songs.artist, songs.cover_url").
		Joins("JOIN songs ON play_history.song_id = songs.id").
		Where("play_history.user_address = ?", userAddress).
		Order("play_history.played_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get play history: %w", err)
	}

	return entries, nil
}

// GetPlatformStats computes the aggregate counters as of now
func (s *pgStore) GetPlatformStats(ctx context.Context, now time.Time) (*PlatformStats, error) {
	stats := &PlatformStats{}

	if err := s.db.WithContext(ctx).Model(&schema.Song{}).Count(&stats.TotalSongs).Error; err != nil {
		return nil, fmt.Errorf("failed to count songs: %w", err)
	}

	err := s.db.WithContext(ctx).Model(&schema.Subscription{}).
		Where("tier > 0 AND expires_at > ?", now).
		Count(&stats.ActiveSubscribers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count active subscribers: %w", err)
	}

	var totalPlays *int64
	err = s.db.WithContext(ctx).Model(&schema.Song{}).
		Select("SUM(plays)").
		Scan(&totalPlays).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum plays: %w", err)
	}
	if totalPlays != nil {
		stats.TotalPlays = *totalPlays
	}

	err = s.db.WithContext(ctx).Model(&schema.Subscription{}).
		Select("tier, COUNT(*) AS count").
		Where("tier > 0 AND expires_at > ?", now).
		Group("tier").
		Order("tier").
		Find(&stats.TierDistribution).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group subscriptions by tier: %w", err)
	}

	return stats, nil
}
