package store

import (
	"context"
	"time"

	"github.com/tunestream/tunes-api/internal/store/schema"
)

// PlayHistoryEntry is a play event joined with the song metadata needed for
// display
type PlayHistoryEntry struct {
	SongID      string    `gorm:"column:song_id"`
	Title       string    `gorm:"column:title"`
	Artist      string    `gorm:"column:artist"`
	CoverURL    string    `gorm:"column:cover_url"`
	TxDigest    string    `gorm:"column:tx_digest"`
	PlayedAt    time.Time `gorm:"column:played_at"`
	UserAddress string    `gorm:"column:user_address"`
}

// TierCount is the number of active subscribers on one tier
type TierCount struct {
	Tier  int   `gorm:"column:tier"`
	Count int64 `gorm:"column:count"`
}

// PlatformStats holds the aggregate counters for the admin dashboard
type PlatformStats struct {
	TotalSongs        int64
	ActiveSubscribers int64
	TotalPlays        int64
	TierDistribution  []TierCount
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// ListSongs retrieves songs ordered by creation time, newest first.
	// When maxTierOrdinal is non-nil only songs with tier_required <= it
	// are returned.
	ListSongs(ctx context.Context, maxTierOrdinal *int) ([]*schema.Song, error)
	// GetSongByID retrieves a song by id, returning (nil, nil) when absent
	GetSongByID(ctx context.Context, id string) (*schema.Song, error)
	// CreateSong persists a new song
	CreateSong(ctx context.Context, song *schema.Song) error
	// DeleteSong removes a song by id, reporting whether a row was deleted
	DeleteSong(ctx context.Context, id string) (bool, error)

	// GetSubscription retrieves the subscription row for a wallet address,
	// returning (nil, nil) when the wallet has none on file
	GetSubscription(ctx context.Context, userAddress string) (*schema.Subscription, error)
	// UpsertSubscription atomically inserts or updates the subscription row
	// for sub.UserAddress. On conflict tier, expires_at, tx_digest and
	// updated_at are overwritten and started_at is left untouched.
	UpsertSubscription(ctx context.Context, sub *schema.Subscription) error

	// RecordPlay appends a play_history row and increments the song's play
	// counter in a single transaction
	RecordPlay(ctx context.Context, songID, userAddress, txDigest string, playedAt time.Time) error
	// GetPlayHistory retrieves the most recent plays for a wallet joined
	// with song metadata, newest first
	GetPlayHistory(ctx context.Context, userAddress string, limit int) ([]*PlayHistoryEntry, error)

	// GetPlatformStats computes the aggregate counters as of now. Active
	// subscriber counts include only non-free rows with expires_at > now.
	GetPlatformStats(ctx context.Context, now time.Time) (*PlatformStats, error)
}
