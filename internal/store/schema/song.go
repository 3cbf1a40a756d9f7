package schema

import (
	"time"
)

// Song represents the songs table - the streaming catalog.
// IDs are chain-object-id shaped ("0x..."): either issued by the chain when
// the song object was created on-chain, or generated locally.
type Song struct {
	// ID is the chain-shaped song identifier
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Title is the song title
	Title string `gorm:"column:title;not null;type:text"`
	// Artist is the performing artist
	Artist string `gorm:"column:artist;not null;type:text"`
	// Album is the album name, empty for singles
	Album string `gorm:"column:album;type:text"`
	// DurationSecs is the track length in whole seconds
	DurationSecs int `gorm:"column:duration_secs;not null;default:0"`
	// Genre is a free-form genre label
	Genre string `gorm:"column:genre;type:text"`
	// TierRequired is the minimum subscription tier ordinal needed to play
	// this song (0=free, 1=premium, 2=vip)
	TierRequired int `gorm:"column:tier_required;not null;default:0;index:idx_songs_tier_required"`
	// AudioURL locates the audio asset
	AudioURL string `gorm:"column:audio_url;not null;type:text"`
	// CoverURL locates the cover art
	CoverURL string `gorm:"column:cover_url;type:text"`
	// TxDigest references the chain transaction that registered the song
	TxDigest string `gorm:"column:tx_digest;type:text"`
	// Plays is the cumulative play counter, incremented atomically in SQL
	// and never decremented
	Plays int64 `gorm:"column:plays;not null;default:0"`
	// CreatedAt is the timestamp when the song was added
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Song model
func (Song) TableName() string {
	return "songs"
}
