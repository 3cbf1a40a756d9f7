package schema

import (
	"time"
)

// PlayHistory represents the play_history table - an append-only log of play
// events. Rows are never mutated or deleted. The tx_digest is a client-
// supplied annotation and is not chain-verified; play events are telemetry,
// not billing input.
type PlayHistory struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// SongID references the played song
	SongID string `gorm:"column:song_id;not null;type:text;index:idx_play_history_song_id"`
	// UserAddress is the listener's wallet address
	UserAddress string `gorm:"column:user_address;not null;type:text;index:idx_play_history_user_address"`
	// TxDigest is an optional client-supplied transaction reference
	TxDigest string `gorm:"column:tx_digest;type:text"`
	// PlayedAt is when the play was recorded
	PlayedAt time.Time `gorm:"column:played_at;not null;default:now()"`
}

// TableName specifies the table name for the PlayHistory model
func (PlayHistory) TableName() string {
	return "play_history"
}
