package schema

import (
	"time"
)

// Subscription represents the subscriptions table - one row per wallet
// address, the system of record for access decisions. Rows are upserted,
// never merged: the latest verified purchase overwrites tier and expiry.
// An expired row is not downgraded in storage; read paths apply the expiry
// rule instead.
type Subscription struct {
	// UserAddress is the subscriber's wallet address
	UserAddress string `gorm:"column:user_address;primaryKey;type:text"`
	// Tier is the purchased tier ordinal (1=premium, 2=vip)
	Tier int `gorm:"column:tier;not null;default:0"`
	// ExpiresAt is when the subscription lapses
	ExpiresAt time.Time `gorm:"column:expires_at;not null;index:idx_subscriptions_expires_at"`
	// StartedAt is when the wallet first subscribed; untouched on renewal
	StartedAt time.Time `gorm:"column:started_at;not null"`
	// TxDigest is the digest of the latest verified purchase transaction
	TxDigest string `gorm:"column:tx_digest;not null;type:text"`
	// UpdatedAt is the timestamp of the latest upsert
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the Subscription model
func (Subscription) TableName() string {
	return "subscriptions"
}
