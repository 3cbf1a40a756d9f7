package domain

import (
	"strings"
	"time"
)

// Tier represents a subscription level gating which songs a wallet may play
type Tier string

const (
	// TierFree is the default tier available to every wallet
	TierFree Tier = "free"
	// TierPremium is the first paid tier
	TierPremium Tier = "premium"
	// TierVIP is the highest paid tier
	TierVIP Tier = "vip"
)

// Ordinal values used for storage and comparison. Free < Premium < VIP.
const (
	OrdinalFree    = 0
	OrdinalPremium = 1
	OrdinalVIP     = 2
)

// ToOrdinal maps a tier name to its ordinal. The lookup is case-insensitive.
// Unknown names degrade to free (ordinal 0) rather than erroring, so access
// checks fail closed on bad input.
func ToOrdinal(tier string) int {
	switch strings.ToLower(tier) {
	case string(TierPremium):
		return OrdinalPremium
	case string(TierVIP):
		return OrdinalVIP
	default:
		return OrdinalFree
	}
}

// FromOrdinal maps an ordinal back to its tier. Out-of-range ordinals clamp
// to free.
func FromOrdinal(n int) Tier {
	switch n {
	case OrdinalPremium:
		return TierPremium
	case OrdinalVIP:
		return TierVIP
	default:
		return TierFree
	}
}

// KnownTier reports whether the name maps to one of the three tiers.
// Admin input is validated with this so a typo'd tier name is rejected
// instead of being silently stored as free.
func KnownTier(tier string) bool {
	switch strings.ToLower(tier) {
	case string(TierFree), string(TierPremium), string(TierVIP):
		return true
	default:
		return false
	}
}

// CanAccess decides whether a caller holding userOrdinal may play a song
// requiring songOrdinal. Pure total-order comparison; expiry gating must be
// applied by the caller via EffectiveOrdinal before this runs.
func CanAccess(userOrdinal, songOrdinal int) bool {
	return userOrdinal >= songOrdinal
}

// EffectiveOrdinal applies the expiry rule to a stored subscription tier:
// a non-free tier whose expiry has passed counts as free. The stored row is
// never downgraded; every read path goes through this instead.
func EffectiveOrdinal(tierOrdinal int, expiresAt time.Time, now time.Time) int {
	if tierOrdinal <= OrdinalFree || tierOrdinal > OrdinalVIP {
		return OrdinalFree
	}
	if !now.Before(expiresAt) {
		return OrdinalFree
	}
	return tierOrdinal
}
