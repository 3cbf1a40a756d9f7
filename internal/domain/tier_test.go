package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToOrdinal(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "free", input: "free", expected: 0},
		{name: "premium", input: "premium", expected: 1},
		{name: "vip", input: "vip", expected: 2},
		{name: "mixed case", input: "ViP", expected: 2},
		{name: "upper case", input: "PREMIUM", expected: 1},
		{name: "unknown degrades to free", input: "UNKNOWN", expected: 0},
		{name: "empty degrades to free", input: "", expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ToOrdinal(tc.input))
		})
	}
}

func TestFromOrdinal(t *testing.T) {
	assert.Equal(t, TierFree, FromOrdinal(0))
	assert.Equal(t, TierPremium, FromOrdinal(1))
	assert.Equal(t, TierVIP, FromOrdinal(2))

	// Out-of-range ordinals clamp to free
	assert.Equal(t, TierFree, FromOrdinal(-1))
	assert.Equal(t, TierFree, FromOrdinal(3))
	assert.Equal(t, TierFree, FromOrdinal(99))
}

func TestTierRoundTrip(t *testing.T) {
	for n := 0; n <= 2; n++ {
		assert.Equal(t, n, ToOrdinal(string(FromOrdinal(n))))
	}
	for _, tier := range []Tier{TierFree, TierPremium, TierVIP} {
		assert.Equal(t, tier, FromOrdinal(ToOrdinal(string(tier))))
	}
}

func TestKnownTier(t *testing.T) {
	assert.True(t, KnownTier("free"))
	assert.True(t, KnownTier("Premium"))
	assert.True(t, KnownTier("VIP"))
	assert.False(t, KnownTier("gold"))
	assert.False(t, KnownTier(""))
}

func TestCanAccess(t *testing.T) {
	// Full truth table over the three tiers
	testCases := []struct {
		user     int
		song     int
		expected bool
	}{
		{OrdinalFree, OrdinalFree, true},
		{OrdinalFree, OrdinalPremium, false},
		{OrdinalFree, OrdinalVIP, false},
		{OrdinalPremium, OrdinalFree, true},
		{OrdinalPremium, OrdinalPremium, true},
		{OrdinalPremium, OrdinalVIP, false},
		{OrdinalVIP, OrdinalFree, true},
		{OrdinalVIP, OrdinalPremium, true},
		{OrdinalVIP, OrdinalVIP, true},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, CanAccess(tc.user, tc.song),
			"user=%d song=%d", tc.user, tc.song)
	}
}

func TestEffectiveOrdinal(t *testing.T) {
	now := time.Now()

	// Active subscriptions keep their tier
	assert.Equal(t, OrdinalVIP, EffectiveOrdinal(OrdinalVIP, now.Add(time.Hour), now))
	assert.Equal(t, OrdinalPremium, EffectiveOrdinal(OrdinalPremium, now.Add(time.Hour), now))

	// An expired non-free subscription is treated as free
	assert.Equal(t, OrdinalFree, EffectiveOrdinal(OrdinalVIP, now.Add(-time.Second), now))
	assert.Equal(t, OrdinalFree, EffectiveOrdinal(OrdinalPremium, now.Add(-24*time.Hour), now))

	// Expiry boundary is exclusive: expiring exactly now means expired
	assert.Equal(t, OrdinalFree, EffectiveOrdinal(OrdinalVIP, now, now))

	// Free is free regardless of expiry
	assert.Equal(t, OrdinalFree, EffectiveOrdinal(OrdinalFree, now.Add(time.Hour), now))

	// Garbage ordinals clamp to free
	assert.Equal(t, OrdinalFree, EffectiveOrdinal(7, now.Add(time.Hour), now))
	assert.Equal(t, OrdinalFree, EffectiveOrdinal(-1, now.Add(time.Hour), now))
}
