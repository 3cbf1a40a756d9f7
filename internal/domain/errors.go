package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSongNotFound is returned when a song id has no catalog entry
	ErrSongNotFound = errors.New("song not found")

	// ErrSubscriptionRequired is returned when a play attempt is denied by
	// the tier check
	ErrSubscriptionRequired = errors.New("subscription required")

	// ErrChainLookupFailed is returned when the transaction could not be
	// fetched from the fullnode (network error, timeout, unknown digest).
	// Transient: the client may retry with the same digest.
	ErrChainLookupFailed = errors.New("chain lookup failed")

	// ErrTierMismatch is returned when the tier claimed by the client does
	// not match the tier recorded in the on-chain purchase event
	ErrTierMismatch = errors.New("claimed tier does not match on-chain purchase")

	// ErrPayerMismatch is returned when the purchase event was paid for by a
	// different wallet than the one being subscribed
	ErrPayerMismatch = errors.New("purchase was paid by a different wallet")

	// ErrTransactionFailed is returned when the referenced transaction
	// exists but did not execute successfully. Terminal: retrying the same
	// digest cannot succeed.
	ErrTransactionFailed = errors.New("transaction execution failed")
)

// NoPurchaseEventError is returned when the transaction exists but none of
// its emitted events is a SubscriptionPurchased event. Terminal: the client
// must resubmit with a correct digest. ObservedTypes carries the type names
// of the events that were present, for diagnosis.
type NoPurchaseEventError struct {
	TxDigest      string
	ObservedTypes []string
}

func (e *NoPurchaseEventError) Error() string {
	return fmt.Sprintf("no SubscriptionPurchased event in transaction %s (observed: %s)",
		e.TxDigest, strings.Join(e.ObservedTypes, ", "))
}
