// Package receipt verifies on-chain subscription purchases before the
// off-chain record is trusted. The client submits only a transaction digest;
// everything else is re-fetched from the fullnode.
package receipt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tunestream/tunes-api/internal/domain"
	"github.com/tunestream/tunes-api/internal/providers/sui"
)

// purchaseEventSuffix matches the fully-qualified Move event type emitted by
// the subscription module. Suffix matching is deliberate: the package id
// differs between deployments and upgrades.
const purchaseEventSuffix = "::subscription::SubscriptionPurchased"

// Purchase is the verified content of a SubscriptionPurchased event
type Purchase struct {
	// TierOrdinal is the purchased tier as recorded on chain
	TierOrdinal int
	// Payer is the wallet that paid for the subscription
	Payer string
	// Amount is the paid amount in MIST, as a decimal string
	Amount string
	// TxDigest is the digest of the verified transaction
	TxDigest string
}

// Verifier confirms that a transaction digest corresponds to a finalized
// subscription purchase
//
//go:generate mockgen -source=verifier.go -destination=../mocks/receipt_verifier.go -package=mocks -mock_names=Verifier=MockVerifier
type Verifier interface {
	// VerifyPurchase fetches the transaction for txDigest and extracts its
	// SubscriptionPurchased event. Returns domain.ErrChainLookupFailed
	// (retryable) when the transaction cannot be fetched, and
	// *domain.NoPurchaseEventError (terminal) when it carries no matching
	// event.
	VerifyPurchase(ctx context.Context, txDigest string) (*Purchase, error)
}

type verifier struct {
	client  sui.Client
	timeout time.Duration
}

// NewVerifier creates a verifier backed by a Sui fullnode client. timeout
// bounds the RPC round trip; a timed-out lookup is reported as retryable,
// not as a missing event.
func NewVerifier(client sui.Client, timeout time.Duration) Verifier {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &verifier{client: client, timeout: timeout}
}

// purchaseEventPayload mirrors the parsedJson of the SubscriptionPurchased
// Move event. u64 fields arrive as JSON strings from the fullnode; accept
// plain numbers too.
type purchaseEventPayload struct {
	Subscriber string      `json:"subscriber"`
	Tier       json.Number `json:"tier"`
	Amount     json.Number `json:"amount"`
}

func (v *verifier) VerifyPurchase(ctx context.Context, txDigest string) (*Purchase, error) {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	block, err := v.client.GetTransactionBlock(ctx, txDigest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrChainLookupFailed, err)
	}

	// A failed transaction emits no purchase even when events are present
	// in the record. Treat it as terminal, not retryable.
	if block.Effects != nil && block.Effects.Status.Status != "success" {
		return nil, fmt.Errorf("%w: transaction %s execution status %q",
			domain.ErrTransactionFailed, txDigest, block.Effects.Status.Status)
	}

	var matched *sui.Event
	observed := make([]string, 0, len(block.Events))
	for i := range block.Events {
		observed = append(observed, block.Events[i].Type)
		if strings.HasSuffix(block.Events[i].Type, purchaseEventSuffix) {
			matched = &block.Events[i]
			break
		}
	}

	if matched == nil {
		return nil, &domain.NoPurchaseEventError{
			TxDigest:      txDigest,
			ObservedTypes: observed,
		}
	}

	var payload purchaseEventPayload
	if err := json.Unmarshal(matched.ParsedJSON, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode %s payload in %s: %w", matched.Type, txDigest, err)
	}

	tier, err := payload.Tier.Int64()
	if err != nil {
		return nil, fmt.Errorf("invalid tier in %s payload of %s: %w", matched.Type, txDigest, err)
	}

	payer := payload.Subscriber
	if payer == "" {
		// Older contract versions omit the subscriber field; the event
		// sender is the signer of the purchase transaction.
		payer = matched.Sender
	}

	return &Purchase{
		TierOrdinal: int(tier),
		Payer:       payer,
		Amount:      payload.Amount.String(),
		TxDigest:    txDigest,
	}, nil
}
