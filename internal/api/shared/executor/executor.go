// Package executor contains the business logic behind the REST handlers:
// catalog queries, subscription reconciliation, and play recording.
package executor

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tunestream/tunes-api/internal/adapter"
	"github.com/tunestream/tunes-api/internal/api/shared/dto"
	"github.com/tunestream/tunes-api/internal/domain"
	"github.com/tunestream/tunes-api/internal/logger"
	"github.com/tunestream/tunes-api/internal/receipt"
	"github.com/tunestream/tunes-api/internal/store"
	"github.com/tunestream/tunes-api/internal/store/schema"
)

// subscriptionPeriod is the fixed validity of one purchase. Renewals
// overwrite the expiry; remaining time is not stacked.
const subscriptionPeriod = 30 * 24 * time.Hour

const (
	// defaultHistoryLimit applies when the history query gives no limit
	defaultHistoryLimit = 50
	// maxHistoryLimit caps the history query; the log itself is unbounded
	maxHistoryLimit = 500
)

// Executor defines the business operations shared by the API handlers
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// ListSongs retrieves the catalog, optionally restricted to songs
	// visible at or below tierName. The filter is a browsing convenience;
	// access enforcement happens in RecordPlay.
	ListSongs(ctx context.Context, tierName *string) (*dto.SongsResponse, error)
	// GetSong retrieves one song, returning (nil, nil) when absent
	GetSong(ctx context.Context, id string) (*dto.SongResponse, error)
	// AddSong persists a new song, generating a chain-shaped id when the
	// request carries none
	AddSong(ctx context.Context, req *dto.AddSongRequest) (*dto.AddSongResponse, error)
	// DeleteSong removes a song; domain.ErrSongNotFound when absent
	DeleteSong(ctx context.Context, id string) error

	// GetSubscription returns the wallet's subscription state, defaulting
	// to the implicit free subscription when none is on file
	GetSubscription(ctx context.Context, userAddress string) (*dto.SubscriptionResponse, error)
	// Subscribe reconciles a claimed purchase against the chain and
	// upserts the subscription record. No database write happens unless
	// the receipt verifies and the claimed tier matches the on-chain one.
	Subscribe(ctx context.Context, userAddress, tierName, txDigest string) (*dto.SubscribeResponse, error)

	// RecordPlay gates a play attempt on the caller's effective tier and,
	// when allowed, appends history and bumps the play counter
	RecordPlay(ctx context.Context, songID, userAddress, txDigest string) error
	// GetHistory retrieves the wallet's recent plays, newest first
	GetHistory(ctx context.Context, userAddress string, limit int) (*dto.HistoryResponse, error)

	// GetStats computes the admin dashboard aggregates
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}

type executor struct {
	store    store.Store
	verifier receipt.Verifier
	clock    adapter.Clock
}

// NewExecutor creates a new executor
func NewExecutor(s store.Store, v receipt.Verifier, clock adapter.Clock) Executor {
	return &executor{
		store:    s,
		verifier: v,
		clock:    clock,
	}
}

// ListSongs retrieves the catalog, optionally filtered by tier
func (e *executor) ListSongs(ctx context.Context, tierName *string) (*dto.SongsResponse, error) {
	var maxTier *int
	if tierName != nil {
		// Unknown names degrade to free here: the filter only narrows
		// what an anonymous browser sees, it grants nothing.
		ordinal := domain.ToOrdinal(*tierName)
		maxTier = &ordinal
	}

	songs, err := e.store.ListSongs(ctx, maxTier)
	if err != nil {
		return nil, err
	}

	resp := &dto.SongsResponse{Songs: make([]dto.SongResponse, 0, len(songs))}
	for _, song := range songs {
		resp.Songs = append(resp.Songs, toSongResponse(song))
	}

	return resp, nil
}

// GetSong retrieves one song, returning (nil, nil) when absent
func (e *executor) GetSong(ctx context.Context, id string) (*dto.SongResponse, error) {
	song, err := e.store.GetSongByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if song == nil {
		return nil, nil
	}

	resp := toSongResponse(song)
	return &resp, nil
}

// AddSong persists a new song
func (e *executor) AddSong(ctx context.Context, req *dto.AddSongRequest) (*dto.AddSongResponse, error) {
	songID := newSongID()

	song := &schema.Song{
		ID:           songID,
		Title:        req.Title,
		Artist:       req.Artist,
		Album:        req.Album,
		DurationSecs: req.DurationSecs,
		Genre:        req.Genre,
		TierRequired: domain.ToOrdinal(req.Tier),
		AudioURL:     req.AudioURL,
		CoverURL:     req.CoverURL,
		TxDigest:     req.TxDigest,
		CreatedAt:    e.clock.Now(),
	}

	if err := e.store.CreateSong(ctx, song); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Song added",
		zap.String("song_id", songID),
		zap.String("title", req.Title),
		zap.Int("tier_required", song.TierRequired),
	)

	return &dto.AddSongResponse{
		Success: true,
		SongID:  songID,
		Message: "Song added successfully",
	}, nil
}

// DeleteSong removes a song; domain.ErrSongNotFound when absent
func (e *executor) DeleteSong(ctx context.Context, id string) error {
	deleted, err := e.store.DeleteSong(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrSongNotFound
	}

	logger.InfoCtx(ctx, "Song deleted", zap.String("song_id", id))
	return nil
}

// GetSubscription returns the wallet's subscription state
func (e *executor) GetSubscription(ctx context.Context, userAddress string) (*dto.SubscriptionResponse, error) {
	sub, err := e.store.GetSubscription(ctx, userAddress)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		// Every wallet holds an implicit free subscription
		return &dto.SubscriptionResponse{
			Tier:      string(domain.TierFree),
			ExpiresAt: 0,
			Active:    true,
		}, nil
	}

	now := e.clock.Now()
	return &dto.SubscriptionResponse{
		Tier:      string(domain.FromOrdinal(sub.Tier)),
		ExpiresAt: sub.ExpiresAt.UnixMilli(),
		Active:    sub.Tier > domain.OrdinalFree && now.Before(sub.ExpiresAt),
	}, nil
}

// Subscribe reconciles a claimed purchase against the chain and upserts the
// subscription record
func (e *executor) Subscribe(ctx context.Context, userAddress, tierName, txDigest string) (*dto.SubscribeResponse, error) {
	// The chain lookup completes (or times out) before any database work
	// begins; a verifier failure leaves the record untouched.
	purchase, err := e.verifier.VerifyPurchase(ctx, txDigest)
	if err != nil {
		return nil, err
	}

	// The tier of record is the one the chain saw, never the one the
	// client asserts. A disagreeing claim is rejected outright.
	claimed := domain.ToOrdinal(tierName)
	if purchase.TierOrdinal != claimed {
		return nil, fmt.Errorf("%w: claimed %q (%d), event says %d",
			domain.ErrTierMismatch, tierName, claimed, purchase.TierOrdinal)
	}

	if purchase.Payer != "" && !strings.EqualFold(purchase.Payer, userAddress) {
		return nil, fmt.Errorf("%w: paid by %s", domain.ErrPayerMismatch, purchase.Payer)
	}

	now := e.clock.Now()
	expiresAt := now.Add(subscriptionPeriod)

	sub := &schema.Subscription{
		UserAddress: userAddress,
		Tier:        claimed,
		ExpiresAt:   expiresAt,
		StartedAt:   now, // kept only on first insert; untouched on renewal
		TxDigest:    txDigest,
		UpdatedAt:   now,
	}
	if err := e.store.UpsertSubscription(ctx, sub); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Subscription reconciled",
		zap.String("user_address", userAddress),
		zap.Int("tier", claimed),
		zap.String("tx_digest", txDigest),
		zap.Time("expires_at", expiresAt),
	)

	return &dto.SubscribeResponse{
		Success:   true,
		Tier:      string(domain.FromOrdinal(claimed)),
		ExpiresAt: expiresAt.UnixMilli(),
	}, nil
}

// RecordPlay gates a play attempt on the caller's effective tier and, when
// allowed, appends history and bumps the play counter. The tx digest is
// stored as an annotation only - play events are telemetry, so unlike
// Subscribe this path performs no chain verification.
func (e *executor) RecordPlay(ctx context.Context, songID, userAddress, txDigest string) error {
	song, err := e.store.GetSongByID(ctx, songID)
	if err != nil {
		return err
	}
	if song == nil {
		return domain.ErrSongNotFound
	}

	// Evaluated fresh on every attempt; the subscription can expire or
	// change between requests.
	userOrdinal := domain.OrdinalFree
	sub, err := e.store.GetSubscription(ctx, userAddress)
	if err != nil {
		return err
	}
	if sub != nil {
		userOrdinal = domain.EffectiveOrdinal(sub.Tier, sub.ExpiresAt, e.clock.Now())
	}

	if !domain.CanAccess(userOrdinal, song.TierRequired) {
		return fmt.Errorf("%w: song requires %s", domain.ErrSubscriptionRequired,
			domain.FromOrdinal(song.TierRequired))
	}

	return e.store.RecordPlay(ctx, songID, userAddress, txDigest, e.clock.Now())
}

// GetHistory retrieves the wallet's recent plays, newest first
func (e *executor) GetHistory(ctx context.Context, userAddress string, limit int) (*dto.HistoryResponse, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	entries, err := e.store.GetPlayHistory(ctx, userAddress, limit)
	if err != nil {
		return nil, err
	}

	resp := &dto.HistoryResponse{History: make([]dto.HistoryEntryResponse, 0, len(entries))}
	for _, entry := range entries {
		resp.History = append(resp.History, dto.HistoryEntryResponse{
			SongID:   entry.SongID,
			Title:    entry.Title,
			Artist:   entry.Artist,
			Cover:    entry.CoverURL,
			PlayedAt: entry.PlayedAt.UnixMilli(),
		})
	}

	return resp, nil
}

// GetStats computes the admin dashboard aggregates
func (e *executor) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	stats, err := e.store.GetPlatformStats(ctx, e.clock.Now())
	if err != nil {
		return nil, err
	}

	resp := &dto.StatsResponse{
		TotalSongs:        stats.TotalSongs,
		ActiveSubscribers: stats.ActiveSubscribers,
		TotalPlays:        stats.TotalPlays,
		TierDistribution:  make([]dto.TierCountResponse, 0, len(stats.TierDistribution)),
	}
	for _, tc := range stats.TierDistribution {
		resp.TierDistribution = append(resp.TierDistribution, dto.TierCountResponse{
			Tier:  string(domain.FromOrdinal(tc.Tier)),
			Count: tc.Count,
		})
	}

	return resp, nil
}

// toSongResponse maps a stored song to its wire shape
func toSongResponse(song *schema.Song) dto.SongResponse {
	return dto.SongResponse{
		ID:           song.ID,
		Title:        song.Title,
		Artist:       song.Artist,
		Album:        song.Album,
		DurationSecs: song.DurationSecs,
		Duration:     dto.FormatDuration(song.DurationSecs),
		Genre:        song.Genre,
		Tier:         string(domain.FromOrdinal(song.TierRequired)),
		Cover:        song.CoverURL,
		AudioURL:     song.AudioURL,
		Plays:        song.Plays,
	}
}

// newSongID generates a chain-object-id shaped identifier for songs that
// were not registered on-chain
func newSongID() string {
	id := uuid.New()
	return "0x" + hex.EncodeToString(id[:])
}
