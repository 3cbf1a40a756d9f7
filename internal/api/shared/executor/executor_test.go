package executor

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunestream/tunes-api/internal/api/shared/dto"
	"github.com/tunestream/tunes-api/internal/domain"
	"github.com/tunestream/tunes-api/internal/logger"
	"github.com/tunestream/tunes-api/internal/mocks"
	"github.com/tunestream/tunes-api/internal/receipt"
	"github.com/tunestream/tunes-api/internal/store"
	"github.com/tunestream/tunes-api/internal/store/schema"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type executorMocks struct {
	store    *mocks.MockStore
	verifier *mocks.MockVerifier
	clock    *mocks.MockClock
}

func newTestExecutor(t *testing.T) (Executor, executorMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := executorMocks{
		store:    mocks.NewMockStore(ctrl),
		verifier: mocks.NewMockVerifier(ctrl),
		clock:    mocks.NewMockClock(ctrl),
	}
	return NewExecutor(m.store, m.verifier, m.clock), m
}

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestSubscribe(t *testing.T) {
	exec, m := newTestExecutor(t)
	ctx := context.Background()

	m.verifier.EXPECT().
		VerifyPurchase(ctx, "DigestOk").
		Return(&receipt.Purchase{
			TierOrdinal: 1,
			Payer:       "0xalice",
			Amount:      "5000000000",
			TxDigest:    "DigestOk",
		}, nil)
	m.clock.EXPECT().Now().Return(testNow).AnyTimes()

	wantExpiry := testNow.Add(30 * 24 * time.Hour)
	m.store.EXPECT().
		UpsertSubscription(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, sub *schema.Subscription) error {
			assert.Equal(t, "0xalice", sub.UserAddress)
			assert.Equal(t, 1, sub.Tier)
			assert.Equal(t, wantExpiry, sub.ExpiresAt)
			assert.Equal(t, testNow, sub.StartedAt)
			assert.Equal(t, "DigestOk", sub.TxDigest)
			return nil
		})

	resp, err := exec.Subscribe(ctx, "0xalice", "premium", "DigestOk")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "premium", resp.Tier)
	assert.Equal(t, wantExpiry.UnixMilli(), resp.ExpiresAt)
}

func TestSubscribe_VerifierFailure(t *testing.T) {
	exec, m := newTestExecutor(t)
	ctx := context.Background()

	// No store expectations: a failed verification must not touch the
	// database.
	m.verifier.EXPECT().
		VerifyPurchase(ctx, "DigestBad").
		Return(nil, &domain.NoPurchaseEventError{TxDigest: "DigestBad"})

	resp, err := exec.Subscribe(ctx, "0xalice", "premium", "DigestBad")
	require.Error(t, err)
	assert.Nil(t, resp)

	var noPurchase *domain.NoPurchaseEventError
	assert.ErrorAs(t, err, &noPurchase)
}

func TestSubscribe_TierMismatch(t *testing.T) {
	exec, m := newTestExecutor(t)
	ctx := context.Background()

	// Chain says premium, the client claims vip
	m.verifier.EXPECT().
		VerifyPurchase(ctx, "DigestOk").
		Return(&receipt.Purchase{TierOrdinal: 1, Payer: "0xalice", TxDigest: "DigestOk"}, nil)

	resp, err := exec.Subscribe(ctx, "0xalice", "vip", "DigestOk")
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrTierMismatch)
}

func TestSubscribe_PayerMismatch(t *testing.T) {
	exec, m := newTestExecutor(t)
	ctx := context.Background()

	m.verifier.EXPECT().
		VerifyPurchase(ctx, "DigestOk").
		Return(&receipt.Purchase{TierOrdinal: 2, Payer: "0xmallory", TxDigest: "DigestOk"}, nil)

	resp, err := exec.Subscribe(ctx, "0xalice", "vip", "DigestOk")
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrPayerMismatch)
}

func TestSubscribe_PayerComparisonIsCaseInsensitive(t *testing.T) {
	exec, m := newTestExecutor(t)
	ctx := context.Background()

	m.verifier.EXPECT().
		VerifyPurchase(ctx, "DigestOk").
		Return(&receipt.Purchase{TierOrdinal: 2, Payer: "0xABCDEF", TxDigest: "DigestOk"}, nil)
	m.clock.EXPECT().Now().Return(testNow).AnyTimes()
	m.store.EXPECT().UpsertSubscription(ctx, gomock.Any()).Return(nil)

	resp, err := exec.Subscribe(ctx, "0xabcdef", "vip", "DigestOk")
	require.NoError(t, err)
	assert.Equal(t, "vip", resp.Tier)
}

func TestRecordPlay(t *testing.T) {
	freeSong := &schema.Song{ID: "0xfree", TierRequired: 0}
	premiumSong := &schema.Song{ID: "0xpremium", TierRequired: 1}
	vipSong := &schema.Song{ID: "0xvip", TierRequired: 2}

	activeVIP := &schema.Subscription{Tier: 2, ExpiresAt: testNow.Add(time.Hour)}
	activePremium := &schema.Subscription{Tier: 1, ExpiresAt: testNow.Add(time.Hour)}
	expiredVIP := &schema.Subscription{Tier: 2, ExpiresAt: testNow.Add(-time.Hour)}

	tests := []struct {
		name    string
		song    *schema.Song
		sub     *schema.Subscription
		allowed bool
	}{
		{"free song without subscription", freeSong, nil, true},
		{"premium song without subscription", premiumSong, nil, false},
		{"premium song with active premium", premiumSong, activePremium, true},
		{"vip song with active premium", vipSong, activePremium, false},
		{"premium song with active vip", premiumSong, activeVIP, true},
		{"premium song with expired vip", premiumSong, expiredVIP, false},
		{"free song with expired vip", freeSong, expiredVIP, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec, m := newTestExecutor(t)
			ctx := context.Background()

			m.store.EXPECT().GetSongByID(ctx, tt.song.ID).Return(tt.song, nil)
			m.store.EXPECT().GetSubscription(ctx, "0xuser").Return(tt.sub, nil)
			m.clock.EXPECT().Now().Return(testNow).AnyTimes()
			if tt.allowed {
				m.store.EXPECT().RecordPlay(ctx, tt.song.ID, "0xuser", "", testNow).Return(nil)
			}

			err := exec.RecordPlay(ctx, tt.song.ID, "0xuser", "")
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrSubscriptionRequired)
			}
		})
	}
}

func TestRecordPlay_SongMissing(t *testing.T) {
	exec, m := newTestExecutor(t)
	ctx := context.Background()

	m.store.EXPECT().GetSongByID(ctx, "0xmissing").Return(nil, nil)

	err := exec.RecordPlay(ctx, "0xmissing", "0xuser", "")
	assert.ErrorIs(t, err, domain.ErrSongNotFound)
}

func TestGetSubscription_Default(t *testing.T) {
	exec, m := newTestExecutor(t)
	ctx := context.Background()

	m.store.EXPECT().GetSubscription(ctx, "0xnobody").Return(nil, nil)

	resp, err := exec.GetSubscription(ctx, "0xnobody")
	require.NoError(t, err)
	assert.Equal(t, "free", resp.Tier)
	assert.Equal(t, int64(0), resp.ExpiresAt)
	assert.True(t, resp.Active)
}

func TestGetSubscription_Active(t *testing.T) {
	exec, m := newTestExecutor(t)
	ctx := context.Background()

	expiry := testNow.Add(10 * 24 * time.Hour)
	m.store.EXPECT().GetSubscription(ctx, "0xalice").Return(&schema.Subscription{
		UserAddress: "0xalice",
		Tier:        2,
		ExpiresAt:   expiry,
	}, nil)
	m.clock.EXPECT().Now().Return(testNow)

	resp, err := exec.GetSubscription(ctx, "0xalice")
	require.NoError(t, err)
	assert.Equal(t, "vip", resp.Tier)
	assert.Equal(t, expiry.UnixMilli(), resp.ExpiresAt)
	assert.True(t, resp.Active)
}

func TestGetSubscription_Expired(t *testing.T) {
	exec, m := newTestExecutor(t)
	ctx := context.Background()

	expiry := testNow.Add(-time.Minute)
	m.store.EXPECT().GetSubscription(ctx, "0xalice").Return(&schema.Subscription{
		UserAddress: "0xalice",
		Tier:        1,
		ExpiresAt:   expiry,
	}, nil)
	m.clock.EXPECT().Now().Return(testNow)

	resp, err := exec.GetSubscription(ctx, "0xalice")
	require.NoError(t, err)
	// The stored tier name is still reported; only the active flag drops
	assert.Equal(t, "premium", resp.Tier)
	assert.False(t, resp.Active)
}

func TestListSongs(t *testing.T) {
	exec, m := newTestExecutor(t)
	ctx := context.Background()

	m.store.EXPECT().
		ListSongs(ctx, gomock.Nil()).
		Return([]*schema.Song{
			{ID: "0xa", Title: "A", DurationSecs: 215, TierRequired: 0},
			{ID: "0xb", Title: "B", DurationSecs: 61, TierRequired: 2},
		}, nil)

	resp, err := exec.ListSongs(ctx, nil)
	require.NoError(t, err)
	require.Len(t, resp.Songs, 2)
	assert.Equal(t, "3:35", resp.Songs[0].Duration)
	assert.Equal(t, "free", resp.Songs[0].Tier)
	assert.Equal(t, "1:01", resp.Songs[1].Duration)
	assert.Equal(t, "vip", resp.Songs[1].Tier)
}

func TestListSongs_TierFilter(t *testing.T) {
	exec, m := newTestExecutor(t)
	ctx := context.Background()

	m.store.EXPECT().
		ListSongs(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, maxTier *int) ([]*schema.Song, error) {
			require.NotNil(t, maxTier)
			assert.Equal(t, 1, *maxTier)
			return nil, nil
		})

	tier := "premium"
	resp, err := exec.ListSongs(ctx, &tier)
	require.NoError(t, err)
	assert.Empty(t, resp.Songs)
}

func TestGetSong(t *testing.T) {
	exec, m := newTestExecutor(t)
	ctx := context.Background()

	m.store.EXPECT().GetSongByID(ctx, "0xa").Return(&schema.Song{
		ID:           "0xa",
		Title:        "A",
		DurationSecs: 200,
		TierRequired: 1,
		Plays:        7,
	}, nil)

	resp, err := exec.GetSong(ctx, "0xa")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "premium", resp.Tier)
	assert.Equal(t, "3:20", resp.Duration)
	assert.Equal(t, int64(7), resp.Plays)
}

func TestGetSong_NotFound(t *testing.T) {
	exec, m := newTestExecutor(t)
	ctx := context.Background()

	m.store.EXPECT().GetSongByID(ctx, "0xmissing").Return(nil, nil)

	resp, err := exec.GetSong(ctx, "0xmissing")
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestAddSong(t *testing.T) {
	exec, m := newTestExecutor(t)
	ctx := context.Background()

	m.clock.EXPECT().Now().Return(testNow)

	var created *schema.Song
	m.store.EXPECT().
		CreateSong(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, song *schema.Song) error {
			created = song
			return nil
		})

	resp, err := exec.AddSong(ctx, &dto.AddSongRequest{
		Title:        "New Track",
		Artist:       "Artist",
		DurationSecs: 180,
		Tier:         "vip",
		AudioURL:     "https://cdn.example.com/new.mp3",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	require.NotNil(t, created)
	assert.Equal(t, resp.SongID, created.ID)
	// Generated ids are chain-object-id shaped: 0x + 32 hex bytes
	assert.Regexp(t, "^0x[0-9a-f]{32}$", created.ID)
	assert.Equal(t, 2, created.TierRequired)
	assert.Equal(t, testNow, created.CreatedAt)
}

func TestDeleteSong(t *testing.T) {
	exec, m := newTestExecutor(t)
	ctx := context.Background()

	m.store.EXPECT().DeleteSong(ctx, "0xgone").Return(true, nil)
	require.NoError(t, exec.DeleteSong(ctx, "0xgone"))

	m.store.EXPECT().DeleteSong(ctx, "0xmissing").Return(false, nil)
	assert.ErrorIs(t, exec.DeleteSong(ctx, "0xmissing"), domain.ErrSongNotFound)
}

func TestGetHistory_LimitClamping(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		effective int
	}{
		{"zero defaults", 0, 50},
		{"negative defaults", -5, 50},
		{"in range passes through", 100, 100},
		{"over cap clamps", 10000, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec, m := newTestExecutor(t)
			ctx := context.Background()

			m.store.EXPECT().
				GetPlayHistory(ctx, "0xuser", tt.effective).
				Return(nil, nil)

			resp, err := exec.GetHistory(ctx, "0xuser", tt.requested)
			require.NoError(t, err)
			assert.Empty(t, resp.History)
		})
	}
}

func TestGetHistory(t *testing.T) {
	exec, m := newTestExecutor(t)
	ctx := context.Background()

	playedAt := testNow.Add(-time.Hour)
	m.store.EXPECT().
		GetPlayHistory(ctx, "0xuser", 50).
		Return([]*store.PlayHistoryEntry{
			{SongID: "0xa", Title: "A", Artist: "X", CoverURL: "https://c/a.jpg", PlayedAt: playedAt},
		}, nil)

	resp, err := exec.GetHistory(ctx, "0xuser", 0)
	require.NoError(t, err)
	require.Len(t, resp.History, 1)
	assert.Equal(t, "0xa", resp.History[0].SongID)
	assert.Equal(t, "A", resp.History[0].Title)
	assert.Equal(t, playedAt.UnixMilli(), resp.History[0].PlayedAt)
}

func TestGetStats(t *testing.T) {
	exec, m := newTestExecutor(t)
	ctx := context.Background()

	m.clock.EXPECT().Now().Return(testNow)
	m.store.EXPECT().
		GetPlatformStats(ctx, testNow).
		Return(&store.PlatformStats{
			TotalSongs:        12,
			ActiveSubscribers: 3,
			TotalPlays:        400,
			TierDistribution: []store.TierCount{
				{Tier: 1, Count: 2},
				{Tier: 2, Count: 1},
			},
		}, nil)

	resp, err := exec.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.TotalSongs)
	assert.Equal(t, int64(3), resp.ActiveSubscribers)
	assert.Equal(t, int64(400), resp.TotalPlays)
	require.Len(t, resp.TierDistribution, 2)
	assert.Equal(t, "premium", resp.TierDistribution[0].Tier)
	assert.Equal(t, int64(2), resp.TierDistribution[0].Count)
	assert.Equal(t, "vip", resp.TierDistribution[1].Tier)
}

func TestGetStats_StoreError(t *testing.T) {
	exec, m := newTestExecutor(t)
	ctx := context.Background()

	m.clock.EXPECT().Now().Return(testNow)
	m.store.EXPECT().
		GetPlatformStats(ctx, testNow).
		Return(nil, errors.New("connection reset"))

	resp, err := exec.GetStats(ctx)
	require.Error(t, err)
	assert.Nil(t, resp)
}
