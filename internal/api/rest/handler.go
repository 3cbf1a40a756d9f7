package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tunestream/tunes-api/internal/api/shared/dto"
	"github.com/tunestream/tunes-api/internal/api/shared/executor"
	"github.com/tunestream/tunes-api/internal/domain"
	"github.com/tunestream/tunes-api/internal/logger"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// ListSongs retrieves the catalog
	// GET /api/songs?tier=<tier>
	ListSongs(c *gin.Context)

	// GetSong retrieves a single song by id
	// GET /api/songs/:id
	GetSong(c *gin.Context)

	// AddSong adds a song to the catalog (requires authentication)
	// POST /api/admin/songs
	AddSong(c *gin.Context)

	// DeleteSong removes a song from the catalog (requires authentication)
	// DELETE /api/admin/songs/:id
	DeleteSong(c *gin.Context)

	// GetSubscription retrieves the subscription state for a wallet
	// GET /api/subscription/:address
	GetSubscription(c *gin.Context)

	// Subscribe reconciles an on-chain purchase into a subscription record
	// POST /api/subscribe
	Subscribe(c *gin.Context)

	// RecordPlay records a play event, gated on the caller's tier
	// POST /api/play
	RecordPlay(c *gin.Context)

	// GetHistory retrieves recent plays for a wallet
	// GET /api/history/:address?limit=<limit>
	GetHistory(c *gin.Context)

	// GetStats retrieves platform aggregates (requires authentication)
	// GET /api/admin/stats
	GetStats(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug    bool
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(debug bool, exec executor.Executor) Handler {
	return &handler{
		debug:    debug,
		executor: exec,
	}
}

// ListSongs retrieves the catalog with an optional tier filter
func (h *handler) ListSongs(c *gin.Context) {
	var tierName *string
	if tier := c.Query("tier"); tier != "" {
		tierName = &tier
	}

	resp, err := h.executor.ListSongs(c.Request.Context(), tierName)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("handler", "ListSongs"))
		respondInternalError(c, err, "Failed to list songs")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSong retrieves a single song by id
func (h *handler) GetSong(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Song id is required")
		return
	}

	resp, err := h.executor.GetSong(c.Request.Context(), id)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("handler", "GetSong"))
		respondInternalError(c, err, "Failed to get song")
		return
	}
	if resp == nil {
		respondNotFound(c, "Song not found")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AddSong adds a song to the catalog
func (h *handler) AddSong(c *gin.Context) {
	var req dto.AddSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.AddSong(c.Request.Context(), &req)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("handler", "AddSong"))
		respondInternalError(c, err, "Failed to add song")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// DeleteSong removes a song from the catalog
func (h *handler) DeleteSong(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Song id is required")
		return
	}

	err := h.executor.DeleteSong(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSongNotFound) {
			respondNotFound(c, "Song not found")
			return
		}
		logger.ErrorCtx(c.Request.Context(), err, zap.String("handler", "DeleteSong"))
		respondInternalError(c, err, "Failed to delete song")
		return
	}

	c.JSON(http.StatusOK, dto.DeleteSongResponse{
		Success: true,
		Message: "Song deleted successfully",
	})
}

// GetSubscription retrieves the subscription state for a wallet
func (h *handler) GetSubscription(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		respondBadRequest(c, "Wallet address is required")
		return
	}

	resp, err := h.executor.GetSubscription(c.Request.Context(), address)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("handler", "GetSubscription"))
		respondInternalError(c, err, "Failed to get subscription")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Subscribe reconciles an on-chain purchase into a subscription record
func (h *handler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.Subscribe(c.Request.Context(), req.UserAddress, req.Tier, req.TxDigest)
	if err != nil {
		h.respondSubscribeError(c, &req, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// respondSubscribeError maps reconciliation failures onto HTTP statuses.
// Terminal receipt problems are the caller's fault (400); a fullnode outage
// is not (502).
func (h *handler) respondSubscribeError(c *gin.Context, req *dto.SubscribeRequest, err error) {
	var noPurchase *domain.NoPurchaseEventError
	switch {
	case errors.As(err, &noPurchase):
		respondBadRequest(c, "Transaction contains no subscription purchase", noPurchase.Error())
	case errors.Is(err, domain.ErrTierMismatch):
		respondBadRequest(c, "Claimed tier does not match purchase", err.Error())
	case errors.Is(err, domain.ErrPayerMismatch):
		respondBadRequest(c, "Purchase was paid by a different wallet", err.Error())
	case errors.Is(err, domain.ErrTransactionFailed):
		respondBadRequest(c, "Transaction did not execute successfully", err.Error())
	case errors.Is(err, domain.ErrChainLookupFailed):
		logger.WarnCtx(c.Request.Context(), "Chain lookup failed",
			zap.String("tx_digest", req.TxDigest),
			zap.Error(err),
		)
		respondChainLookupError(c, "Could not verify transaction", err.Error())
	default:
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("handler", "Subscribe"),
			zap.String("tx_digest", req.TxDigest),
		)
		respondInternalError(c, err, "Failed to process subscription")
	}
}

// RecordPlay records a play event, gated on the caller's tier
func (h *handler) RecordPlay(c *gin.Context) {
	var req dto.PlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	err := h.executor.RecordPlay(c.Request.Context(), req.SongID, req.UserAddress, req.TxDigest)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSongNotFound):
			respondNotFound(c, "Song not found")
		case errors.Is(err, domain.ErrSubscriptionRequired):
			respondSubscriptionRequired(c, "Subscription required", err.Error())
		default:
			logger.ErrorCtx(c.Request.Context(), err,
				zap.String("handler", "RecordPlay"),
				zap.String("song_id", req.SongID),
			)
			respondInternalError(c, err, "Failed to record play")
		}
		return
	}

	c.JSON(http.StatusOK, dto.PlayResponse{Success: true})
}

// GetHistory retrieves recent plays for a wallet
func (h *handler) GetHistory(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		respondBadRequest(c, "Wallet address is required")
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, ok := parsePositiveInt(raw)
		if !ok {
			respondValidationError(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	resp, err := h.executor.GetHistory(c.Request.Context(), address, limit)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("handler", "GetHistory"))
		respondInternalError(c, err, "Failed to get play history")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetStats retrieves platform aggregates
func (h *handler) GetStats(c *gin.Context) {
	resp, err := h.executor.GetStats(c.Request.Context())
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("handler", "GetStats"))
		respondInternalError(c, err, "Failed to get stats")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
