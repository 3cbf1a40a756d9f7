package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tunestream/tunes-api/internal/api/shared/errors"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, errors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, errors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errors.NewValidationError(message))
}

// respondSubscriptionRequired responds with a tier gate rejection
func respondSubscriptionRequired(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusForbidden, errors.NewSubscriptionRequiredError(message, details...))
}

// respondChainLookupError responds with a bad gateway error for fullnode
// failures. 502 rather than 500: the request was well formed and the caller
// may retry it unchanged.
func respondChainLookupError(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadGateway, errors.NewChainLookupError(message, details...))
}

// respondInternalError responds with an internal server error
func respondInternalError(c *gin.Context, err error, message string, details ...string) {
	c.JSON(http.StatusInternalServerError, errors.NewInternalError(message, details...))
}
