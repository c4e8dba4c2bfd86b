package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/gateway_client/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrUnknownCurrency), errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Rejected request", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrIncorrectRates):
		logger.Warn("No usable rate", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConnectionFailure),
		errors.Is(err, apperrors.ErrEmptyResponse),
		errors.Is(err, apperrors.ErrServerRejected):
		logger.Error("Gateway call failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment gateway unavailable"})
	default:
		logger.Error("Unexpected error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}
