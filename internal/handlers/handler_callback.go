package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/gateway_client/internal/apperrors"
	"github.com/SscSPs/gateway_client/internal/core/domain"
	portssvc "github.com/SscSPs/gateway_client/internal/core/ports/services"
	"github.com/SscSPs/gateway_client/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// callbackHandler receives gateway webhooks.
type callbackHandler struct {
	callbackService portssvc.CallbackSvc
}

func registerCallbackRoutes(r gin.IRoutes, callbackService portssvc.CallbackSvc, handlers ...gin.HandlerFunc) {
	h := &callbackHandler{callbackService: callbackService}
	r.POST("/callbacks", append(handlers, h.receive)...)
}

// receive verifies and records a callback. The gateway re-sends callbacks until it
// sees "OK", so a duplicate is acknowledged like a new one.
func (h *callbackHandler) receive(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	body, err := c.GetRawData()
	if err != nil {
		logger.Warn("Failed to read callback body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var callback domain.Callback
	if err := binding.JSON.BindBody(body, &callback); err != nil {
		logger.Warn("Failed to bind callback", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	callback.Payload = body

	logger = logger.With(slog.String("gateway_id", callback.ID.String()), slog.String("kind", string(callback.Kind())))

	_, err = h.callbackService.Process(c.Request.Context(), callback)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Info("Callback already recorded")
	case errors.Is(err, apperrors.ErrInvalidSignature):
		logger.Warn("Callback signature mismatch")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
		return
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	default:
		logger.Error("Failed to process callback", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process callback"})
		return
	}

	c.String(http.StatusOK, "OK")
}
