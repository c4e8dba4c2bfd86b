package services

import (
	"context"

	"github.com/SscSPs/gateway_client/internal/core/domain"
)

// CallbackSvc verifies and records gateway callbacks
type CallbackSvc interface {
	// Process verifies the signature and records the callback once.
	// Returns apperrors.ErrInvalidSignature or apperrors.ErrDuplicate (with the stored record).
	Process(ctx context.Context, callback domain.Callback) (*domain.CallbackRecord, error)
}
