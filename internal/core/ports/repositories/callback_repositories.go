package repositories

import (
	"context"

	"github.com/SscSPs/gateway_client/internal/core/domain"
)

// CallbackReader defines read operations for the callback ledger
type CallbackReader interface {
	// FindCallback retrieves a recorded callback. Returns apperrors.ErrNotFound when absent.
	FindCallback(ctx context.Context, kind domain.CallbackKind, gatewayID, status string) (*domain.CallbackRecord, error)
}

// CallbackWriter defines write operations for the callback ledger
type CallbackWriter interface {
	// SaveCallback records a callback. Returns apperrors.ErrDuplicate if (kind, gateway id, status) exists.
	SaveCallback(ctx context.Context, record domain.CallbackRecord) error
}

// CallbackRepositoryFacade combines all callback ledger interfaces
type CallbackRepositoryFacade interface {
	CallbackReader
	CallbackWriter
}

// RepositoryProvider holds the repositories handed to the service container.
type RepositoryProvider struct {
	CallbackRepo CallbackRepositoryFacade
}
