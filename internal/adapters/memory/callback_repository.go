// Package memory holds in-process repository implementations used when no
// database is configured.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/gateway_client/internal/apperrors"
	"github.com/SscSPs/gateway_client/internal/core/domain"
	portsrepo "github.com/SscSPs/gateway_client/internal/core/ports/repositories"
)

type callbackKey struct {
	kind      domain.CallbackKind
	gatewayID string
	status    string
}

// CallbackRepository is a mutex-guarded callback ledger.
type CallbackRepository struct {
	mu      sync.RWMutex
	records map[callbackKey]domain.CallbackRecord
}

var _ portsrepo.CallbackRepositoryFacade = (*CallbackRepository)(nil)

func NewCallbackRepository() *CallbackRepository {
	return &CallbackRepository{records: make(map[callbackKey]domain.CallbackRecord)}
}

func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{CallbackRepo: NewCallbackRepository()}
}

func (r *CallbackRepository) SaveCallback(_ context.Context, record domain.CallbackRecord) error {
	key := callbackKey{kind: record.Kind, gatewayID: record.GatewayID, status: record.Status}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[key]; exists {
		return fmt.Errorf("%s callback %s with status %q: %w", record.Kind, record.GatewayID, record.Status, apperrors.ErrDuplicate)
	}
	record.Payload = append([]byte(nil), record.Payload...)
	r.records[key] = record
	return nil
}

func (r *CallbackRepository) FindCallback(_ context.Context, kind domain.CallbackKind, gatewayID, status string) (*domain.CallbackRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[callbackKey{kind: kind, gatewayID: gatewayID, status: status}]
	if !ok {
		return nil, fmt.Errorf("%s callback %s: %w", kind, gatewayID, apperrors.ErrNotFound)
	}
	return &record, nil
}

// Len returns the number of recorded callbacks.
func (r *CallbackRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
