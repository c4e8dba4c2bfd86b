package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/gateway_client/internal/apperrors"
	"github.com/SscSPs/gateway_client/internal/core/domain"
	portsrepo "github.com/SscSPs/gateway_client/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gateway_client/internal/core/ports/services"
	"github.com/google/uuid"
)

// CallbackService verifies gateway callbacks and records each one once.
type CallbackService struct {
	BaseService
	signer portssvc.SessionSignSvc
	repo   portsrepo.CallbackRepositoryFacade
	now    func() time.Time
}

func NewCallbackService(signer portssvc.SessionSignSvc, repo portsrepo.CallbackRepositoryFacade) *CallbackService {
	return &CallbackService{
		signer: signer,
		repo:   repo,
		now:    time.Now,
	}
}

// Process verifies the signature and stores the callback. A re-sent callback returns
// the stored record together with apperrors.ErrDuplicate.
func (s *CallbackService) Process(ctx context.Context, callback domain.Callback) (*domain.CallbackRecord, error) {
	if !s.signer.VerifySign(callback.Sign.Time, callback.Sign.Hash) {
		s.LogInfo(ctx, "Rejected callback with invalid signature", "gateway_id", callback.ID.String())
		return nil, apperrors.ErrInvalidSignature
	}
	if callback.ID == "" {
		return nil, fmt.Errorf("%w: callback id is required", apperrors.ErrValidation)
	}

	record := domain.CallbackRecord{
		RecordID:   uuid.NewString(),
		Kind:       callback.Kind(),
		GatewayID:  callback.ID.String(),
		Status:     callback.Status.String(),
		Payload:    callback.Payload,
		ReceivedAt: s.now().UTC(),
	}

	if err := s.repo.SaveCallback(ctx, record); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogDebug(ctx, "Duplicate callback", "kind", string(record.Kind), "gateway_id", record.GatewayID, "status", record.Status)
			existing, findErr := s.repo.FindCallback(ctx, record.Kind, record.GatewayID, record.Status)
			if findErr != nil {
				return nil, err
			}
			return existing, err
		}
		s.LogError(ctx, err, "Failed to save callback", "gateway_id", record.GatewayID)
		return nil, fmt.Errorf("saving %s callback %s: %w", record.Kind, record.GatewayID, err)
	}

	s.LogInfo(ctx, "Callback recorded", "kind", string(record.Kind), "gateway_id", record.GatewayID, "status", record.Status)
	return &record, nil
}
