package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/gateway_client/internal/core/domain"
	portsrepo "github.com/SscSPs/gateway_client/internal/core/ports/repositories"
)

type PgxCallbackRepository struct {
	BaseRepository
}

// NewPgxCallbackRepository creates a callback ledger backed by the gateway_callbacks table.
func NewPgxCallbackRepository(db Querier) *PgxCallbackRepository {
	return &PgxCallbackRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CallbackRepositoryFacade = (*PgxCallbackRepository)(nil)

// SaveCallback inserts a callback. The unique (kind, gateway_id, status) constraint turns re-sends into ErrDuplicate.
func (r *PgxCallbackRepository) SaveCallback(ctx context.Context, record domain.CallbackRecord) error {
	query := `
		INSERT INTO gateway_callbacks (record_id, kind, gateway_id, status, payload, received_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`

	payload := record.Payload
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	_, err := r.DB.Exec(ctx, query,
		record.RecordID,
		string(record.Kind),
		record.GatewayID,
		record.Status,
		[]byte(payload),
		record.ReceivedAt,
	)
	return r.translateError(err, fmt.Sprintf("failed to save %s callback %s", record.Kind, record.GatewayID))
}

// FindCallback retrieves a recorded callback by its natural key.
func (r *PgxCallbackRepository) FindCallback(ctx context.Context, kind domain.CallbackKind, gatewayID, status string) (*domain.CallbackRecord, error) {
	query := `
		SELECT record_id, kind, gateway_id, status, payload, received_at
		FROM gateway_callbacks
		WHERE kind = $1 AND gateway_id = $2 AND status = $3;
	`

	var (
		record  domain.CallbackRecord
		kindStr string
		payload []byte
	)
	err := r.DB.QueryRow(ctx, query, string(kind), gatewayID, status).Scan(
		&record.RecordID,
		&kindStr,
		&record.GatewayID,
		&record.Status,
		&payload,
		&record.ReceivedAt,
	)
	if err != nil {
		return nil, r.translateError(err, fmt.Sprintf("failed to find %s callback %s", kind, gatewayID))
	}

	record.Kind = domain.CallbackKind(kindStr)
	record.Payload = payload
	return &record, nil
}
