package pgsql

import (
	"context"

	"github.com/contasys/contasys-backend/internal/apperrors"
	"github.com/contasys/contasys-backend/internal/core/domain"
	portsrepo "github.com/contasys/contasys-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new read-only repository for payment
// applications.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryFacade
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

// ListApplicationsByDocuments returns every application targeting one of the
// given document uuids. An empty input yields an empty result without hitting
// the database.
func (r *PgxPaymentRepository) ListApplicationsByDocuments(ctx context.Context, documentUUIDs []string) ([]domain.PaymentApplication, error) {
	if len(documentUUIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT application_id, document_uuid, amount_applied, receipt_id, payment_id, applied_at
		FROM payment_applications
		WHERE document_uuid = ANY($1)
		ORDER BY applied_at, application_id;
	`
	rows, err := r.Pool.Query(ctx, query, documentUUIDs)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query payment applications", err)
	}
	defer rows.Close()

	var apps []domain.PaymentApplication
	for rows.Next() {
		var app domain.PaymentApplication
		if err := rows.Scan(
			&app.ApplicationID,
			&app.DocumentUUID,
			&app.AmountApplied,
			&app.ReceiptID,
			&app.PaymentID,
			&app.AppliedAt,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan payment application", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read payment applications", err)
	}
	return apps, nil
}
