package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/contasys/contasys-backend/internal/apperrors"
	"github.com/contasys/contasys-backend/internal/core/domain"
	portsrepo "github.com/contasys/contasys-backend/internal/core/ports/repositories"
	"github.com/contasys/contasys-backend/internal/models"
	"github.com/contasys/contasys-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDocumentRepository struct {
	BaseRepository
}

// newPgxDocumentRepository creates a new repository for source documents.
func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxDocumentRepository implements portsrepo.DocumentRepositoryFacade
var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

const documentColumns = `uuid, company_id, operation_type, payment_terms, total_amount, work_date,
	debit_account_id, credit_account_id, description, status, journal_entry_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanDocument(row pgx.Row) (models.SourceDocument, error) {
	var m models.SourceDocument
	err := row.Scan(
		&m.UUID,
		&m.CompanyID,
		&m.OperationType,
		&m.PaymentTerms,
		&m.TotalAmount,
		&m.WorkDate,
		&m.DebitAccountID,
		&m.CreditAccountID,
		&m.Description,
		&m.Status,
		&m.JournalEntryID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindDocumentByUUID loads a document scoped by company. Documents belonging
// to other companies come back as not found, never as forbidden, so the
// response does not leak their existence.
func (r *PgxDocumentRepository) FindDocumentByUUID(ctx context.Context, companyID int64, uuid string) (*domain.SourceDocument, error) {
	query := fmt.Sprintf(`SELECT %s FROM source_documents WHERE uuid = $1 AND company_id = $2;`, documentColumns)
	m, err := scanDocument(r.Pool.QueryRow(ctx, query, uuid, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(apperrors.CodeDocumentNotFound, fmt.Sprintf("document %s not found", uuid))
		}
		return nil, apperrors.NewInternalError("failed to find document", err)
	}
	doc := mapping.ToDomainDocument(m)
	return &doc, nil
}

// ListOutstandingDocuments returns posted, active, credit-terms documents of
// a company. This is the aging engine's input population.
func (r *PgxDocumentRepository) ListOutstandingDocuments(ctx context.Context, companyID int64) ([]domain.SourceDocument, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM source_documents
		WHERE company_id = $1
		  AND status = $2
		  AND payment_terms = $3
		  AND journal_entry_id IS NOT NULL
		ORDER BY work_date, uuid;
	`, documentColumns)
	rows, err := r.Pool.Query(ctx, query, companyID, string(domain.DocumentActive), string(domain.TermsCredit))
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query outstanding documents", err)
	}
	defer rows.Close()

	var ms []models.SourceDocument
	for rows.Next() {
		m, err := scanDocument(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan document", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read documents", err)
	}
	return mapping.ToDomainDocumentSlice(ms), nil
}

// VoidDocument flips an active document to VOIDED. The update is conditional
// on the current status so voiding twice reports a conflict instead of
// silently succeeding.
func (r *PgxDocumentRepository) VoidDocument(ctx context.Context, companyID int64, uuid string, actorID string, at time.Time) (*domain.SourceDocument, error) {
	query := fmt.Sprintf(`
		UPDATE source_documents
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE uuid = $4 AND company_id = $5 AND status = $6
		RETURNING %s;
	`, documentColumns)
	m, err := scanDocument(r.Pool.QueryRow(ctx, query,
		string(domain.DocumentVoided), at, actorID, uuid, companyID, string(domain.DocumentActive)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the document does not exist or it is already voided.
			// One extra read tells them apart.
			if _, findErr := r.FindDocumentByUUID(ctx, companyID, uuid); findErr != nil {
				return nil, findErr
			}
			return nil, apperrors.NewConflictError(apperrors.CodeDocumentVoided, fmt.Sprintf("document %s is already voided", uuid))
		}
		return nil, apperrors.NewInternalError("failed to void document", err)
	}
	doc := mapping.ToDomainDocument(m)
	return &doc, nil
}
