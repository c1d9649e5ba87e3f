package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/contasys/contasys-backend/internal/apperrors"
	"github.com/contasys/contasys-backend/internal/core/domain"
	portsrepo "github.com/contasys/contasys-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFolioRepository struct {
	BaseRepository
}

// newPgxFolioRepository creates a new repository for folio counters.
func newPgxFolioRepository(pool *pgxpool.Pool) portsrepo.FolioRepositoryFacade {
	return &PgxFolioRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxFolioRepository implements portsrepo.FolioRepositoryFacade
var _ portsrepo.FolioRepositoryFacade = (*PgxFolioRepository)(nil)

const folioColumns = `counter_id, company_id, book_id, allocated_count, available_count,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxFolioRepository) scanCounter(row pgx.Row) (*domain.FolioCounter, error) {
	var c domain.FolioCounter
	err := row.Scan(
		&c.CounterID,
		&c.CompanyID,
		&c.BookID,
		&c.AllocatedCount,
		&c.AvailableCount,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindCounter returns the counter row for (company, book).
func (r *PgxFolioRepository) FindCounter(ctx context.Context, companyID, bookID int64) (*domain.FolioCounter, error) {
	query := fmt.Sprintf(`SELECT %s FROM folio_counters WHERE company_id = $1 AND book_id = $2;`, folioColumns)
	counter, err := r.scanCounter(r.Pool.QueryRow(ctx, query, companyID, bookID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(apperrors.CodeCompanyNotFound, fmt.Sprintf("no folio counter for company %d book %d", companyID, bookID))
		}
		return nil, apperrors.NewInternalError("failed to find folio counter", err)
	}
	return counter, nil
}

// AllocateFolios consumes count folios in one conditional update. The
// availability check sits in the WHERE clause, so two concurrent allocations
// of the last folios cannot both succeed; the loser sees zero rows affected
// and reports INSUFFICIENT_FOLIOS. Nothing is clamped or partially granted.
func (r *PgxFolioRepository) AllocateFolios(ctx context.Context, companyID, bookID, count int64, actorID string, at time.Time) (*domain.FolioCounter, error) {
	if count <= 0 {
		return nil, apperrors.NewValidationError("folio count must be positive")
	}
	query := fmt.Sprintf(`
		UPDATE folio_counters
		SET allocated_count = allocated_count + $1,
		    available_count = available_count - $1,
		    last_updated_at = $2,
		    last_updated_by = $3
		WHERE company_id = $4 AND book_id = $5 AND available_count >= $1
		RETURNING %s;
	`, folioColumns)
	counter, err := r.scanCounter(r.Pool.QueryRow(ctx, query, count, at, actorID, companyID, bookID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Zero rows: counter missing or not enough folios left.
			if _, findErr := r.FindCounter(ctx, companyID, bookID); findErr != nil {
				return nil, findErr
			}
			return nil, apperrors.NewConflictError(apperrors.CodeInsufficientFolios, fmt.Sprintf("not enough folios available for company %d book %d, requested %d", companyID, bookID, count))
		}
		return nil, apperrors.NewInternalError("failed to allocate folios", err)
	}
	return counter, nil
}

// TopUpFolios replenishes available_count, seeding the counter row on first
// use for a (company, book) pair.
func (r *PgxFolioRepository) TopUpFolios(ctx context.Context, companyID, bookID, count int64, actorID string, at time.Time) (*domain.FolioCounter, error) {
	if count <= 0 {
		return nil, apperrors.NewValidationError("folio count must be positive")
	}
	query := fmt.Sprintf(`
		INSERT INTO folio_counters (
			company_id, book_id, allocated_count, available_count,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, 0, $3, $4, $5, $4, $5)
		ON CONFLICT (company_id, book_id)
		DO UPDATE SET available_count = folio_counters.available_count + $3,
		              last_updated_at = $4,
		              last_updated_by = $5
		RETURNING %s;
	`, folioColumns)
	counter, err := r.scanCounter(r.Pool.QueryRow(ctx, query, companyID, bookID, count, at, actorID))
	if err != nil {
		return nil, apperrors.NewInternalError("failed to top up folios", err)
	}
	return counter, nil
}
