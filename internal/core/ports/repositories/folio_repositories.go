package repositories

import (
	"context"
	"time"

	"github.com/contasys/contasys-backend/internal/core/domain"
)

// FolioRepositoryFacade provides the folio counter operations. Allocation and
// top-up are single conditional updates; the availability check happens at
// write time, not just read time.
type FolioRepositoryFacade interface {
	// FindCounter returns the counter row for (company, book) or
	// apperrors.ErrNotFound.
	FindCounter(ctx context.Context, companyID, bookID int64) (*domain.FolioCounter, error)

	// AllocateFolios consumes count folios atomically. It fails with an
	// INSUFFICIENT_FOLIOS AppError when available_count < count at commit
	// time; it never clamps or partially allocates.
	AllocateFolios(ctx context.Context, companyID, bookID, count int64, actorID string, at time.Time) (*domain.FolioCounter, error)

	// TopUpFolios replenishes available_count by count.
	TopUpFolios(ctx context.Context, companyID, bookID, count int64, actorID string, at time.Time) (*domain.FolioCounter, error)
}
