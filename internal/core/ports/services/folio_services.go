package services

import (
	"context"

	"github.com/contasys/contasys-backend/internal/core/domain"
)

// FolioSvcFacade exposes the folio side of the sequence allocator.
type FolioSvcFacade interface {
	GetCounter(ctx context.Context, auth domain.AuthorizedContext, bookID int64) (*domain.FolioCounter, error)

	// Allocate consumes count folios from the (company, book) counter. Fails
	// with INSUFFICIENT_FOLIOS when capacity is short at write time.
	Allocate(ctx context.Context, auth domain.AuthorizedContext, bookID, count int64) (*domain.FolioCounter, error)

	// TopUp replenishes the counter's available capacity.
	TopUp(ctx context.Context, auth domain.AuthorizedContext, bookID, count int64) (*domain.FolioCounter, error)
}
