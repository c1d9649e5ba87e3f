package repositories

import (
	"context"

	"github.com/contasys/contasys-backend/internal/core/domain"
)

// PaymentRepositoryFacade provides read access to payment applications. The
// aging engine never writes them.
type PaymentRepositoryFacade interface {
	// ListApplicationsByDocuments returns every application targeting one of
	// the given document uuids.
	ListApplicationsByDocuments(ctx context.Context, documentUUIDs []string) ([]domain.PaymentApplication, error)
}
