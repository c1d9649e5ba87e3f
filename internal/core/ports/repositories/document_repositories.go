package repositories

import (
	"context"
	"time"

	"github.com/contasys/contasys-backend/internal/core/domain"
)

// DocumentRepositoryFacade provides access to source documents.
type DocumentRepositoryFacade interface {
	// FindDocumentByUUID loads a document scoped by company. Documents of
	// other companies are reported as apperrors.ErrNotFound.
	FindDocumentByUUID(ctx context.Context, companyID int64, uuid string) (*domain.SourceDocument, error)

	// ListOutstandingDocuments returns the posted, active, credit-terms
	// documents of a company, the population the aging engine nets against
	// payment applications.
	ListOutstandingDocuments(ctx context.Context, companyID int64) ([]domain.SourceDocument, error)

	// VoidDocument flips an active document to VOIDED. Posted documents stay
	// in history; already-voided documents return apperrors.ErrConflict.
	VoidDocument(ctx context.Context, companyID int64, uuid string, actorID string, at time.Time) (*domain.SourceDocument, error)
}
