package repositories

import (
	"context"

	"github.com/contasys/contasys-backend/internal/core/domain"
)

// JournalRepositoryFacade owns the posting transaction and journal reads.
type JournalRepositoryFacade interface {
	// PostDocument posts one source document atomically: it locks the
	// document row, re-checks the posted/voided flags, verifies the period
	// containing the document's work date is open, allocates the next
	// per-company correlativo, inserts the entry with its balanced lines and
	// stamps the document with the entry id. Any failure rolls the whole
	// transaction back, including the correlativo allocation.
	PostDocument(ctx context.Context, companyID int64, documentUUID string, actorID string) (*domain.PostedDocument, error)

	// FindEntryByID returns a journal entry with its lines populated, scoped
	// by company.
	FindEntryByID(ctx context.Context, companyID int64, entryID int64) (*domain.JournalEntry, error)

	// ListEntriesByCompany returns the committed entries of a company in
	// sequence order, without lines.
	ListEntriesByCompany(ctx context.Context, companyID int64, limit int) ([]domain.JournalEntry, error)
}
