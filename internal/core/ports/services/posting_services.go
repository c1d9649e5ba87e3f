package services

import (
	"context"

	"github.com/contasys/contasys-backend/internal/core/domain"
	"github.com/contasys/contasys-backend/internal/dto"
)

// PostingSvcFacade is the posting engine boundary.
type PostingSvcFacade interface {
	// PostDocuments posts each document in its own atomic transaction and
	// aggregates the outcomes. A failed document is recorded and the batch
	// continues; the method errors only when the whole request cannot be
	// processed (empty batch).
	PostDocuments(ctx context.Context, auth domain.AuthorizedContext, documentUUIDs []string) (*dto.PostDocumentsResponse, error)

	// VoidDocument flips a document to VOIDED, excluding it from aging and
	// from any future posting.
	VoidDocument(ctx context.Context, auth domain.AuthorizedContext, documentUUID string) (*domain.SourceDocument, error)

	// GetEntry returns a committed journal entry with its lines.
	GetEntry(ctx context.Context, auth domain.AuthorizedContext, entryID int64) (*domain.JournalEntry, error)
}
