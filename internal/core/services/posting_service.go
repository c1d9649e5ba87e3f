package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/contasys/contasys-backend/internal/apperrors"
	"github.com/contasys/contasys-backend/internal/core/domain"
	portsrepo "github.com/contasys/contasys-backend/internal/core/ports/repositories"
	portssvc "github.com/contasys/contasys-backend/internal/core/ports/services"
	"github.com/contasys/contasys-backend/internal/dto"
	"github.com/contasys/contasys-backend/internal/middleware"
)

// postingService is the posting engine. Each document posts in its own
// repository-owned transaction; the service aggregates outcomes.
type postingService struct {
	journalRepo  portsrepo.JournalRepositoryFacade
	documentRepo portsrepo.DocumentRepositoryFacade
}

// NewPostingService creates the posting engine.
func NewPostingService(journalRepo portsrepo.JournalRepositoryFacade, documentRepo portsrepo.DocumentRepositoryFacade) portssvc.PostingSvcFacade {
	return &postingService{
		journalRepo:  journalRepo,
		documentRepo: documentRepo,
	}
}

// Ensure postingService implements the portssvc.PostingSvcFacade interface
var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// PostDocuments posts each document independently, in request order. A
// failure is captured as a {uuid, code, message} item and the loop moves on;
// correlativos allocated for failed documents roll back with their
// transaction, so committed entries stay gap-free.
func (s *postingService) PostDocuments(ctx context.Context, auth domain.AuthorizedContext, documentUUIDs []string) (*dto.PostDocumentsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(documentUUIDs) == 0 {
		return nil, apperrors.NewValidationError("document batch must not be empty")
	}

	response := &dto.PostDocumentsResponse{
		Posted: []dto.PostedItem{},
		Failed: []dto.FailedItem{},
	}
	for _, uuid := range documentUUIDs {
		posted, err := s.journalRepo.PostDocument(ctx, auth.CompanyID, uuid, auth.UserID)
		if err != nil {
			appErr := apperrors.AsAppError(err)
			logger.Warn("Document failed to post",
				slog.String("document_uuid", uuid),
				slog.Int64("company_id", auth.CompanyID),
				slog.String("code", appErr.Code),
				slog.String("error", appErr.Error()))
			response.Failed = append(response.Failed, dto.FailedItem{
				UUID:    uuid,
				Code:    appErr.Code,
				Message: appErr.Message,
			})
			continue
		}
		logger.Info("Document posted",
			slog.String("document_uuid", uuid),
			slog.Int64("company_id", auth.CompanyID),
			slog.Int64("entry_id", posted.JournalEntryID),
			slog.Int64("correlativo", posted.Correlativo))
		response.Posted = append(response.Posted, dto.ToPostedItem(posted))
	}

	return response, nil
}

// VoidDocument flips a document to VOIDED. Posting history is untouched;
// the document merely stops participating in aging and future posting.
func (s *postingService) VoidDocument(ctx context.Context, auth domain.AuthorizedContext, documentUUID string) (*domain.SourceDocument, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	doc, err := s.documentRepo.VoidDocument(ctx, auth.CompanyID, documentUUID, auth.UserID, time.Now())
	if err != nil {
		logger.Warn("Failed to void document", slog.String("document_uuid", documentUUID), slog.Int64("company_id", auth.CompanyID), slog.String("error", err.Error()))
		return nil, err
	}
	logger.Info("Document voided", slog.String("document_uuid", documentUUID), slog.Int64("company_id", auth.CompanyID))
	return doc, nil
}

// GetEntry returns a committed journal entry with its lines.
func (s *postingService) GetEntry(ctx context.Context, auth domain.AuthorizedContext, entryID int64) (*domain.JournalEntry, error) {
	return s.journalRepo.FindEntryByID(ctx, auth.CompanyID, entryID)
}
