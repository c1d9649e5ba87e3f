package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/contasys/contasys-backend/internal/core/domain"
	portsrepo "github.com/contasys/contasys-backend/internal/core/ports/repositories"
	portssvc "github.com/contasys/contasys-backend/internal/core/ports/services"
	"github.com/contasys/contasys-backend/internal/middleware"
)

// folioService exposes the folio counter operations. The real guarantees
// live in the repository's conditional updates; this layer adds logging and
// the authorized scope.
type folioService struct {
	folioRepo portsrepo.FolioRepositoryFacade
}

// NewFolioService creates the folio allocator.
func NewFolioService(folioRepo portsrepo.FolioRepositoryFacade) portssvc.FolioSvcFacade {
	return &folioService{folioRepo: folioRepo}
}

// Ensure folioService implements the portssvc.FolioSvcFacade interface
var _ portssvc.FolioSvcFacade = (*folioService)(nil)

func (s *folioService) GetCounter(ctx context.Context, auth domain.AuthorizedContext, bookID int64) (*domain.FolioCounter, error) {
	return s.folioRepo.FindCounter(ctx, auth.CompanyID, bookID)
}

// Allocate consumes count folios. All-or-nothing: a shortfall fails the whole
// request, nothing is clamped.
func (s *folioService) Allocate(ctx context.Context, auth domain.AuthorizedContext, bookID, count int64) (*domain.FolioCounter, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	counter, err := s.folioRepo.AllocateFolios(ctx, auth.CompanyID, bookID, count, auth.UserID, time.Now())
	if err != nil {
		logger.Warn("Folio allocation failed",
			slog.Int64("company_id", auth.CompanyID),
			slog.Int64("book_id", bookID),
			slog.Int64("count", count),
			slog.String("error", err.Error()))
		return nil, err
	}
	logger.Info("Folios allocated",
		slog.Int64("company_id", auth.CompanyID),
		slog.Int64("book_id", bookID),
		slog.Int64("count", count),
		slog.Int64("available", counter.AvailableCount))
	return counter, nil
}

// TopUp replenishes the counter's capacity.
func (s *folioService) TopUp(ctx context.Context, auth domain.AuthorizedContext, bookID, count int64) (*domain.FolioCounter, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	counter, err := s.folioRepo.TopUpFolios(ctx, auth.CompanyID, bookID, count, auth.UserID, time.Now())
	if err != nil {
		logger.Warn("Folio top-up failed",
			slog.Int64("company_id", auth.CompanyID),
			slog.Int64("book_id", bookID),
			slog.Int64("count", count),
			slog.String("error", err.Error()))
		return nil, err
	}
	logger.Info("Folios topped up",
		slog.Int64("company_id", auth.CompanyID),
		slog.Int64("book_id", bookID),
		slog.Int64("count", count),
		slog.Int64("available", counter.AvailableCount))
	return counter, nil
}
