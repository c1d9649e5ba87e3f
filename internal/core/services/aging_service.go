package services

import (
	"context"
	"log/slog"

	"github.com/contasys/contasys-backend/internal/core/domain"
	portsrepo "github.com/contasys/contasys-backend/internal/core/ports/repositories"
	portssvc "github.com/contasys/contasys-backend/internal/core/ports/services"
	"github.com/contasys/contasys-backend/internal/middleware"
	"github.com/contasys/contasys-backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// agingService derives pending balances. It is a pure read over committed
// documents and payment applications; it persists nothing and may lag
// concurrent writers by design of the read snapshot.
type agingService struct {
	documentRepo portsrepo.DocumentRepositoryFacade
	paymentRepo  portsrepo.PaymentRepositoryFacade
}

// NewAgingService creates the aging engine.
func NewAgingService(documentRepo portsrepo.DocumentRepositoryFacade, paymentRepo portsrepo.PaymentRepositoryFacade) portssvc.AgingSvcFacade {
	return &agingService{
		documentRepo: documentRepo,
		paymentRepo:  paymentRepo,
	}
}

// Ensure agingService implements the portssvc.AgingSvcFacade interface
var _ portssvc.AgingSvcFacade = (*agingService)(nil)

// PendingBalances nets each outstanding credit document against its payment
// applications. Sale documents net against receipt applications (CxC), purchase
// documents against payment applications (CxP); an application on the wrong
// side of a document is ignored. Amounts are rounded after each summation
// step. Fully applied documents drop out of the report.
func (s *agingService) PendingBalances(ctx context.Context, auth domain.AuthorizedContext) (*domain.AgingReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	docs, err := s.documentRepo.ListOutstandingDocuments(ctx, auth.CompanyID)
	if err != nil {
		logger.Error("Failed to list outstanding documents", slog.Int64("company_id", auth.CompanyID), slog.String("error", err.Error()))
		return nil, err
	}

	report := &domain.AgingReport{
		Receivables:      []domain.PendingBalance{},
		Payables:         []domain.PendingBalance{},
		TotalReceivables: decimal.Zero,
		TotalPayables:    decimal.Zero,
	}
	if len(docs) == 0 {
		return report, nil
	}

	uuids := make([]string, len(docs))
	for i, doc := range docs {
		uuids[i] = doc.UUID
	}
	apps, err := s.paymentRepo.ListApplicationsByDocuments(ctx, uuids)
	if err != nil {
		logger.Error("Failed to list payment applications", slog.Int64("company_id", auth.CompanyID), slog.String("error", err.Error()))
		return nil, err
	}

	// Sum applications per document, split by side.
	appliedReceipts := make(map[string]decimal.Decimal)
	appliedPayments := make(map[string]decimal.Decimal)
	for _, app := range apps {
		switch {
		case app.AppliesToReceivables():
			appliedReceipts[app.DocumentUUID] = accounting.Round2(appliedReceipts[app.DocumentUUID].Add(app.AmountApplied))
		case app.AppliesToPayables():
			appliedPayments[app.DocumentUUID] = accounting.Round2(appliedPayments[app.DocumentUUID].Add(app.AmountApplied))
		}
	}

	for _, doc := range docs {
		var applied decimal.Decimal
		if doc.OperationType == domain.OperationSale {
			applied = appliedReceipts[doc.UUID]
		} else {
			applied = appliedPayments[doc.UUID]
		}

		total := accounting.Round2(doc.TotalAmount)
		pending := accounting.Round2(total.Sub(applied))
		if pending.LessThanOrEqual(decimal.Zero) {
			continue
		}

		balance := domain.PendingBalance{
			DocumentUUID:  doc.UUID,
			OperationType: doc.OperationType,
			WorkDate:      doc.WorkDate,
			TotalAmount:   total,
			AppliedAmount: applied,
			PendingAmount: pending,
		}
		if doc.OperationType == domain.OperationSale {
			report.Receivables = append(report.Receivables, balance)
			report.TotalReceivables = accounting.Round2(report.TotalReceivables.Add(pending))
		} else {
			report.Payables = append(report.Payables, balance)
			report.TotalPayables = accounting.Round2(report.TotalPayables.Add(pending))
		}
	}

	logger.Debug("Pending balances computed",
		slog.Int64("company_id", auth.CompanyID),
		slog.Int("receivables", len(report.Receivables)),
		slog.Int("payables", len(report.Payables)))
	return report, nil
}
