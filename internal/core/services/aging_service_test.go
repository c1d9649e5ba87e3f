package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/contasys/contasys-backend/internal/core/domain"
	portsrepo "github.com/contasys/contasys-backend/internal/core/ports/repositories"
	portssvc "github.com/contasys/contasys-backend/internal/core/ports/services"
	"github.com/contasys/contasys-backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.PaymentRepositoryFacade = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) ListApplicationsByDocuments(ctx context.Context, documentUUIDs []string) ([]domain.PaymentApplication, error) {
	args := m.Called(ctx, documentUUIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentApplication), args.Error(1)
}

// --- Test Suite ---
type AgingServiceTestSuite struct {
	suite.Suite
	mockDocumentRepo *MockDocumentRepository
	mockPaymentRepo  *MockPaymentRepository
	service          portssvc.AgingSvcFacade
	auth             domain.AuthorizedContext
}

func (s *AgingServiceTestSuite) SetupTest() {
	s.mockDocumentRepo = new(MockDocumentRepository)
	s.mockPaymentRepo = new(MockPaymentRepository)
	s.service = services.NewAgingService(s.mockDocumentRepo, s.mockPaymentRepo)
	s.auth = domain.AuthorizedContext{
		TenantID:  uuid.NewString(),
		CompanyID: 42,
		UserID:    uuid.NewString(),
		Role:      domain.RoleReadOnly,
	}
}

func TestAgingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AgingServiceTestSuite))
}

func creditDocument(op domain.OperationType, total string) domain.SourceDocument {
	entryID := int64(99)
	return domain.SourceDocument{
		UUID:           uuid.NewString(),
		CompanyID:      42,
		OperationType:  op,
		PaymentTerms:   domain.TermsCredit,
		TotalAmount:    decimal.RequireFromString(total),
		WorkDate:       time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC),
		Status:         domain.DocumentActive,
		JournalEntryID: &entryID,
	}
}

func receiptApplication(docUUID string, amount string) domain.PaymentApplication {
	receiptID := int64(1)
	return domain.PaymentApplication{
		DocumentUUID:  docUUID,
		AmountApplied: decimal.RequireFromString(amount),
		ReceiptID:     &receiptID,
	}
}

func paymentApplication(docUUID string, amount string) domain.PaymentApplication {
	paymentID := int64(1)
	return domain.PaymentApplication{
		DocumentUUID:  docUUID,
		AmountApplied: decimal.RequireFromString(amount),
		PaymentID:     &paymentID,
	}
}

func (s *AgingServiceTestSuite) TestPendingBalances_NetsApplicationsAgainstDocument() {
	ctx := context.Background()
	doc := creditDocument(domain.OperationSale, "1000.00")

	s.mockDocumentRepo.On("ListOutstandingDocuments", ctx, s.auth.CompanyID).
		Return([]domain.SourceDocument{doc}, nil).Once()
	s.mockPaymentRepo.On("ListApplicationsByDocuments", ctx, []string{doc.UUID}).
		Return([]domain.PaymentApplication{
			receiptApplication(doc.UUID, "400.00"),
			receiptApplication(doc.UUID, "250.00"),
		}, nil).Once()

	report, err := s.service.PendingBalances(ctx, s.auth)

	s.Require().NoError(err)
	s.Require().Len(report.Receivables, 1)
	row := report.Receivables[0]
	s.True(row.AppliedAmount.Equal(decimal.RequireFromString("650.00")), "applied = %s", row.AppliedAmount)
	s.True(row.PendingAmount.Equal(decimal.RequireFromString("350.00")), "pending = %s", row.PendingAmount)
	s.True(report.TotalReceivables.Equal(decimal.RequireFromString("350.00")))
	s.Empty(report.Payables)
}

func (s *AgingServiceTestSuite) TestPendingBalances_FullyAppliedDocumentExcluded() {
	ctx := context.Background()
	doc := creditDocument(domain.OperationSale, "500.00")

	s.mockDocumentRepo.On("ListOutstandingDocuments", ctx, s.auth.CompanyID).
		Return([]domain.SourceDocument{doc}, nil).Once()
	s.mockPaymentRepo.On("ListApplicationsByDocuments", ctx, []string{doc.UUID}).
		Return([]domain.PaymentApplication{receiptApplication(doc.UUID, "500.00")}, nil).Once()

	report, err := s.service.PendingBalances(ctx, s.auth)

	s.Require().NoError(err)
	s.Empty(report.Receivables)
	s.True(report.TotalReceivables.IsZero())
}

func (s *AgingServiceTestSuite) TestPendingBalances_SidesPartitionByOperationType() {
	ctx := context.Background()
	sale := creditDocument(domain.OperationSale, "300.00")
	purchase := creditDocument(domain.OperationPurchase, "200.00")

	s.mockDocumentRepo.On("ListOutstandingDocuments", ctx, s.auth.CompanyID).
		Return([]domain.SourceDocument{sale, purchase}, nil).Once()
	s.mockPaymentRepo.On("ListApplicationsByDocuments", ctx, []string{sale.UUID, purchase.UUID}).
		Return([]domain.PaymentApplication{
			receiptApplication(sale.UUID, "100.00"),
			paymentApplication(purchase.UUID, "50.00"),
			// A receipt against a purchase is the wrong side; ignored.
			receiptApplication(purchase.UUID, "999.00"),
		}, nil).Once()

	report, err := s.service.PendingBalances(ctx, s.auth)

	s.Require().NoError(err)
	s.Require().Len(report.Receivables, 1)
	s.Require().Len(report.Payables, 1)
	s.True(report.Receivables[0].PendingAmount.Equal(decimal.RequireFromString("200.00")))
	s.True(report.Payables[0].PendingAmount.Equal(decimal.RequireFromString("150.00")))
	s.True(report.TotalReceivables.Equal(decimal.RequireFromString("200.00")))
	s.True(report.TotalPayables.Equal(decimal.RequireFromString("150.00")))
}

func (s *AgingServiceTestSuite) TestPendingBalances_NoOutstandingDocuments() {
	ctx := context.Background()

	s.mockDocumentRepo.On("ListOutstandingDocuments", ctx, s.auth.CompanyID).
		Return([]domain.SourceDocument{}, nil).Once()

	report, err := s.service.PendingBalances(ctx, s.auth)

	s.Require().NoError(err)
	s.Empty(report.Receivables)
	s.Empty(report.Payables)
	s.mockPaymentRepo.AssertNotCalled(s.T(), "ListApplicationsByDocuments", mock.Anything, mock.Anything)
}

func (s *AgingServiceTestSuite) TestPendingBalances_RoundsAfterEachStep() {
	ctx := context.Background()
	doc := creditDocument(domain.OperationSale, "10.00")

	s.mockDocumentRepo.On("ListOutstandingDocuments", ctx, s.auth.CompanyID).
		Return([]domain.SourceDocument{doc}, nil).Once()
	s.mockPaymentRepo.On("ListApplicationsByDocuments", ctx, []string{doc.UUID}).
		Return([]domain.PaymentApplication{
			receiptApplication(doc.UUID, "3.333"),
			receiptApplication(doc.UUID, "3.333"),
		}, nil).Once()

	report, err := s.service.PendingBalances(ctx, s.auth)

	s.Require().NoError(err)
	s.Require().Len(report.Receivables, 1)
	// 3.333 rounds in as 3.33 per step: 3.33 + 3.333 = 6.663 -> 6.66.
	s.True(report.Receivables[0].AppliedAmount.Equal(decimal.RequireFromString("6.66")), "applied = %s", report.Receivables[0].AppliedAmount)
	s.True(report.Receivables[0].PendingAmount.Equal(decimal.RequireFromString("3.34")))
}
