package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/contasys/contasys-backend/internal/apperrors"
	"github.com/contasys/contasys-backend/internal/core/domain"
	portsrepo "github.com/contasys/contasys-backend/internal/core/ports/repositories"
	portssvc "github.com/contasys/contasys-backend/internal/core/ports/services"
	"github.com/contasys/contasys-backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FolioRepository ---
type MockFolioRepository struct {
	mock.Mock
}

var _ portsrepo.FolioRepositoryFacade = (*MockFolioRepository)(nil)

func (m *MockFolioRepository) FindCounter(ctx context.Context, companyID, bookID int64) (*domain.FolioCounter, error) {
	args := m.Called(ctx, companyID, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FolioCounter), args.Error(1)
}

func (m *MockFolioRepository) AllocateFolios(ctx context.Context, companyID, bookID, count int64, actorID string, at time.Time) (*domain.FolioCounter, error) {
	args := m.Called(ctx, companyID, bookID, count, actorID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FolioCounter), args.Error(1)
}

func (m *MockFolioRepository) TopUpFolios(ctx context.Context, companyID, bookID, count int64, actorID string, at time.Time) (*domain.FolioCounter, error) {
	args := m.Called(ctx, companyID, bookID, count, actorID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FolioCounter), args.Error(1)
}

// --- Test Suite ---
type FolioServiceTestSuite struct {
	suite.Suite
	mockFolioRepo *MockFolioRepository
	service       portssvc.FolioSvcFacade
	auth          domain.AuthorizedContext
}

func (s *FolioServiceTestSuite) SetupTest() {
	s.mockFolioRepo = new(MockFolioRepository)
	s.service = services.NewFolioService(s.mockFolioRepo)
	s.auth = domain.AuthorizedContext{
		TenantID:  uuid.NewString(),
		CompanyID: 42,
		UserID:    uuid.NewString(),
		Role:      domain.RoleMember,
	}
}

func TestFolioServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FolioServiceTestSuite))
}

func (s *FolioServiceTestSuite) TestAllocate_Success() {
	ctx := context.Background()
	counter := &domain.FolioCounter{CounterID: 1, CompanyID: 42, BookID: domain.BookTypeSales, AllocatedCount: 15, AvailableCount: 85}

	s.mockFolioRepo.On("AllocateFolios", ctx, int64(42), domain.BookTypeSales, int64(5), s.auth.UserID, mock.AnythingOfType("time.Time")).
		Return(counter, nil).Once()

	got, err := s.service.Allocate(ctx, s.auth, domain.BookTypeSales, 5)

	s.Require().NoError(err)
	s.Equal(int64(85), got.AvailableCount)
	s.mockFolioRepo.AssertExpectations(s.T())
}

func (s *FolioServiceTestSuite) TestAllocate_InsufficientFolios() {
	ctx := context.Background()

	s.mockFolioRepo.On("AllocateFolios", ctx, int64(42), domain.BookTypeSales, int64(500), s.auth.UserID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.NewConflictError(apperrors.CodeInsufficientFolios, "not enough folios available")).Once()

	got, err := s.service.Allocate(ctx, s.auth, domain.BookTypeSales, 500)

	s.Require().Error(err)
	s.Nil(got)
	s.Equal(apperrors.CodeInsufficientFolios, apperrors.AsAppError(err).Code)
}

func (s *FolioServiceTestSuite) TestTopUp() {
	ctx := context.Background()
	counter := &domain.FolioCounter{CounterID: 1, CompanyID: 42, BookID: domain.BookTypePurchases, AllocatedCount: 0, AvailableCount: 100}

	s.mockFolioRepo.On("TopUpFolios", ctx, int64(42), domain.BookTypePurchases, int64(100), s.auth.UserID, mock.AnythingOfType("time.Time")).
		Return(counter, nil).Once()

	got, err := s.service.TopUp(ctx, s.auth, domain.BookTypePurchases, 100)

	s.Require().NoError(err)
	s.Equal(int64(100), got.AvailableCount)
}
