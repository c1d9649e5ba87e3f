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

// --- Mock PeriodRepository ---
type MockPeriodRepository struct {
	mock.Mock
}

var _ portsrepo.PeriodRepositoryFacade = (*MockPeriodRepository)(nil)

func (m *MockPeriodRepository) FindPeriodLock(ctx context.Context, companyID int64, year, month int) (*domain.PeriodLock, error) {
	args := m.Called(ctx, companyID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodLock), args.Error(1)
}

func (m *MockPeriodRepository) ClosePeriod(ctx context.Context, companyID int64, year, month int, actorID string, at time.Time) (*domain.PeriodLock, error) {
	args := m.Called(ctx, companyID, year, month, actorID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodLock), args.Error(1)
}

func (m *MockPeriodRepository) ReopenPeriod(ctx context.Context, companyID int64, year, month int, actorID string, at time.Time) (*domain.PeriodLock, error) {
	args := m.Called(ctx, companyID, year, month, actorID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodLock), args.Error(1)
}

// --- Test Suite ---
type PeriodServiceTestSuite struct {
	suite.Suite
	mockPeriodRepo *MockPeriodRepository
	service        portssvc.PeriodSvcFacade
	auth           domain.AuthorizedContext
}

func (s *PeriodServiceTestSuite) SetupTest() {
	s.mockPeriodRepo = new(MockPeriodRepository)
	s.service = services.NewPeriodService(s.mockPeriodRepo)
	s.auth = domain.AuthorizedContext{
		TenantID:  uuid.NewString(),
		CompanyID: 42,
		UserID:    uuid.NewString(),
		Role:      domain.RoleAdmin,
	}
}

func TestPeriodServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodServiceTestSuite))
}

func (s *PeriodServiceTestSuite) TestStatus_MissingRowMeansOpen() {
	ctx := context.Background()
	s.mockPeriodRepo.On("FindPeriodLock", ctx, int64(42), 2026, 7).
		Return(nil, apperrors.NewNotFoundError(apperrors.CodeCompanyNotFound, "no period lock")).Once()

	lock, err := s.service.Status(ctx, s.auth, 2026, 7)

	s.Require().NoError(err)
	s.False(lock.IsClosed)
	s.Equal(2026, lock.Year)
	s.Equal(7, lock.Month)
}

func (s *PeriodServiceTestSuite) TestStatus_InvalidMonthRejected() {
	lock, err := s.service.Status(context.Background(), s.auth, 2026, 13)

	s.Require().Error(err)
	s.Nil(lock)
	s.Equal(apperrors.CodeValidation, apperrors.AsAppError(err).Code)
}

func (s *PeriodServiceTestSuite) TestAssertOpen_ClosedPeriod() {
	ctx := context.Background()
	closed := &domain.PeriodLock{CompanyID: 42, Year: 2026, Month: 7, IsClosed: true}
	s.mockPeriodRepo.On("FindPeriodLock", ctx, int64(42), 2026, 7).Return(closed, nil).Once()

	err := s.service.AssertOpen(ctx, 42, time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC))

	s.Require().Error(err)
	s.Equal(apperrors.CodePeriodClosed, apperrors.AsAppError(err).Code)
}

func (s *PeriodServiceTestSuite) TestAssertOpen_NeverClosedPeriod() {
	ctx := context.Background()
	s.mockPeriodRepo.On("FindPeriodLock", ctx, int64(42), 2026, 8).
		Return(nil, apperrors.NewNotFoundError(apperrors.CodeCompanyNotFound, "no period lock")).Once()

	err := s.service.AssertOpen(ctx, 42, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))

	s.NoError(err)
}

func (s *PeriodServiceTestSuite) TestCloseAndReopen() {
	ctx := context.Background()
	closed := &domain.PeriodLock{CompanyID: 42, Year: 2026, Month: 7, IsClosed: true, ClosedBy: s.auth.UserID}
	reopened := &domain.PeriodLock{CompanyID: 42, Year: 2026, Month: 7, IsClosed: false, ReopenedBy: s.auth.UserID}

	s.mockPeriodRepo.On("ClosePeriod", ctx, int64(42), 2026, 7, s.auth.UserID, mock.AnythingOfType("time.Time")).
		Return(closed, nil).Once()
	s.mockPeriodRepo.On("ReopenPeriod", ctx, int64(42), 2026, 7, s.auth.UserID, mock.AnythingOfType("time.Time")).
		Return(reopened, nil).Once()

	lock, err := s.service.Close(ctx, s.auth, 2026, 7)
	s.Require().NoError(err)
	s.True(lock.IsClosed)
	s.Equal(s.auth.UserID, lock.ClosedBy)

	lock, err = s.service.Reopen(ctx, s.auth, 2026, 7)
	s.Require().NoError(err)
	s.False(lock.IsClosed)
	s.Equal(s.auth.UserID, lock.ReopenedBy)
}

func (s *PeriodServiceTestSuite) TestReopen_OpenPeriodConflicts() {
	ctx := context.Background()
	s.mockPeriodRepo.On("ReopenPeriod", ctx, int64(42), 2026, 7, s.auth.UserID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.NewConflictError(apperrors.CodeValidation, "period is not closed")).Once()

	lock, err := s.service.Reopen(ctx, s.auth, 2026, 7)

	s.Require().Error(err)
	s.Nil(lock)
}
