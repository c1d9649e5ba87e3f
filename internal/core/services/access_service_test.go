package services_test

import (
	"context"
	"testing"

	"github.com/contasys/contasys-backend/internal/apperrors"
	"github.com/contasys/contasys-backend/internal/core/domain"
	portsrepo "github.com/contasys/contasys-backend/internal/core/ports/repositories"
	portssvc "github.com/contasys/contasys-backend/internal/core/ports/services"
	"github.com/contasys/contasys-backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TenantRepository ---
type MockTenantRepository struct {
	mock.Mock
}

var _ portsrepo.TenantRepositoryFacade = (*MockTenantRepository)(nil)

func (m *MockTenantRepository) FindTenantBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindMembership(ctx context.Context, tenantID, userID string) (*domain.TenantMember, error) {
	args := m.Called(ctx, tenantID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantMember), args.Error(1)
}

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mock.Mock
}

var _ portsrepo.CompanyRepositoryFacade = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) (*domain.Company, error) {
	args := m.Called(ctx, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompaniesByTenant(ctx context.Context, tenantID string) ([]domain.Company, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

// --- Test Suite ---
type AccessServiceTestSuite struct {
	suite.Suite
	mockTenantRepo  *MockTenantRepository
	mockCompanyRepo *MockCompanyRepository
	service         portssvc.AccessSvcFacade

	tenant  domain.Tenant
	company domain.Company
	userID  string
}

func (s *AccessServiceTestSuite) SetupTest() {
	s.mockTenantRepo = new(MockTenantRepository)
	s.mockCompanyRepo = new(MockCompanyRepository)
	s.service = services.NewAccessService(s.mockTenantRepo, s.mockCompanyRepo)

	s.tenant = domain.Tenant{TenantID: uuid.NewString(), Slug: "acme", Name: "Acme", IsActive: true}
	s.company = domain.Company{CompanyID: 42, TenantID: s.tenant.TenantID, Name: "Acme GT", NIT: "1234567-8", IsActive: true}
	s.userID = uuid.NewString()
}

func TestAccessServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccessServiceTestSuite))
}

func (s *AccessServiceTestSuite) TestAuthorize_Success() {
	ctx := context.Background()
	member := &domain.TenantMember{TenantID: s.tenant.TenantID, UserID: s.userID, Role: domain.RoleMember}

	s.mockTenantRepo.On("FindTenantBySlug", ctx, "acme").Return(&s.tenant, nil).Once()
	s.mockTenantRepo.On("FindMembership", ctx, s.tenant.TenantID, s.userID).Return(member, nil).Once()
	s.mockCompanyRepo.On("FindCompanyByID", ctx, int64(42)).Return(&s.company, nil).Once()

	auth, err := s.service.Authorize(ctx, "acme", 42, s.userID, domain.RoleMember)

	s.Require().NoError(err)
	s.Equal(s.tenant.TenantID, auth.TenantID)
	s.Equal(int64(42), auth.CompanyID)
	s.Equal(domain.RoleMember, auth.Role)
}

func (s *AccessServiceTestSuite) TestAuthorize_MissingUserIsUnauthenticated() {
	auth, err := s.service.Authorize(context.Background(), "acme", 42, "", domain.RoleMember)

	s.Require().Error(err)
	s.Nil(auth)
	s.Equal(apperrors.CodeUnauthenticated, apperrors.AsAppError(err).Code)
	s.mockTenantRepo.AssertNotCalled(s.T(), "FindTenantBySlug", mock.Anything, mock.Anything)
}

func (s *AccessServiceTestSuite) TestAuthorize_UnknownTenant() {
	ctx := context.Background()
	s.mockTenantRepo.On("FindTenantBySlug", ctx, "ghost").
		Return(nil, apperrors.NewNotFoundError(apperrors.CodeTenantNotFound, "tenant ghost not found")).Once()

	auth, err := s.service.Authorize(ctx, "ghost", 42, s.userID, domain.RoleMember)

	s.Require().Error(err)
	s.Nil(auth)
	s.Equal(apperrors.CodeTenantNotFound, apperrors.AsAppError(err).Code)
}

func (s *AccessServiceTestSuite) TestAuthorize_NonMemberIsForbidden() {
	ctx := context.Background()
	s.mockTenantRepo.On("FindTenantBySlug", ctx, "acme").Return(&s.tenant, nil).Once()
	s.mockTenantRepo.On("FindMembership", ctx, s.tenant.TenantID, s.userID).
		Return(nil, apperrors.NewForbidden("user is not a member of this tenant")).Once()

	auth, err := s.service.Authorize(ctx, "acme", 42, s.userID, domain.RoleMember)

	s.Require().Error(err)
	s.Nil(auth)
	s.Equal(apperrors.CodeForbidden, apperrors.AsAppError(err).Code)
	s.mockCompanyRepo.AssertNotCalled(s.T(), "FindCompanyByID", mock.Anything, mock.Anything)
}

func (s *AccessServiceTestSuite) TestAuthorize_InsufficientRoleIsForbidden() {
	ctx := context.Background()
	member := &domain.TenantMember{TenantID: s.tenant.TenantID, UserID: s.userID, Role: domain.RoleReadOnly}

	s.mockTenantRepo.On("FindTenantBySlug", ctx, "acme").Return(&s.tenant, nil).Once()
	s.mockTenantRepo.On("FindMembership", ctx, s.tenant.TenantID, s.userID).Return(member, nil).Once()

	auth, err := s.service.Authorize(ctx, "acme", 42, s.userID, domain.RoleMember)

	s.Require().Error(err)
	s.Nil(auth)
	s.Equal(apperrors.CodeForbidden, apperrors.AsAppError(err).Code)
}

func (s *AccessServiceTestSuite) TestAuthorize_CrossTenantCompanyAnswersNotFound() {
	ctx := context.Background()
	member := &domain.TenantMember{TenantID: s.tenant.TenantID, UserID: s.userID, Role: domain.RoleAdmin}
	foreign := domain.Company{CompanyID: 42, TenantID: uuid.NewString(), Name: "Other", NIT: "999", IsActive: true}

	s.mockTenantRepo.On("FindTenantBySlug", ctx, "acme").Return(&s.tenant, nil).Once()
	s.mockTenantRepo.On("FindMembership", ctx, s.tenant.TenantID, s.userID).Return(member, nil).Once()
	s.mockCompanyRepo.On("FindCompanyByID", ctx, int64(42)).Return(&foreign, nil).Once()

	auth, err := s.service.Authorize(ctx, "acme", 42, s.userID, domain.RoleMember)

	s.Require().Error(err)
	s.Nil(auth)
	// Not-found, never forbidden: the answer must not reveal the company
	// exists under another tenant.
	s.Equal(apperrors.CodeCompanyNotFound, apperrors.AsAppError(err).Code)
}

func (s *AccessServiceTestSuite) TestRoleMeets() {
	s.True(domain.RoleAdmin.Meets(domain.RoleMember))
	s.True(domain.RoleMember.Meets(domain.RoleReadOnly))
	s.False(domain.RoleReadOnly.Meets(domain.RoleMember))
	s.False(domain.RoleMember.Meets(domain.RoleAdmin))
}
