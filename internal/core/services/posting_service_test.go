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

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) PostDocument(ctx context.Context, companyID int64, documentUUID string, actorID string) (*domain.PostedDocument, error) {
	args := m.Called(ctx, companyID, documentUUID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostedDocument), args.Error(1)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, companyID int64, entryID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntriesByCompany(ctx context.Context, companyID int64, limit int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// --- Mock DocumentRepository ---
type MockDocumentRepository struct {
	mock.Mock
}

var _ portsrepo.DocumentRepositoryFacade = (*MockDocumentRepository)(nil)

func (m *MockDocumentRepository) FindDocumentByUUID(ctx context.Context, companyID int64, docUUID string) (*domain.SourceDocument, error) {
	args := m.Called(ctx, companyID, docUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SourceDocument), args.Error(1)
}

func (m *MockDocumentRepository) ListOutstandingDocuments(ctx context.Context, companyID int64) ([]domain.SourceDocument, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SourceDocument), args.Error(1)
}

func (m *MockDocumentRepository) VoidDocument(ctx context.Context, companyID int64, docUUID string, actorID string, at time.Time) (*domain.SourceDocument, error) {
	args := m.Called(ctx, companyID, docUUID, actorID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SourceDocument), args.Error(1)
}

// --- Test Suite ---
type PostingServiceTestSuite struct {
	suite.Suite
	mockJournalRepo  *MockJournalRepository
	mockDocumentRepo *MockDocumentRepository
	service          portssvc.PostingSvcFacade
	auth             domain.AuthorizedContext
}

func (s *PostingServiceTestSuite) SetupTest() {
	s.mockJournalRepo = new(MockJournalRepository)
	s.mockDocumentRepo = new(MockDocumentRepository)
	s.service = services.NewPostingService(s.mockJournalRepo, s.mockDocumentRepo)
	s.auth = domain.AuthorizedContext{
		TenantID:  uuid.NewString(),
		CompanyID: 42,
		UserID:    uuid.NewString(),
		Role:      domain.RoleMember,
	}
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}

func (s *PostingServiceTestSuite) TestPostDocuments_AllSucceed() {
	ctx := context.Background()
	docA := uuid.NewString()
	docB := uuid.NewString()

	s.mockJournalRepo.On("PostDocument", ctx, s.auth.CompanyID, docA, s.auth.UserID).
		Return(&domain.PostedDocument{DocumentUUID: docA, JournalEntryID: 10, Correlativo: 7}, nil).Once()
	s.mockJournalRepo.On("PostDocument", ctx, s.auth.CompanyID, docB, s.auth.UserID).
		Return(&domain.PostedDocument{DocumentUUID: docB, JournalEntryID: 11, Correlativo: 8}, nil).Once()

	resp, err := s.service.PostDocuments(ctx, s.auth, []string{docA, docB})

	s.Require().NoError(err)
	s.Require().Len(resp.Posted, 2)
	s.Empty(resp.Failed)
	s.Equal(int64(7), resp.Posted[0].Correlativo)
	s.Equal(int64(8), resp.Posted[1].Correlativo)
	s.False(resp.Partial())
	s.mockJournalRepo.AssertExpectations(s.T())
}

func (s *PostingServiceTestSuite) TestPostDocuments_OneBadDocumentDoesNotBlockTheRest() {
	ctx := context.Background()
	docA := uuid.NewString()
	docB := uuid.NewString()
	docC := uuid.NewString()

	s.mockJournalRepo.On("PostDocument", ctx, s.auth.CompanyID, docA, s.auth.UserID).
		Return(&domain.PostedDocument{DocumentUUID: docA, JournalEntryID: 10, Correlativo: 7}, nil).Once()
	s.mockJournalRepo.On("PostDocument", ctx, s.auth.CompanyID, docB, s.auth.UserID).
		Return(nil, apperrors.NewConflictError(apperrors.CodeAlreadyPosted, "document is already posted")).Once()
	s.mockJournalRepo.On("PostDocument", ctx, s.auth.CompanyID, docC, s.auth.UserID).
		Return(&domain.PostedDocument{DocumentUUID: docC, JournalEntryID: 11, Correlativo: 8}, nil).Once()

	resp, err := s.service.PostDocuments(ctx, s.auth, []string{docA, docB, docC})

	s.Require().NoError(err)
	s.Require().Len(resp.Posted, 2)
	s.Require().Len(resp.Failed, 1)
	s.Equal(docB, resp.Failed[0].UUID)
	s.Equal(apperrors.CodeAlreadyPosted, resp.Failed[0].Code)
	s.True(resp.Partial())

	// Correlativos of the committed documents stay distinct and increasing.
	s.Less(resp.Posted[0].Correlativo, resp.Posted[1].Correlativo)
	s.mockJournalRepo.AssertExpectations(s.T())
}

func (s *PostingServiceTestSuite) TestPostDocuments_ClosedPeriodFailsTheDocument() {
	ctx := context.Background()
	doc := uuid.NewString()

	s.mockJournalRepo.On("PostDocument", ctx, s.auth.CompanyID, doc, s.auth.UserID).
		Return(nil, apperrors.NewConflictError(apperrors.CodePeriodClosed, "period 2026-07 is closed for company 42")).Once()

	resp, err := s.service.PostDocuments(ctx, s.auth, []string{doc})

	s.Require().NoError(err)
	s.Empty(resp.Posted)
	s.Require().Len(resp.Failed, 1)
	s.Equal(apperrors.CodePeriodClosed, resp.Failed[0].Code)
	s.True(resp.AllFailed())
}

func (s *PostingServiceTestSuite) TestPostDocuments_EmptyBatchRejected() {
	resp, err := s.service.PostDocuments(context.Background(), s.auth, nil)

	s.Require().Error(err)
	s.Nil(resp)
	appErr := apperrors.AsAppError(err)
	s.Equal(apperrors.CodeValidation, appErr.Code)
	s.mockJournalRepo.AssertNotCalled(s.T(), "PostDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *PostingServiceTestSuite) TestVoidDocument() {
	ctx := context.Background()
	doc := uuid.NewString()
	voided := &domain.SourceDocument{UUID: doc, CompanyID: s.auth.CompanyID, Status: domain.DocumentVoided}

	s.mockDocumentRepo.On("VoidDocument", ctx, s.auth.CompanyID, doc, s.auth.UserID, mock.AnythingOfType("time.Time")).
		Return(voided, nil).Once()

	got, err := s.service.VoidDocument(ctx, s.auth, doc)

	s.Require().NoError(err)
	s.Equal(domain.DocumentVoided, got.Status)
	s.mockDocumentRepo.AssertExpectations(s.T())
}

func (s *PostingServiceTestSuite) TestVoidDocument_AlreadyVoided() {
	ctx := context.Background()
	doc := uuid.NewString()

	s.mockDocumentRepo.On("VoidDocument", ctx, s.auth.CompanyID, doc, s.auth.UserID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.NewConflictError(apperrors.CodeDocumentVoided, "document is already voided")).Once()

	got, err := s.service.VoidDocument(ctx, s.auth, doc)

	s.Require().Error(err)
	s.Nil(got)
	s.Equal(apperrors.CodeDocumentVoided, apperrors.AsAppError(err).Code)
}
