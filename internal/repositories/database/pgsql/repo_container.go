package pgsql

import (
	portsrepo "github.com/contasys/contasys-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	companyRepo := newPgxCompanyRepository(dbPool)
	documentRepo := newPgxDocumentRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool)
	folioRepo := newPgxFolioRepository(dbPool)
	periodRepo := newPgxPeriodRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TenantRepo:   companyRepo,
		CompanyRepo:  companyRepo,
		DocumentRepo: documentRepo,
		JournalRepo:  journalRepo,
		FolioRepo:    folioRepo,
		PeriodRepo:   periodRepo,
		PaymentRepo:  paymentRepo,
		UserRepo:     userRepo,
	}
}
