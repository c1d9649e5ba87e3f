package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// layer at startup.
type RepositoryProvider struct {
	TenantRepo   TenantRepositoryFacade
	CompanyRepo  CompanyRepositoryFacade
	DocumentRepo DocumentRepositoryFacade
	JournalRepo  JournalRepositoryFacade
	FolioRepo    FolioRepositoryFacade
	PeriodRepo   PeriodRepositoryFacade
	PaymentRepo  PaymentRepositoryFacade
	UserRepo     UserRepositoryFacade
}
