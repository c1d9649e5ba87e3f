package services

// ServiceContainer holds instances of all the application services. This is
// the entry point handlers use to reach service functionality.
type ServiceContainer struct {
	Access  AccessSvcFacade
	Posting PostingSvcFacade
	Folio   FolioSvcFacade
	Period  PeriodSvcFacade
	Aging   AgingSvcFacade
	Company CompanySvcFacade
	Auth    AuthSvcFacade
	Token   TokenSvcFacade
	User    UserSvcFacade
}
