package services

// ServiceContainer holds instances of all the application services. It is
// the entry point for accessing service functionality from the handlers.
type ServiceContainer struct {
	ChartOfAccounts ChartOfAccountsSvc
	Posting         PostingSvc
	Ledger          LedgerSvc
	Archive         ArchiveSvc
	Project         ProjectSvc
	Recording       RecordingSvc
	Member          MemberSvc
	Auth            AuthSvc
}
