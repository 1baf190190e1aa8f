package repositories

// RepositoryProvider aggregates every repository implementation handed to
// the service container.
type RepositoryProvider struct {
	AccountRepo     AccountRepository
	JournalRepo     JournalRepository
	ProjectRepo     ProjectRepository
	BudgetEntryRepo BudgetEntryRepository
	ExpenseRepo     ExpenseRepository
	MemberRepo      MemberRepository
	LedgerRepo      LedgerRepository
	ArchiveRepo     ArchiveRepository
}
