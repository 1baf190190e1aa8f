package pgsql

import (
	portsrepo "github.com/clubledger/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool)
	projectRepo := newPgxProjectRepository(dbPool)
	budgetEntryRepo := newPgxBudgetEntryRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	memberRepo := newPgxMemberRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	archiveRepo := newPgxArchiveRepository(dbPool, journalRepo, budgetEntryRepo, expenseRepo, memberRepo)

	return portsrepo.RepositoryProvider{
		AccountRepo:     accountRepo,
		JournalRepo:     journalRepo,
		ProjectRepo:     projectRepo,
		BudgetEntryRepo: budgetEntryRepo,
		ExpenseRepo:     expenseRepo,
		MemberRepo:      memberRepo,
		LedgerRepo:      ledgerRepo,
		ArchiveRepo:     archiveRepo,
	}
}
