package services

import (
	"fmt"

	portsrepo "github.com/clubledger/backend/internal/core/ports/repositories"
	portssvc "github.com/clubledger/backend/internal/core/ports/services"
	"github.com/clubledger/backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	container := &portssvc.ServiceContainer{}

	// Chart of accounts first: the posting engine depends on it.
	container.ChartOfAccounts = NewChartOfAccountsService(repos.AccountRepo)
	container.Posting = NewPostingService(repos.JournalRepo, container.ChartOfAccounts)

	container.Ledger = NewLedgerService(repos.LedgerRepo)
	container.Project = NewProjectService(repos.ProjectRepo, repos.MemberRepo, repos.ExpenseRepo)
	container.Recording = NewRecordingService(repos.BudgetEntryRepo, repos.ExpenseRepo, repos.ProjectRepo, container.Posting)
	container.Member = NewMemberService(repos.MemberRepo, repos.ProjectRepo)
	container.Archive = NewArchiveService(repos.ArchiveRepo, repos.ProjectRepo)

	authSvc, err := NewAuthService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	container.Auth = authSvc

	return container, nil
}
