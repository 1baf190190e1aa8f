package mapping

import (
	"github.com/clubledger/backend/internal/core/domain"
	"github.com/clubledger/backend/internal/models"
)

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		Code:        m.Code,
		Name:        m.Name,
		AccountType: domain.AccountType(m.AccountType),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.EntryID,
		ProjectID:   d.ProjectID,
		TxDate:      d.TxDate,
		Description: d.Description,
		SourceKind:  string(d.SourceKind),
		CreatedBy:   d.CreatedBy,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     m.EntryID,
		ProjectID:   m.ProjectID,
		TxDate:      m.TxDate,
		Description: m.Description,
		SourceKind:  domain.SourceKind(m.SourceKind),
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
	}
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:    d.LineID,
		EntryID:   d.EntryID,
		AccountID: d.AccountID,
		Debit:     d.Debit,
		Credit:    d.Credit,
		Memo:      d.Memo,
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:    m.LineID,
		EntryID:   m.EntryID,
		AccountID: m.AccountID,
		Debit:     m.Debit,
		Credit:    m.Credit,
		Memo:      m.Memo,
	}
}

// ToModelProject converts a domain Project to a model Project
func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ProjectID:      d.ProjectID,
		Name:           d.Name,
		SchoolBudget:   d.SchoolBudget,
		CarryOverFunds: d.CarryOverFunds,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainProject converts a model Project to a domain Project
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:      m.ProjectID,
		Name:           m.Name,
		SchoolBudget:   m.SchoolBudget,
		CarryOverFunds: m.CarryOverFunds,
		CreatedAt:      m.CreatedAt,
	}
}

// ToModelBudgetEntry converts a domain BudgetEntry to a model BudgetEntry
func ToModelBudgetEntry(d domain.BudgetEntry) models.BudgetEntry {
	return models.BudgetEntry{
		BudgetEntryID:   d.BudgetEntryID,
		ProjectID:       d.ProjectID,
		EntryDate:       d.EntryDate,
		SourceType:      string(d.SourceType),
		ContributorName: d.ContributorName,
		Amount:          d.Amount,
		Note:            d.Note,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainBudgetEntry converts a model BudgetEntry to a domain BudgetEntry
func ToDomainBudgetEntry(m models.BudgetEntry) domain.BudgetEntry {
	return domain.BudgetEntry{
		BudgetEntryID:   m.BudgetEntryID,
		ProjectID:       m.ProjectID,
		EntryDate:       m.EntryDate,
		SourceType:      domain.SourceKind(m.SourceType),
		ContributorName: m.ContributorName,
		Amount:          m.Amount,
		Note:            m.Note,
		CreatedAt:       m.CreatedAt,
	}
}

// ToModelExpense converts a domain ExpenseRecord to a model Expense
func ToModelExpense(d domain.ExpenseRecord) models.Expense {
	return models.Expense{
		ExpenseID: d.ExpenseID,
		ProjectID: d.ProjectID,
		Date:      d.Date,
		Item:      d.Item,
		Amount:    d.Amount,
		Category:  string(d.Category),
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainExpense converts a model Expense to a domain ExpenseRecord
func ToDomainExpense(m models.Expense) domain.ExpenseRecord {
	return domain.ExpenseRecord{
		ExpenseID: m.ExpenseID,
		ProjectID: m.ProjectID,
		Date:      m.Date,
		Item:      m.Item,
		Amount:    m.Amount,
		Category:  domain.ExpenseCategory(m.Category),
		CreatedAt: m.CreatedAt,
	}
}

// ToModelMember converts a domain Member to a model Member
func ToModelMember(d domain.Member) models.Member {
	return models.Member{
		MemberID:      d.MemberID,
		ProjectID:     d.ProjectID,
		Name:          d.Name,
		DepositAmount: d.DepositAmount,
		Note:          d.Note,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainMember converts a model Member to a domain Member
func ToDomainMember(m models.Member) domain.Member {
	return domain.Member{
		MemberID:      m.MemberID,
		ProjectID:     m.ProjectID,
		Name:          m.Name,
		DepositAmount: m.DepositAmount,
		Note:          m.Note,
		CreatedAt:     m.CreatedAt,
	}
}

// ToModelArchiveHistory converts a domain ArchiveHistoryRecord to a model ArchiveHistory
func ToModelArchiveHistory(d domain.ArchiveHistoryRecord) models.ArchiveHistory {
	return models.ArchiveHistory{
		RecordID:      d.RecordID,
		ProjectID:     d.ProjectID,
		ProjectName:   d.ProjectName,
		ArchivedBy:    d.ArchivedBy,
		ArchiveReason: d.ArchiveReason,
		ArchivedAt:    d.ArchivedAt,
		Filename:      d.Filename,
	}
}

// ToDomainArchiveHistory converts a model ArchiveHistory to a domain ArchiveHistoryRecord
func ToDomainArchiveHistory(m models.ArchiveHistory) domain.ArchiveHistoryRecord {
	return domain.ArchiveHistoryRecord{
		RecordID:      m.RecordID,
		ProjectID:     m.ProjectID,
		ProjectName:   m.ProjectName,
		ArchivedBy:    m.ArchivedBy,
		ArchiveReason: m.ArchiveReason,
		ArchivedAt:    m.ArchivedAt,
		Filename:      m.Filename,
	}
}
