package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetEntry represents a row of the budget_entries table.
type BudgetEntry struct {
	BudgetEntryID   string          `json:"budgetEntryID"`
	ProjectID       string          `json:"projectID"`
	EntryDate       time.Time       `json:"entryDate"`
	SourceType      string          `json:"sourceType"`
	ContributorName string          `json:"contributorName"`
	Amount          decimal.Decimal `json:"amount"`
	Note            string          `json:"note"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Expense represents a row of the expenses table.
type Expense struct {
	ExpenseID string          `json:"expenseID"`
	ProjectID string          `json:"projectID"`
	Date      time.Time       `json:"date"`
	Item      string          `json:"item"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Member represents a row of the members table. (project_id, name) is unique.
type Member struct {
	MemberID      string          `json:"memberID"`
	ProjectID     string          `json:"projectID"`
	Name          string          `json:"name"`
	DepositAmount decimal.Decimal `json:"depositAmount"`
	Note          string          `json:"note"`
	CreatedAt     time.Time       `json:"createdAt"`
}
