package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetEntry is a raw income row as entered in the budget tab. The posting
// engine derives one journal entry from each of these.
type BudgetEntry struct {
	BudgetEntryID   string          `json:"budgetEntryID"`
	ProjectID       string          `json:"projectID"`
	EntryDate       time.Time       `json:"entryDate"`
	SourceType      SourceKind      `json:"sourceType"`
	ContributorName string          `json:"contributorName"`
	Amount          decimal.Decimal `json:"amount"`
	Note            string          `json:"note"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ExpenseRecord is a raw expense row as entered in the expense tab.
type ExpenseRecord struct {
	ExpenseID string          `json:"expenseID"`
	ProjectID string          `json:"projectID"`
	Date      time.Time       `json:"date"`
	Item      string          `json:"item"`
	Amount    decimal.Decimal `json:"amount"`
	Category  ExpenseCategory `json:"category"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Member is one payer on the student dues roster of a project.
type Member struct {
	MemberID      string          `json:"memberID"`
	ProjectID     string          `json:"projectID"`
	Name          string          `json:"name"`
	DepositAmount decimal.Decimal `json:"depositAmount"`
	Note          string          `json:"note"`
	CreatedAt     time.Time       `json:"createdAt"`
}
