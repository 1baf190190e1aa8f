package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerKind tags a ledger projection row as income or expense.
type LedgerKind string

const (
	LedgerIncome  LedgerKind = "INCOME"
	LedgerExpense LedgerKind = "EXPENSE"
)

// LedgerRow is one row of the signed, time-ordered cash view of a project.
// It is a simplified reconciliation view derived from the raw income and
// expense rows, not a row-for-row mirror of the formal journal; the running
// total of all rows equals the net of the project's journal postings.
type LedgerRow struct {
	TransactionDate time.Time       `json:"transactionDate"`
	RecordedAt      time.Time       `json:"recordedAt"`
	Kind            LedgerKind      `json:"kind"`
	Description     string          `json:"description"`
	SignedAmount    decimal.Decimal `json:"signedAmount"`
}
