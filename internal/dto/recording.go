package dto

import (
	"time"

	"github.com/clubledger/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordIncomeRequest records one raw income row and drives a journal post.
type RecordIncomeRequest struct {
	EntryDate       time.Time         `json:"entryDate" binding:"required" time_format:"2006-01-02"`
	SourceType      domain.SourceKind `json:"sourceType" binding:"required"`
	ContributorName string            `json:"contributorName"`
	Amount          decimal.Decimal   `json:"amount" binding:"required"`
	Note            string            `json:"note"`
	Label           string            `json:"label"`
}

// RecordExpenseRequest records one raw expense row and drives a journal post.
type RecordExpenseRequest struct {
	Date     time.Time              `json:"date" binding:"required" time_format:"2006-01-02"`
	Item     string                 `json:"item" binding:"required"`
	Category domain.ExpenseCategory `json:"category" binding:"required"`
	Amount   decimal.Decimal        `json:"amount" binding:"required"`
}

// RecordResult reports the stored row and the journal entry it produced.
// JournalEntryID is nil when the posting engine skipped a non-positive
// amount.
type RecordResult struct {
	RecordID       string  `json:"recordID"`
	JournalEntryID *string `json:"journalEntryID"`
}

// AddMemberRequest adds one payer to the dues roster.
type AddMemberRequest struct {
	Name          string          `json:"name" binding:"required"`
	DepositAmount decimal.Decimal `json:"depositAmount"`
	Note          string          `json:"note"`
}
