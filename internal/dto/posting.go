package dto

import (
	"time"

	"github.com/clubledger/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostIncomeParams feeds the posting engine for one income event.
type PostIncomeParams struct {
	ProjectID  string
	TxDate     time.Time
	SourceKind domain.SourceKind
	ActorName  string
	Amount     decimal.Decimal
	Note       string
	Label      string
}

// PostExpenseParams feeds the posting engine for one expense event.
type PostExpenseParams struct {
	ProjectID string
	TxDate    time.Time
	Category  domain.ExpenseCategory
	Item      string
	Amount    decimal.Decimal
	ActorName string
}

// JournalEntryWithLines is the API shape of one posted entry.
type JournalEntryWithLines struct {
	Entry domain.JournalEntry  `json:"entry"`
	Lines []domain.JournalLine `json:"lines"`
}
