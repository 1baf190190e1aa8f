package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry represents a row of the journal_entries table.
type JournalEntry struct {
	EntryID     string    `json:"entryID"`
	ProjectID   string    `json:"projectID"`
	TxDate      time.Time `json:"txDate"`
	Description string    `json:"description"`
	SourceKind  string    `json:"sourceKind"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// JournalLine represents a row of the journal_lines table. Lines carry no
// project ID; they reach their project only through the owning entry.
type JournalLine struct {
	LineID    string          `json:"lineID"`
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Memo      string          `json:"memo"`
}
