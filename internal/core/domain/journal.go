package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceKind is the enumerated origin of a journal entry. It drives which
// account pair is debited and credited by the posting engine.
type SourceKind string

const (
	SourceSchoolBudget    SourceKind = "SCHOOL_BUDGET"
	SourceReserveFund     SourceKind = "RESERVE_IN"
	SourceReserveRecovery SourceKind = "RESERVE_RECOVERY"
	SourceStudentDues     SourceKind = "STUDENT_DUES"
	SourceJacketAdvance   SourceKind = "JACKET_ADVANCE"
	SourceExpense         SourceKind = "EXPENSE"
)

// IsIncomeSource reports whether k is one of the four kinds accepted by the
// income side of the posting engine.
func (k SourceKind) IsIncomeSource() bool {
	switch k {
	case SourceSchoolBudget, SourceReserveFund, SourceReserveRecovery, SourceStudentDues:
		return true
	}
	return false
}

// JournalEntry is the header of one balanced double-entry transaction.
// Entries are created only by the posting engine, never updated, and
// deleted only by the purge executor.
type JournalEntry struct {
	EntryID     string     `json:"entryID"`
	ProjectID   string     `json:"projectID"`
	TxDate      time.Time  `json:"txDate"`
	Description string     `json:"description"`
	SourceKind  SourceKind `json:"sourceKind"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// JournalLine is one side of a journal entry. Every entry has exactly two
// lines: one with debit>0 and credit=0, the other with debit=0 and credit>0,
// and the two amounts are equal.
type JournalLine struct {
	LineID    string          `json:"lineID"`
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Memo      string          `json:"memo"`
}
