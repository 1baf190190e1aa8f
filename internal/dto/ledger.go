package dto

import (
	"github.com/clubledger/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerResponse carries the signed projection of one project plus its
// running total, the reconciliation target against the formal journal.
type LedgerResponse struct {
	Rows         []domain.LedgerRow `json:"rows"`
	RunningTotal decimal.Decimal    `json:"runningTotal"`
}
