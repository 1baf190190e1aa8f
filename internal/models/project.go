package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project represents a row of the projects table.
type Project struct {
	ProjectID      string          `json:"projectID"`
	Name           string          `json:"name"`
	SchoolBudget   decimal.Decimal `json:"schoolBudget"`
	CarryOverFunds decimal.Decimal `json:"carryOverFunds"`
	CreatedAt      time.Time       `json:"createdAt"`
}
