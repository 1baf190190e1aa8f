package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is the scoping boundary of the ledger: every ledger row carries a
// project ID and all queries and deletes are project-scoped.
type Project struct {
	ProjectID      string          `json:"projectID"`
	Name           string          `json:"name"`
	SchoolBudget   decimal.Decimal `json:"schoolBudget"`
	CarryOverFunds decimal.Decimal `json:"carryOverFunds"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ProjectSummary is the settlement dashboard view of one project.
type ProjectSummary struct {
	TotalBudget  decimal.Decimal `json:"totalBudget"`
	StudentDues  decimal.Decimal `json:"studentDues"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
	UsageRate    decimal.Decimal `json:"usageRate"`
}
