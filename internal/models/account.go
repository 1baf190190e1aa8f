package models

import "time"

// Account represents one row of the accounts table. The chart is fixed and
// seeded at bootstrap; rows are never updated afterwards.
type Account struct {
	AccountID   string    `json:"accountID"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	AccountType string    `json:"accountType"`
	CreatedAt   time.Time `json:"createdAt"`
}
