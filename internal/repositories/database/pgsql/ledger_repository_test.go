package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedgerDescription(t *testing.T) {
	assert.Equal(t, "Kim Minji", ledgerDescription("Kim Minji", "STUDENT_DUES"),
		"A named contributor labels the row")
	assert.Equal(t, "SCHOOL_BUDGET", ledgerDescription("", "SCHOOL_BUDGET"),
		"Income without a contributor falls back to its source label")
	assert.Equal(t, "RESERVE_IN", ledgerDescription("   ", "RESERVE_IN"),
		"Whitespace-only contributor counts as blank")
	assert.Equal(t, "Banner paper", ledgerDescription("Banner paper", ""),
		"Expense rows keep the item and never need the fallback")
}
