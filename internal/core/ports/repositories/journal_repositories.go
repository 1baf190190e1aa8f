package repositories

import (
	"context"

	"github.com/clubledger/backend/internal/core/domain"
)

// JournalWriter defines write operations for journal data.
type JournalWriter interface {
	// SaveEntry persists a journal entry header and its two lines as one
	// atomic unit. If any line insert fails the header insert is rolled
	// back too; orphan headers never persist.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error
}

// JournalReader defines read operations for journal data.
type JournalReader interface {
	// FindEntriesByProject retrieves every journal entry of one project,
	// ordered by transaction date then creation time.
	FindEntriesByProject(ctx context.Context, projectID string) ([]domain.JournalEntry, error)

	// FindLinesByEntryIDs retrieves the lines belonging to the given entry
	// IDs. Lines carry no project ID of their own, so scoping always goes
	// through the entry-id set.
	FindLinesByEntryIDs(ctx context.Context, entryIDs []string) ([]domain.JournalLine, error)
}

// JournalRepository combines all journal-related repository interfaces.
type JournalRepository interface {
	JournalWriter
	JournalReader
}
