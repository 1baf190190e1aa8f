package repositories

import (
	"context"

	"github.com/clubledger/backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ArchiveReader reads the data that goes into a point-in-time snapshot.
type ArchiveReader interface {
	// SnapshotProjectData reads every project-scoped row. A table missing
	// from the current schema version is treated as having zero rows, to
	// tolerate partial schema rollout. Read-only.
	SnapshotProjectData(ctx context.Context, projectID string) (domain.ArchiveData, error)

	// ListArchiveHistory returns the purge trail, newest first.
	ListArchiveHistory(ctx context.Context) ([]domain.ArchiveHistoryRecord, error)
}

// ArchivePurger holds the statement-level operations of the purge
// transaction. Every method runs on the caller's transaction so the purge
// executor controls commit and rollback as one unit.
type ArchivePurger interface {
	// InsertArchiveHistoryTx records the purge attempt. It runs before any
	// deletion and rolls back with the rest of the transaction on failure.
	InsertArchiveHistoryTx(ctx context.Context, tx pgx.Tx, record domain.ArchiveHistoryRecord) error

	// DeleteJournalDataTx deletes the project's journal lines (scoped via
	// the entry-id set, child before parent) and then its journal entries.
	DeleteJournalDataTx(ctx context.Context, tx pgx.Tx, projectID string) error

	// DeleteProjectScopedRowsTx deletes budget_entries, expenses and
	// members rows of the project; tables absent from the schema are
	// skipped.
	DeleteProjectScopedRowsTx(ctx context.Context, tx pgx.Tx, projectID string) error

	// DeleteProjectRowTx removes the project row itself.
	DeleteProjectRowTx(ctx context.Context, tx pgx.Tx, projectID string) error
}

// ArchiveRepository combines snapshot reads, purge statements and
// transaction control.
type ArchiveRepository interface {
	ArchiveReader
	ArchivePurger
	TransactionManager
}
