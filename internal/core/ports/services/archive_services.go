package services

import (
	"context"

	"github.com/clubledger/backend/internal/core/domain"
	"github.com/clubledger/backend/internal/dto"
)

// ArchiveSvc covers the archive-then-purge protocol: a project's financial
// history is exported before its rows may be irreversibly deleted.
type ArchiveSvc interface {
	// ArchiveProject builds an immutable snapshot of every project-scoped
	// row and the deterministic filename for it. Read-only; fails with
	// apperrors.ErrValidation on a blank reason and apperrors.ErrNotFound
	// on an unknown project.
	ArchiveProject(ctx context.Context, projectID, archivedBy, reason string) (string, *domain.ArchiveSnapshot, error)

	// PurgeProject deletes all project-scoped rows in one transaction,
	// writing an archive-history trail row first. Any failure rolls the
	// whole transaction back, trail row included.
	PurgeProject(ctx context.Context, p dto.PurgeProjectParams) error

	// ListArchiveHistory returns the purge trail, newest first.
	ListArchiveHistory(ctx context.Context) ([]domain.ArchiveHistoryRecord, error)
}
