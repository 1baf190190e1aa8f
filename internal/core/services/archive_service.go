package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clubledger/backend/internal/apperrors"
	"github.com/clubledger/backend/internal/core/domain"
	portsrepo "github.com/clubledger/backend/internal/core/ports/repositories"
	portssvc "github.com/clubledger/backend/internal/core/ports/services"
	"github.com/clubledger/backend/internal/dto"
	"github.com/clubledger/backend/internal/middleware"
)

// archiveFilenameFormat is the UTC timestamp layout inside snapshot names.
const archiveFilenameFormat = "20060102_150405"

// archiveService implements the archive-then-purge protocol.
type archiveService struct {
	archiveRepo portsrepo.ArchiveRepository
	projectRepo portsrepo.ProjectRepository
}

// NewArchiveService creates the archival exporter and purge executor.
func NewArchiveService(archiveRepo portsrepo.ArchiveRepository, projectRepo portsrepo.ProjectRepository) portssvc.ArchiveSvc {
	return &archiveService{
		archiveRepo: archiveRepo,
		projectRepo: projectRepo,
	}
}

var _ portssvc.ArchiveSvc = (*archiveService)(nil)

// ArchiveFilename builds the deterministic snapshot name for a project at a
// point in time.
func ArchiveFilename(projectID string, at time.Time) string {
	return fmt.Sprintf("archive_project_%s_%s.json", projectID, at.UTC().Format(archiveFilenameFormat))
}

// ArchiveProject builds the immutable point-in-time snapshot of one project.
// It never mutates state; two consecutive calls differ only by timestamp.
func (s *archiveService) ArchiveProject(ctx context.Context, projectID, archivedBy, reason string) (string, *domain.ArchiveSnapshot, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(reason) == "" {
		return "", nil, fmt.Errorf("%w: archive reason is required", apperrors.ErrValidation)
	}

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, fmt.Errorf("%w: project %s", apperrors.ErrNotFound, projectID)
		}
		return "", nil, fmt.Errorf("failed to load project %s: %w", projectID, err)
	}

	data, err := s.archiveRepo.SnapshotProjectData(ctx, projectID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to snapshot project %s: %w", projectID, err)
	}

	archivedAt := time.Now().UTC()
	snapshot := &domain.ArchiveSnapshot{
		ArchivedAt:    archivedAt,
		ArchivedBy:    archivedBy,
		ArchiveReason: reason,
		ProjectID:     projectID,
		ProjectMeta:   *project,
		Data:          data,
	}
	filename := ArchiveFilename(projectID, archivedAt)

	logger.Info("Project archived",
		"project_id", projectID, "filename", filename,
		"journal_entries", len(data.JournalEntries), "journal_lines", len(data.JournalLines))
	return filename, snapshot, nil
}

// PurgeProject deletes every project-scoped row in a single transaction.
// The archive-history trail row goes in first and commits or rolls back
// with the deletes; there is no partial deletion and no trail row for a
// failed purge. Repeat purges are harmless for the data tables but still
// record one trail row per attempt.
func (s *archiveService) PurgeProject(ctx context.Context, p dto.PurgeProjectParams) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Name lookup is best-effort: when the project row itself was already
	// removed by an earlier purge, the trail still records the attempt.
	projectName := "unknown"
	if project, err := s.projectRepo.FindProjectByID(ctx, p.ProjectID); err == nil {
		projectName = project.Name
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to load project %s: %w", p.ProjectID, err)
	}

	tx, err := s.archiveRepo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin purge transaction: %w", err)
	}
	defer s.archiveRepo.Rollback(ctx, tx)

	record := domain.ArchiveHistoryRecord{
		RecordID:      uuid.NewString(),
		ProjectID:     p.ProjectID,
		ProjectName:   projectName,
		ArchivedBy:    p.ArchivedBy,
		ArchiveReason: p.ArchiveReason,
		ArchivedAt:    time.Now().UTC(),
		Filename:      p.Filename,
	}
	if err := s.archiveRepo.InsertArchiveHistoryTx(ctx, tx, record); err != nil {
		return fmt.Errorf("failed to record archive history: %w", err)
	}

	if err := s.archiveRepo.DeleteJournalDataTx(ctx, tx, p.ProjectID); err != nil {
		return fmt.Errorf("failed to delete journal data: %w", err)
	}
	if err := s.archiveRepo.DeleteProjectScopedRowsTx(ctx, tx, p.ProjectID); err != nil {
		return fmt.Errorf("failed to delete project-scoped rows: %w", err)
	}
	if p.DeleteProjectRow {
		if err := s.archiveRepo.DeleteProjectRowTx(ctx, tx, p.ProjectID); err != nil {
			return fmt.Errorf("failed to delete project row: %w", err)
		}
	}

	if err := s.archiveRepo.Commit(ctx, tx); err != nil {
		return fmt.Errorf("failed to commit purge transaction: %w", err)
	}

	logger.Info("Project data purged",
		"project_id", p.ProjectID, "project_name", projectName,
		"delete_project_row", p.DeleteProjectRow, "filename", p.Filename)
	return nil
}

// ListArchiveHistory returns the purge trail, newest first.
func (s *archiveService) ListArchiveHistory(ctx context.Context) ([]domain.ArchiveHistoryRecord, error) {
	return s.archiveRepo.ListArchiveHistory(ctx)
}
