package dto

import "github.com/clubledger/backend/internal/core/domain"

// ArchiveProjectRequest asks for a point-in-time snapshot of one project.
type ArchiveProjectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ArchiveProjectResponse returns the deterministic filename together with
// the snapshot payload; persisting the file is the caller's concern.
type ArchiveProjectResponse struct {
	Filename string                  `json:"filename"`
	Snapshot *domain.ArchiveSnapshot `json:"snapshot"`
}

// PurgeProjectRequest triggers the archive-then-purge deletion.
type PurgeProjectRequest struct {
	ArchiveReason    string `json:"archiveReason" binding:"required"`
	Filename         string `json:"filename"`
	DeleteProjectRow bool   `json:"deleteProjectRow"`
}

// PurgeProjectParams is the service-level shape of a purge invocation.
type PurgeProjectParams struct {
	ProjectID        string
	ArchivedBy       string
	ArchiveReason    string
	Filename         string
	DeleteProjectRow bool
}
