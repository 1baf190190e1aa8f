package models

import "time"

// ArchiveHistory represents a row of the archive_history table. Rows are
// append-only; the purge trail is never deleted.
type ArchiveHistory struct {
	RecordID      string    `json:"recordID"`
	ProjectID     string    `json:"projectID"`
	ProjectName   string    `json:"projectName"`
	ArchivedBy    string    `json:"archivedBy"`
	ArchiveReason string    `json:"archiveReason"`
	ArchivedAt    time.Time `json:"archivedAt"`
	Filename      string    `json:"filename"`
}
