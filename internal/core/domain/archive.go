package domain

import "time"

// ArchiveData groups every project-scoped table of an archive snapshot.
// Global audit logs carry no project ID and are intentionally excluded.
type ArchiveData struct {
	JournalEntries []JournalEntry  `json:"journal_entries"`
	JournalLines   []JournalLine   `json:"journal_lines"`
	BudgetEntries  []BudgetEntry   `json:"budget_entries"`
	Expenses       []ExpenseRecord `json:"expenses"`
	Members        []Member        `json:"members"`
}

// ArchiveSnapshot is the point-in-time JSON export of one project. It is the
// payload handed back to the caller, never persisted as a row itself.
type ArchiveSnapshot struct {
	ArchivedAt    time.Time   `json:"archived_at"`
	ArchivedBy    string      `json:"archived_by"`
	ArchiveReason string      `json:"archive_reason"`
	ProjectID     string      `json:"project_id"`
	ProjectMeta   Project     `json:"project_meta"`
	Data          ArchiveData `json:"data"`
}

// ArchiveHistoryRecord is the permanent purge trail row. One is written for
// every purge invocation, before any deletion, inside the same transaction,
// so it survives even if the exported JSON file is later lost.
type ArchiveHistoryRecord struct {
	RecordID      string    `json:"recordID"`
	ProjectID     string    `json:"projectID"`
	ProjectName   string    `json:"projectName"`
	ArchivedBy    string    `json:"archivedBy"`
	ArchiveReason string    `json:"archiveReason"`
	ArchivedAt    time.Time `json:"archivedAt"`
	Filename      string    `json:"filename"`
}
