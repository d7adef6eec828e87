package domain

import "time"

// Audit statuses used for fiscal-year transitions. Journal status changes use JournalStatus values.
const (
	AuditYearOpen   = "open"
	AuditYearClosed = "closed"

	// AuditEntryDeleted is the new status recorded when a journal entry is removed.
	AuditEntryDeleted = "deleted"
)

// AuditLogEntry is an immutable record of a state-changing action.
type AuditLogEntry struct {
	ID        int64     `json:"id"`
	EntryID   *int64    `json:"entryID"`
	OldStatus string    `json:"oldStatus"`
	NewStatus string    `json:"newStatus"`
	Notes     string    `json:"notes"`
	AuditorID int64     `json:"auditorID"`
	AuditDate time.Time `json:"auditDate"`
}

// AuditCursor positions a page of the recent audit list: the next page starts
// strictly after this record in (audit date, id) descending order.
type AuditCursor struct {
	AuditDate time.Time
	ID        int64
}

// AuditPage is one page of the recent audit list. NextToken is empty on the last page.
type AuditPage struct {
	Records   []AuditLogEntry
	NextToken string
}
