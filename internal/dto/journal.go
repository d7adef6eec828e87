package dto

import (
	"time"

	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format accepted by request DTOs.
const DateLayout = "2006-01-02"

// CreateJournalEntryLineRequest is one line of a new entry. Exactly one of debit and credit must be non-zero.
type CreateJournalEntryLineRequest struct {
	AccountID      int64           `json:"accountID" binding:"required,gt=0"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Notes          string          `json:"notes" binding:"max=500"`
	SourceDocument string          `json:"sourceDocument" binding:"max=100"`
}

// CreateJournalEntryRequest defines the data needed to post a journal entry.
type CreateJournalEntryRequest struct {
	EntryNumber string                          `json:"entryNumber" binding:"required,max=50"`
	EntryDate   string                          `json:"entryDate" binding:"required,datetime=2006-01-02"`
	Description string                          `json:"description" binding:"max=500"`
	ActorID     int64                           `json:"actor_id"`
	Lines       []CreateJournalEntryLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// ToDomain converts the request into an entry header and its lines.
// The entry date must already have passed binding validation.
func (r CreateJournalEntryRequest) ToDomain() (domain.JournalEntry, []domain.JournalEntryLine, error) {
	entryDate, err := time.Parse(DateLayout, r.EntryDate)
	if err != nil {
		return domain.JournalEntry{}, nil, err
	}
	entry := domain.JournalEntry{
		EntryNumber: r.EntryNumber,
		EntryDate:   entryDate,
		Description: r.Description,
		Status:      domain.Draft,
	}
	lines := make([]domain.JournalEntryLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.JournalEntryLine{
			AccountID:      l.AccountID,
			Debit:          l.Debit,
			Credit:         l.Credit,
			Notes:          l.Notes,
			SourceDocument: l.SourceDocument,
		}
	}
	return entry, lines, nil
}

// ActorRequest carries the acting user for state-changing calls when no bearer token supplies it.
type ActorRequest struct {
	ActorID int64 `json:"actor_id"`
}

// JournalEntryLineResponse defines the data returned for a journal entry line.
type JournalEntryLineResponse struct {
	ID             int64           `json:"id"`
	AccountID      int64           `json:"accountID"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Notes          string          `json:"notes,omitempty"`
	SourceDocument string          `json:"sourceDocument,omitempty"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	ID           int64                      `json:"id"`
	EntryNumber  string                     `json:"entryNumber"`
	EntryDate    string                     `json:"entryDate"`
	Description  string                     `json:"description"`
	TotalDebit   decimal.Decimal            `json:"totalDebit"`
	TotalCredit  decimal.Decimal            `json:"totalCredit"`
	Status       domain.JournalStatus       `json:"status"`
	CreatedBy    int64                      `json:"createdBy"`
	CreatedAt    time.Time                  `json:"createdAt"`
	Lines        []JournalEntryLineResponse `json:"lines"`
	AuditWarning string                     `json:"audit_warning,omitempty"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalEntryLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalEntryLineResponse{
			ID:             l.ID,
			AccountID:      l.AccountID,
			Debit:          l.Debit,
			Credit:         l.Credit,
			Notes:          l.Notes,
			SourceDocument: l.SourceDocument,
		}
	}
	return JournalEntryResponse{
		ID:          e.ID,
		EntryNumber: e.EntryNumber,
		EntryDate:   e.EntryDate.Format(DateLayout),
		Description: e.Description,
		TotalDebit:  e.TotalDebit,
		TotalCredit: e.TotalCredit,
		Status:      e.Status,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		Lines:       lines,
	}
}

// AuditLogResponse defines the data returned for an audit record.
type AuditLogResponse struct {
	ID        int64     `json:"id"`
	EntryID   *int64    `json:"entryID"`
	OldStatus string    `json:"oldStatus"`
	NewStatus string    `json:"newStatus"`
	Notes     string    `json:"notes"`
	AuditorID int64     `json:"auditorID"`
	AuditDate time.Time `json:"auditDate"`
}

// ToAuditLogResponses converts audit records to DTOs.
func ToAuditLogResponses(entries []domain.AuditLogEntry) []AuditLogResponse {
	res := make([]AuditLogResponse, len(entries))
	for i, a := range entries {
		res[i] = AuditLogResponse(a)
	}
	return res
}

// ListAuditParams defines query parameters for listing audit records.
// NextToken is only honoured by the recent audit list.
type ListAuditParams struct {
	Limit     int    `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken string `form:"nextToken"`
}

// ListAuditLogsResponse is one page of the recent audit list.
type ListAuditLogsResponse struct {
	Records   []AuditLogResponse `json:"records"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToListAuditLogsResponse converts a domain.AuditPage to its DTO.
func ToListAuditLogsResponse(page *domain.AuditPage) ListAuditLogsResponse {
	res := ListAuditLogsResponse{Records: ToAuditLogResponses(page.Records)}
	if page.NextToken != "" {
		res.NextToken = &page.NextToken
	}
	return res
}

// EntryStatusChangeResponse is returned by approve, cancel and delete.
type EntryStatusChangeResponse struct {
	Entry        JournalEntryResponse `json:"entry"`
	OldStatus    string               `json:"oldStatus"`
	NewStatus    string               `json:"newStatus"`
	AuditWarning string               `json:"audit_warning,omitempty"`
}

// ToEntryStatusChangeResponse converts a domain.EntryStatusChange to its DTO.
func ToEntryStatusChangeResponse(ch *domain.EntryStatusChange) EntryStatusChangeResponse {
	return EntryStatusChangeResponse{
		Entry:        ToJournalEntryResponse(&ch.Entry),
		OldStatus:    ch.OldStatus,
		NewStatus:    ch.NewStatus,
		AuditWarning: ch.AuditWarning,
	}
}
