package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ledger_closing_app/internal/apperrors"
	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_closing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_closing_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_closing_app/internal/utils/pagination"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

type auditService struct {
	BaseService
	auditRepo portsrepo.AuditLogRepository
	now       Clock
}

// NewAuditService creates the append-only audit sink.
func NewAuditService(auditRepo portsrepo.AuditLogRepository) portssvc.AuditSvc {
	return &auditService{auditRepo: auditRepo, now: utcNow}
}

var _ portssvc.AuditSvc = (*auditService)(nil)

func (s *auditService) Record(ctx context.Context, entryID *int64, oldStatus, newStatus string, actorID int64, note string) error {
	record := domain.AuditLogEntry{
		EntryID:   entryID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		Notes:     note,
		AuditorID: actorID,
		AuditDate: s.now(),
	}
	id, err := s.auditRepo.Insert(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	s.LogDebug(ctx, "Audit record written", slog.Int64("audit_id", id), slog.String("new_status", newStatus))
	return nil
}

func (s *auditService) ListForEntry(ctx context.Context, entryID int64, limit int) ([]domain.AuditLogEntry, error) {
	records, err := s.auditRepo.ListByEntry(ctx, entryID, clampLimit(limit))
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit records", slog.Int64("entry_id", entryID))
		return nil, fmt.Errorf("failed to list audit records for entry %d: %w", entryID, err)
	}
	return records, nil
}

func (s *auditService) ListRecent(ctx context.Context, limit int, pageToken string) (*domain.AuditPage, error) {
	var after *domain.AuditCursor
	if pageToken != "" {
		cursor, err := pagination.DecodeAuditCursor(pageToken)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		after = &cursor
	}

	// One extra row tells whether another page exists.
	limit = clampLimit(limit)
	records, err := s.auditRepo.ListRecent(ctx, limit+1, after)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent audit records")
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}

	page := &domain.AuditPage{Records: records}
	if len(records) > limit {
		page.Records = records[:limit]
		last := page.Records[limit-1]
		page.NextToken = pagination.EncodeAuditCursor(domain.AuditCursor{AuditDate: last.AuditDate, ID: last.ID})
	}
	return page, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultAuditLimit
	case limit > maxAuditLimit:
		return maxAuditLimit
	default:
		return limit
	}
}
