package pgsql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_closing_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_closing_app/internal/models"
	"github.com/SscSPs/ledger_closing_app/internal/utils/mapping"
	"github.com/georgysavva/scany/v2/pgxscan"
)

var auditLogColumns = []string{"id", "entry_id", "old_status", "new_status", "audit_notes", "auditor_id", "audit_date"}

// PgxAuditLogRepository only inserts and reads; audit rows are never changed.
type PgxAuditLogRepository struct {
	BaseRepository
}

func newPgxAuditLogRepository(base BaseRepository) *PgxAuditLogRepository {
	return &PgxAuditLogRepository{BaseRepository: base}
}

var _ portsrepo.AuditLogRepository = (*PgxAuditLogRepository)(nil)

func (r *PgxAuditLogRepository) Insert(ctx context.Context, entry domain.AuditLogEntry) (int64, error) {
	query, args, err := psql.Insert("audit_logs").
		Columns("entry_id", "old_status", "new_status", "audit_notes", "auditor_id", "audit_date").
		Values(entry.EntryID, entry.OldStatus, entry.NewStatus, entry.Notes, entry.AuditorID, entry.AuditDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build audit insert: %w", err)
	}
	var id int64
	if err := r.querier(ctx).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, mapError(err, "audit record for status", entry.NewStatus)
	}
	return id, nil
}

func (r *PgxAuditLogRepository) ListByEntry(ctx context.Context, entryID int64, limit int) ([]domain.AuditLogEntry, error) {
	return r.list(ctx, psql.Select(auditLogColumns...).
		From("audit_logs").
		Where(sq.Eq{"entry_id": entryID}), limit, entryID)
}

func (r *PgxAuditLogRepository) ListRecent(ctx context.Context, limit int, after *domain.AuditCursor) ([]domain.AuditLogEntry, error) {
	builder := psql.Select(auditLogColumns...).From("audit_logs")
	if after != nil {
		builder = builder.Where(sq.Expr("(audit_date, id) < (?, ?)", after.AuditDate, after.ID))
	}
	return r.list(ctx, builder, limit, "recent")
}

func (r *PgxAuditLogRepository) list(ctx context.Context, builder sq.SelectBuilder, limit int, id any) ([]domain.AuditLogEntry, error) {
	query, args, err := builder.OrderBy("audit_date DESC", "id DESC").Limit(uint64(limit)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit query: %w", err)
	}
	var rows []models.AuditLog
	if err := pgxscan.Select(ctx, r.querier(ctx), &rows, query, args...); err != nil {
		return nil, mapError(err, "audit records", id)
	}
	return mapping.ToDomainAuditLogs(rows), nil
}
