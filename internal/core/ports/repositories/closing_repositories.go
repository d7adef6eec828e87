package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
)

// FiscalYearRepository defines persistence for fiscal years.
type FiscalYearRepository interface {
	FindByID(ctx context.Context, yearID int64) (*domain.FiscalYear, error)

	// FindByIDForUpdate reads the year and locks its row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, yearID int64) (*domain.FiscalYear, error)

	// FindClosedContaining returns the closed year whose range contains date, or ErrNotFound.
	FindClosedContaining(ctx context.Context, date time.Time) (*domain.FiscalYear, error)

	// ExistsOverlapping reports whether any year intersects dateRange.
	ExistsOverlapping(ctx context.Context, dateRange domain.DateRange) (bool, error)

	Create(ctx context.Context, year domain.FiscalYear) (int64, error)

	// MarkClosed stores the closing entry and the closed-by/closed-at stamp.
	MarkClosed(ctx context.Context, yearID, closingEntryID, actorID int64, closedAt time.Time) error

	// MarkOpen clears is_closed, closing_entry_id, closed_at and closed_by_user_id.
	MarkOpen(ctx context.Context, yearID int64) error
}

// ClosureStepRepository defines persistence for checklist steps.
type ClosureStepRepository interface {
	// InsertStepsIgnoreExisting inserts pending steps, skipping names the year already has.
	// It returns the number of rows inserted.
	InsertStepsIgnoreExisting(ctx context.Context, yearID int64, stepNames []string) (int, error)

	ListByYear(ctx context.Context, yearID int64) ([]domain.ClosureStep, error)

	CountIncomplete(ctx context.Context, yearID int64) (int, error)

	// SetAllStatus updates every step of the year in one statement.
	SetAllStatus(ctx context.Context, yearID int64, status domain.ClosureStepStatus, executedAt *time.Time) error

	// CompleteStep marks one step completed. ErrNotFound when the step is not part of the year.
	CompleteStep(ctx context.Context, yearID, stepID int64, executedAt time.Time) (*domain.ClosureStep, error)
}

// AuditLogRepository is append-only: there is no update or delete.
type AuditLogRepository interface {
	Insert(ctx context.Context, entry domain.AuditLogEntry) (int64, error)

	ListByEntry(ctx context.Context, entryID int64, limit int) ([]domain.AuditLogEntry, error)

	// ListRecent returns the newest records, starting after the cursor when one is given.
	ListRecent(ctx context.Context, limit int, after *domain.AuditCursor) ([]domain.AuditLogEntry, error)
}
