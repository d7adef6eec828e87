package services

import (
	"context"

	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	"github.com/SscSPs/ledger_closing_app/internal/dto"
)

// ClosureChecklistSvc manages the per-year list of procedural closing steps.
type ClosureChecklistSvc interface {
	// InitializeSteps inserts one pending step per name, skipping names that already exist.
	InitializeSteps(ctx context.Context, yearID int64, stepNames []string) (int, error)
	AllComplete(ctx context.Context, yearID int64) (bool, error)
	IncompleteCount(ctx context.Context, yearID int64) (int, error)
	MarkAllCompleted(ctx context.Context, yearID int64) error
	ResetAll(ctx context.Context, yearID int64) error
	ListSteps(ctx context.Context, yearID int64) ([]domain.ClosureStep, error)
	CompleteStep(ctx context.Context, yearID, stepID, actorID int64) (*domain.StepCompletion, error)
}

// FiscalYearReaderSvc defines read operations for fiscal years
type FiscalYearReaderSvc interface {
	GetFiscalYear(ctx context.Context, yearID int64) (*domain.FiscalYear, error)
	ValidateForClosing(ctx context.Context, yearID int64) (*domain.ValidationResult, error)
	GetSummary(ctx context.Context, yearID int64) (*domain.YearSummary, error)
}

// FiscalYearLifecycleSvc owns the open/closed state machine of a fiscal year.
type FiscalYearLifecycleSvc interface {
	// Close validates the year and, when it passes, closes it atomically.
	// A failed validation is reported in the outcome, not as an error.
	Close(ctx context.Context, yearID, actorID int64) (*domain.ClosingOutcome, error)

	// Reopen deletes the closing entry, clears the closed stamp and resets the checklist.
	Reopen(ctx context.Context, yearID, actorID int64) (*domain.ReopenOutcome, error)

	// CreateFiscalYear creates a year with its checklist.
	CreateFiscalYear(ctx context.Context, req dto.CreateFiscalYearRequest, actorID int64) (*domain.FiscalYear, string, error)
}

// FiscalYearSvcFacade combines all fiscal-year service interfaces
type FiscalYearSvcFacade interface {
	FiscalYearReaderSvc
	FiscalYearLifecycleSvc
}

// AuditSvc is the append-only audit sink.
type AuditSvc interface {
	// Record appends one audit record. Callers treat a failure as a warning.
	Record(ctx context.Context, entryID *int64, oldStatus, newStatus string, actorID int64, note string) error
	ListForEntry(ctx context.Context, entryID int64, limit int) ([]domain.AuditLogEntry, error)
	// ListRecent pages through all records, newest first. An empty token starts at the newest.
	ListRecent(ctx context.Context, limit int, pageToken string) (*domain.AuditPage, error)
}
