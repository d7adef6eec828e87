package services

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	"github.com/SscSPs/ledger_closing_app/internal/dto"
)

// LedgerReaderSvc defines read operations for journal data
type LedgerReaderSvc interface {
	// GetEntry retrieves an entry with its lines.
	GetEntry(ctx context.Context, entryID int64) (*domain.JournalEntry, error)

	// SumByAccountPrefixAndDateRange totals lines of accounts whose code starts with prefix.
	SumByAccountPrefixAndDateRange(ctx context.Context, prefix string, dateRange domain.DateRange, approvedOnly bool) (domain.LineTotals, error)
}

// LedgerWriterSvc defines write operations for journal data
type LedgerWriterSvc interface {
	// CreateEntry validates a request and posts it as a draft entry.
	CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, actorID int64) (*domain.JournalEntry, error)

	// PostEntry validates and persists an entry with its lines in one transaction.
	// When ctx already carries a transaction the write joins it.
	PostEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine, actorID int64) (*domain.JournalEntry, error)

	// ApproveEntry moves a draft entry to approved.
	ApproveEntry(ctx context.Context, entryID int64, actorID int64) (*domain.EntryStatusChange, error)

	// CancelEntry moves a draft or approved entry to cancelled.
	CancelEntry(ctx context.Context, entryID int64, actorID int64) (*domain.EntryStatusChange, error)

	// DeleteEntry removes a draft or cancelled entry and its lines.
	DeleteEntry(ctx context.Context, entryID int64, actorID int64) (*domain.EntryStatusChange, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}

// ClosingCalculatorSvc derives the closing figures of a fiscal year from ledger balances.
type ClosingCalculatorSvc interface {
	Calculate(ctx context.Context, year domain.FiscalYear) (domain.ClosingFigures, error)
}

// ClosingEntryGeneratorSvc builds and atomically applies a year's closing entry.
type ClosingEntryGeneratorSvc interface {
	// Generate replaces any prior closing entry of the year, posts the new one and stamps the year
	// closed by actorID at closedAt. It returns the id of the posted entry.
	Generate(ctx context.Context, year domain.FiscalYear, figures domain.ClosingFigures, actorID int64, closedAt time.Time) (int64, error)
}
