package repositories

import (
	"context"

	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindEntryByID retrieves an entry with its lines.
	FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error)

	// SumByAccountPrefixAndDateRange totals debit and credit of lines whose account code
	// starts with prefix and whose entry date lies in dateRange.
	SumByAccountPrefixAndDateRange(ctx context.Context, prefix string, dateRange domain.DateRange, approvedOnly bool) (domain.LineTotals, error)

	// CountUnapprovedInRange counts entries dated in dateRange whose status is not approved.
	// Closing entries are not counted.
	CountUnapprovedInRange(ctx context.Context, dateRange domain.DateRange) (int, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// InsertEntry persists an entry header and its lines and returns the new entry ID.
	InsertEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine) (int64, error)

	// UpdateEntryStatus changes the status of an entry.
	UpdateEntryStatus(ctx context.Context, entryID int64, status domain.JournalStatus) error

	// DeleteEntry removes the lines of an entry and then the entry itself.
	DeleteEntry(ctx context.Context, entryID int64) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountsByIDs retrieves multiple accounts by their IDs. Missing IDs are absent from the map.
	FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error)
}
