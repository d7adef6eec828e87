package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	ID          int64           `db:"id"`
	EntryNumber string          `db:"entry_number"`
	EntryDate   time.Time       `db:"entry_date"`
	Description string          `db:"description"`
	TotalDebit  decimal.Decimal `db:"total_debit"`
	TotalCredit decimal.Decimal `db:"total_credit"`
	Status      string          `db:"status"`
	CreatedBy   int64           `db:"created_by"`
	CreatedAt   time.Time       `db:"created_at"`
}

// JournalEntryLine is a row of the journal_entry_lines table.
type JournalEntryLine struct {
	ID             int64           `db:"id"`
	JournalEntryID int64           `db:"journal_entry_id"`
	AccountID      int64           `db:"account_id"`
	Debit          decimal.Decimal `db:"debit"`
	Credit         decimal.Decimal `db:"credit"`
	Notes          string          `db:"notes"`
	SourceDocument string          `db:"source_document"`
}

// LineTotals is the result row of a debit/credit aggregation.
type LineTotals struct {
	TotalDebit  decimal.Decimal `db:"total_debit"`
	TotalCredit decimal.Decimal `db:"total_credit"`
}
