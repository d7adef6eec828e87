package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MaxEntryNumberLength is the width of journal_entries.entry_number. It leaves
// room for the closing prefix in front of a year name of MaxYearNameLength.
const MaxEntryNumberLength = 64

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Draft     JournalStatus = "draft"
	Approved  JournalStatus = "approved"
	Cancelled JournalStatus = "cancelled"
	// Closing marks the entry generated by a fiscal year closing.
	Closing JournalStatus = "closing"
)

// Valid reports whether s is a known status.
func (s JournalStatus) Valid() bool {
	switch s {
	case Draft, Approved, Cancelled, Closing:
		return true
	}
	return false
}

var (
	// ErrEntryUnbalanced is matched by UnbalancedEntryError.
	ErrEntryUnbalanced = errors.New("journal entry does not balance")
	// ErrInvalidLine marks a line that breaks the one-side-per-line rule.
	ErrInvalidLine = errors.New("invalid journal entry line")
	// ErrInvalidStatusTransition is returned for disallowed status changes.
	ErrInvalidStatusTransition = errors.New("invalid journal status transition")
)

// UnbalancedEntryError reports expected versus actual totals of an entry that failed the balance check.
type UnbalancedEntryError struct {
	EntryNumber string
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("journal entry %q does not balance: total debit %s, total credit %s, difference %s",
		e.EntryNumber, e.TotalDebit.StringFixed(2), e.TotalCredit.StringFixed(2), e.TotalDebit.Sub(e.TotalCredit).StringFixed(2))
}

func (e *UnbalancedEntryError) Is(target error) bool {
	return target == ErrEntryUnbalanced
}

// JournalEntry is a balanced, dated accounting transaction composed of lines.
type JournalEntry struct {
	ID          int64              `json:"id"`
	EntryNumber string             `json:"entryNumber"`
	EntryDate   time.Time          `json:"entryDate"`
	Description string             `json:"description"`
	TotalDebit  decimal.Decimal    `json:"totalDebit"`
	TotalCredit decimal.Decimal    `json:"totalCredit"`
	Status      JournalStatus      `json:"status"`
	CreatedBy   int64              `json:"createdBy"`
	CreatedAt   time.Time          `json:"createdAt"`
	Lines       []JournalEntryLine `json:"lines,omitempty"`
}

// JournalEntryLine belongs to exactly one entry and moves one account on one side.
type JournalEntryLine struct {
	ID             int64           `json:"id"`
	JournalEntryID int64           `json:"journalEntryID"`
	AccountID      int64           `json:"accountID"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Notes          string          `json:"notes,omitempty"`
	// SourceDocument references the originating document; the ledger does not own it.
	SourceDocument string `json:"sourceDocument,omitempty"`
}

// Validate checks that exactly one of debit and credit is non-zero and neither is negative.
func (l JournalEntryLine) Validate() error {
	if l.Debit.IsNegative() || l.Credit.IsNegative() {
		return fmt.Errorf("%w: account %d has a negative amount", ErrInvalidLine, l.AccountID)
	}
	if l.Debit.IsZero() == l.Credit.IsZero() {
		return fmt.Errorf("%w: account %d must have exactly one of debit or credit non-zero (debit %s, credit %s)",
			ErrInvalidLine, l.AccountID, l.Debit.String(), l.Credit.String())
	}
	return nil
}

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls within the range, inclusive on both ends.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// LineTotals holds aggregated debit and credit sums.
type LineTotals struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// CreditBalance is credit minus debit.
func (t LineTotals) CreditBalance() decimal.Decimal {
	return t.Credit.Sub(t.Debit)
}

// DebitBalance is debit minus credit.
func (t LineTotals) DebitBalance() decimal.Decimal {
	return t.Debit.Sub(t.Credit)
}

// EntryStatusChange is the result of a status change or deletion of an entry.
type EntryStatusChange struct {
	Entry        JournalEntry `json:"entry"`
	OldStatus    string       `json:"oldStatus"`
	NewStatus    string       `json:"newStatus"`
	AuditWarning string       `json:"audit_warning,omitempty"`
}
