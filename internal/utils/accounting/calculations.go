package accounting

import (
	"fmt"

	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultPlaces is the number of decimal places of the currency unit.
const DefaultPlaces int32 = 2

// Tolerance returns the smallest currency unit for the given precision, e.g. 0.01 for 2 places.
func Tolerance(places int32) decimal.Decimal {
	return decimal.New(1, -places)
}

// Round rounds a monetary amount to the currency precision, half away from zero.
func Round(amount decimal.Decimal, places int32) decimal.Decimal {
	return amount.Round(places)
}

// SumLines totals the debit and credit columns of the given lines.
func SumLines(lines []domain.JournalEntryLine) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit, totalCredit = decimal.Zero, decimal.Zero
	for _, l := range lines {
		totalDebit = totalDebit.Add(l.Debit)
		totalCredit = totalCredit.Add(l.Credit)
	}
	return totalDebit, totalCredit
}

// IsBalanced reports whether debit and credit differ by no more than one currency unit.
// Exact equality is not required because percentage splits can leave rounding residues.
func IsBalanced(totalDebit, totalCredit decimal.Decimal, places int32) bool {
	return totalDebit.Sub(totalCredit).Abs().LessThanOrEqual(Tolerance(places))
}

// ValidateEntryBalance checks each line and then the totals of an entry.
// It returns an error matching domain.ErrInvalidLine or domain.ErrEntryUnbalanced.
func ValidateEntryBalance(entryNumber string, lines []domain.JournalEntryLine, places int32) (totalDebit, totalCredit decimal.Decimal, err error) {
	for i, l := range lines {
		if err := l.Validate(); err != nil {
			return decimal.Zero, decimal.Zero, fmt.Errorf("line %d of entry %q: %w", i+1, entryNumber, err)
		}
	}

	totalDebit, totalCredit = SumLines(lines)
	if !IsBalanced(totalDebit, totalCredit, places) {
		return totalDebit, totalCredit, &domain.UnbalancedEntryError{
			EntryNumber: entryNumber,
			TotalDebit:  totalDebit,
			TotalCredit: totalCredit,
		}
	}
	return totalDebit, totalCredit, nil
}
