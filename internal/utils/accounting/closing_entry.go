package accounting

import (
	"fmt"

	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClosingEntryNumber is the entry number used for a year's closing entry.
func ClosingEntryNumber(year domain.FiscalYear) string {
	return "CLOSE-" + year.Name
}

// lineFor books amount on the given side of accountID. A negative amount is
// booked on the opposite side, a zero amount produces no line.
func lineFor(accountID int64, side domain.AccountSide, amount decimal.Decimal, notes string) (domain.JournalEntryLine, bool) {
	if amount.IsZero() {
		return domain.JournalEntryLine{}, false
	}
	if amount.IsNegative() {
		amount = amount.Neg()
		if side == domain.DebitSide {
			side = domain.CreditSide
		} else {
			side = domain.DebitSide
		}
	}
	line := domain.JournalEntryLine{AccountID: accountID, Debit: decimal.Zero, Credit: decimal.Zero, Notes: notes}
	if side == domain.DebitSide {
		line.Debit = amount
	} else {
		line.Credit = amount
	}
	return line, true
}

// BuildClosingEntry builds the single entry that closes the revenue and
// expense summary accounts and distributes the result of the year.
//
// Revenue summary is debited for total revenue and expense summary credited
// for total expenses; the difference (net profit) is credited to the tax
// accounts, the legal reserve and retained earnings. A loss is debited to
// retained earnings. Zero lines are omitted and header totals equal the line sums.
func BuildClosingEntry(year domain.FiscalYear, figures domain.ClosingFigures, places int32) (domain.JournalEntry, []domain.JournalEntryLine, error) {
	candidates := []struct {
		accountID int64
		side      domain.AccountSide
		amount    decimal.Decimal
		notes     string
	}{
		{year.RevenuesAccountID, domain.DebitSide, figures.TotalRevenue, "Close revenues"},
		{year.ExpensesAccountID, domain.CreditSide, figures.TotalExpenses, "Close expenses"},
		{year.IncomeTaxAccountID, domain.CreditSide, figures.IncomeTax, "Income tax"},
		{year.SolidarityTaxAccountID, domain.CreditSide, figures.SolidarityTax, "Solidarity tax"},
		{year.LegalReserveAccountID, domain.CreditSide, figures.LegalReserve, "Legal reserve"},
		{year.RetainedEarningsAccountID, domain.CreditSide, figures.FinalProfit, "Result carried forward"},
	}

	lines := make([]domain.JournalEntryLine, 0, len(candidates))
	for _, c := range candidates {
		if line, ok := lineFor(c.accountID, c.side, c.amount, c.notes); ok {
			lines = append(lines, line)
		}
	}

	entry := domain.JournalEntry{
		EntryNumber: ClosingEntryNumber(year),
		EntryDate:   year.EndDate,
		Description: fmt.Sprintf("Closing entry for fiscal year %s", year.Name),
		Status:      domain.Closing,
	}

	totalDebit, totalCredit, err := ValidateEntryBalance(entry.EntryNumber, lines, places)
	if err != nil {
		return domain.JournalEntry{}, nil, err
	}
	entry.TotalDebit = totalDebit
	entry.TotalCredit = totalCredit
	return entry, lines, nil
}
