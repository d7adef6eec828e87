package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxYearNameLength is the width of financial_years.year_name.
const MaxYearNameLength = 50

// FiscalYear is the unit of closing. It references the accounts the closing entry posts to.
type FiscalYear struct {
	ID        int64     `json:"id"`
	Name      string    `json:"yearName"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	IsClosed  bool      `json:"isClosed"`

	RevenuesAccountID         int64 `json:"revenuesAccountID"`
	ExpensesAccountID         int64 `json:"expensesAccountID"`
	RetainedEarningsAccountID int64 `json:"retainedEarningsAccountID"`
	LegalReserveAccountID     int64 `json:"legalReserveAccountID"`
	IncomeTaxAccountID        int64 `json:"incomeTaxAccountID"`
	SolidarityTaxAccountID    int64 `json:"solidarityTaxAccountID"`

	IncomeTaxPercent     decimal.Decimal `json:"incomeTaxPercent"`
	SolidarityTaxPercent decimal.Decimal `json:"solidarityTaxPercent"`
	LegalReservePercent  decimal.Decimal `json:"legalReservePercent"`

	ClosingEntryID *int64     `json:"closingEntryID"`
	ClosedAt       *time.Time `json:"closedAt"`
	ClosedByUserID *int64     `json:"closedByUserID"`
}

// Range returns the inclusive date range of the year.
func (y FiscalYear) Range() DateRange {
	return DateRange{From: y.StartDate, To: y.EndDate}
}

// Rates returns the percentage rates used by the closing calculator.
func (y FiscalYear) Rates() ClosingRates {
	return ClosingRates{
		IncomeTaxPercent:     y.IncomeTaxPercent,
		SolidarityTaxPercent: y.SolidarityTaxPercent,
		LegalReservePercent:  y.LegalReservePercent,
	}
}

// ClosingAccountIDs lists every account the closing entry may touch.
func (y FiscalYear) ClosingAccountIDs() []int64 {
	return []int64{
		y.RevenuesAccountID,
		y.ExpensesAccountID,
		y.RetainedEarningsAccountID,
		y.LegalReserveAccountID,
		y.IncomeTaxAccountID,
		y.SolidarityTaxAccountID,
	}
}

// FiscalYearState is the lifecycle state of a fiscal year.
type FiscalYearState string

const (
	YearOpen    FiscalYearState = "open"
	YearClosing FiscalYearState = "closing"
	YearClosed  FiscalYearState = "closed"
)

// State derives the persisted lifecycle state. Closing is transient and never stored.
func (y FiscalYear) State() FiscalYearState {
	if y.IsClosed {
		return YearClosed
	}
	return YearOpen
}
