package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClosingRates are the flat percentages applied during closing.
type ClosingRates struct {
	IncomeTaxPercent     decimal.Decimal
	SolidarityTaxPercent decimal.Decimal
	LegalReservePercent  decimal.Decimal
}

// ClosingFigures is the result of the closing waterfall. Nothing here is persisted.
type ClosingFigures struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	NetProfit      decimal.Decimal `json:"netProfit"`
	IncomeTax      decimal.Decimal `json:"incomeTax"`
	SolidarityTax  decimal.Decimal `json:"solidarityTax"`
	ProfitAfterTax decimal.Decimal `json:"profitAfterTax"`
	LegalReserve   decimal.Decimal `json:"legalReserve"`
	FinalProfit    decimal.Decimal `json:"finalProfit"`
}

// ValidationResult lists every reason a year cannot be closed.
type ValidationResult struct {
	CanClose          bool     `json:"can_close"`
	Errors            []string `json:"errors"`
	UnapprovedEntries int      `json:"unapproved_entries"`
	IncompleteSteps   int      `json:"incomplete_steps"`
}

// ClosingOutcome is returned by a close attempt. Closed is false when validation failed.
type ClosingOutcome struct {
	Closed       bool             `json:"closed"`
	Validation   ValidationResult `json:"validation"`
	EntryID      int64            `json:"entry_id,omitempty"`
	Figures      *ClosingFigures  `json:"figures,omitempty"`
	ClosedAt     *time.Time       `json:"closed_at,omitempty"`
	AuditWarning string           `json:"audit_warning,omitempty"`
}

// ReopenOutcome is returned by a reopen attempt.
type ReopenOutcome struct {
	Reopened       bool   `json:"reopened"`
	Reason         string `json:"reason,omitempty"`
	DeletedEntryID *int64 `json:"deleted_entry_id,omitempty"`
	AuditWarning   string `json:"audit_warning,omitempty"`
}

// YearSummary combines year data, live figures and checklist state.
type YearSummary struct {
	Year       FiscalYear       `json:"year"`
	State      FiscalYearState  `json:"state"`
	Figures    ClosingFigures   `json:"figures"`
	Steps      []ClosureStep    `json:"steps"`
	Validation ValidationResult `json:"validation"`
}
