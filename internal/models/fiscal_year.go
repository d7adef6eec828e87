package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialYear is a row of the financial_years table.
type FinancialYear struct {
	ID                        int64           `db:"id"`
	YearName                  string          `db:"year_name"`
	StartDate                 time.Time       `db:"start_date"`
	EndDate                   time.Time       `db:"end_date"`
	RevenuesAccountID         int64           `db:"revenues_account_id"`
	ExpensesAccountID         int64           `db:"expenses_account_id"`
	RetainedEarningsAccountID int64           `db:"retained_earnings_account_id"`
	LegalReserveAccountID     int64           `db:"legal_reserve_account_id"`
	IncomeTaxAccountID        int64           `db:"income_tax_account_id"`
	SolidarityTaxAccountID    int64           `db:"solidarity_tax_account_id"`
	IncomeTaxPercent          decimal.Decimal `db:"income_tax_percent"`
	SolidarityTaxPercent      decimal.Decimal `db:"solidarity_tax_percent"`
	LegalReservePercent       decimal.Decimal `db:"legal_reserve_percent"`
	ClosingEntryID            *int64          `db:"closing_entry_id"`
	IsClosed                  bool            `db:"is_closed"`
	ClosedAt                  *time.Time      `db:"closed_at"`
	ClosedByUserID            *int64          `db:"closed_by_user_id"`
}

// FinancialClosure is a row of the financial_closures table: one checklist step.
type FinancialClosure struct {
	ID              int64      `db:"id"`
	FinancialYearID int64      `db:"financial_year_id"`
	StepName        string     `db:"step_name"`
	Status          string     `db:"status"`
	ExecutedAt      *time.Time `db:"executed_at"`
}

// AuditLog is a row of the audit_logs table.
type AuditLog struct {
	ID         int64     `db:"id"`
	EntryID    *int64    `db:"entry_id"`
	OldStatus  string    `db:"old_status"`
	NewStatus  string    `db:"new_status"`
	AuditNotes string    `db:"audit_notes"`
	AuditorID  int64     `db:"auditor_id"`
	AuditDate  time.Time `db:"audit_date"`
}
