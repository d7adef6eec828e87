package dto

import (
	"time"

	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFiscalYearRequest defines the configuration of a new fiscal year.
type CreateFiscalYearRequest struct {
	YearName  string `json:"year_name" binding:"required,max=50"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`

	RevenuesAccountID         int64 `json:"revenues_account_id" binding:"required,gt=0"`
	ExpensesAccountID         int64 `json:"expenses_account_id" binding:"required,gt=0"`
	RetainedEarningsAccountID int64 `json:"retained_earnings_account_id" binding:"required,gt=0"`
	LegalReserveAccountID     int64 `json:"legal_reserve_account_id" binding:"required,gt=0"`
	IncomeTaxAccountID        int64 `json:"income_tax_account_id" binding:"required,gt=0"`
	SolidarityTaxAccountID    int64 `json:"solidarity_tax_account_id" binding:"required,gt=0"`

	IncomeTaxPercent     decimal.Decimal `json:"income_tax_percent"`
	SolidarityTaxPercent decimal.Decimal `json:"solidarity_tax_percent"`
	LegalReservePercent  decimal.Decimal `json:"legal_reserve_percent"`

	// ChecklistSteps overrides the configured checklist template when non-empty.
	ChecklistSteps []string `json:"checklist_steps" binding:"omitempty,dive,required,max=100"`
	ActorID        int64    `json:"actor_id"`
}

// ToDomain converts the request to an open fiscal year.
func (r CreateFiscalYearRequest) ToDomain() (domain.FiscalYear, error) {
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return domain.FiscalYear{}, err
	}
	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return domain.FiscalYear{}, err
	}
	return domain.FiscalYear{
		Name:                      r.YearName,
		StartDate:                 start,
		EndDate:                   end,
		RevenuesAccountID:         r.RevenuesAccountID,
		ExpensesAccountID:         r.ExpensesAccountID,
		RetainedEarningsAccountID: r.RetainedEarningsAccountID,
		LegalReserveAccountID:     r.LegalReserveAccountID,
		IncomeTaxAccountID:        r.IncomeTaxAccountID,
		SolidarityTaxAccountID:    r.SolidarityTaxAccountID,
		IncomeTaxPercent:          r.IncomeTaxPercent,
		SolidarityTaxPercent:      r.SolidarityTaxPercent,
		LegalReservePercent:       r.LegalReservePercent,
	}, nil
}

// CreateFiscalYearResponse is returned by the new-year setup.
type CreateFiscalYearResponse struct {
	ID           int64  `json:"id"`
	AuditWarning string `json:"audit_warning,omitempty"`
}

// FiscalYearResponse defines the data returned for a fiscal year.
type FiscalYearResponse struct {
	ID                        int64           `json:"id"`
	YearName                  string          `json:"year_name"`
	StartDate                 string          `json:"start_date"`
	EndDate                   string          `json:"end_date"`
	State                     string          `json:"state"`
	IsClosed                  bool            `json:"is_closed"`
	RevenuesAccountID         int64           `json:"revenues_account_id"`
	ExpensesAccountID         int64           `json:"expenses_account_id"`
	RetainedEarningsAccountID int64           `json:"retained_earnings_account_id"`
	LegalReserveAccountID     int64           `json:"legal_reserve_account_id"`
	IncomeTaxAccountID        int64           `json:"income_tax_account_id"`
	SolidarityTaxAccountID    int64           `json:"solidarity_tax_account_id"`
	IncomeTaxPercent          decimal.Decimal `json:"income_tax_percent"`
	SolidarityTaxPercent      decimal.Decimal `json:"solidarity_tax_percent"`
	LegalReservePercent       decimal.Decimal `json:"legal_reserve_percent"`
	ClosingEntryID            *int64          `json:"closing_entry_id"`
	ClosedAt                  *time.Time      `json:"closed_at"`
	ClosedByUserID            *int64          `json:"closed_by_user_id"`
}

// ToFiscalYearResponse converts a domain.FiscalYear to FiscalYearResponse DTO.
func ToFiscalYearResponse(y *domain.FiscalYear) FiscalYearResponse {
	return FiscalYearResponse{
		ID:                        y.ID,
		YearName:                  y.Name,
		StartDate:                 y.StartDate.Format(DateLayout),
		EndDate:                   y.EndDate.Format(DateLayout),
		State:                     string(y.State()),
		IsClosed:                  y.IsClosed,
		RevenuesAccountID:         y.RevenuesAccountID,
		ExpensesAccountID:         y.ExpensesAccountID,
		RetainedEarningsAccountID: y.RetainedEarningsAccountID,
		LegalReserveAccountID:     y.LegalReserveAccountID,
		IncomeTaxAccountID:        y.IncomeTaxAccountID,
		SolidarityTaxAccountID:    y.SolidarityTaxAccountID,
		IncomeTaxPercent:          y.IncomeTaxPercent,
		SolidarityTaxPercent:      y.SolidarityTaxPercent,
		LegalReservePercent:       y.LegalReservePercent,
		ClosingEntryID:            y.ClosingEntryID,
		ClosedAt:                  y.ClosedAt,
		ClosedByUserID:            y.ClosedByUserID,
	}
}

// ClosureStepResponse defines the data returned for a checklist step.
type ClosureStepResponse struct {
	ID         int64      `json:"id"`
	StepName   string     `json:"step_name"`
	Status     string     `json:"status"`
	ExecutedAt *time.Time `json:"executed_at"`
}

// ToClosureStepResponse converts a checklist step to its DTO.
func ToClosureStepResponse(s domain.ClosureStep) ClosureStepResponse {
	return ClosureStepResponse{
		ID:         s.ID,
		StepName:   s.StepName,
		Status:     string(s.Status),
		ExecutedAt: s.ExecutedAt,
	}
}

// CompleteStepResponse is returned when a checklist step is ticked.
type CompleteStepResponse struct {
	ClosureStepResponse
	AuditWarning string `json:"audit_warning,omitempty"`
}

// ToCompleteStepResponse converts a step completion to its DTO.
func ToCompleteStepResponse(c *domain.StepCompletion) CompleteStepResponse {
	return CompleteStepResponse{
		ClosureStepResponse: ToClosureStepResponse(c.Step),
		AuditWarning:        c.AuditWarning,
	}
}

// ToClosureStepResponses converts checklist steps to DTOs.
func ToClosureStepResponses(steps []domain.ClosureStep) []ClosureStepResponse {
	res := make([]ClosureStepResponse, len(steps))
	for i, s := range steps {
		res[i] = ToClosureStepResponse(s)
	}
	return res
}

// YearSummaryResponse is returned by the summary endpoint.
type YearSummaryResponse struct {
	Year       FiscalYearResponse      `json:"year"`
	Figures    domain.ClosingFigures   `json:"figures"`
	Steps      []ClosureStepResponse   `json:"steps"`
	Validation domain.ValidationResult `json:"validation"`
}

// ToYearSummaryResponse converts a domain.YearSummary to its DTO.
func ToYearSummaryResponse(s *domain.YearSummary) YearSummaryResponse {
	return YearSummaryResponse{
		Year:       ToFiscalYearResponse(&s.Year),
		Figures:    s.Figures,
		Steps:      ToClosureStepResponses(s.Steps),
		Validation: s.Validation,
	}
}

// ValidationResponse is the body of the validation endpoint.
type ValidationResponse struct {
	CanClose bool     `json:"can_close"`
	Errors   []string `json:"errors"`
}
