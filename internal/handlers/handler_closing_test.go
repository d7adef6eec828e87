package handlers_test

import (
	"errors"
	"net/http"
	"time"

	"github.com/SscSPs/ledger_closing_app/internal/apperrors"
	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	"github.com/SscSPs/ledger_closing_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestValidation_ReportsAllReasons() {
	suite.fiscalYear.On("ValidateForClosing", mock.Anything, int64(3)).Return(&domain.ValidationResult{
		CanClose: false,
		Errors: []string{
			"3 journal entries dated within the fiscal year are not approved",
			"2 closure steps are not completed",
		},
		UnapprovedEntries: 3,
		IncompleteSteps:   2,
	}, nil).Once()

	w := suite.do(suite.router, http.MethodGet, "/api/v1/financial-closing/year/3/validation", nil, 9)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ValidationResponse
	suite.decode(w, &body)
	suite.False(body.CanClose)
	suite.Len(body.Errors, 2)
}

func (suite *HandlerTestSuite) TestValidation_InvalidYearID() {
	w := suite.do(suite.router, http.MethodGet, "/api/v1/financial-closing/year/abc/validation", nil, 9)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestRequiresTokenWhenSecretConfigured() {
	w := suite.do(suite.router, http.MethodPost, "/api/v1/financial-closing/year/3/execute", dto.ActorRequest{ActorID: 4}, 0)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.fiscalYear.AssertNotCalled(suite.T(), "Close", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestExecute_ActorFromToken() {
	closedAt := time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC)
	suite.fiscalYear.On("Close", mock.Anything, int64(3), int64(7)).Return(&domain.ClosingOutcome{
		Closed:     true,
		Validation: domain.ValidationResult{CanClose: true, Errors: []string{}},
		EntryID:    55,
		Figures:    &domain.ClosingFigures{FinalProfit: decimal.NewFromInt(27000)},
		ClosedAt:   &closedAt,
	}, nil).Once()

	// The body actor is ignored once the token identifies the caller.
	w := suite.do(suite.router, http.MethodPost, "/api/v1/financial-closing/year/3/execute", dto.ActorRequest{ActorID: 99}, 7)

	suite.Equal(http.StatusOK, w.Code)
	var outcome domain.ClosingOutcome
	suite.decode(w, &outcome)
	suite.True(outcome.Closed)
	suite.Equal(int64(55), outcome.EntryID)
	suite.True(decimal.NewFromInt(27000).Equal(outcome.Figures.FinalProfit))
}

func (suite *HandlerTestSuite) TestExecute_ActorFromBodyWhenAuthDisabled() {
	router := suite.newRouter("")
	suite.fiscalYear.On("Close", mock.Anything, int64(3), int64(4)).Return(&domain.ClosingOutcome{Closed: true}, nil).Once()

	w := suite.do(router, http.MethodPost, "/api/v1/financial-closing/year/3/execute", dto.ActorRequest{ActorID: 4}, 0)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestExecute_MissingActorWhenAuthDisabled() {
	router := suite.newRouter("")

	w := suite.do(router, http.MethodPost, "/api/v1/financial-closing/year/3/execute", nil, 0)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "actor_id is required")
}

func (suite *HandlerTestSuite) TestExecute_ValidationFailed() {
	suite.fiscalYear.On("Close", mock.Anything, int64(3), int64(7)).Return(&domain.ClosingOutcome{
		Closed: false,
		Validation: domain.ValidationResult{
			CanClose: false,
			Errors:   []string{"2 closure steps are not completed"},
		},
	}, nil).Once()

	w := suite.do(suite.router, http.MethodPost, "/api/v1/financial-closing/year/3/execute", nil, 7)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	var outcome domain.ClosingOutcome
	suite.decode(w, &outcome)
	suite.False(outcome.Closed)
	suite.Equal([]string{"2 closure steps are not completed"}, outcome.Validation.Errors)
}

func (suite *HandlerTestSuite) TestExecute_StorageFailureHidesCause() {
	suite.fiscalYear.On("Close", mock.Anything, int64(3), int64(7)).Return(nil, errors.New("connection reset by peer")).Once()

	w := suite.do(suite.router, http.MethodPost, "/api/v1/financial-closing/year/3/execute", nil, 7)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "connection reset")
}

func (suite *HandlerTestSuite) TestReopen() {
	deleted := int64(55)
	suite.fiscalYear.On("Reopen", mock.Anything, int64(3), int64(7)).Return(&domain.ReopenOutcome{
		Reopened:       true,
		DeletedEntryID: &deleted,
		AuditWarning:   "audit record not written: boom",
	}, nil).Once()

	w := suite.do(suite.router, http.MethodPost, "/api/v1/financial-closing/year/3/reopen", nil, 7)

	suite.Equal(http.StatusOK, w.Code)
	var outcome domain.ReopenOutcome
	suite.decode(w, &outcome)
	suite.True(outcome.Reopened)
	suite.Equal(&deleted, outcome.DeletedEntryID)
	suite.NotEmpty(outcome.AuditWarning)
}

func (suite *HandlerTestSuite) TestReopen_NotClosed() {
	suite.fiscalYear.On("Reopen", mock.Anything, int64(3), int64(7)).Return(&domain.ReopenOutcome{
		Reopened: false,
		Reason:   "fiscal year FY2024 is not closed",
	}, nil).Once()

	w := suite.do(suite.router, http.MethodPost, "/api/v1/financial-closing/year/3/reopen", nil, 7)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "is not closed")
}

func (suite *HandlerTestSuite) TestSummary_NotFound() {
	suite.fiscalYear.On("GetSummary", mock.Anything, int64(404)).
		Return(nil, apperrors.NewNotFoundError("fiscal year 404 not found")).Once()

	w := suite.do(suite.router, http.MethodGet, "/api/v1/financial-closing/year/404/summary", nil, 7)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestSummary() {
	year := domain.FiscalYear{
		ID:        3,
		Name:      "FY2024",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	suite.fiscalYear.On("GetSummary", mock.Anything, int64(3)).Return(&domain.YearSummary{
		Year:       year,
		State:      domain.YearOpen,
		Figures:    domain.ClosingFigures{NetProfit: decimal.NewFromInt(40000)},
		Steps:      []domain.ClosureStep{{ID: 1, StepName: "Reconcile bank accounts", Status: domain.StepPending}},
		Validation: domain.ValidationResult{CanClose: false, Errors: []string{"1 closure steps are not completed"}},
	}, nil).Once()

	w := suite.do(suite.router, http.MethodGet, "/api/v1/financial-closing/year/3/summary", nil, 7)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.YearSummaryResponse
	suite.decode(w, &body)
	suite.Equal("FY2024", body.Year.YearName)
	suite.Equal("2024-12-31", body.Year.EndDate)
	suite.Len(body.Steps, 1)
	suite.True(decimal.NewFromInt(40000).Equal(body.Figures.NetProfit))
}

func validYearRequest() dto.CreateFiscalYearRequest {
	return dto.CreateFiscalYearRequest{
		YearName:                  "FY2025",
		StartDate:                 "2025-01-01",
		EndDate:                   "2025-12-31",
		RevenuesAccountID:         1,
		ExpensesAccountID:         2,
		RetainedEarningsAccountID: 3,
		LegalReserveAccountID:     4,
		IncomeTaxAccountID:        5,
		SolidarityTaxAccountID:    6,
		IncomeTaxPercent:          decimal.NewFromInt(25),
		SolidarityTaxPercent:      decimal.NewFromInt(5),
		LegalReservePercent:       decimal.NewFromInt(10),
	}
}

func (suite *HandlerTestSuite) TestCreateFiscalYear() {
	req := validYearRequest()
	suite.fiscalYear.On("CreateFiscalYear", mock.Anything, mock.MatchedBy(func(r dto.CreateFiscalYearRequest) bool {
		return r.YearName == "FY2025" && r.IncomeTaxPercent.Equal(decimal.NewFromInt(25))
	}), int64(7)).Return(&domain.FiscalYear{ID: 12, Name: "FY2025"}, "", nil).Once()

	w := suite.do(suite.router, http.MethodPost, "/api/v1/financial-closing/setup/new-year", req, 7)

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.CreateFiscalYearResponse
	suite.decode(w, &body)
	suite.Equal(int64(12), body.ID)
	suite.Empty(body.AuditWarning)
}

func (suite *HandlerTestSuite) TestCreateFiscalYear_MissingFields() {
	req := validYearRequest()
	req.YearName = ""
	req.EndDate = "31/12/2025"

	w := suite.do(suite.router, http.MethodPost, "/api/v1/financial-closing/setup/new-year", req, 7)

	suite.Equal(http.StatusBadRequest, w.Code)
	var body struct {
		Fields map[string]string `json:"fields"`
	}
	suite.decode(w, &body)
	suite.Equal("required", body.Fields["YearName"])
	suite.Equal("datetime", body.Fields["EndDate"])
}

func (suite *HandlerTestSuite) TestCreateFiscalYear_Overlap() {
	suite.fiscalYear.On("CreateFiscalYear", mock.Anything, mock.Anything, int64(7)).
		Return(nil, "", apperrors.NewConflictError("fiscal year FY2025 overlaps an existing fiscal year")).Once()

	w := suite.do(suite.router, http.MethodPost, "/api/v1/financial-closing/setup/new-year", validYearRequest(), 7)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "overlaps")
}

func (suite *HandlerTestSuite) TestListSteps() {
	suite.checklist.On("ListSteps", mock.Anything, int64(3)).Return([]domain.ClosureStep{
		{ID: 1, StepName: "Reconcile bank accounts", Status: domain.StepCompleted},
		{ID: 2, StepName: "Review accruals", Status: domain.StepPending},
	}, nil).Once()

	w := suite.do(suite.router, http.MethodGet, "/api/v1/financial-closing/year/3/steps", nil, 7)

	suite.Equal(http.StatusOK, w.Code)
	var steps []dto.ClosureStepResponse
	suite.decode(w, &steps)
	suite.Len(steps, 2)
	suite.Equal("completed", steps[0].Status)
}

func (suite *HandlerTestSuite) TestCompleteStep_ClosedYear() {
	suite.checklist.On("CompleteStep", mock.Anything, int64(3), int64(2), int64(7)).
		Return(nil, apperrors.NewConflictError("fiscal year FY2024 is already closed")).Once()

	w := suite.do(suite.router, http.MethodPost, "/api/v1/financial-closing/year/3/steps/2/complete", nil, 7)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestCompleteStep() {
	executed := time.Date(2025, 1, 3, 8, 0, 0, 0, time.UTC)
	suite.checklist.On("CompleteStep", mock.Anything, int64(3), int64(2), int64(7)).
		Return(&domain.StepCompletion{
			Step: domain.ClosureStep{ID: 2, FiscalYearID: 3, StepName: "Review accruals", Status: domain.StepCompleted, ExecutedAt: &executed},
		}, nil).Once()

	w := suite.do(suite.router, http.MethodPost, "/api/v1/financial-closing/year/3/steps/2/complete", nil, 7)

	suite.Equal(http.StatusOK, w.Code)
	var step dto.CompleteStepResponse
	suite.decode(w, &step)
	suite.Equal("completed", step.Status)
	suite.NotNil(step.ExecutedAt)
	suite.Empty(step.AuditWarning)
}

func (suite *HandlerTestSuite) TestCompleteStep_ReportsAuditWarning() {
	suite.checklist.On("CompleteStep", mock.Anything, int64(3), int64(2), int64(7)).
		Return(&domain.StepCompletion{
			Step:         domain.ClosureStep{ID: 2, FiscalYearID: 3, StepName: "Review accruals", Status: domain.StepCompleted},
			AuditWarning: "audit record could not be written: connection reset",
		}, nil).Once()

	w := suite.do(suite.router, http.MethodPost, "/api/v1/financial-closing/year/3/steps/2/complete", nil, 7)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"audit_warning":"audit record could not be written: connection reset"`)
}

func (suite *HandlerTestSuite) TestGetFiscalYear() {
	closingEntryID := int64(55)
	suite.fiscalYear.On("GetFiscalYear", mock.Anything, int64(3)).Return(&domain.FiscalYear{
		ID:             3,
		Name:           "FY2024",
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		IsClosed:       true,
		ClosingEntryID: &closingEntryID,
	}, nil).Once()

	w := suite.do(suite.router, http.MethodGet, "/api/v1/financial-closing/year/3", nil, 7)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.FiscalYearResponse
	suite.decode(w, &body)
	suite.Equal("closed", body.State)
	suite.Equal(&closingEntryID, body.ClosingEntryID)
}
