package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/ledger_closing_app/internal/apperrors"
	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	"github.com/SscSPs/ledger_closing_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func journalRequest() dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		EntryNumber: "JE-2024-001",
		EntryDate:   "2024-03-15",
		Description: "Consulting revenue",
		Lines: []dto.CreateJournalEntryLineRequest{
			{AccountID: 10, Debit: decimal.NewFromInt(500)},
			{AccountID: 40, Credit: decimal.NewFromInt(500)},
		},
	}
}

func (suite *HandlerTestSuite) TestCreateEntry() {
	suite.ledger.On("CreateEntry", mock.Anything, mock.MatchedBy(func(r dto.CreateJournalEntryRequest) bool {
		return r.EntryNumber == "JE-2024-001" && len(r.Lines) == 2
	}), int64(7)).Return(&domain.JournalEntry{
		ID:          31,
		EntryNumber: "JE-2024-001",
		EntryDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		TotalDebit:  decimal.NewFromInt(500),
		TotalCredit: decimal.NewFromInt(500),
		Status:      domain.Draft,
		CreatedBy:   7,
		Lines: []domain.JournalEntryLine{
			{ID: 1, JournalEntryID: 31, AccountID: 10, Debit: decimal.NewFromInt(500), Credit: decimal.Zero},
			{ID: 2, JournalEntryID: 31, AccountID: 40, Debit: decimal.Zero, Credit: decimal.NewFromInt(500)},
		},
	}, nil).Once()

	w := suite.do(suite.router, http.MethodPost, "/api/v1/journal-entries", journalRequest(), 7)

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.JournalEntryResponse
	suite.decode(w, &body)
	suite.Equal(int64(31), body.ID)
	suite.Equal("2024-03-15", body.EntryDate)
	suite.Equal(domain.Draft, body.Status)
	suite.Len(body.Lines, 2)
}

func (suite *HandlerTestSuite) TestCreateEntry_TooFewLines() {
	req := journalRequest()
	req.Lines = req.Lines[:1]

	w := suite.do(suite.router, http.MethodPost, "/api/v1/journal-entries", req, 7)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Lines")
}

func (suite *HandlerTestSuite) TestCreateEntry_ErrorMapping() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"unbalanced", &domain.UnbalancedEntryError{EntryNumber: "JE-2024-001", TotalDebit: decimal.NewFromInt(500), TotalCredit: decimal.NewFromInt(400)}, http.StatusUnprocessableEntity},
		{"invalid line", fmt.Errorf("%w: account 10 has a negative amount", domain.ErrInvalidLine), http.StatusUnprocessableEntity},
		{"inactive account", fmt.Errorf("%w: account 10 must be final and active", apperrors.ErrValidation), http.StatusBadRequest},
		{"duplicate number", fmt.Errorf("failed to save journal entry: %w", apperrors.ErrDuplicate), http.StatusConflict},
		{"closed year", fmt.Errorf("%w: entry dated in closed year", apperrors.ErrConflict), http.StatusConflict},
	}
	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.ledger.On("CreateEntry", mock.Anything, mock.Anything, int64(7)).Return(nil, tc.err).Once()

			w := suite.do(suite.router, http.MethodPost, "/api/v1/journal-entries", journalRequest(), 7)

			suite.Equal(tc.status, w.Code)
		})
	}
}

func (suite *HandlerTestSuite) TestGetEntry_NotFound() {
	suite.ledger.On("GetEntry", mock.Anything, int64(77)).
		Return(nil, fmt.Errorf("failed to find journal entry 77: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(suite.router, http.MethodGet, "/api/v1/journal-entries/77", nil, 7)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestApproveEntry() {
	suite.ledger.On("ApproveEntry", mock.Anything, int64(31), int64(7)).Return(&domain.EntryStatusChange{
		Entry:        domain.JournalEntry{ID: 31, EntryNumber: "JE-2024-001", Status: domain.Approved},
		OldStatus:    "draft",
		NewStatus:    "approved",
		AuditWarning: "audit record not written: timeout",
	}, nil).Once()

	w := suite.do(suite.router, http.MethodPost, "/api/v1/journal-entries/31/approve", nil, 7)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.EntryStatusChangeResponse
	suite.decode(w, &body)
	suite.Equal("draft", body.OldStatus)
	suite.Equal("approved", body.NewStatus)
	suite.Equal(domain.Approved, body.Entry.Status)
	suite.NotEmpty(body.AuditWarning)
}

func (suite *HandlerTestSuite) TestApproveEntry_InvalidTransition() {
	suite.ledger.On("ApproveEntry", mock.Anything, int64(31), int64(7)).
		Return(nil, fmt.Errorf("%w: entry is cancelled", domain.ErrInvalidStatusTransition)).Once()

	w := suite.do(suite.router, http.MethodPost, "/api/v1/journal-entries/31/approve", nil, 7)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlerTestSuite) TestCancelAndDeleteEntry() {
	suite.ledger.On("CancelEntry", mock.Anything, int64(31), int64(7)).Return(&domain.EntryStatusChange{
		Entry: domain.JournalEntry{ID: 31, Status: domain.Cancelled}, OldStatus: "approved", NewStatus: "cancelled",
	}, nil).Once()
	suite.ledger.On("DeleteEntry", mock.Anything, int64(31), int64(7)).Return(&domain.EntryStatusChange{
		Entry: domain.JournalEntry{ID: 31, Status: domain.Cancelled}, OldStatus: "cancelled", NewStatus: domain.AuditEntryDeleted,
	}, nil).Once()

	w := suite.do(suite.router, http.MethodPost, "/api/v1/journal-entries/31/cancel", nil, 7)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(suite.router, http.MethodDelete, "/api/v1/journal-entries/31", nil, 7)
	suite.Equal(http.StatusOK, w.Code)
	var body dto.EntryStatusChangeResponse
	suite.decode(w, &body)
	suite.Equal("deleted", body.NewStatus)
}

func (suite *HandlerTestSuite) TestListEntryAudit() {
	entryID := int64(31)
	suite.audit.On("ListForEntry", mock.Anything, entryID, 20).Return([]domain.AuditLogEntry{
		{ID: 2, EntryID: &entryID, OldStatus: "draft", NewStatus: "approved", AuditorID: 7},
	}, nil).Once()

	w := suite.do(suite.router, http.MethodGet, "/api/v1/journal-entries/31/audit?limit=20", nil, 7)

	suite.Equal(http.StatusOK, w.Code)
	var records []dto.AuditLogResponse
	suite.decode(w, &records)
	suite.Len(records, 1)
	suite.Equal("approved", records[0].NewStatus)
}

func (suite *HandlerTestSuite) TestListEntryAudit_LimitOutOfRange() {
	w := suite.do(suite.router, http.MethodGet, "/api/v1/journal-entries/31/audit?limit=5000", nil, 7)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListRecentAudit() {
	suite.audit.On("ListRecent", mock.Anything, 50, "").Return(&domain.AuditPage{
		Records:   []domain.AuditLogEntry{{ID: 9, NewStatus: "closed"}},
		NextToken: "abc",
	}, nil).Once()
	suite.audit.On("ListRecent", mock.Anything, 50, "abc").Return(&domain.AuditPage{
		Records: []domain.AuditLogEntry{{ID: 8, NewStatus: "open"}},
	}, nil).Once()

	w := suite.do(suite.router, http.MethodGet, "/api/v1/audit-logs", nil, 7)
	suite.Equal(http.StatusOK, w.Code)
	var first dto.ListAuditLogsResponse
	suite.decode(w, &first)
	suite.Require().NotNil(first.NextToken)
	suite.Equal("abc", *first.NextToken)

	w = suite.do(suite.router, http.MethodGet, "/api/v1/audit-logs?nextToken=abc", nil, 7)
	suite.Equal(http.StatusOK, w.Code)
	var last dto.ListAuditLogsResponse
	suite.decode(w, &last)
	suite.Nil(last.NextToken)
	suite.Len(last.Records, 1)
}

func (suite *HandlerTestSuite) TestListRecentAudit_BadToken() {
	suite.audit.On("ListRecent", mock.Anything, 50, "garbage").
		Return(nil, apperrors.NewValidationError("invalid pagination token format (split)")).Once()

	w := suite.do(suite.router, http.MethodGet, "/api/v1/audit-logs?nextToken=garbage", nil, 7)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(suite.router, http.MethodGet, "/health", nil, 0)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}
