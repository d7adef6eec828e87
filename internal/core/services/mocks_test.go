package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_closing_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) SumByAccountPrefixAndDateRange(ctx context.Context, prefix string, dateRange domain.DateRange, approvedOnly bool) (domain.LineTotals, error) {
	args := m.Called(ctx, prefix, dateRange, approvedOnly)
	return args.Get(0).(domain.LineTotals), args.Error(1)
}

func (m *MockJournalRepository) CountUnapprovedInRange(ctx context.Context, dateRange domain.DateRange) (int, error) {
	args := m.Called(ctx, dateRange)
	return args.Int(0), args.Error(1)
}

func (m *MockJournalRepository) InsertEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine) (int64, error) {
	args := m.Called(ctx, entry, lines)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJournalRepository) UpdateEntryStatus(ctx context.Context, entryID int64, status domain.JournalStatus) error {
	args := m.Called(ctx, entryID, status)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteEntry(ctx context.Context, entryID int64) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountReader = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Account), args.Error(1)
}

// --- Mock FiscalYearRepository ---
type MockFiscalYearRepository struct {
	mock.Mock
}

var _ portsrepo.FiscalYearRepository = (*MockFiscalYearRepository)(nil)

func (m *MockFiscalYearRepository) FindByID(ctx context.Context, yearID int64) (*domain.FiscalYear, error) {
	args := m.Called(ctx, yearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}

func (m *MockFiscalYearRepository) FindByIDForUpdate(ctx context.Context, yearID int64) (*domain.FiscalYear, error) {
	args := m.Called(ctx, yearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}

func (m *MockFiscalYearRepository) FindClosedContaining(ctx context.Context, date time.Time) (*domain.FiscalYear, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}

func (m *MockFiscalYearRepository) ExistsOverlapping(ctx context.Context, dateRange domain.DateRange) (bool, error) {
	args := m.Called(ctx, dateRange)
	return args.Bool(0), args.Error(1)
}

func (m *MockFiscalYearRepository) Create(ctx context.Context, year domain.FiscalYear) (int64, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFiscalYearRepository) MarkClosed(ctx context.Context, yearID, closingEntryID, actorID int64, closedAt time.Time) error {
	args := m.Called(ctx, yearID, closingEntryID, actorID, closedAt)
	return args.Error(0)
}

func (m *MockFiscalYearRepository) MarkOpen(ctx context.Context, yearID int64) error {
	args := m.Called(ctx, yearID)
	return args.Error(0)
}

// --- Mock ClosureStepRepository ---
type MockClosureStepRepository struct {
	mock.Mock
}

var _ portsrepo.ClosureStepRepository = (*MockClosureStepRepository)(nil)

func (m *MockClosureStepRepository) InsertStepsIgnoreExisting(ctx context.Context, yearID int64, stepNames []string) (int, error) {
	args := m.Called(ctx, yearID, stepNames)
	return args.Int(0), args.Error(1)
}

func (m *MockClosureStepRepository) ListByYear(ctx context.Context, yearID int64) ([]domain.ClosureStep, error) {
	args := m.Called(ctx, yearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClosureStep), args.Error(1)
}

func (m *MockClosureStepRepository) CountIncomplete(ctx context.Context, yearID int64) (int, error) {
	args := m.Called(ctx, yearID)
	return args.Int(0), args.Error(1)
}

func (m *MockClosureStepRepository) SetAllStatus(ctx context.Context, yearID int64, status domain.ClosureStepStatus, executedAt *time.Time) error {
	args := m.Called(ctx, yearID, status, executedAt)
	return args.Error(0)
}

func (m *MockClosureStepRepository) CompleteStep(ctx context.Context, yearID, stepID int64, executedAt time.Time) (*domain.ClosureStep, error) {
	args := m.Called(ctx, yearID, stepID, executedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClosureStep), args.Error(1)
}

// --- Mock AuditLogRepository ---
type MockAuditLogRepository struct {
	mock.Mock
}

var _ portsrepo.AuditLogRepository = (*MockAuditLogRepository)(nil)

func (m *MockAuditLogRepository) Insert(ctx context.Context, entry domain.AuditLogEntry) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuditLogRepository) ListByEntry(ctx context.Context, entryID int64, limit int) ([]domain.AuditLogEntry, error) {
	args := m.Called(ctx, entryID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLogEntry), args.Error(1)
}

func (m *MockAuditLogRepository) ListRecent(ctx context.Context, limit int, after *domain.AuditCursor) ([]domain.AuditLogEntry, error) {
	args := m.Called(ctx, limit, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLogEntry), args.Error(1)
}

// fakeTxManager runs fn directly and counts the calls. Rollback semantics are the
// repository layer's concern and are covered by its own tests.
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

// mockRepos bundles the mocks into a RepositoryProvider.
type mockRepos struct {
	journal  *MockJournalRepository
	account  *MockAccountRepository
	year     *MockFiscalYearRepository
	steps    *MockClosureStepRepository
	audit    *MockAuditLogRepository
	tx       *fakeTxManager
	provider portsrepo.RepositoryProvider
}

func newMockRepos() *mockRepos {
	r := &mockRepos{
		journal: new(MockJournalRepository),
		account: new(MockAccountRepository),
		year:    new(MockFiscalYearRepository),
		steps:   new(MockClosureStepRepository),
		audit:   new(MockAuditLogRepository),
		tx:      &fakeTxManager{},
	}
	r.provider = portsrepo.RepositoryProvider{
		AccountRepo:     r.account,
		JournalRepo:     r.journal,
		FiscalYearRepo:  r.year,
		ClosureStepRepo: r.steps,
		AuditLogRepo:    r.audit,
		TxManager:       r.tx,
	}
	return r
}

func (r *mockRepos) assertExpectations(t mock.TestingT) {
	r.journal.AssertExpectations(t)
	r.account.AssertExpectations(t)
	r.year.AssertExpectations(t)
	r.steps.AssertExpectations(t)
	r.audit.AssertExpectations(t)
}
