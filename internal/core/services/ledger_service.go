package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/SscSPs/ledger_closing_app/internal/apperrors"
	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_closing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_closing_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_closing_app/internal/dto"
	"github.com/SscSPs/ledger_closing_app/internal/utils/accounting"
)

var (
	ErrEntryMinLines      = errors.New("journal entry must have at least two lines")
	ErrEntryNumberMissing = errors.New("journal entry number is required")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountNotPostable = errors.New("account does not accept postings")
	ErrYearClosed         = errors.New("fiscal year is closed")
)

// ledgerService validates and persists journal entries.
type ledgerService struct {
	BaseService
	journalRepo    portsrepo.JournalRepositoryFacade
	accountRepo    portsrepo.AccountReader
	fiscalYearRepo portsrepo.FiscalYearRepository
	txManager      portsrepo.TransactionManager
	places         int32
	now            Clock
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(repos portsrepo.RepositoryProvider, auditor portssvc.AuditSvc, places int32) portssvc.LedgerSvcFacade {
	return &ledgerService{
		BaseService:    BaseService{Auditor: auditor},
		journalRepo:    repos.JournalRepo,
		accountRepo:    repos.AccountRepo,
		fiscalYearRepo: repos.FiscalYearRepo,
		txManager:      repos.TxManager,
		places:         places,
		now:            utcNow,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CreateEntry converts the request and posts it as a draft.
func (s *ledgerService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, actorID int64) (*domain.JournalEntry, error) {
	entry, lines, err := req.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid entry date %q", apperrors.ErrValidation, req.EntryDate)
	}
	entry.Status = domain.Draft
	return s.PostEntry(ctx, entry, lines, actorID)
}

// PostEntry enforces the line rules, the balance tolerance and account finality, then
// writes header and lines in one transaction. Nothing is written when any check fails.
func (s *ledgerService) PostEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine, actorID int64) (*domain.JournalEntry, error) {
	logger := s.GetLogger(ctx).With(slog.String("entry_number", entry.EntryNumber))

	if entry.EntryNumber == "" {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrEntryNumberMissing)
	}
	if entry.Status == "" {
		entry.Status = domain.Draft
	}
	if !entry.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, entry.Status)
	}
	// A year without activity still gets a (possibly empty) closing entry.
	if entry.Status != domain.Closing && len(lines) < 2 {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrEntryMinLines)
	}

	rounded := make([]domain.JournalEntryLine, len(lines))
	for i, l := range lines {
		l.Debit = accounting.Round(l.Debit, s.places)
		l.Credit = accounting.Round(l.Credit, s.places)
		rounded[i] = l
	}

	totalDebit, totalCredit, err := accounting.ValidateEntryBalance(entry.EntryNumber, rounded, s.places)
	if err != nil {
		logger.Warn("Journal entry rejected", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.checkAccounts(ctx, rounded); err != nil {
		logger.Warn("Journal entry references unusable accounts", slog.String("error", err.Error()))
		return nil, err
	}

	entry.TotalDebit = totalDebit
	entry.TotalCredit = totalCredit
	entry.CreatedBy = actorID
	entry.CreatedAt = s.now()

	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.ensureYearOpen(ctx, entry); err != nil {
			return err
		}
		id, err := s.journalRepo.InsertEntry(ctx, entry, rounded)
		if err != nil {
			return err
		}
		entry.ID = id
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to save journal entry", slog.String("entry_number", entry.EntryNumber))
		}
		return nil, fmt.Errorf("failed to save journal entry %q: %w", entry.EntryNumber, err)
	}

	for i := range rounded {
		rounded[i].JournalEntryID = entry.ID
	}
	entry.Lines = rounded

	logger.Info("Journal entry posted",
		slog.Int64("entry_id", entry.ID),
		slog.String("status", string(entry.Status)),
		slog.String("total", totalDebit.StringFixed(s.places)))
	return &entry, nil
}

// checkAccounts verifies every referenced account exists, is final and is active.
func (s *ledgerService) checkAccounts(ctx context.Context, lines []domain.JournalEntryLine) error {
	if len(lines) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		if !slices.Contains(ids, l.AccountID) {
			ids = append(ids, l.AccountID)
		}
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range ids {
		acc, found := accounts[id]
		if !found {
			return fmt.Errorf("%w: %w: ID %d", apperrors.ErrValidation, ErrAccountNotFound, id)
		}
		if !acc.CanReceivePostings() {
			return fmt.Errorf("%w: %w: %s (%s) must be final and active", apperrors.ErrValidation, ErrAccountNotPostable, acc.Code, acc.Name)
		}
	}
	return nil
}

// ensureYearOpen rejects changes to entries dated inside a closed fiscal year.
func (s *ledgerService) ensureYearOpen(ctx context.Context, entry domain.JournalEntry) error {
	year, err := s.fiscalYearRepo.FindClosedContaining(ctx, entry.EntryDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}
	return fmt.Errorf("%w: %w: entry %q is dated in fiscal year %s", apperrors.ErrConflict, ErrYearClosed, entry.EntryNumber, year.Name)
}

// GetEntry retrieves an entry with its lines.
func (s *ledgerService) GetEntry(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry", slog.Int64("entry_id", entryID))
		}
		return nil, fmt.Errorf("failed to find journal entry %d: %w", entryID, err)
	}
	return entry, nil
}

// SumByAccountPrefixAndDateRange delegates to the repository.
func (s *ledgerService) SumByAccountPrefixAndDateRange(ctx context.Context, prefix string, dateRange domain.DateRange, approvedOnly bool) (domain.LineTotals, error) {
	totals, err := s.journalRepo.SumByAccountPrefixAndDateRange(ctx, prefix, dateRange, approvedOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate ledger lines", slog.String("prefix", prefix))
		return domain.LineTotals{}, fmt.Errorf("failed to sum accounts with prefix %q: %w", prefix, err)
	}
	return totals, nil
}

// ApproveEntry moves a draft entry to approved.
func (s *ledgerService) ApproveEntry(ctx context.Context, entryID int64, actorID int64) (*domain.EntryStatusChange, error) {
	return s.transition(ctx, entryID, actorID, []domain.JournalStatus{domain.Draft}, string(domain.Approved),
		func(ctx context.Context) error {
			return s.journalRepo.UpdateEntryStatus(ctx, entryID, domain.Approved)
		})
}

// CancelEntry moves a draft or approved entry to cancelled.
func (s *ledgerService) CancelEntry(ctx context.Context, entryID int64, actorID int64) (*domain.EntryStatusChange, error) {
	return s.transition(ctx, entryID, actorID, []domain.JournalStatus{domain.Draft, domain.Approved}, string(domain.Cancelled),
		func(ctx context.Context) error {
			return s.journalRepo.UpdateEntryStatus(ctx, entryID, domain.Cancelled)
		})
}

// DeleteEntry removes a draft or cancelled entry together with its lines.
// Closing entries are only removed by reopening their fiscal year.
func (s *ledgerService) DeleteEntry(ctx context.Context, entryID int64, actorID int64) (*domain.EntryStatusChange, error) {
	return s.transition(ctx, entryID, actorID, []domain.JournalStatus{domain.Draft, domain.Cancelled}, domain.AuditEntryDeleted,
		func(ctx context.Context) error {
			return s.journalRepo.DeleteEntry(ctx, entryID)
		})
}

// transition loads the entry, checks the allowed source statuses and the fiscal year,
// runs apply in the same transaction and records the change once committed.
func (s *ledgerService) transition(ctx context.Context, entryID, actorID int64, from []domain.JournalStatus, to string, apply func(ctx context.Context) error) (*domain.EntryStatusChange, error) {
	change := &domain.EntryStatusChange{NewStatus: to}

	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
		if err != nil {
			return err
		}
		if !slices.Contains(from, entry.Status) {
			return fmt.Errorf("%w: entry %q is %s and cannot become %s", domain.ErrInvalidStatusTransition, entry.EntryNumber, entry.Status, to)
		}
		if err := s.ensureYearOpen(ctx, *entry); err != nil {
			return err
		}
		if err := apply(ctx); err != nil {
			return err
		}
		change.OldStatus = string(entry.Status)
		if to != domain.AuditEntryDeleted {
			entry.Status = domain.JournalStatus(to)
		}
		change.Entry = *entry
		return nil
	})
	if err != nil {
		s.LogWarn(ctx, "Journal entry status change rejected",
			slog.Int64("entry_id", entryID),
			slog.String("target_status", to),
			slog.String("error", err.Error()))
		return nil, err
	}

	note := fmt.Sprintf("Journal entry %s changed from %s to %s", change.Entry.EntryNumber, change.OldStatus, to)
	change.AuditWarning = s.RecordAudit(ctx, &entryID, change.OldStatus, to, actorID, note)
	s.LogInfo(ctx, "Journal entry status changed",
		slog.Int64("entry_id", entryID),
		slog.String("old_status", change.OldStatus),
		slog.String("new_status", to))
	return change, nil
}
