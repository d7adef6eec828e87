package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/SscSPs/ledger_closing_app/internal/apperrors"
	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_closing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_closing_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_closing_app/internal/dto"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultChecklistSteps is used for new fiscal years when neither the request
// nor the configuration names any step.
var DefaultChecklistSteps = []string{
	"Physical inventory count",
	"Bank reconciliation",
	"Review of receivables",
	"Review of payables",
	"Fixed asset depreciation",
	"Accruals and prepayments",
}

var hundred = decimal.NewFromInt(100)

// FiscalYearDeps are the collaborating services of the fiscal year service.
type FiscalYearDeps struct {
	Checklist  portssvc.ClosureChecklistSvc
	Calculator portssvc.ClosingCalculatorSvc
	Generator  portssvc.ClosingEntryGeneratorSvc
	Auditor    portssvc.AuditSvc
}

// FiscalYearServiceOption configures the fiscal year service.
type FiscalYearServiceOption func(*fiscalYearService)

// WithChecklistTemplate sets the step names created for every new fiscal year.
func WithChecklistTemplate(steps []string) FiscalYearServiceOption {
	return func(s *fiscalYearService) {
		if len(steps) > 0 {
			s.checklistTemplate = steps
		}
	}
}

// WithClock replaces the time source.
func WithClock(now Clock) FiscalYearServiceOption {
	return func(s *fiscalYearService) {
		s.now = now
	}
}

// fiscalYearService is the coordinator of the closing workflow.
type fiscalYearService struct {
	BaseService
	fiscalYearRepo    portsrepo.FiscalYearRepository
	journalRepo       portsrepo.JournalRepositoryFacade
	accountRepo       portsrepo.AccountReader
	txManager         portsrepo.TransactionManager
	checklist         portssvc.ClosureChecklistSvc
	calculator        portssvc.ClosingCalculatorSvc
	generator         portssvc.ClosingEntryGeneratorSvc
	checklistTemplate []string
	now               Clock
}

// NewFiscalYearService creates the service that validates, closes and reopens fiscal years.
func NewFiscalYearService(repos portsrepo.RepositoryProvider, deps FiscalYearDeps, options ...FiscalYearServiceOption) portssvc.FiscalYearSvcFacade {
	s := &fiscalYearService{
		BaseService:       BaseService{Auditor: deps.Auditor},
		fiscalYearRepo:    repos.FiscalYearRepo,
		journalRepo:       repos.JournalRepo,
		accountRepo:       repos.AccountRepo,
		txManager:         repos.TxManager,
		checklist:         deps.Checklist,
		calculator:        deps.Calculator,
		generator:         deps.Generator,
		checklistTemplate: DefaultChecklistSteps,
		now:               utcNow,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

var _ portssvc.FiscalYearSvcFacade = (*fiscalYearService)(nil)

func (s *fiscalYearService) GetFiscalYear(ctx context.Context, yearID int64) (*domain.FiscalYear, error) {
	year, err := s.fiscalYearRepo.FindByID(ctx, yearID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find fiscal year", slog.Int64("fiscal_year_id", yearID))
		}
		return nil, fmt.Errorf("failed to find fiscal year %d: %w", yearID, err)
	}
	return year, nil
}

// ValidateForClosing reports every reason the year cannot be closed, not just the first.
func (s *fiscalYearService) ValidateForClosing(ctx context.Context, yearID int64) (*domain.ValidationResult, error) {
	year, err := s.GetFiscalYear(ctx, yearID)
	if err != nil {
		return nil, err
	}
	return s.validate(ctx, *year)
}

func (s *fiscalYearService) validate(ctx context.Context, year domain.FiscalYear) (*domain.ValidationResult, error) {
	result := &domain.ValidationResult{Errors: []string{}}
	if year.IsClosed {
		result.Errors = append(result.Errors, fmt.Sprintf("fiscal year %s is already closed", year.Name))
		return result, nil
	}

	unapproved, err := s.journalRepo.CountUnapprovedInRange(ctx, year.Range())
	if err != nil {
		return nil, fmt.Errorf("failed to count unapproved entries: %w", err)
	}
	incomplete, err := s.checklist.IncompleteCount(ctx, year.ID)
	if err != nil {
		return nil, err
	}

	result.UnapprovedEntries = unapproved
	result.IncompleteSteps = incomplete
	if unapproved > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("%d journal entries dated within the fiscal year are not approved", unapproved))
	}
	if incomplete > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("%d closure steps are not completed", incomplete))
	}
	result.CanClose = len(result.Errors) == 0
	return result, nil
}

// Close runs validation, calculation, entry generation and checklist completion
// in a single transaction holding the fiscal year row lock.
func (s *fiscalYearService) Close(ctx context.Context, yearID, actorID int64) (*domain.ClosingOutcome, error) {
	logger := s.GetLogger(ctx).With(slog.Int64("fiscal_year_id", yearID))
	outcome := &domain.ClosingOutcome{}
	var yearName string

	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		year, err := s.fiscalYearRepo.FindByIDForUpdate(ctx, yearID)
		if err != nil {
			return err
		}
		yearName = year.Name

		validation, err := s.validate(ctx, *year)
		if err != nil {
			return err
		}
		outcome.Validation = *validation
		if !validation.CanClose {
			return nil
		}

		logger.Info("Fiscal year closing", slog.String("state", string(domain.YearClosing)))
		figures, err := s.calculator.Calculate(ctx, *year)
		if err != nil {
			return err
		}
		closedAt := s.now()
		entryID, err := s.generator.Generate(ctx, *year, figures, actorID, closedAt)
		if err != nil {
			return err
		}
		if err := s.checklist.MarkAllCompleted(ctx, year.ID); err != nil {
			return err
		}

		outcome.Closed = true
		outcome.EntryID = entryID
		outcome.Figures = &figures
		outcome.ClosedAt = &closedAt
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Fiscal year closing failed", slog.Int64("fiscal_year_id", yearID))
		}
		return nil, fmt.Errorf("failed to close fiscal year %d: %w", yearID, err)
	}

	if !outcome.Closed {
		logger.Warn("Fiscal year cannot be closed", slog.Any("errors", outcome.Validation.Errors))
		return outcome, nil
	}

	note := fmt.Sprintf("Fiscal year %s closed, final profit %s", yearName, outcome.Figures.FinalProfit.String())
	outcome.AuditWarning = s.RecordAudit(ctx, &outcome.EntryID, domain.AuditYearOpen, domain.AuditYearClosed, actorID, note)
	logger.Info("Fiscal year closed", slog.Int64("entry_id", outcome.EntryID))
	return outcome, nil
}

// Reopen reverts a close: the closing entry and its lines are deleted, the
// closed stamp is cleared and every checklist step goes back to pending.
func (s *fiscalYearService) Reopen(ctx context.Context, yearID, actorID int64) (*domain.ReopenOutcome, error) {
	logger := s.GetLogger(ctx).With(slog.Int64("fiscal_year_id", yearID))
	outcome := &domain.ReopenOutcome{}
	var yearName string

	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		year, err := s.fiscalYearRepo.FindByIDForUpdate(ctx, yearID)
		if err != nil {
			return err
		}
		yearName = year.Name
		if !year.IsClosed {
			outcome.Reason = fmt.Sprintf("fiscal year %s is not closed", year.Name)
			return nil
		}

		if year.ClosingEntryID != nil {
			if err := s.journalRepo.DeleteEntry(ctx, *year.ClosingEntryID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("delete closing entry %d: %w", *year.ClosingEntryID, err)
			}
			outcome.DeletedEntryID = year.ClosingEntryID
		}
		if err := s.fiscalYearRepo.MarkOpen(ctx, year.ID); err != nil {
			return err
		}
		if err := s.checklist.ResetAll(ctx, year.ID); err != nil {
			return err
		}
		outcome.Reopened = true
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Fiscal year reopening failed", slog.Int64("fiscal_year_id", yearID))
		}
		return nil, fmt.Errorf("failed to reopen fiscal year %d: %w", yearID, err)
	}

	if !outcome.Reopened {
		logger.Warn("Fiscal year reopen rejected", slog.String("reason", outcome.Reason))
		return outcome, nil
	}

	note := fmt.Sprintf("Fiscal year %s reopened", yearName)
	outcome.AuditWarning = s.RecordAudit(ctx, outcome.DeletedEntryID, domain.AuditYearClosed, domain.AuditYearOpen, actorID, note)
	logger.Info("Fiscal year reopened")
	return outcome, nil
}

// CreateFiscalYear validates the configuration, creates the year and its checklist.
func (s *fiscalYearService) CreateFiscalYear(ctx context.Context, req dto.CreateFiscalYearRequest, actorID int64) (*domain.FiscalYear, string, error) {
	year, err := req.ToDomain()
	if err != nil {
		return nil, "", apperrors.NewValidationError("start_date and end_date must be dates in YYYY-MM-DD format")
	}
	year.Name = strings.TrimSpace(year.Name)
	if err := s.validateNewYear(ctx, year); err != nil {
		return nil, "", err
	}

	steps := req.ChecklistSteps
	if len(steps) == 0 {
		steps = s.checklistTemplate
	}

	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		overlapping, err := s.fiscalYearRepo.ExistsOverlapping(ctx, year.Range())
		if err != nil {
			return err
		}
		if overlapping {
			return apperrors.NewConflictError(fmt.Sprintf("fiscal year %s overlaps an existing fiscal year", year.Name))
		}
		id, err := s.fiscalYearRepo.Create(ctx, year)
		if err != nil {
			return err
		}
		year.ID = id
		_, err = s.checklist.InitializeSteps(ctx, id, steps)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrConflict) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to create fiscal year", slog.String("year_name", year.Name))
		}
		return nil, "", fmt.Errorf("failed to create fiscal year %s: %w", year.Name, err)
	}

	note := fmt.Sprintf("Fiscal year %s created", year.Name)
	warning := s.RecordAudit(ctx, nil, "", domain.AuditYearOpen, actorID, note)
	s.LogInfo(ctx, "Fiscal year created", slog.Int64("fiscal_year_id", year.ID), slog.String("year_name", year.Name))
	return &year, warning, nil
}

func (s *fiscalYearService) validateNewYear(ctx context.Context, year domain.FiscalYear) error {
	if year.Name == "" {
		return apperrors.NewValidationError("year_name is required")
	}
	if utf8.RuneCountInString(year.Name) > domain.MaxYearNameLength {
		return apperrors.NewValidationError(fmt.Sprintf("year_name must be at most %d characters", domain.MaxYearNameLength))
	}
	if !year.EndDate.After(year.StartDate) {
		return apperrors.NewValidationError("end_date must be after start_date")
	}
	rates := map[string]decimal.Decimal{
		"income_tax_percent":     year.IncomeTaxPercent,
		"solidarity_tax_percent": year.SolidarityTaxPercent,
		"legal_reserve_percent":  year.LegalReservePercent,
	}
	for name, rate := range rates {
		if rate.IsNegative() || rate.GreaterThan(hundred) {
			return apperrors.NewValidationError(fmt.Sprintf("%s must be between 0 and 100", name))
		}
	}

	ids := year.ClosingAccountIDs()
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to fetch closing accounts: %w", err)
	}
	for _, id := range ids {
		acc, found := accounts[id]
		if !found {
			return apperrors.NewValidationError(fmt.Sprintf("closing account %d does not exist", id))
		}
		if !acc.CanReceivePostings() {
			return apperrors.NewValidationError(fmt.Sprintf("closing account %s (%s) must be final and active", acc.Code, acc.Name))
		}
	}
	return nil
}

// GetSummary collects the live figures, the checklist and the validation state.
// The three reads are independent and run concurrently on the pool.
func (s *fiscalYearService) GetSummary(ctx context.Context, yearID int64) (*domain.YearSummary, error) {
	year, err := s.GetFiscalYear(ctx, yearID)
	if err != nil {
		return nil, err
	}

	summary := &domain.YearSummary{Year: *year, State: year.State()}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		figures, err := s.calculator.Calculate(gctx, *year)
		if err != nil {
			return err
		}
		summary.Figures = figures
		return nil
	})
	g.Go(func() error {
		steps, err := s.checklist.ListSteps(gctx, year.ID)
		if err != nil {
			return err
		}
		summary.Steps = steps
		return nil
	})
	g.Go(func() error {
		validation, err := s.validate(gctx, *year)
		if err != nil {
			return err
		}
		summary.Validation = *validation
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build summary of fiscal year %d: %w", yearID, err)
	}
	return summary, nil
}
