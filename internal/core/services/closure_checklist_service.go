package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/ledger_closing_app/internal/apperrors"
	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_closing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_closing_app/internal/core/ports/services"
)

// closureChecklistService manages the procedural steps that gate closing.
type closureChecklistService struct {
	BaseService
	stepRepo       portsrepo.ClosureStepRepository
	fiscalYearRepo portsrepo.FiscalYearRepository
	now            Clock
}

// NewClosureChecklistService creates a new checklist service.
func NewClosureChecklistService(repos portsrepo.RepositoryProvider, auditor portssvc.AuditSvc) portssvc.ClosureChecklistSvc {
	return &closureChecklistService{
		BaseService:    BaseService{Auditor: auditor},
		stepRepo:       repos.ClosureStepRepo,
		fiscalYearRepo: repos.FiscalYearRepo,
		now:            utcNow,
	}
}

var _ portssvc.ClosureChecklistSvc = (*closureChecklistService)(nil)

// InitializeSteps is idempotent: names the year already has are skipped.
func (s *closureChecklistService) InitializeSteps(ctx context.Context, yearID int64, stepNames []string) (int, error) {
	names := make([]string, 0, len(stepNames))
	seen := make(map[string]struct{}, len(stepNames))
	for _, n := range stepNames {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}
	if len(names) == 0 {
		return 0, nil
	}

	inserted, err := s.stepRepo.InsertStepsIgnoreExisting(ctx, yearID, names)
	if err != nil {
		s.LogError(ctx, err, "Failed to initialize closure steps", slog.Int64("fiscal_year_id", yearID))
		return 0, fmt.Errorf("failed to initialize closure steps for fiscal year %d: %w", yearID, err)
	}
	s.LogDebug(ctx, "Closure steps initialized", slog.Int64("fiscal_year_id", yearID), slog.Int("inserted", inserted))
	return inserted, nil
}

func (s *closureChecklistService) AllComplete(ctx context.Context, yearID int64) (bool, error) {
	n, err := s.IncompleteCount(ctx, yearID)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

func (s *closureChecklistService) IncompleteCount(ctx context.Context, yearID int64) (int, error) {
	n, err := s.stepRepo.CountIncomplete(ctx, yearID)
	if err != nil {
		return 0, fmt.Errorf("failed to count incomplete closure steps: %w", err)
	}
	return n, nil
}

// MarkAllCompleted is only called by a successful close, inside its transaction.
func (s *closureChecklistService) MarkAllCompleted(ctx context.Context, yearID int64) error {
	now := s.now()
	if err := s.stepRepo.SetAllStatus(ctx, yearID, domain.StepCompleted, &now); err != nil {
		return fmt.Errorf("failed to complete closure steps: %w", err)
	}
	return nil
}

// ResetAll is only called by reopen, inside its transaction.
func (s *closureChecklistService) ResetAll(ctx context.Context, yearID int64) error {
	if err := s.stepRepo.SetAllStatus(ctx, yearID, domain.StepPending, nil); err != nil {
		return fmt.Errorf("failed to reset closure steps: %w", err)
	}
	return nil
}

func (s *closureChecklistService) ListSteps(ctx context.Context, yearID int64) ([]domain.ClosureStep, error) {
	steps, err := s.stepRepo.ListByYear(ctx, yearID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list closure steps", slog.Int64("fiscal_year_id", yearID))
		return nil, fmt.Errorf("failed to list closure steps: %w", err)
	}
	return steps, nil
}

// CompleteStep ticks one step of an open year.
func (s *closureChecklistService) CompleteStep(ctx context.Context, yearID, stepID, actorID int64) (*domain.StepCompletion, error) {
	year, err := s.fiscalYearRepo.FindByID(ctx, yearID)
	if err != nil {
		return nil, fmt.Errorf("failed to find fiscal year %d: %w", yearID, err)
	}
	if year.IsClosed {
		return nil, apperrors.NewConflictError(fmt.Sprintf("fiscal year %s is already closed", year.Name))
	}

	step, err := s.stepRepo.CompleteStep(ctx, yearID, stepID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to complete closure step %d: %w", stepID, err)
	}

	note := fmt.Sprintf("Closure step %q completed for fiscal year %s", step.StepName, year.Name)
	warning := s.RecordAudit(ctx, nil, string(domain.StepPending), string(domain.StepCompleted), actorID, note)
	s.LogInfo(ctx, "Closure step completed", slog.Int64("fiscal_year_id", yearID), slog.Int64("step_id", stepID))
	return &domain.StepCompletion{Step: *step, AuditWarning: warning}, nil
}
