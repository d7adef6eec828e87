package pgsql

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_closing_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_closing_app/internal/models"
	"github.com/SscSPs/ledger_closing_app/internal/utils/mapping"
	"github.com/georgysavva/scany/v2/pgxscan"
)

var closureStepColumns = []string{"id", "financial_year_id", "step_name", "status", "executed_at"}

type PgxClosureStepRepository struct {
	BaseRepository
}

func newPgxClosureStepRepository(base BaseRepository) *PgxClosureStepRepository {
	return &PgxClosureStepRepository{BaseRepository: base}
}

var _ portsrepo.ClosureStepRepository = (*PgxClosureStepRepository)(nil)

func (r *PgxClosureStepRepository) InsertStepsIgnoreExisting(ctx context.Context, yearID int64, stepNames []string) (int, error) {
	if len(stepNames) == 0 {
		return 0, nil
	}
	builder := psql.Insert("financial_closures").Columns("financial_year_id", "step_name", "status")
	for _, name := range stepNames {
		builder = builder.Values(yearID, name, string(domain.StepPending))
	}
	query, args, err := builder.Suffix("ON CONFLICT (financial_year_id, step_name) DO NOTHING").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build closure step insert: %w", err)
	}

	tag, err := r.querier(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, mapError(err, "closure steps of fiscal year", yearID)
	}
	return int(tag.RowsAffected()), nil
}

func (r *PgxClosureStepRepository) ListByYear(ctx context.Context, yearID int64) ([]domain.ClosureStep, error) {
	query, args, err := psql.Select(closureStepColumns...).
		From("financial_closures").
		Where(sq.Eq{"financial_year_id": yearID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build closure step query: %w", err)
	}
	var rows []models.FinancialClosure
	if err := pgxscan.Select(ctx, r.querier(ctx), &rows, query, args...); err != nil {
		return nil, mapError(err, "closure steps of fiscal year", yearID)
	}
	return mapping.ToDomainClosureSteps(rows), nil
}

func (r *PgxClosureStepRepository) CountIncomplete(ctx context.Context, yearID int64) (int, error) {
	query, args, err := psql.Select("COUNT(*)").
		From("financial_closures").
		Where(sq.Eq{"financial_year_id": yearID}).
		Where(sq.NotEq{"status": string(domain.StepCompleted)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build closure step count: %w", err)
	}
	var count int
	if err := r.querier(ctx).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, mapError(err, "closure steps of fiscal year", yearID)
	}
	return count, nil
}

// SetAllStatus updates every step of the year; a year without steps is not an error.
func (r *PgxClosureStepRepository) SetAllStatus(ctx context.Context, yearID int64, status domain.ClosureStepStatus, executedAt *time.Time) error {
	query, args, err := psql.Update("financial_closures").
		Set("status", string(status)).
		Set("executed_at", executedAt).
		Where(sq.Eq{"financial_year_id": yearID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build closure step update: %w", err)
	}
	if _, err := r.querier(ctx).Exec(ctx, query, args...); err != nil {
		return mapError(err, "closure steps of fiscal year", yearID)
	}
	return nil
}

func (r *PgxClosureStepRepository) CompleteStep(ctx context.Context, yearID, stepID int64, executedAt time.Time) (*domain.ClosureStep, error) {
	query, args, err := psql.Update("financial_closures").
		Set("status", string(domain.StepCompleted)).
		Set("executed_at", executedAt).
		Where(sq.Eq{"id": stepID, "financial_year_id": yearID}).
		Suffix("RETURNING id, financial_year_id, step_name, status, executed_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build closure step update: %w", err)
	}
	var row models.FinancialClosure
	if err := pgxscan.Get(ctx, r.querier(ctx), &row, query, args...); err != nil {
		return nil, mapError(err, "closure step", stepID)
	}
	step := mapping.ToDomainClosureStep(row)
	return &step, nil
}
