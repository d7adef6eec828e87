package pgsql

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/SscSPs/ledger_closing_app/internal/apperrors"
	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_closing_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_closing_app/internal/models"
	"github.com/SscSPs/ledger_closing_app/internal/utils/mapping"
	"github.com/georgysavva/scany/v2/pgxscan"
)

var fiscalYearColumns = []string{
	"id", "year_name", "start_date", "end_date",
	"revenues_account_id", "expenses_account_id", "retained_earnings_account_id",
	"legal_reserve_account_id", "income_tax_account_id", "solidarity_tax_account_id",
	"income_tax_percent", "solidarity_tax_percent", "legal_reserve_percent",
	"closing_entry_id", "is_closed", "closed_at", "closed_by_user_id",
}

type PgxFiscalYearRepository struct {
	BaseRepository
}

func newPgxFiscalYearRepository(base BaseRepository) *PgxFiscalYearRepository {
	return &PgxFiscalYearRepository{BaseRepository: base}
}

var _ portsrepo.FiscalYearRepository = (*PgxFiscalYearRepository)(nil)

func (r *PgxFiscalYearRepository) findOne(ctx context.Context, builder sq.SelectBuilder, id any) (*domain.FiscalYear, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build fiscal year query: %w", err)
	}
	var row models.FinancialYear
	if err := pgxscan.Get(ctx, r.querier(ctx), &row, query, args...); err != nil {
		return nil, mapError(err, "fiscal year", id)
	}
	year := mapping.ToDomainFiscalYear(row)
	return &year, nil
}

func (r *PgxFiscalYearRepository) FindByID(ctx context.Context, yearID int64) (*domain.FiscalYear, error) {
	return r.findOne(ctx, psql.Select(fiscalYearColumns...).
		From("financial_years").
		Where(sq.Eq{"id": yearID}), yearID)
}

// FindByIDForUpdate only holds the lock when ctx carries a transaction.
func (r *PgxFiscalYearRepository) FindByIDForUpdate(ctx context.Context, yearID int64) (*domain.FiscalYear, error) {
	return r.findOne(ctx, psql.Select(fiscalYearColumns...).
		From("financial_years").
		Where(sq.Eq{"id": yearID}).
		Suffix("FOR UPDATE"), yearID)
}

func (r *PgxFiscalYearRepository) FindClosedContaining(ctx context.Context, date time.Time) (*domain.FiscalYear, error) {
	return r.findOne(ctx, psql.Select(fiscalYearColumns...).
		From("financial_years").
		Where(sq.Eq{"is_closed": true}).
		Where(sq.LtOrEq{"start_date": date}).
		Where(sq.GtOrEq{"end_date": date}).
		OrderBy("start_date").
		Limit(1), date.Format("2006-01-02"))
}

func (r *PgxFiscalYearRepository) ExistsOverlapping(ctx context.Context, dateRange domain.DateRange) (bool, error) {
	query, args, err := psql.Select("1").
		From("financial_years").
		Where(sq.LtOrEq{"start_date": dateRange.To}).
		Where(sq.GtOrEq{"end_date": dateRange.From}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build overlap query: %w", err)
	}
	var exists bool
	if err := r.querier(ctx).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, mapError(err, "fiscal year from", dateRange.From.Format("2006-01-02"))
	}
	return exists, nil
}

func (r *PgxFiscalYearRepository) Create(ctx context.Context, year domain.FiscalYear) (int64, error) {
	query, args, err := psql.Insert("financial_years").
		Columns(
			"year_name", "start_date", "end_date",
			"revenues_account_id", "expenses_account_id", "retained_earnings_account_id",
			"legal_reserve_account_id", "income_tax_account_id", "solidarity_tax_account_id",
			"income_tax_percent", "solidarity_tax_percent", "legal_reserve_percent",
		).
		Values(
			year.Name, year.StartDate, year.EndDate,
			year.RevenuesAccountID, year.ExpensesAccountID, year.RetainedEarningsAccountID,
			year.LegalReserveAccountID, year.IncomeTaxAccountID, year.SolidarityTaxAccountID,
			year.IncomeTaxPercent, year.SolidarityTaxPercent, year.LegalReservePercent,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build fiscal year insert: %w", err)
	}

	var id int64
	if err := r.querier(ctx).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, mapError(err, "fiscal year", year.Name)
	}
	return id, nil
}

func (r *PgxFiscalYearRepository) MarkClosed(ctx context.Context, yearID, closingEntryID, actorID int64, closedAt time.Time) error {
	return r.update(ctx, yearID, map[string]any{
		"is_closed":         true,
		"closing_entry_id":  closingEntryID,
		"closed_at":         closedAt,
		"closed_by_user_id": actorID,
	})
}

func (r *PgxFiscalYearRepository) MarkOpen(ctx context.Context, yearID int64) error {
	return r.update(ctx, yearID, map[string]any{
		"is_closed":         false,
		"closing_entry_id":  nil,
		"closed_at":         nil,
		"closed_by_user_id": nil,
	})
}

func (r *PgxFiscalYearRepository) update(ctx context.Context, yearID int64, set map[string]any) error {
	query, args, err := psql.Update("financial_years").
		SetMap(set).
		Where(sq.Eq{"id": yearID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build fiscal year update: %w", err)
	}
	tag, err := r.querier(ctx).Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, "fiscal year", yearID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("fiscal year %d: %w", yearID, apperrors.ErrNotFound)
	}
	return nil
}
