package pgsql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_closing_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_closing_app/internal/models"
	"github.com/SscSPs/ledger_closing_app/internal/utils/mapping"
	"github.com/georgysavva/scany/v2/pgxscan"
)

var accountColumns = []string{"id", "acc_code", "account_name", "parent_account_id", "account_type_id", "is_final", "is_active"}

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(base BaseRepository) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: base}
}

var _ portsrepo.AccountReader = (*PgxAccountRepository)(nil)

// FindAccountsByIDs loads the accounts in one query. Unknown IDs are simply absent.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	result := make(map[int64]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return result, nil
	}

	query, args, err := psql.Select(accountColumns...).
		From("accounts").
		Where(sq.Eq{"id": accountIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build account query: %w", err)
	}

	var rows []models.Account
	if err := pgxscan.Select(ctx, r.querier(ctx), &rows, query, args...); err != nil {
		return nil, mapError(err, "accounts", accountIDs)
	}
	for _, row := range rows {
		result[row.ID] = mapping.ToDomainAccount(row)
	}
	return result, nil
}
