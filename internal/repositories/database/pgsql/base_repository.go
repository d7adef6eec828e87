package pgsql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB DB
	Tx *TxManager
}

// querier returns the ambient transaction or the pool.
func (r *BaseRepository) querier(ctx context.Context) Querier {
	return QuerierFromCtx(ctx, r.DB)
}
