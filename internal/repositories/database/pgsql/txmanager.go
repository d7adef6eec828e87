package pgsql

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_closing_app/internal/apperrors"
	portsrepo "github.com/SscSPs/ledger_closing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// TxManager runs functions in a transaction carried through the context.
// A RunInTx call made while ctx already carries a transaction joins it.
type TxManager struct {
	db   DB
	opts pgx.TxOptions
}

// NewTxManager creates a TxManager opening transactions at the given isolation level.
func NewTxManager(db DB, isoLevel pgx.TxIsoLevel) *TxManager {
	return &TxManager{db: db, opts: pgx.TxOptions{IsoLevel: isoLevel}}
}

var _ portsrepo.TransactionManager = (*TxManager)(nil)

// RunInTx commits when fn returns nil and rolls back on error or panic.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, m.opts)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}

	// Rollback must still reach the server when the request context is already cancelled.
	rollbackCtx := context.WithoutCancel(ctx)
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(rollbackCtx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(rollbackCtx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Default().Error("Failed to rollback transaction",
				slog.String("error", rbErr.Error()),
				slog.String("cause", err.Error()))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", err)
	}
	return nil
}
