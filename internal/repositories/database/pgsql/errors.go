package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/ledger_closing_app/internal/apperrors"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// mapError converts pgx errors to apperrors sentinels. Context errors pass through.
func mapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("%s %v: %w", entity, id, apperrors.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %v: %w: %s", entity, id, apperrors.ErrDuplicate, pgErr.ConstraintName)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %v: %w: %s", entity, id, apperrors.ErrNotFound, pgErr.ConstraintName)
		case "23514": // check_violation
			return fmt.Errorf("%s %v: %w: %s", entity, id, apperrors.ErrValidation, pgErr.ConstraintName)
		case "22001": // string_data_right_truncation
			return fmt.Errorf("%s %v: %w: %s", entity, id, apperrors.ErrValidation, pgErr.Message)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, id, err)
}
