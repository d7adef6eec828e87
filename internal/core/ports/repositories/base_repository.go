package repositories

import (
	"context"
)

// TransactionManager runs work inside a single database transaction.
// Repositories called with the ctx passed to fn participate in that transaction.
type TransactionManager interface {
	// RunInTx commits when fn returns nil and rolls back otherwise.
	// Calling RunInTx with a ctx that already carries a transaction joins it.
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
