package pgsql

import (
	portsrepo "github.com/SscSPs/ledger_closing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// NewRepositoryProvider wires every repository to db. All of them share one
// TxManager so a transaction opened by a service reaches each repository call.
func NewRepositoryProvider(db DB, isoLevel pgx.TxIsoLevel) portsrepo.RepositoryProvider {
	txManager := NewTxManager(db, isoLevel)
	base := BaseRepository{DB: db, Tx: txManager}

	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(base),
		JournalRepo:     newPgxJournalRepository(base),
		FiscalYearRepo:  newPgxFiscalYearRepository(base),
		ClosureStepRepo: newPgxClosureStepRepository(base),
		AuditLogRepo:    newPgxAuditLogRepository(base),
		TxManager:       txManager,
	}
}
