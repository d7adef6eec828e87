package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_closing_app/internal/apperrors"
	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_closing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_closing_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_closing_app/internal/utils/accounting"
)

type closingEntryGenerator struct {
	BaseService
	ledger         portssvc.LedgerWriterSvc
	journalRepo    portsrepo.JournalWriter
	fiscalYearRepo portsrepo.FiscalYearRepository
	txManager      portsrepo.TransactionManager
	places         int32
}

// NewClosingEntryGenerator creates the generator of closing entries.
func NewClosingEntryGenerator(repos portsrepo.RepositoryProvider, ledger portssvc.LedgerWriterSvc, places int32) portssvc.ClosingEntryGeneratorSvc {
	return &closingEntryGenerator{
		ledger:         ledger,
		journalRepo:    repos.JournalRepo,
		fiscalYearRepo: repos.FiscalYearRepo,
		txManager:      repos.TxManager,
		places:         places,
	}
}

var _ portssvc.ClosingEntryGeneratorSvc = (*closingEntryGenerator)(nil)

// Generate runs as one transaction, or joins the caller's: delete the prior closing
// entry (lines first), post the new entry and stamp the fiscal year. Any failure
// leaves the year as it was.
func (g *closingEntryGenerator) Generate(ctx context.Context, year domain.FiscalYear, figures domain.ClosingFigures, actorID int64, closedAt time.Time) (int64, error) {
	entry, lines, err := accounting.BuildClosingEntry(year, figures, g.places)
	if err != nil {
		g.LogError(ctx, err, "Closing entry does not balance", slog.Int64("fiscal_year_id", year.ID))
		return 0, fmt.Errorf("build closing entry for fiscal year %s: %w", year.Name, err)
	}

	var entryID int64
	err = g.txManager.RunInTx(ctx, func(ctx context.Context) error {
		if year.ClosingEntryID != nil {
			err := g.journalRepo.DeleteEntry(ctx, *year.ClosingEntryID)
			if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("delete previous closing entry %d: %w", *year.ClosingEntryID, err)
			}
		}

		posted, err := g.ledger.PostEntry(ctx, entry, lines, actorID)
		if err != nil {
			return err
		}
		entryID = posted.ID

		return g.fiscalYearRepo.MarkClosed(ctx, year.ID, entryID, actorID, closedAt)
	})
	if err != nil {
		return 0, err
	}

	g.LogInfo(ctx, "Closing entry generated",
		slog.Int64("fiscal_year_id", year.ID),
		slog.Int64("entry_id", entryID),
		slog.Int("lines", len(lines)))
	return entryID, nil
}
