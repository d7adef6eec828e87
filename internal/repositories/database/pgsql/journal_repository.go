package pgsql

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/SscSPs/ledger_closing_app/internal/apperrors"
	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_closing_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_closing_app/internal/models"
	"github.com/SscSPs/ledger_closing_app/internal/utils/mapping"
	"github.com/georgysavva/scany/v2/pgxscan"
)

var (
	journalEntryColumns = []string{"id", "entry_number", "entry_date", "description", "total_debit", "total_credit", "status", "created_by", "created_at"}
	journalLineColumns  = []string{"id", "journal_entry_id", "account_id", "debit", "credit", "notes", "source_document"}

	likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entries and their lines.
func newPgxJournalRepository(base BaseRepository) *PgxJournalRepository {
	return &PgxJournalRepository{BaseRepository: base}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// FindEntryByID loads the header and its lines.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	q := r.querier(ctx)

	query, args, err := psql.Select(journalEntryColumns...).
		From("journal_entries").
		Where(sq.Eq{"id": entryID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build journal entry query: %w", err)
	}
	var header models.JournalEntry
	if err := pgxscan.Get(ctx, q, &header, query, args...); err != nil {
		return nil, mapError(err, "journal entry", entryID)
	}

	query, args, err = psql.Select(journalLineColumns...).
		From("journal_entry_lines").
		Where(sq.Eq{"journal_entry_id": entryID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build journal line query: %w", err)
	}
	var lines []models.JournalEntryLine
	if err := pgxscan.Select(ctx, q, &lines, query, args...); err != nil {
		return nil, mapError(err, "journal entry lines", entryID)
	}

	entry := mapping.ToDomainJournalEntry(header)
	entry.Lines = mapping.ToDomainJournalEntryLines(lines)
	return &entry, nil
}

// SumByAccountPrefixAndDateRange aggregates lines by account code prefix over the
// entry date range. With approvedOnly false every entry except cancelled ones counts.
func (r *PgxJournalRepository) SumByAccountPrefixAndDateRange(ctx context.Context, prefix string, dateRange domain.DateRange, approvedOnly bool) (domain.LineTotals, error) {
	builder := psql.Select(
		"COALESCE(SUM(l.debit), 0) AS total_debit",
		"COALESCE(SUM(l.credit), 0) AS total_credit",
	).
		From("journal_entry_lines l").
		Join("journal_entries e ON e.id = l.journal_entry_id").
		Join("accounts a ON a.id = l.account_id").
		Where(sq.Like{"a.acc_code": likeEscaper.Replace(prefix) + "%"}).
		Where(sq.GtOrEq{"e.entry_date": dateRange.From}).
		Where(sq.LtOrEq{"e.entry_date": dateRange.To})
	if approvedOnly {
		builder = builder.Where(sq.Eq{"e.status": string(domain.Approved)})
	} else {
		builder = builder.Where(sq.NotEq{"e.status": string(domain.Cancelled)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return domain.LineTotals{}, fmt.Errorf("build sum query: %w", err)
	}

	var row models.LineTotals
	if err := pgxscan.Get(ctx, r.querier(ctx), &row, query, args...); err != nil {
		return domain.LineTotals{}, mapError(err, "account prefix", prefix)
	}
	return domain.LineTotals{Debit: row.TotalDebit, Credit: row.TotalCredit}, nil
}

// CountUnapprovedInRange counts entries in the range that are neither approved nor closing entries.
func (r *PgxJournalRepository) CountUnapprovedInRange(ctx context.Context, dateRange domain.DateRange) (int, error) {
	query, args, err := psql.Select("COUNT(*)").
		From("journal_entries").
		Where(sq.GtOrEq{"entry_date": dateRange.From}).
		Where(sq.LtOrEq{"entry_date": dateRange.To}).
		Where(sq.NotEq{"status": []string{string(domain.Approved), string(domain.Closing)}}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := r.querier(ctx).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, mapError(err, "journal entries from", dateRange.From.Format("2006-01-02"))
	}
	return count, nil
}

// InsertEntry writes the header and then each line, joining the caller's transaction if any.
func (r *PgxJournalRepository) InsertEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine) (int64, error) {
	m := mapping.ToModelJournalEntry(entry)
	var entryID int64

	err := r.Tx.RunInTx(ctx, func(ctx context.Context) error {
		q := r.querier(ctx)

		query, args, err := psql.Insert("journal_entries").
			Columns("entry_number", "entry_date", "description", "total_debit", "total_credit", "status", "created_by", "created_at").
			Values(m.EntryNumber, m.EntryDate, m.Description, m.TotalDebit, m.TotalCredit, m.Status, m.CreatedBy, m.CreatedAt).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("build journal entry insert: %w", err)
		}
		if err := q.QueryRow(ctx, query, args...).Scan(&entryID); err != nil {
			return mapError(err, "journal entry", m.EntryNumber)
		}

		for i, l := range lines {
			query, args, err := psql.Insert("journal_entry_lines").
				Columns("journal_entry_id", "account_id", "debit", "credit", "notes", "source_document").
				Values(entryID, l.AccountID, l.Debit, l.Credit, l.Notes, l.SourceDocument).
				ToSql()
			if err != nil {
				return fmt.Errorf("build journal line insert: %w", err)
			}
			if _, err := q.Exec(ctx, query, args...); err != nil {
				return mapError(err, fmt.Sprintf("line %d of journal entry", i+1), m.EntryNumber)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return entryID, nil
}

func (r *PgxJournalRepository) UpdateEntryStatus(ctx context.Context, entryID int64, status domain.JournalStatus) error {
	query, args, err := psql.Update("journal_entries").
		Set("status", string(status)).
		Where(sq.Eq{"id": entryID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build status update: %w", err)
	}

	tag, err := r.querier(ctx).Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, "journal entry", entryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("journal entry %d: %w", entryID, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteEntry deletes the lines first, then the header, in one transaction.
func (r *PgxJournalRepository) DeleteEntry(ctx context.Context, entryID int64) error {
	return r.Tx.RunInTx(ctx, func(ctx context.Context) error {
		q := r.querier(ctx)

		query, args, err := psql.Delete("journal_entry_lines").Where(sq.Eq{"journal_entry_id": entryID}).ToSql()
		if err != nil {
			return fmt.Errorf("build line delete: %w", err)
		}
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return mapError(err, "journal entry lines", entryID)
		}

		query, args, err = psql.Delete("journal_entries").Where(sq.Eq{"id": entryID}).ToSql()
		if err != nil {
			return fmt.Errorf("build entry delete: %w", err)
		}
		tag, err := q.Exec(ctx, query, args...)
		if err != nil {
			return mapError(err, "journal entry", entryID)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("journal entry %d: %w", entryID, apperrors.ErrNotFound)
		}
		return nil
	})
}
