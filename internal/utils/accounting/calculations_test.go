package accounting_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	"github.com/SscSPs/ledger_closing_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(accountID int64, debit, credit string) domain.JournalEntryLine {
	return domain.JournalEntryLine{
		AccountID: accountID,
		Debit:     decimal.RequireFromString(debit),
		Credit:    decimal.RequireFromString(credit),
	}
}

func TestIsBalanced(t *testing.T) {
	tests := []struct {
		name   string
		debit  string
		credit string
		want   bool
	}{
		{"equal", "100.00", "100.00", true},
		{"one cent residue", "100.01", "100.00", true},
		{"one cent residue other way", "99.99", "100.00", true},
		{"two cents off", "100.02", "100.00", false},
		{"large gap", "150", "100", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.IsBalanced(decimal.RequireFromString(tt.debit), decimal.RequireFromString(tt.credit), accounting.DefaultPlaces)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateEntryBalance(t *testing.T) {
	tests := []struct {
		name    string
		lines   []domain.JournalEntryLine
		wantErr error
	}{
		{
			name:  "balanced entry",
			lines: []domain.JournalEntryLine{line(1, "250", "0"), line(2, "0", "200"), line(3, "0", "50")},
		},
		{
			name:    "unbalanced entry",
			lines:   []domain.JournalEntryLine{line(1, "250", "0"), line(2, "0", "200")},
			wantErr: domain.ErrEntryUnbalanced,
		},
		{
			name:    "line with both sides",
			lines:   []domain.JournalEntryLine{line(1, "10", "10"), line(2, "0", "0")},
			wantErr: domain.ErrInvalidLine,
		},
		{
			name:    "line with neither side",
			lines:   []domain.JournalEntryLine{line(1, "0", "0"), line(2, "0", "5")},
			wantErr: domain.ErrInvalidLine,
		},
		{
			name:    "negative amount",
			lines:   []domain.JournalEntryLine{line(1, "-5", "0"), line(2, "0", "-5")},
			wantErr: domain.ErrInvalidLine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			debit, credit, err := accounting.ValidateEntryBalance("JE-1", tt.lines, accounting.DefaultPlaces)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, debit.Equal(credit))
		})
	}
}

func TestValidateEntryBalance_ReportsTotals(t *testing.T) {
	_, _, err := accounting.ValidateEntryBalance("JE-9", []domain.JournalEntryLine{line(1, "100", "0"), line(2, "0", "90")}, accounting.DefaultPlaces)

	var unbalanced *domain.UnbalancedEntryError
	require.True(t, errors.As(err, &unbalanced))
	assert.Equal(t, "JE-9", unbalanced.EntryNumber)
	assert.True(t, unbalanced.TotalDebit.Equal(decimal.NewFromInt(100)))
	assert.True(t, unbalanced.TotalCredit.Equal(decimal.NewFromInt(90)))
	assert.Contains(t, err.Error(), "difference 10.00")
}

func TestTolerance(t *testing.T) {
	assert.Equal(t, "0.01", accounting.Tolerance(2).String())
	assert.Equal(t, "0.001", accounting.Tolerance(3).String())
}
