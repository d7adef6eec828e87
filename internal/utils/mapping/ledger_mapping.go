package mapping

import (
	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	"github.com/SscSPs/ledger_closing_app/internal/models"
)

// ToDomainAccount converts a model Account to a domain Account.
// An unknown account_type_id leaves the classification empty.
func ToDomainAccount(m models.Account) domain.Account {
	classification, _ := domain.ClassificationFromTypeID(m.AccountTypeID)
	acc := domain.Account{
		ID:              m.ID,
		Code:            m.AccCode,
		Name:            m.AccountName,
		ParentAccountID: m.ParentAccountID,
		Classification:  classification,
		IsFinal:         m.IsFinal,
		IsActive:        m.IsActive,
	}
	if classification != "" {
		acc.Side = classification.NormalSide()
	}
	return acc
}

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		ID:          d.ID,
		EntryNumber: d.EntryNumber,
		EntryDate:   d.EntryDate,
		Description: d.Description,
		TotalDebit:  d.TotalDebit,
		TotalCredit: d.TotalCredit,
		Status:      string(d.Status),
		CreatedBy:   d.CreatedBy,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		ID:          m.ID,
		EntryNumber: m.EntryNumber,
		EntryDate:   m.EntryDate,
		Description: m.Description,
		TotalDebit:  m.TotalDebit,
		TotalCredit: m.TotalCredit,
		Status:      domain.JournalStatus(m.Status),
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainJournalEntryLines converts model lines to domain lines
func ToDomainJournalEntryLines(ms []models.JournalEntryLine) []domain.JournalEntryLine {
	lines := make([]domain.JournalEntryLine, len(ms))
	for i, m := range ms {
		lines[i] = domain.JournalEntryLine{
			ID:             m.ID,
			JournalEntryID: m.JournalEntryID,
			AccountID:      m.AccountID,
			Debit:          m.Debit,
			Credit:         m.Credit,
			Notes:          m.Notes,
			SourceDocument: m.SourceDocument,
		}
	}
	return lines
}

// ToDomainFiscalYear converts a financial_years row to a domain FiscalYear
func ToDomainFiscalYear(m models.FinancialYear) domain.FiscalYear {
	return domain.FiscalYear{
		ID:                        m.ID,
		Name:                      m.YearName,
		StartDate:                 m.StartDate,
		EndDate:                   m.EndDate,
		IsClosed:                  m.IsClosed,
		RevenuesAccountID:         m.RevenuesAccountID,
		ExpensesAccountID:         m.ExpensesAccountID,
		RetainedEarningsAccountID: m.RetainedEarningsAccountID,
		LegalReserveAccountID:     m.LegalReserveAccountID,
		IncomeTaxAccountID:        m.IncomeTaxAccountID,
		SolidarityTaxAccountID:    m.SolidarityTaxAccountID,
		IncomeTaxPercent:          m.IncomeTaxPercent,
		SolidarityTaxPercent:      m.SolidarityTaxPercent,
		LegalReservePercent:       m.LegalReservePercent,
		ClosingEntryID:            m.ClosingEntryID,
		ClosedAt:                  m.ClosedAt,
		ClosedByUserID:            m.ClosedByUserID,
	}
}

// ToDomainClosureSteps converts financial_closures rows to domain steps
func ToDomainClosureSteps(ms []models.FinancialClosure) []domain.ClosureStep {
	steps := make([]domain.ClosureStep, len(ms))
	for i, m := range ms {
		steps[i] = ToDomainClosureStep(m)
	}
	return steps
}

// ToDomainClosureStep converts a single financial_closures row
func ToDomainClosureStep(m models.FinancialClosure) domain.ClosureStep {
	return domain.ClosureStep{
		ID:           m.ID,
		FiscalYearID: m.FinancialYearID,
		StepName:     m.StepName,
		Status:       domain.ClosureStepStatus(m.Status),
		ExecutedAt:   m.ExecutedAt,
	}
}

// ToDomainAuditLogs converts audit_logs rows to domain audit records
func ToDomainAuditLogs(ms []models.AuditLog) []domain.AuditLogEntry {
	entries := make([]domain.AuditLogEntry, len(ms))
	for i, m := range ms {
		entries[i] = domain.AuditLogEntry{
			ID:        m.ID,
			EntryID:   m.EntryID,
			OldStatus: m.OldStatus,
			NewStatus: m.NewStatus,
			Notes:     m.AuditNotes,
			AuditorID: m.AuditorID,
			AuditDate: m.AuditDate,
		}
	}
	return entries
}
