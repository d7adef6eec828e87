package services

import (
	portsrepo "github.com/SscSPs/ledger_closing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_closing_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_closing_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Audit first: every state-changing service records through it.
	container.Audit = NewAuditService(repos.AuditLogRepo)

	container.Ledger = NewLedgerService(repos, container.Audit, cfg.CurrencyPlaces)
	container.Checklist = NewClosureChecklistService(repos, container.Audit)
	container.Calculator = NewClosingCalculatorService(
		container.Ledger,
		cfg.RevenueAccountPrefix,
		cfg.ExpenseAccountPrefix,
		cfg.CurrencyPlaces,
	)
	container.Generator = NewClosingEntryGenerator(repos, container.Ledger, cfg.CurrencyPlaces)

	container.FiscalYear = NewFiscalYearService(
		repos,
		FiscalYearDeps{
			Checklist:  container.Checklist,
			Calculator: container.Calculator,
			Generator:  container.Generator,
			Auditor:    container.Audit,
		},
		WithChecklistTemplate(cfg.ClosureChecklistSteps),
	)

	return container
}
