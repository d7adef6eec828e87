package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_closing_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_closing_app/internal/utils/accounting"
)

type closingCalculatorService struct {
	BaseService
	ledger        portssvc.LedgerReaderSvc
	revenuePrefix string
	expensePrefix string
	places        int32
}

// NewClosingCalculatorService reads revenue and expense balances and runs the closing waterfall.
func NewClosingCalculatorService(ledger portssvc.LedgerReaderSvc, revenuePrefix, expensePrefix string, places int32) portssvc.ClosingCalculatorSvc {
	return &closingCalculatorService{
		ledger:        ledger,
		revenuePrefix: revenuePrefix,
		expensePrefix: expensePrefix,
		places:        places,
	}
}

var _ portssvc.ClosingCalculatorSvc = (*closingCalculatorService)(nil)

// Calculate has no side effects. Only approved entries dated within the year count.
// The two sums run one after the other since ctx may carry a transaction.
func (s *closingCalculatorService) Calculate(ctx context.Context, year domain.FiscalYear) (domain.ClosingFigures, error) {
	revenue, err := s.ledger.SumByAccountPrefixAndDateRange(ctx, s.revenuePrefix, year.Range(), true)
	if err != nil {
		return domain.ClosingFigures{}, fmt.Errorf("revenue balance of fiscal year %s: %w", year.Name, err)
	}
	expenses, err := s.ledger.SumByAccountPrefixAndDateRange(ctx, s.expensePrefix, year.Range(), true)
	if err != nil {
		return domain.ClosingFigures{}, fmt.Errorf("expense balance of fiscal year %s: %w", year.Name, err)
	}

	figures := accounting.CalculateClosingFigures(revenue, expenses, year.Rates(), s.places)
	s.LogDebug(ctx, "Closing figures calculated",
		slog.Int64("fiscal_year_id", year.ID),
		slog.String("net_profit", figures.NetProfit.String()),
		slog.String("final_profit", figures.FinalProfit.String()))
	return figures, nil
}
