package accounting

import (
	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// percentOf returns base * percent / 100 rounded to places, or zero when base is not positive.
func percentOf(base, percent decimal.Decimal, places int32) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}
	return Round(base.Mul(percent).Div(hundred), places)
}

// CalculateClosingFigures runs the closing waterfall over year balances.
//
// Revenue and expenses are aggregated separately because the two classes have
// opposite normal sides: revenue is credit minus debit, expenses debit minus credit.
// Taxes apply only to a positive net profit and the legal reserve only to a
// positive profit after tax. A negative final profit is a loss carried forward.
func CalculateClosingFigures(revenue, expenses domain.LineTotals, rates domain.ClosingRates, places int32) domain.ClosingFigures {
	totalRevenue := Round(revenue.CreditBalance(), places)
	totalExpenses := Round(expenses.DebitBalance(), places)
	netProfit := totalRevenue.Sub(totalExpenses)

	incomeTax := percentOf(netProfit, rates.IncomeTaxPercent, places)
	solidarityTax := percentOf(netProfit, rates.SolidarityTaxPercent, places)
	profitAfterTax := netProfit.Sub(incomeTax).Sub(solidarityTax)

	legalReserve := percentOf(profitAfterTax, rates.LegalReservePercent, places)
	finalProfit := profitAfterTax.Sub(legalReserve)

	return domain.ClosingFigures{
		TotalRevenue:   totalRevenue,
		TotalExpenses:  totalExpenses,
		NetProfit:      netProfit,
		IncomeTax:      incomeTax,
		SolidarityTax:  solidarityTax,
		ProfitAfterTax: profitAfterTax,
		LegalReserve:   legalReserve,
		FinalProfit:    finalProfit,
	}
}
