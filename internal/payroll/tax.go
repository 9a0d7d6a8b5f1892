package payroll

import "github.com/shopspring/decimal"

// taxBracket maps an annual salary ceiling (inclusive) to a flat percent.
type taxBracket struct {
	annualUpTo decimal.Decimal
	percent    decimal.Decimal
}

var (
	monthsPerYear = decimal.NewFromInt(12)

	taxBrackets = []taxBracket{
		{annualUpTo: decimal.NewFromInt(250_000), percent: decimal.Zero},
		{annualUpTo: decimal.NewFromInt(500_000), percent: decimal.NewFromInt(5)},
		{annualUpTo: decimal.NewFromInt(1_000_000), percent: decimal.NewFromInt(20)},
	}

	topBracketPercent = decimal.NewFromInt(30)
)

// TaxPercentFor returns the flat tax percent for a monthly basic salary,
// bracketed on basic x 12.
func TaxPercentFor(basicMonthly decimal.Decimal) decimal.Decimal {
	annual := basicMonthly.Mul(monthsPerYear)
	for _, b := range taxBrackets {
		if annual.LessThanOrEqual(b.annualUpTo) {
			return b.percent
		}
	}
	return topBracketPercent
}
