package payroll

import "github.com/shopspring/decimal"

const moneyScale = 2

var hundred = decimal.NewFromInt(100)

// Breakdown holds the values derived from a salary's inputs.
type Breakdown struct {
	Gross     decimal.Decimal
	TaxAmount decimal.Decimal
	Net       decimal.Decimal
}

// ComputeSalary derives gross, tax and net. Tax is rounded half-up to two
// places; inputs are expected to be validated and non-negative.
func ComputeSalary(basic, allowances, deductions, taxPercent decimal.Decimal) Breakdown {
	gross := basic.Add(allowances)
	// Round is half away from zero, which is half-up for non-negative values.
	taxAmount := gross.Mul(taxPercent).Div(hundred).Round(moneyScale)
	net := gross.Sub(taxAmount).Sub(deductions)

	return Breakdown{
		Gross:     gross,
		TaxAmount: taxAmount,
		Net:       net,
	}
}
