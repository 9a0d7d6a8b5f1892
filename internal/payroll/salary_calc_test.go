package payroll_test

import (
	"testing"

	"go-payroll/internal/payroll"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTaxPercentFor(t *testing.T) {
	tests := []struct {
		name  string
		basic string
		want  string
	}{
		{name: "zero salary", basic: "0", want: "0"},
		{name: "below first ceiling", basic: "20000", want: "0"},
		{name: "annual 249999.96", basic: "20833.33", want: "0"},
		{name: "annual just under 250000", basic: "20833.3333333333", want: "0"},
		{name: "just above 250000", basic: "20833.34", want: "5"},
		{name: "annual just under 500000", basic: "41666.6666666666", want: "5"},
		{name: "just above 500000", basic: "41666.67", want: "20"},
		{name: "scenario one", basic: "50000", want: "20"},
		{name: "annual just under 1000000", basic: "83333.3333333333", want: "20"},
		{name: "just above 1000000", basic: "83333.34", want: "30"},
		{name: "top bracket", basic: "500000", want: "30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := payroll.TaxPercentFor(dec(tt.basic))
			assert.True(t, got.Equal(dec(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestComputeSalary_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		basic      string
		allowances string
		deductions string
		wantGross  string
		wantTax    string
		wantNet    string
	}{
		{
			name:  "scenario one: 20 percent bracket",
			basic: "50000", allowances: "22500", deductions: "6275",
			wantGross: "72500", wantTax: "14500.00", wantNet: "51725.00",
		},
		{
			name:  "scenario two: zero bracket",
			basic: "20000", allowances: "9500", deductions: "3850",
			wantGross: "29500", wantTax: "0", wantNet: "25650.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			basic := dec(tt.basic)
			b := payroll.ComputeSalary(basic, dec(tt.allowances), dec(tt.deductions), payroll.TaxPercentFor(basic))

			assert.Equal(t, dec(tt.wantGross).StringFixed(2), b.Gross.StringFixed(2))
			assert.Equal(t, dec(tt.wantTax).StringFixed(2), b.TaxAmount.StringFixed(2))
			assert.Equal(t, dec(tt.wantNet).StringFixed(2), b.Net.StringFixed(2))
		})
	}
}

func TestComputeSalary_RoundsTaxHalfUp(t *testing.T) {
	// 10.10 * 5% = 0.505 -> 0.51
	b := payroll.ComputeSalary(dec("10.10"), decimal.Zero, decimal.Zero, dec("5"))
	assert.Equal(t, "0.51", b.TaxAmount.StringFixed(2))
	assert.Equal(t, "9.59", b.Net.StringFixed(2))

	// 100.05 * 5% = 5.0025 -> 5.00
	b = payroll.ComputeSalary(dec("100.05"), decimal.Zero, decimal.Zero, dec("5"))
	assert.Equal(t, "5.00", b.TaxAmount.StringFixed(2))
}

func TestComputeSalary_NegativeNetAllowed(t *testing.T) {
	b := payroll.ComputeSalary(dec("1000"), decimal.Zero, dec("1500"), dec("10"))
	assert.Equal(t, "-600.00", b.Net.StringFixed(2))
}

func TestSalaryRecord_RecomputeIsIdempotent(t *testing.T) {
	record := payroll.SalaryRecord{
		BasicSalary: dec("50000"),
		Allowances:  dec("22500"),
		Deductions:  dec("6275"),
		TaxPercent:  dec("20"),
	}

	record.Recompute()
	first := []string{record.GrossSalary.String(), record.TaxAmount.String(), record.NetSalary.String()}
	record.Recompute()
	second := []string{record.GrossSalary.String(), record.TaxAmount.String(), record.NetSalary.String()}

	assert.Equal(t, first, second)
	assert.Equal(t, "51725", record.NetSalary.String())

	record.Allowances = dec("0")
	record.Recompute()
	assert.Equal(t, "50000", record.GrossSalary.String())
	assert.Equal(t, "10000", record.TaxAmount.String())
	assert.Equal(t, "33725", record.NetSalary.String())
}
