package payroll

import (
	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	minYear = 1900
	maxYear = 9999
)

var (
	// numeric(12,2) holds at most ten integer digits.
	maxAmount     = decimal.New(1, 10)
	maxTaxPercent = decimal.NewFromInt(100)
)

func validateEmployeeID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return payrollerrors.ErrInvalidEmployeeID.Withf("invalid employee id: %q", id)
	}
	return nil
}

func validateSalaryID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return payrollerrors.ErrInvalidSalaryID.Withf("invalid salary id: %q", id)
	}
	return nil
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return payrollerrors.ErrInvalidPeriod.Withf("month must be between 1 and 12, got %d", month)
	}
	if year < minYear || year > maxYear {
		return payrollerrors.ErrInvalidPeriod.Withf("year must be between %d and %d, got %d", minYear, maxYear, year)
	}
	return nil
}

func validateAmount(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return payrollerrors.ErrInvalidAmount.Withf("%s cannot be negative", field)
	}
	if !v.Equal(v.Round(moneyScale)) {
		return payrollerrors.ErrInvalidAmount.Withf("%s cannot have more than 2 decimal places", field)
	}
	if v.GreaterThanOrEqual(maxAmount) {
		return payrollerrors.ErrInvalidAmount.Withf("%s exceeds the maximum supported amount", field)
	}
	return nil
}

func validateTaxPercent(v decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(maxTaxPercent) || !v.Equal(v.Round(moneyScale)) {
		return payrollerrors.ErrInvalidTaxPercent
	}
	return nil
}

// validateSalaryRequest checks req and returns the tax percent to apply.
func validateSalaryRequest(req SalaryRequest) (decimal.Decimal, error) {
	if err := validatePeriod(req.Month, req.Year); err != nil {
		return decimal.Zero, err
	}
	if req.BasicSalary == nil {
		return decimal.Zero, payrollerrors.ErrInvalidAmount.Withf("basic_salary is required")
	}
	if err := validateAmount("basic_salary", *req.BasicSalary); err != nil {
		return decimal.Zero, err
	}
	if err := validateAmount("allowances", req.Allowances); err != nil {
		return decimal.Zero, err
	}
	if err := validateAmount("deductions", req.Deductions); err != nil {
		return decimal.Zero, err
	}
	if err := validateAmount("gross_salary", req.BasicSalary.Add(req.Allowances)); err != nil {
		return decimal.Zero, err
	}

	if req.TaxPercent == nil {
		return TaxPercentFor(*req.BasicSalary), nil
	}
	if err := validateTaxPercent(*req.TaxPercent); err != nil {
		return decimal.Zero, err
	}
	return *req.TaxPercent, nil
}
