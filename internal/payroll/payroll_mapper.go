package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func periodKey(month, year int) string {
	return fmt.Sprintf("%d-%02d", year, month)
}

func mapToResponse(record SalaryRecord) SalaryResponse {
	resp := SalaryResponse{
		ID:          record.ID.String(),
		EmployeeID:  record.EmployeeID.String(),
		Month:       record.Month,
		Year:        record.Year,
		BasicSalary: record.BasicSalary.StringFixed(moneyScale),
		Allowances:  record.Allowances.StringFixed(moneyScale),
		Deductions:  record.Deductions.StringFixed(moneyScale),
		TaxPercent:  record.TaxPercent.StringFixed(moneyScale),
		GrossSalary: record.GrossSalary.StringFixed(moneyScale),
		TaxAmount:   record.TaxAmount.StringFixed(moneyScale),
		NetSalary:   record.NetSalary.StringFixed(moneyScale),
		Processed:   record.Processed,
		CreatedAt:   record.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   record.UpdatedAt.Format(time.RFC3339),
	}
	if record.Employee != nil {
		resp.EmployeeCode = record.Employee.EmployeeCode
		resp.EmployeeName = record.Employee.FullName()
	}
	return resp
}

func mapToListResponse(records []SalaryRecord) []SalaryResponse {
	resp := make([]SalaryResponse, len(records))
	for i, record := range records {
		resp[i] = mapToResponse(record)
	}
	return resp
}

func summarizePeriod(month, year int, records []SalaryRecord) PeriodSummaryResponse {
	var gross, tax, deductions, net decimal.Decimal
	processed := 0
	for _, r := range records {
		gross = gross.Add(r.GrossSalary)
		tax = tax.Add(r.TaxAmount)
		deductions = deductions.Add(r.Deductions)
		net = net.Add(r.NetSalary)
		if r.Processed {
			processed++
		}
	}

	average := decimal.Zero
	if len(records) > 0 {
		average = net.Div(decimal.NewFromInt(int64(len(records)))).Round(moneyScale)
	}

	return PeriodSummaryResponse{
		Month:           month,
		Year:            year,
		Headcount:       len(records),
		ProcessedCount:  processed,
		TotalGross:      gross.StringFixed(moneyScale),
		TotalTax:        tax.StringFixed(moneyScale),
		TotalDeductions: deductions.StringFixed(moneyScale),
		TotalNet:        net.StringFixed(moneyScale),
		AverageNet:      average.StringFixed(moneyScale),
	}
}
