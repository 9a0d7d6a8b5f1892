package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrganizationName    = "Employee Payroll System"
	OrganizationAddress = "123 Business Street, City, State - 12345"

	currencyPrefix    = "INR "
	notAvailable      = "N/A"
	payslipFooterNote = "This is a computer-generated payslip and does not require a signature."

	payslipDateLayout     = "02-01-2006"
	payslipDateTimeLayout = "02-01-2006 15:04:05"
)

type PayslipRow struct {
	Label      string
	Value      string
	Emphasized bool
}

type PayslipSection struct {
	Title string
	Rows  []PayslipRow
}

// PayslipDocument is the renderer-independent layout of one payslip.
type PayslipDocument struct {
	OrganizationName    string
	OrganizationAddress string
	Title               string
	Identity            []PayslipRow
	Sections            []PayslipSection
	FooterNote          string
	GeneratedOn         string
}

// BuildPayslipDocument lays out a payslip from the stored amounts of record.
// Nothing is recomputed here.
func BuildPayslipDocument(record SalaryRecord, employee EmployeeProfile, generatedAt time.Time) PayslipDocument {
	department := employee.DepartmentName
	if department == "" {
		department = notAvailable
	}
	joinDate := notAvailable
	if employee.HireDate != nil {
		joinDate = employee.HireDate.Format(payslipDateLayout)
	}

	totalDeductions := record.TaxAmount.Add(record.Deductions)

	return PayslipDocument{
		OrganizationName:    OrganizationName,
		OrganizationAddress: OrganizationAddress,
		Title:               fmt.Sprintf("PAYSLIP — %s %d", time.Month(record.Month), record.Year),
		Identity: []PayslipRow{
			{Label: "Employee ID", Value: employee.Code},
			{Label: "Employee Name", Value: employee.FullName},
			{Label: "Email", Value: employee.Email},
			{Label: "Department", Value: department},
			{Label: "Join Date", Value: joinDate},
		},
		Sections: []PayslipSection{
			{
				Title: "EARNINGS",
				Rows: []PayslipRow{
					{Label: "Basic Salary", Value: FormatMoney(record.BasicSalary)},
					{Label: "Allowances", Value: FormatMoney(record.Allowances)},
					{Label: "Gross Salary", Value: FormatMoney(record.GrossSalary), Emphasized: true},
				},
			},
			{
				Title: "DEDUCTIONS",
				Rows: []PayslipRow{
					{Label: fmt.Sprintf("Tax (%s%%)", record.TaxPercent.String()), Value: FormatMoney(record.TaxAmount)},
					{Label: "Other Deductions", Value: FormatMoney(record.Deductions)},
					{Label: "Total Deductions", Value: FormatMoney(totalDeductions), Emphasized: true},
				},
			},
			{
				Title: "NET SALARY",
				Rows: []PayslipRow{
					{Label: "Net Pay", Value: FormatMoney(record.NetSalary), Emphasized: true},
				},
			},
		},
		FooterNote:  payslipFooterNote,
		GeneratedOn: "Generated on: " + generatedAt.Format(payslipDateTimeLayout),
	}
}

func FormatMoney(amount decimal.Decimal) string {
	return currencyPrefix + amount.StringFixed(moneyScale)
}

func PayslipFilename(employeeCode string, month, year int) string {
	return fmt.Sprintf("payslip_%s_%d_%d.pdf", employeeCode, month, year)
}
