package insight

import (
	"fmt"
	"strings"

	"go-payroll/internal/payroll"

	"github.com/shopspring/decimal"
)

const (
	currency       = "INR "
	historyEntries = 3
)

var monthsPerYear = decimal.NewFromInt(12)

// FormatSalaryData describes the latest record in full and up to three
// earlier periods by net pay. history must be newest first.
func FormatSalaryData(employeeName string, history []payroll.SalaryResponse) string {
	if len(history) == 0 {
		return ""
	}
	latest := history[0]

	var b strings.Builder
	fmt.Fprintf(&b, "Employee: %s\n", employeeName)
	fmt.Fprintf(&b, "Latest Salary Details (%02d/%d):\n", latest.Month, latest.Year)
	fmt.Fprintf(&b, "Basic Salary: %s%s\n", currency, latest.BasicSalary)
	fmt.Fprintf(&b, "Allowances: %s%s\n", currency, latest.Allowances)
	fmt.Fprintf(&b, "Deductions: %s%s\n", currency, latest.Deductions)
	fmt.Fprintf(&b, "Tax Percentage: %s%%\n", latest.TaxPercent)
	fmt.Fprintf(&b, "Gross Salary: %s%s\n", currency, latest.GrossSalary)
	fmt.Fprintf(&b, "Tax Amount: %s%s\n", currency, latest.TaxAmount)
	fmt.Fprintf(&b, "Net Salary: %s%s\n", currency, latest.NetSalary)

	if len(history) > 1 {
		fmt.Fprintf(&b, "\nSalary History (%d records):\n", len(history))
		for i := 1; i < len(history) && i <= historyEntries; i++ {
			h := history[i]
			fmt.Fprintf(&b, "Month %d/%d: Net %s%s\n", h.Month, h.Year, currency, h.NetSalary)
		}
	}

	return b.String()
}

// FormatTaxStructure annualizes the latest monthly record.
func FormatTaxStructure(latest payroll.SalaryResponse) string {
	var b strings.Builder
	b.WriteString("Current Salary Structure:\n")
	fmt.Fprintf(&b, "Basic Salary: %s%s\n", currency, latest.BasicSalary)
	fmt.Fprintf(&b, "Allowances: %s%s\n", currency, latest.Allowances)
	fmt.Fprintf(&b, "Current Tax Rate: %s%%\n", latest.TaxPercent)
	fmt.Fprintf(&b, "Annual Gross: %s%s\n", currency, annualize(latest.GrossSalary))
	fmt.Fprintf(&b, "Annual Tax: %s%s\n", currency, annualize(latest.TaxAmount))
	return b.String()
}

func FormatPayrollReport(summary payroll.PeriodSummaryResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Payroll Report for %d/%d\n", summary.Month, summary.Year)
	fmt.Fprintf(&b, "Total Employees: %d\n", summary.Headcount)
	fmt.Fprintf(&b, "Processed: %d\n\n", summary.ProcessedCount)

	b.WriteString("Financial Summary:\n")
	fmt.Fprintf(&b, "Total Gross Payroll: %s%s\n", currency, summary.TotalGross)
	fmt.Fprintf(&b, "Total Net Payroll: %s%s\n", currency, summary.TotalNet)
	fmt.Fprintf(&b, "Total Tax Deducted: %s%s\n", currency, summary.TotalTax)
	fmt.Fprintf(&b, "Total Other Deductions: %s%s\n", currency, summary.TotalDeductions)
	fmt.Fprintf(&b, "Average Net Salary: %s%s\n", currency, summary.AverageNet)
	return b.String()
}

func annualize(monthly string) string {
	d, err := decimal.NewFromString(monthly)
	if err != nil {
		return monthly
	}
	return d.Mul(monthsPerYear).StringFixed(2)
}

func salaryInsightPrompt(employeeName, salaryData string) string {
	return fmt.Sprintf(
		"Analyze the following salary data for employee %s and provide insights, recommendations, "+
			"and observations about their compensation structure. Focus on tax optimization, "+
			"allowances efficiency, and overall compensation strategy:\n\n%s\n\n"+
			"Please provide actionable insights in a professional format.",
		employeeName, salaryData,
	)
}

func taxAdvicePrompt(salaryStructure string) string {
	return fmt.Sprintf(
		"Provide tax optimization advice for the following salary structure:\n\n%s\n\n"+
			"Please suggest:\n"+
			"1. Tax-efficient salary components\n"+
			"2. Deduction strategies\n"+
			"3. Investment recommendations\n"+
			"4. Compliance tips\n\n"+
			"Provide practical and legal tax optimization strategies.",
		salaryStructure,
	)
}

func payrollReportPrompt(payrollData string) string {
	return fmt.Sprintf(
		"Generate a comprehensive payroll analysis report based on the following data:\n\n%s\n\n"+
			"Please include:\n"+
			"1. Key financial metrics\n"+
			"2. Cost analysis\n"+
			"3. Trends and patterns\n"+
			"4. Recommendations for optimization\n"+
			"5. Compliance considerations\n\n"+
			"Format the response as a professional business report.",
		payrollData,
	)
}

func questionPrompt(question string) string {
	return "As a payroll and HR expert, please answer the following question: " + question +
		"\n\nProvide practical, accurate, and helpful information related to payroll, " +
		"compensation, taxes, and HR practices."
}
