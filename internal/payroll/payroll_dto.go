package payroll

import "github.com/shopspring/decimal"

// SalaryRequest creates or replaces the record for (employee, month, year).
// TaxPercent is optional; when omitted it is derived from the annual basic
// salary bracket.
type SalaryRequest struct {
	Month       int              `json:"month" binding:"required,min=1,max=12"`
	Year        int              `json:"year" binding:"required,min=1900,max=9999"`
	BasicSalary *decimal.Decimal `json:"basic_salary" binding:"required"`
	Allowances  decimal.Decimal  `json:"allowances"`
	Deductions  decimal.Decimal  `json:"deductions"`
	TaxPercent  *decimal.Decimal `json:"tax_percent"`
}

type SalaryResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`
	BasicSalary  string `json:"basic_salary"`
	Allowances   string `json:"allowances"`
	Deductions   string `json:"deductions"`
	TaxPercent   string `json:"tax_percent"`
	GrossSalary  string `json:"gross_salary"`
	TaxAmount    string `json:"tax_amount"`
	NetSalary    string `json:"net_salary"`
	Processed    bool   `json:"processed"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type PeriodSummaryResponse struct {
	Month           int    `json:"month"`
	Year            int    `json:"year"`
	Headcount       int    `json:"headcount"`
	ProcessedCount  int    `json:"processed_count"`
	TotalGross      string `json:"total_gross"`
	TotalTax        string `json:"total_tax"`
	TotalDeductions string `json:"total_deductions"`
	TotalNet        string `json:"total_net"`
	AverageNet      string `json:"average_net"`
}

type BatchProcessResponse struct {
	Month     int  `json:"month"`
	Year      int  `json:"year"`
	Queued    bool `json:"queued"`
	Processed int  `json:"processed"`
}
