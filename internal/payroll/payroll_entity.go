package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalaryRecord is one employee's pay for one calendar month. Gross, tax and
// net are derived and must be refreshed through Recompute after any input
// changes.
type SalaryRecord struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_salary_employee_period"`
	Employee   *SalaryEmployee `gorm:"foreignKey:EmployeeID;references:ID"`
	Month      int             `gorm:"not null;uniqueIndex:uq_salary_employee_period"`
	Year       int             `gorm:"not null;uniqueIndex:uq_salary_employee_period"`

	BasicSalary decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Allowances  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Deductions  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TaxPercent  decimal.Decimal `gorm:"type:numeric(5,2);not null"`

	GrossSalary decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TaxAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	NetSalary   decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	Processed bool `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SalaryRecord) TableName() string {
	return "salary_records"
}

// Recompute refreshes the derived amounts from the current inputs.
func (r *SalaryRecord) Recompute() {
	b := ComputeSalary(r.BasicSalary, r.Allowances, r.Deductions, r.TaxPercent)
	r.GrossSalary = b.Gross
	r.TaxAmount = b.TaxAmount
	r.NetSalary = b.Net
}

// SalaryEmployee is the read-only slice of an employee row that salary
// listings preload.
type SalaryEmployee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"column:employee_code"`
	FirstName    string    `gorm:"column:first_name"`
	LastName     string    `gorm:"column:last_name"`
}

func (SalaryEmployee) TableName() string {
	return "employees"
}

func (e SalaryEmployee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
