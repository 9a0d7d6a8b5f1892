package employee

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey"`
	EmployeeCode string              `gorm:"size:20;not null;uniqueIndex:uq_employee_code"`
	FirstName    string              `gorm:"size:100;not null"`
	LastName     string              `gorm:"size:100;not null"`
	Email        string              `gorm:"size:255;not null;uniqueIndex:uq_employee_email"`
	Phone        string              `gorm:"size:30"`
	Designation  string              `gorm:"size:100"`
	DepartmentID *uuid.UUID          `gorm:"type:uuid;index"`
	Department   *EmployeeDepartment `gorm:"foreignKey:DepartmentID;references:ID"`
	HireDate     *time.Time          `gorm:"type:date"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Employee) TableName() string {
	return "employees"
}

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// EmployeeDepartment is the read-only department projection preloaded with
// an employee.
type EmployeeDepartment struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

func (EmployeeDepartment) TableName() string {
	return "departments"
}
