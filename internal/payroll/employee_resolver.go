package payroll

import (
	"context"
	"time"
)

// EmployeeProfile is what salary and payslip operations need to know about
// an employee.
type EmployeeProfile struct {
	ID             string
	Code           string
	FullName       string
	Email          string
	DepartmentName string
	HireDate       *time.Time
}

//go:generate mockgen -source=employee_resolver.go -destination=mock/employee_resolver_mock.go -package=mock

// EmployeeResolver looks up employees owned by the employee module. It must
// return an error carrying apperror.CodeNotFound when the id is unknown.
type EmployeeResolver interface {
	FindEmployeeByID(ctx context.Context, id string) (EmployeeProfile, error)
}
