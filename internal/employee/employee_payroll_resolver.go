package employee

import (
	"context"
	"errors"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/payroll"
)

type payrollResolver struct {
	repo Repository
}

// NewPayrollResolver exposes employees to the payroll module.
func NewPayrollResolver(repo Repository) payroll.EmployeeResolver {
	return &payrollResolver{repo: repo}
}

func (r *payrollResolver) FindEmployeeByID(ctx context.Context, id string) (payroll.EmployeeProfile, error) {
	empl, err := r.repo.FindByID(ctx, id)
	if err != nil {
		mapped := mapRepositoryError(err)
		if errors.Is(mapped, employeeerrors.ErrEmployeeNotFound) {
			return payroll.EmployeeProfile{}, employeeerrors.ErrEmployeeNotFound.Withf("employee %s not found", id)
		}
		return payroll.EmployeeProfile{}, mapped
	}

	profile := payroll.EmployeeProfile{
		ID:       empl.ID.String(),
		Code:     empl.EmployeeCode,
		FullName: empl.FullName(),
		Email:    empl.Email,
		HireDate: empl.HireDate,
	}
	if empl.Department != nil {
		profile.DepartmentName = empl.Department.Name
	}
	return profile, nil
}
