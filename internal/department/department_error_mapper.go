package department

import (
	"errors"
	"strings"

	departmenterrors "go-payroll/internal/department/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueNameConstraint     = "uq_department_name"
	employeeDepartmentFKName = "fk_employees_department"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return departmenterrors.ErrDepartmentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505" && pgErr.ConstraintName == uniqueNameConstraint:
			return departmenterrors.ErrDepartmentNameTaken
		case pgErr.Code == "23503" && pgErr.ConstraintName == employeeDepartmentFKName:
			return departmenterrors.ErrDepartmentInUse
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uniqueNameConstraint) {
		return departmenterrors.ErrDepartmentNameTaken
	}

	return err
}
