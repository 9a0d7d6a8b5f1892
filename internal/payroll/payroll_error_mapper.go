package payroll

import (
	"errors"
	"strings"

	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniquePeriodConstraint = "uq_salary_employee_period"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrSalaryNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == uniquePeriodConstraint {
			return payrollerrors.ErrSalaryAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uniquePeriodConstraint) {
		return payrollerrors.ErrSalaryAlreadyExists
	}

	return err
}

func isNotFound(err error) bool {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true
	}
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.Code == apperror.CodeNotFound
}
