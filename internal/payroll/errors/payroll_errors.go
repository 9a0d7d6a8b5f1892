package payrollerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidSalaryID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid salary id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll period",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"invalid salary amount",
		http.StatusBadRequest,
	)
	ErrInvalidTaxPercent = apperror.New(
		apperror.CodeInvalidInput,
		"tax percent must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrSalaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary record not found",
		http.StatusNotFound,
	)
	ErrSalaryAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"salary record already exists for this period",
		http.StatusConflict,
	)
	ErrCannotDeleteProcessed = apperror.New(
		apperror.CodeInvalidState,
		"cannot delete processed salary",
		http.StatusUnprocessableEntity,
	)
	ErrAccessDenied = apperror.New(
		apperror.CodeForbidden,
		"you can only view your own salary records",
		http.StatusForbidden,
	)
	ErrNoEmployeeProfile = apperror.New(
		apperror.CodeForbidden,
		"no employee profile is linked to this account",
		http.StatusForbidden,
	)
	ErrPayslipRender = apperror.New(
		apperror.CodeInternalError,
		"failed to generate payslip",
		http.StatusInternalServerError,
	)
)
