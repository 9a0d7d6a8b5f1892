package departmenterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid department id",
		http.StatusBadRequest,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"department not found",
		http.StatusNotFound,
	)
	ErrDepartmentNameTaken = apperror.New(
		apperror.CodeInvalidState,
		"department name already exists",
		http.StatusUnprocessableEntity,
	)
	ErrDepartmentInUse = apperror.New(
		apperror.CodeInvalidState,
		"department still has employees",
		http.StatusUnprocessableEntity,
	)
)
