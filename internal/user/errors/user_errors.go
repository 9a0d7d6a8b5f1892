package usererrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrWrongPassword = apperror.New(
		apperror.CodeInvalidInput,
		"Current password is incorrect",
		http.StatusBadRequest,
	)

	ErrSamePassword = apperror.New(
		apperror.CodeInvalidInput,
		"New password must differ from the current one",
		http.StatusBadRequest,
	)

	ErrCannotDeactivateSelf = apperror.New(
		apperror.CodeInvalidState,
		"You cannot deactivate your own account",
		http.StatusUnprocessableEntity,
	)
)
