package rbacerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrPermissionExists = apperror.New(
		apperror.CodeConflict,
		"permission already granted",
		http.StatusConflict,
	)
	ErrPermissionNotFound = apperror.New(
		apperror.CodeNotFound,
		"permission not found",
		http.StatusNotFound,
	)
	ErrPolicyLoadFailed = apperror.New(
		apperror.CodeInternalError,
		"failed to load access policy",
		http.StatusInternalServerError,
	)
)
