package insighterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

const CodeServiceUnavailable = "SERVICE_UNAVAILABLE"

var (
	ErrInsightUnavailable = apperror.New(
		CodeServiceUnavailable,
		"AI assistant is unavailable, try again later",
		http.StatusServiceUnavailable,
	)
	ErrEmptyQuestion = apperror.New(
		apperror.CodeInvalidInput,
		"question is required",
		http.StatusBadRequest,
	)
)
