package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"go-payroll/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestAppError_Withf(t *testing.T) {
	err := apperror.ErrNotFound.Withf("salary record %s not found", "abc")

	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.Equal(t, apperror.CodeNotFound, err.Code)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
	assert.Contains(t, err.Error(), "salary record abc not found")
}

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps outer message", func(t *testing.T) {
		err := fmt.Errorf("service: %w", apperror.ErrInvalidState.Withf("cannot delete processed record"))

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
		assert.Equal(t, apperror.CodeInvalidState, httpErr.Code)
		assert.Equal(t, "cannot delete processed record", httpErr.Message)
	})

	t.Run("unknown error becomes internal", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: connection reset"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "pq")
	})
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		BasicSalary string `json:"basic_salary" validate:"required"`
		Month       int    `json:"month" validate:"min=1,max=12"`
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	t.Run("required", func(t *testing.T) {
		err := apperror.MapValidationError(v.Struct(payload{Month: 1}))

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, "Basic Salary is required", appErr.Message)
	})

	t.Run("range", func(t *testing.T) {
		err := apperror.MapValidationError(v.Struct(payload{BasicSalary: "1", Month: 13}))

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, "Month must be at most 12", appErr.Message)
	})

	t.Run("non validator error", func(t *testing.T) {
		err := apperror.MapValidationError(errors.New("unexpected EOF"))
		assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
	})
}
