package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

func formatFieldName(s string) string {
	// employee_id -> Employee Id
	s = strings.ReplaceAll(s, "_", " ")
	return titleCaser.String(s)
}

// MapValidationError turns a gin binding error into a single readable
// INVALID_INPUT error. Only the first failing field is reported.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]

		// e.Field() sudah berupa nama json karena RegisterTagNameFunc di Init()
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		case "min", "gte":
			return ErrInvalidInput.Withf("%s must be at least %s", field, e.Param())
		case "max", "lte":
			return ErrInvalidInput.Withf("%s must be at most %s", field, e.Param())
		case "oneof":
			return ErrInvalidInput.Withf("%s must be one of [%s]", field, e.Param())
		default:
			return InvalidField(field)
		}
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
