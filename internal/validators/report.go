package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Report converts a gin binding failure into a field -> messages map so the
// client sees every failing field at once instead of the first error only.
func Report(err error) map[string][]string {
	report := map[string][]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		report["_body"] = []string{"request body could not be parsed"}
		return report
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		report[field] = append(report[field], message(fe))
	}
	return report
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "gte", "min":
		return fmt.Sprintf("must be %s or greater", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// Field builds a single-field report for checks that run after binding.
func Field(name, msg string) map[string][]string {
	return map[string][]string{name: {msg}}
}
