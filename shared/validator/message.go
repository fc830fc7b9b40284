package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"

	"meetslot/shared/failure"
)

var (
	messages = map[string]string{
		"required":  "{field} is required",
		"gte":       "{field} must be greater than or equal to {param}",
		"lte":       "{field} must be less than or equal to {param}",
		"oneof":     "{field} must be one of {param}",
		"max":       "{field} must be less than or equal to {param}",
		"min":       "{field} must be greater than or equal to {param}",
		"email":     "{field} must be a valid email address",
		"civildate": "{field} must be a date in YYYY-MM-DD format",
	}

	reasons = map[string]string{
		"civildate": failure.ReasonInvalidDateFormat,
	}
)

// message returns the first readable violation and the reason it maps to.
func message(err error) (string, string) {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := messages[valErr.Tag()]
			if errStr == "" {
				continue
			}

			errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
			errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

			reason, ok := reasons[valErr.Tag()]
			if !ok {
				reason = failure.ReasonValidation
			}

			return errStr, reason
		}

		return valErrors.Error(), failure.ReasonValidation
	}

	return err.Error(), failure.ReasonValidation
}
