package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	templates = map[string]string{
		"required": "{field} is required",
		"notblank": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
		"enum":     "{field} has an unsupported value",
		"mobile":   "{field} must be exactly 10 digits",
		"cents":    "{field} must have at most 2 decimal places",
		"datetime": "{field} must be a date in {param} format",
		"len":      "{field} must be {param} characters long",
		"numeric":  "{field} must be numeric",
	}
)

func messages(err error) []string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return []string{err.Error()}
	}

	reasons := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		tmpl, ok := templates[valErr.Tag()]
		if !ok {
			reasons = append(reasons, valErr.Error())

			continue
		}

		reason := strings.ReplaceAll(tmpl, "{field}", valErr.Field())
		reason = strings.ReplaceAll(reason, "{param}", valErr.Param())
		reasons = append(reasons, reason)
	}

	return reasons
}
