package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation marks input rejected at the boundary
var ErrValidation = errors.New("validation failed")

// FilterAll is the value every filter field takes when it does not restrict anything
const FilterAll = "all"

var validate = validator.New()

// Validate checks struct tags and wraps failures in ErrValidation
func Validate(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			parts := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				parts = append(parts, fmt.Sprintf("%s: %s", strings.ToLower(fe.Field()), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrValidation, strings.Join(parts, ", "))
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// orAll normalises an empty filter value to FilterAll
func orAll(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return FilterAll
	}
	return v
}

// matches reports whether value passes a filter field
func matches(filter, value string) bool {
	return filter == FilterAll || filter == value
}
