package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// Struct runs the `validate` tags of a request DTO and returns the first
// violation as a readable error.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}
	fe := errs[0]
	return fmt.Errorf("field %s failed on %s", fe.Field(), fe.Tag())
}

// OneOf reports whether value is one of allowed. Empty value is rejected.
func OneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
