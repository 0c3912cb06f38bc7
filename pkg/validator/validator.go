package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

// ParseError turns a binding error into field -> message.
func ParseError(err error) map[string]string {
	errs := make(map[string]string)

	var ve validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &ve):
		for _, fe := range ve {
			errs[fe.Field()] = message(fe)
		}
	case errors.As(err, &typeErr):
		errs[typeErr.Field] = fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value)
	case errors.As(err, &syntaxErr):
		errs["body"] = "malformed JSON at offset " + fmt.Sprint(syntaxErr.Offset)
	case errors.Is(err, io.EOF):
		errs["body"] = "request body is empty"
	case err != nil:
		errs["error"] = err.Error()
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gte", "lte":
		return fmt.Sprintf("%s must be %s %s", fe.Field(), fe.Tag(), fe.Param())
	case "email":
		return fe.Field() + " must be a valid email address"
	}
	return fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
}
