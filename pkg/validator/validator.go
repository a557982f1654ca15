package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/ghuser/cartshop/pkg/httpx"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		// ignore unexported or explicitly ignored
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Money fields validate as float64 so gt/gte/lte tags apply to them.
	validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
		d, ok := v.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		return d.InexactFloat64()
	}, decimal.Decimal{})
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// FormatValidationErrors converts validator.ValidationErrors into a map of
// field name to a human-readable message.
func FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if !isValidationErrors(err, &ve) {
		return errs
	}
	for _, e := range ve {
		errs[e.Field()] = formatFieldError(e)
	}
	return errs
}

func isValidationErrors(err error, target *validator.ValidationErrors) bool {
	return errors.As(err, target)
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Minimum length is %s", e.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", e.Param())
	case "email":
		return "Must be a valid email address"
	case "gt":
		return fmt.Sprintf("Must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", e.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", e.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", e.Param())
	default:
		return fmt.Sprintf("Validation failed on '%s'", e.Tag())
	}
}

// ValidateRequest decodes the JSON request body into T, validates it, and
// writes an appropriate error response if either step fails.
// Returns (parsedStruct, true) on success or (nil, false) on failure.
func ValidateRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	return decodeAndValidate[T](w, r, false)
}

// ValidateOptionalRequest is ValidateRequest for endpoints whose body may be
// omitted entirely, such as committing a bill without notes. An empty body
// yields the zero T, which is still validated.
func ValidateOptionalRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	return decodeAndValidate[T](w, r, true)
}

func decodeAndValidate[T any](w http.ResponseWriter, r *http.Request, optional bool) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if !optional || !errors.Is(err, io.EOF) {
			httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
			return nil, false
		}
	}
	if err := Validate(&req); err != nil {
		httpx.ValidationError(w, FormatValidationErrors(err))
		return nil, false
	}
	return &req, true
}
