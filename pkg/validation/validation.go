package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Issue describes a single rejected field
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is returned when input fails schema validation
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewError builds a validation error for a single field
func NewError(field, message string) *Error {
	return &Error{Issues: []Issue{{Field: field, Message: message}}}
}

// Validator checks struct tags and reports issues by JSON field name
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that names fields after their json or query tags
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)

	// uuid accepts whatever uuid.Parse accepts so body, query and path ids agree
	if err := v.RegisterValidation("uuid", isUUID); err != nil {
		panic(err)
	}

	return &Validator{validate: v}
}

func isUUID(fl validator.FieldLevel) bool {
	_, err := uuid.Parse(fl.Field().String())
	return err == nil
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "query"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// Struct validates s and returns *Error listing every failed field
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate input: %w", err)
	}

	issues := make([]Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, Issue{Field: fe.Field(), Message: message(fe)})
	}

	return &Error{Issues: issues}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	case "min":
		if isLength(fe.Kind()) {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isLength(fe.Kind()) {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "datetime":
		if fe.Param() == time.RFC3339 {
			return "must be an RFC 3339 timestamp"
		}
		return fmt.Sprintf("must be a date in %s format", fe.Param())
	case "hexcolor":
		return "must be a HEX color"
	case "timezone":
		return "must be a valid IANA timezone"
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}

func isLength(kind reflect.Kind) bool {
	return kind == reflect.String || kind == reflect.Slice || kind == reflect.Map
}
