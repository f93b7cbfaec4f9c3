package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Derezo/accounting-api/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// StructuralValidator checks the shape of a TransactionRequest: required fields,
// field lengths, entry count and amount bounds. It does not touch the account directory.
type StructuralValidator struct {
	validate *validator.Validate
}

// NewStructuralValidator creates a StructuralValidator that reports fields by their JSON names.
func NewStructuralValidator() *StructuralValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &StructuralValidator{validate: v}
}

// Validate returns every structural problem found in req. An empty result means the
// request is well-formed.
func (v *StructuralValidator) Validate(req domain.TransactionRequest) []string {
	var problems []string

	if err := v.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return []string{err.Error()}
		}
		for _, fe := range fieldErrs {
			problems = append(problems, describeFieldError(fe))
		}
	}

	// Entry amounts are decimals, which the tag validator cannot compare.
	if len(req.Entries) >= domain.MinEntries && len(req.Entries) <= domain.MaxEntries {
		for i, entry := range req.Entries {
			problems = append(problems, checkAmount(i, entry)...)
		}
	}

	return problems
}

func checkAmount(index int, entry domain.JournalEntry) []string {
	field := fmt.Sprintf("entries[%d].amount", index)
	if !entry.Amount.IsPositive() {
		return []string{field + " must be greater than 0"}
	}
	var problems []string
	if entry.Amount.GreaterThan(domain.MaxEntryAmount) {
		problems = append(problems, fmt.Sprintf("%s must not exceed %s", field, domain.MaxEntryAmount.StringFixed(2)))
	}
	if !entry.Amount.Equal(entry.Amount.Round(2)) {
		problems = append(problems, field+" must have at most 2 decimal places")
	}
	return problems
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s items", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at most %s items", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "uuid":
		return field + " must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
