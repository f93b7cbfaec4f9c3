package domain

import "errors"

// ValidationReport is the outcome of validating one TransactionRequest.
type ValidationReport struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Causes   []error  `json:"-"` // One ValidationError per entry of Errors
}

// Err joins the report's causes, or returns nil for a valid report.
// Callers can test the result with errors.Is against the apperrors kinds.
func (r *ValidationReport) Err() error {
	if r == nil || len(r.Causes) == 0 {
		return nil
	}
	return errors.Join(r.Causes...)
}

// ValidationError is a single report error tagged with its kind.
type ValidationError struct {
	Kind    error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}
