package apperrors

import (
	"errors"
	"fmt"
)

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInternal indicates an unexpected failure in a collaborator (database, directory).
var ErrInternal = errors.New("internal error")

// Error kinds produced by the transaction engine.
var (
	// ErrSchema marks a structurally malformed transaction request.
	ErrSchema = fmt.Errorf("%w: malformed transaction request", ErrValidation)
	// ErrAccountResolution marks account ids that do not resolve to an active account of the organization.
	ErrAccountResolution = fmt.Errorf("%w: invalid or inactive account ids", ErrValidation)
	// ErrImbalance marks a transaction whose debits and credits differ.
	ErrImbalance = fmt.Errorf("%w: transaction does not balance", ErrValidation)
	// ErrTemplateResolution marks a business transaction that could not be compiled.
	ErrTemplateResolution = errors.New("template resolution failed")
	// ErrAmbiguousAccountRole marks a template role that matched more than one account.
	ErrAmbiguousAccountRole = fmt.Errorf("%w: ambiguous account role", ErrTemplateResolution)
)
