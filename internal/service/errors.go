package service

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Reasons carried by ValidationError.
const (
	ReasonInvalidKind     = "invalid kind"
	ReasonInvalidCategory = "invalid category"
	ReasonInvalidDate     = "invalid date"
	ReasonInvalidMonth    = "invalid month"
	ReasonInvalidYear     = "invalid year"
	ReasonInvalidAmount   = "invalid amount"
	ReasonValueRejected   = "value rejected by store"
)

// ValidationError means caller-supplied data failed a taxonomy or shape check.
// The operation that returned it had no side effect.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation: " + e.Reason
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// StoreError means the store could not serve the operation for reasons
// unrelated to the input. No partial state is left behind, so the caller may
// retry.
type StoreError struct {
	Op  string
	Err error
}

// Error names the failed operation only; driver detail stays in Unwrap.
func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s failed", e.Op)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Retryable() bool {
	return true
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsStore(err error) bool {
	var s *StoreError
	return errors.As(err, &s)
}

// ErrorKind names the error class for transport layers: "validation",
// "store", or "" when err is neither.
func ErrorKind(err error) string {
	switch {
	case IsValidation(err):
		return "validation"
	case IsStore(err):
		return "store"
	}
	return ""
}

// translateStoreError maps whatever the storage stack returned onto the
// ledger's error taxonomy. Driver errors never leave the service untranslated.
func translateStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsValidation(err) || IsStore(err) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "22" {
		if pqErr.Code.Name() == "numeric_value_out_of_range" {
			return NewValidationError("amount", ReasonInvalidAmount)
		}
		return NewValidationError("", ReasonValueRejected)
	}

	return &StoreError{Op: op, Err: err}
}
