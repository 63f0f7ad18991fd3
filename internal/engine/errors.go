package engine

import "fmt"

// ErrorKind names the four validation error kinds the core can return.
// Infeasibility, computation failures, cache misses, and cancellation
// are never returned as errors; see GenerateResult.Summary.
type ErrorKind string

const (
	KindInvalidCustomer   ErrorKind = "InvalidCustomer"
	KindInvalidRange      ErrorKind = "InvalidRange"
	KindInvalidConfig     ErrorKind = "InvalidConfig"
	KindInvalidLoanParams ErrorKind = "InvalidLoanParams"
)

// ValidationError is returned across the public boundary for malformed
// inputs. Any other failure mode (infeasible search, NaN from a
// pathological combination, a dead cache backend, cooperative
// cancellation) is represented in the result, never as an error.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newValidationError(kind ErrorKind, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
