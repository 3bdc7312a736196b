// Package inventory holds the stock-mutation and reporting logic: the
// rules that turn a stream of transactions into an authoritative stock
// count per product, a derived event log, and day-windowed reports.
package inventory

import "errors"

// ValidationError reports invalid caller input: malformed ids, blank
// names, non-positive quantities, unknown transaction types. Detected
// before any mutation, so a ValidationError guarantees nothing was
// persisted.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NotFoundError reports a reference to a product that does not exist.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string { return "product not found" }

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNotFound reports whether err is a missing-product failure.
func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}
