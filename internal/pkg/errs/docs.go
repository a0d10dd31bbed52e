// Package errs provides standardized error types for the agency simulator.
// It implements one consistent pattern for error creation, formatting and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type carrying error details
//   - constructor functions with and without a cause
//   - an Error() method for formatting
//   - an Unwrap() method returning the sentinel, so errors.Is can classify
//     any error from this package
//
// The HTTP layer relies on that classification to map failures onto status
// codes: ErrValueIsRequired and ErrValueIsInvalid become 400 responses,
// ErrObjectNotFound becomes 404.
package errs
