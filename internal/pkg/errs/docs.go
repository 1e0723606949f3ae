// Package errs provides standardized error types for the orders application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a numeric value lies outside its bounds
//   - ObjectNotFoundError: an object cannot be found
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Not-found is deliberately part of this taxonomy rather than a boolean:
// repositories and the pricing service report absence as an
// ObjectNotFoundError, and callers branch with errors.Is.
package errs
