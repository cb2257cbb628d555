// Package errs provides standardized error types for the foodbridge service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the error taxonomy of the coordination core:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails a format or business-rule check
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ObjectNotFoundError: a referenced entity does not exist
//   - UnauthorizedError: the caller may not perform a privileged mutation
//   - ConflictError: the mutation would violate a uniqueness or
//     state-machine invariant
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Every error here is a normal, recoverable outcome for the caller to branch
// on; none is fatal to the process.
package errs
