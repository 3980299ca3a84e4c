// Package errs provides standardized error types for the snackshop service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: field validation
//   - ObjectNotFoundError: no record matches an identifier or lookup
//   - ForbiddenError: the caller is known but lacks the role or ownership
//   - UnauthenticatedError: no valid session
//   - ConflictError: the stored state no longer permits the mutation
//   - UpstreamError: an external collaborator (SMS dispatcher, spreadsheet I/O) failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so callers classify with errors.Is
package errs
