// Package errs provides standardized error types shared by every layer of the
// eshop application.
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound) usable with errors.Is
//   - A struct type carrying the failing parameter and an optional cause
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() pointing at the sentinel
//
// Domain packages add their own sentinels on top of this taxonomy when a
// failure is a business rule rather than a malformed value (for example
// insufficient inventory or an invalid status transition).
package errs
