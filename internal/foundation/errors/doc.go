// Package errors provides the classified error primitives used across sitetasks.
//
// A ClassifiedError carries a category, a severity and free-form context on top of
// an optional cause. The CLIErrorAdapter turns any error into a process exit code
// and a user-facing line; errors that wrap a failed external command keep that
// command's own exit status.
//
// Example usage:
//
//	err := errors.ConfigError("invalid log level").
//		WithContext("value", raw).
//		Build()
package errors
