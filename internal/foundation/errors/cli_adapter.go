package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Exit codes used when an error does not carry its own process status.
const (
	ExitGeneral    = 1
	ExitValidation = 2
	ExitConfig     = 7
	ExitInternal   = 10
	ExitRuntime    = 12
	ExitNotFound   = 127
)

// exitCoder is satisfied by *exec.ExitError and by wrappers that keep a child's status.
type exitCoder interface {
	ExitCode() int
}

// CLIErrorAdapter handles error presentation and exit code determination for CLI applications.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	out     io.Writer
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
		out:     os.Stderr,
	}
}

// WithOutput redirects user-facing messages (stderr by default).
func (a *CLIErrorAdapter) WithOutput(w io.Writer) *CLIErrorAdapter {
	if w != nil {
		a.out = w
	}
	return a
}

// ExitCodeFor determines the appropriate exit code for an error.
// A failed external command exits with that command's own status.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	var ec exitCoder
	if stderrors.As(err, &ec) && ec.ExitCode() > 0 {
		return ec.ExitCode()
	}

	if classified, ok := AsClassified(err); ok {
		return exitCodeFromClassified(classified)
	}

	return ExitGeneral
}

func exitCodeFromClassified(err *ClassifiedError) int {
	switch err.Category() {
	case CategoryValidation:
		return ExitValidation
	case CategoryConfig:
		return ExitConfig
	case CategoryNotFound:
		return ExitNotFound
	case CategoryRuntime:
		return ExitRuntime
	case CategoryInternal:
		return ExitInternal
	default:
		return ExitGeneral
	}
}

// FormatError formats an error for user-facing display. Failed external commands
// format to the empty string outside verbose mode: the tool already wrote its own
// diagnostics.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	if a.verbose {
		return fmt.Sprintf("Error: %v", err)
	}

	if classified, ok := AsClassified(err); ok {
		if classified.IsCategory(CategoryCommand) {
			return ""
		}
		if classified.Cause() != nil {
			return fmt.Sprintf("Error: %s: %v", classified.Message(), classified.Cause())
		}
		return "Error: " + classified.Message()
	}

	return fmt.Sprintf("Error: %v", err)
}

// Handle logs and prints err, returning the exit code the process should use.
func (a *CLIErrorAdapter) Handle(err error) int {
	if err == nil {
		return 0
	}

	if a.shouldLog(err) {
		a.logError(err)
	}
	if message := a.FormatError(err); message != "" {
		_, _ = fmt.Fprintln(a.out, message)
	}
	return a.ExitCodeFor(err)
}

func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}
	if classified, ok := AsClassified(err); ok {
		return classified.IsFatal()
	}
	return false
}

func (a *CLIErrorAdapter) logError(err error) {
	if classified, ok := AsClassified(err); ok {
		attrs := []slog.Attr{
			slog.String("category", string(classified.Category())),
		}
		for k, v := range classified.Context() {
			attrs = append(attrs, slog.Any(k, v))
		}
		if classified.Cause() != nil {
			attrs = append(attrs, slog.String("error", classified.Cause().Error()))
		}
		a.logger.LogAttrs(context.Background(), slogLevelFromSeverity(classified.Severity()), classified.Message(), attrs...)
		return
	}

	a.logger.Error("Unclassified error", "error", err)
}

func slogLevelFromSeverity(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
