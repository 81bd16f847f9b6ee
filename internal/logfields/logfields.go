package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyTask         = "task"
	KeyCommand      = "command"
	KeyInvocationID = "invocation_id"
	KeyExitCode     = "exit_code"
	KeyDurationMS   = "duration_ms"
	KeyDraft        = "draft"
	KeyDir          = "dir"
	KeyBinary       = "binary"
	KeyPath         = "path"
	KeyError        = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Task(name string) slog.Attr       { return slog.String(KeyTask, name) }
func Command(cmd string) slog.Attr     { return slog.String(KeyCommand, cmd) }
func InvocationID(id string) slog.Attr { return slog.String(KeyInvocationID, id) }
func ExitCode(code int) slog.Attr      { return slog.Int(KeyExitCode, code) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Draft(on bool) slog.Attr          { return slog.Bool(KeyDraft, on) }
func Dir(d string) slog.Attr           { return slog.String(KeyDir, d) }
func Binary(b string) slog.Attr        { return slog.String(KeyBinary, b) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
