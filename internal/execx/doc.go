// Package execx runs external commands for tasks.
//
// ShellExecutor passes the child's standard streams straight through, so the
// external tool's own output is the only diagnostic a user sees. It adds no
// retries or timeouts; cancellation interrupts the child and escalates to a kill
// after WaitDelay.
//
// Use errors.Is(err, exec.ErrNotFound) to check for missing commands, and
// errors.As with *exec.ExitError (or any ExitCode() int) for the exit status.
package execx
