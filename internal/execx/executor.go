package execx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	derrors "git.home.luguber.info/inful/sitetasks/internal/foundation/errors"
	"git.home.luguber.info/inful/sitetasks/internal/logfields"
	"git.home.luguber.info/inful/sitetasks/internal/tasks"
)

// DefaultWaitDelay is how long a cancelled child gets to exit after the
// interrupt before it is killed.
const DefaultWaitDelay = 10 * time.Second

// ShellExecutor implements tasks.Executor with os/exec.
type ShellExecutor struct {
	// Dir is the working directory; the current one when empty.
	Dir string
	// Env, when non-nil, replaces the inherited environment.
	Env []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	WaitDelay time.Duration
	Logger    *slog.Logger
}

// NewShellExecutor returns an executor wired to the process's standard streams.
func NewShellExecutor(dir string) *ShellExecutor {
	return &ShellExecutor{
		Dir:       dir,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		WaitDelay: DefaultWaitDelay,
	}
}

var _ tasks.Executor = (*ShellExecutor)(nil)

// Run starts inv and waits for it to exit.
func (e *ShellExecutor) Run(ctx context.Context, inv tasks.Invocation) error {
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if id := tasks.InvocationID(ctx); id != "" {
		logger = logger.With(logfields.InvocationID(id))
	}

	path, err := exec.LookPath(inv.Binary)
	if err != nil {
		return derrors.NotFoundError(fmt.Sprintf("%s not found on PATH", inv.Binary)).
			WithCause(err).
			WithContext(logfields.KeyBinary, inv.Binary).
			Build()
	}

	// #nosec G204 -- binary and arguments come from fixed task definitions
	cmd := exec.CommandContext(ctx, path, inv.Args...)
	cmd.Dir = e.Dir
	cmd.Env = e.Env
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	cmd.Cancel = func() error { return interrupt(cmd.Process) }
	cmd.WaitDelay = e.WaitDelay

	logger.Debug("Starting process", logfields.Path(path), logfields.Command(inv.String()), logfields.Dir(e.Dir))
	start := time.Now()
	err = cmd.Run()
	elapsed := logfields.DurationMS(float64(time.Since(start).Microseconds()) / 1000)

	if err == nil {
		logger.Debug("Process exited", logfields.Command(inv.String()), logfields.ExitCode(0), elapsed)
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logger.Debug("Process exited", logfields.Command(inv.String()), logfields.ExitCode(exitErr.ExitCode()), elapsed)
		return derrors.CommandError(inv.String()+" failed").
			WithCause(exitErr).
			WithContext(logfields.KeyCommand, inv.String()).
			WithContext(logfields.KeyExitCode, exitErr.ExitCode()).
			Build()
	}

	return derrors.RuntimeError("could not run "+inv.String()).
		WithCause(err).
		WithContext(logfields.KeyCommand, inv.String()).
		Build()
}
