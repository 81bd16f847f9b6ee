package tasks

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	derrors "git.home.luguber.info/inful/sitetasks/internal/foundation/errors"
	"git.home.luguber.info/inful/sitetasks/internal/logfields"
	"git.home.luguber.info/inful/sitetasks/internal/metrics"
)

// Executor runs one external command to completion, blocking until it exits.
// A non-nil error means the command could not start or exited non-zero.
type Executor interface {
	Run(ctx context.Context, inv Invocation) error
}

// ExecContext is the execution context handed to every task.
type ExecContext struct {
	Executor Executor
	// Binary is the generator executable; DefaultBinary when empty.
	Binary  string
	Logger  *slog.Logger
	Metrics metrics.Recorder
}

func (ec *ExecContext) binary() string {
	if ec.Binary == "" {
		return DefaultBinary
	}
	return ec.Binary
}

func (ec *ExecContext) logger() *slog.Logger {
	if ec.Logger == nil {
		return slog.Default()
	}
	return ec.Logger
}

func (ec *ExecContext) recorder() metrics.Recorder {
	if ec.Metrics == nil {
		return metrics.NoopRecorder{}
	}
	return ec.Metrics
}

func (ec *ExecContext) validate() error {
	if ec == nil || ec.Executor == nil {
		return derrors.InternalError("task execution context has no executor").Build()
	}
	return nil
}

type invocationIDKey struct{}

// InvocationID returns the ID of the task run ctx belongs to, or "" outside a run.
func InvocationID(ctx context.Context) string {
	id, _ := ctx.Value(invocationIDKey{}).(string)
	return id
}

// track runs fn as one task and records its duration and outcome. Logs are
// tagged with the invocation ID from ctx, so a task started by another task
// shares its parent's ID; a fresh one is assigned otherwise.
func (ec *ExecContext) track(ctx context.Context, task string, fn func(context.Context, *slog.Logger) error, attrs ...any) error {
	id := InvocationID(ctx)
	if id == "" {
		id = uuid.NewString()
		ctx = context.WithValue(ctx, invocationIDKey{}, id)
	}
	logger := ec.logger().With(append([]any{
		logfields.Task(task),
		logfields.InvocationID(id),
	}, attrs...)...)

	logger.Debug("Task started")
	start := time.Now()
	err := fn(ctx, logger)
	elapsed := time.Since(start)

	rec := ec.recorder()
	rec.ObserveTaskDuration(task, elapsed)

	dur := logfields.DurationMS(float64(elapsed.Microseconds()) / 1000)
	switch {
	case err == nil:
		rec.IncTaskResult(task, metrics.ResultSuccess)
		logger.Debug("Task finished", dur)
	case ctx.Err() != nil:
		rec.IncTaskResult(task, metrics.ResultCanceled)
		logger.Warn("Task interrupted", dur, logfields.Error(err))
	default:
		rec.IncTaskResult(task, metrics.ResultFailed)
		logger.Error("Task failed", dur, logfields.Error(err))
	}
	return err
}

func (ec *ExecContext) invoke(ctx context.Context, logger *slog.Logger, inv Invocation) error {
	logger.Info("Running command", logfields.Command(inv.String()))
	err := ec.Executor.Run(ctx, inv)
	if code, ok := ExitCode(err); ok {
		ec.recorder().IncCommandExit(inv.Binary, code)
	}
	return err
}
