package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/sitetasks/internal/logfields"
)

// Task names as exposed on the command line.
const (
	TaskBuild = "build"
	TaskServe = "serve"
)

// ServeOptions are the caller-supplied parameters of Serve.
type ServeOptions struct {
	// Draft includes content marked as draft.
	Draft bool
}

// Build builds the site into the generator's output directory by running the
// generator once with no arguments. The executor's error is returned with its
// exit status intact.
func Build(ctx context.Context, ec *ExecContext) error {
	if err := ec.validate(); err != nil {
		return err
	}
	return ec.track(ctx, TaskBuild, func(ctx context.Context, logger *slog.Logger) error {
		if err := ec.invoke(ctx, logger, BuildInvocation(ec.binary())); err != nil {
			return fmt.Errorf("build: %w", err)
		}
		return nil
	})
}

// Serve builds the site, then runs the generator's server with fast render
// disabled until the server exits. A failed build is returned as is and the
// server is not started.
func Serve(ctx context.Context, ec *ExecContext, opts ServeOptions) error {
	if err := ec.validate(); err != nil {
		return err
	}
	return ec.track(ctx, TaskServe, func(ctx context.Context, logger *slog.Logger) error {
		if err := Build(ctx, ec); err != nil {
			return err
		}
		if err := ec.invoke(ctx, logger, ServeInvocation(ec.binary(), opts.Draft)); err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	}, logfields.Draft(opts.Draft))
}
