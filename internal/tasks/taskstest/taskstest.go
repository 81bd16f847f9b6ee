// Package taskstest provides a recording tasks.Executor for tests.
package taskstest

import (
	"context"
	"strconv"
	"sync"

	"git.home.luguber.info/inful/sitetasks/internal/tasks"
)

// Executor records every invocation instead of running it.
type Executor struct {
	mu    sync.Mutex
	calls []tasks.Invocation

	// Fail maps a rendered command (Invocation.String) to the error Run returns for it.
	Fail map[string]error
	// Hook, when set, is called after recording and its error is returned.
	Hook func(ctx context.Context, inv tasks.Invocation) error
}

// Run records inv.
func (e *Executor) Run(ctx context.Context, inv tasks.Invocation) error {
	e.mu.Lock()
	e.calls = append(e.calls, tasks.Invocation{
		Binary: inv.Binary,
		Args:   append([]string(nil), inv.Args...),
	})
	e.mu.Unlock()

	if err, ok := e.Fail[inv.String()]; ok {
		return err
	}
	if e.Hook != nil {
		return e.Hook(ctx, inv)
	}
	return nil
}

// Calls returns the recorded invocations in order.
func (e *Executor) Calls() []tasks.Invocation {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]tasks.Invocation(nil), e.calls...)
}

// Commands returns the recorded invocations rendered as strings.
func (e *Executor) Commands() []string {
	calls := e.Calls()
	out := make([]string, 0, len(calls))
	for _, c := range calls {
		out = append(out, c.String())
	}
	return out
}

// ExitError is a stand-in for a process that exited with Code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return "exit status " + strconv.Itoa(e.Code) }

// ExitCode returns Code.
func (e *ExitError) ExitCode() int { return e.Code }
