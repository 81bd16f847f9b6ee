package tasks

import (
	"errors"
	"strings"
)

// Fixed command-line vocabulary of the wrapped generator.
const (
	DefaultBinary         = "hugo"
	SubcommandServer      = "server"
	FlagDisableFastRender = "--disableFastRender"
	FlagBuildDrafts       = "-D"
)

// Invocation is a single external command: a binary and its arguments.
type Invocation struct {
	Binary string
	Args   []string
}

// String renders the invocation as it would be typed in a shell.
func (i Invocation) String() string {
	if len(i.Args) == 0 {
		return i.Binary
	}
	return i.Binary + " " + strings.Join(i.Args, " ")
}

// BuildInvocation is the generator run with no arguments.
func BuildInvocation(binary string) Invocation {
	return Invocation{Binary: binary}
}

// ServeInvocation is the generator's server mode with fast render disabled,
// plus draft inclusion when requested.
func ServeInvocation(binary string, draft bool) Invocation {
	args := []string{SubcommandServer, FlagDisableFastRender}
	if draft {
		args = append(args, FlagBuildDrafts)
	}
	return Invocation{Binary: binary, Args: args}
}

type exitCoder interface {
	ExitCode() int
}

// ExitCode reports the process status carried by err. A nil error is status 0.
// ok is false when err does not come from a process that ran to completion.
func ExitCode(err error) (code int, ok bool) {
	if err == nil {
		return 0, true
	}
	var ec exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode(), true
	}
	return 0, false
}
