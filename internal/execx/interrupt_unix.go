//go:build unix

package execx

import (
	"os"
	"syscall"
)

// interrupt asks the child to shut down the way a terminal Ctrl-C would.
func interrupt(p *os.Process) error {
	if p == nil {
		return nil
	}
	return p.Signal(syscall.SIGINT)
}
