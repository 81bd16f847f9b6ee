//go:build !unix

package execx

import "os"

// interrupt kills the child directly; there is no portable interrupt signal here.
func interrupt(p *os.Process) error {
	if p == nil {
		return nil
	}
	return p.Kill()
}
