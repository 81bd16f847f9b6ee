package hugo

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrBinaryNotFound indicates the hugo executable was not detected on PATH.
var ErrBinaryNotFound = errors.New("hugo binary not found")

// LookPath resolves binary (usually "hugo") to an absolute path.
func LookPath(binary string) (string, error) {
	path, err := exec.LookPath(binary)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBinaryNotFound, err)
	}
	return path, nil
}
