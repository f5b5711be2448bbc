//go:build unix

package launch

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// execFunc replaces the process image. Tests override it.
var execFunc = unix.Exec

func execve(path string, argv []string, env []string) error {
	err := execFunc(path, argv, env)
	return fmt.Errorf("%w: %s: %w", ErrExecFailed, path, err)
}
