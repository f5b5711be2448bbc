//go:build !unix

package launch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

func execve(path string, argv []string, env []string) error {
	cmd := &exec.Cmd{
		Path:   path,
		Args:   argv,
		Env:    env,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	err := cmd.Run()
	if err == nil {
		return &ExitStatus{Code: 0}
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitStatus{Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("%w: %s: %w", ErrExecFailed, path, err)
}
