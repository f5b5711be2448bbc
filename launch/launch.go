// Package launch replaces the current process with the target command.
package launch

import (
	"errors"
	"fmt"
	"os/exec"
)

// Sentinel errors for launching.
var (
	// ErrNoCommand indicates an empty argv.
	ErrNoCommand = errors.New("launch: no command given")

	// ErrCommandNotFound indicates argv[0] could not be located.
	ErrCommandNotFound = errors.New("launch: command not found")

	// ErrExecFailed indicates the command was found but could not be started.
	ErrExecFailed = errors.New("launch: exec failed")
)

// ExitStatus reports how a child finished on platforms where the process
// cannot be replaced and the child runs as a subprocess instead.
type ExitStatus struct {
	Code int
}

func (e *ExitStatus) Error() string {
	return fmt.Sprintf("command exited with status %d", e.Code)
}

var lookPath = exec.LookPath

// Exec runs argv[0], searched in PATH, with argv and env. argv[0] is passed
// to the child unchanged.
//
// On unix the current process is replaced and Exec only returns on failure.
// Elsewhere the child runs with inherited stdio and Exec returns an
// *ExitStatus once it finishes.
func Exec(argv []string, env []string) error {
	if len(argv) == 0 || argv[0] == "" {
		return ErrNoCommand
	}

	path, err := LookPath(argv[0])
	if err != nil {
		return err
	}
	return execve(path, argv, env)
}

// LookPath locates name the way Exec does.
func LookPath(name string) (string, error) {
	path, err := lookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrCommandNotFound, name, err)
	}
	return path, nil
}
