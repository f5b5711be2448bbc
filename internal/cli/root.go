// Package cli implements the env-loader command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/envloader/launch"
)

// Version, Commit and Date are set at build time via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// host holds the process boundaries a run touches. Tests replace them.
type host struct {
	environ func() []string
	exec    func(argv, env []string) error
	stdout  io.Writer
	stderr  io.Writer
}

func defaultHost() host {
	return host{
		environ: os.Environ,
		exec:    launch.Exec,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

// NewRootCommand creates the env-loader command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(defaultHost())
}

func newRootCommand(rt host) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env-loader [flags] [--] command [args...]",
		Short: "Resolve environment variable values, then exec a command",
		Long: `env-loader resolves the values of inherited environment variables and then
replaces itself with the given command.

  NAME=value::text        NAME is set to "text"
  NAME=aws_sm::secret-id  NAME is set to the SecretString of secret-id
  NAME=other              NAME is passed through unchanged

With --env-prefix only variables starting with the prefix are resolved, and
they are exported without it. Names given with --pass are never resolved.
Every flag can also be set as ENV_LOADER_<FLAG>, for example
ENV_LOADER_ENV_PREFIX=MYAPP_.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	fs := cmd.Flags()
	fs.SetInterspersed(false)
	defineFlags(fs)

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: ExitUsage, Err: err}
	})
	cmd.SetOut(rt.stdout)
	cmd.SetErr(rt.stderr)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		v, err := newViper(cmd.Flags())
		if err != nil {
			return &ExitError{Code: ExitUsage, Err: err}
		}
		opts, err := decodeOptions(v, args)
		if err != nil {
			return err
		}
		return run(cmd.Context(), opts, rt)
	}

	return cmd
}

// Execute runs the root command and exits with the mapped exit code.
func Execute(cmd *cobra.Command) {
	os.Exit(execute(context.Background(), cmd, os.Args[1:], os.Stderr))
}

func execute(ctx context.Context, cmd *cobra.Command, args []string, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	code := ExitCode(err)
	if msg := err.Error(); !isSilent(err) {
		fmt.Fprintf(stderr, "env-loader: %s\n", msg)
		if code == ExitUsage {
			fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
		}
	}
	return code
}

// isSilent reports whether err only carries a child's exit status.
func isSilent(err error) bool {
	exitErr, ok := err.(*ExitError)
	return ok && exitErr.Err == nil
}
