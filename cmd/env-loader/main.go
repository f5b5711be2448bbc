// Command env-loader resolves environment variable values from literals and
// AWS Secrets Manager, then execs the given command with the result.
package main

import (
	"github.com/jonwraymond/envloader/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	cli.Execute(cli.NewRootCommand())
}
