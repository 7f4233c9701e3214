// Where: cli/cmd/jlaunch/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru/jlaunch/cli/internal/command"
	"github.com/poruru/jlaunch/cli/internal/fileargs"
	"github.com/poruru/jlaunch/cli/internal/launcher"
)

// buildDependencies constructs the runtime dependencies required by the CLI.
func buildDependencies() command.Dependencies {
	return command.Dependencies{
		Out:        os.Stdout,
		ErrOut:     os.Stderr,
		Generate:   launcher.Generate,
		ExpandArgs: fileargs.Expand,
	}
}
