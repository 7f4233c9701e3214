// Where: cli/cmd/jlaunch/main.go
// What: CLI entrypoint.
// Why: Execute jlaunch commands with configured dependencies.
package main

import (
	"os"

	"github.com/poruru/jlaunch/cli/internal/command"
)

func main() {
	os.Exit(command.Run(os.Args[1:], buildDependencies()))
}
