// Where: cli/internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/poruru/jlaunch/cli/internal/fileargs"
	"github.com/poruru/jlaunch/cli/internal/launcher"
	"github.com/poruru/jlaunch/cli/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// Nil fields fall back to the real implementations.
type Dependencies struct {
	Out        io.Writer
	ErrOut     io.Writer
	Generate   func(launcher.Request) (launcher.Script, error)
	ExpandArgs func([]string) ([]string, error)
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Generate GenerateCmd `cmd:"" help:"Generate a launcher script for a Java program"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

// Run is the main entry point for CLI command execution.
// It expands @FileArg references, parses the arguments, and dispatches to the
// matching handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.Generate == nil {
		deps.Generate = launcher.Generate
	}
	if deps.ExpandArgs == nil {
		deps.ExpandArgs = fileargs.Expand
	}

	if len(args) == 0 {
		return runNoArgs(deps.Out)
	}

	expanded, err := deps.ExpandArgs(args)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(cliName()),
		kong.Description("Generate launcher scripts that run a Java main class with a relocatable classpath."),
		kong.Writers(deps.Out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	ctx, err := parser.Parse(expanded)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	if exitCode, handled := dispatchCommand(ctx.Command(), cli, deps); handled {
		return exitCode
	}

	newUI(deps.ErrOut).Warn("unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies) int

func dispatchCommand(command string, cli CLI, deps Dependencies) (int, bool) {
	handlers := map[string]commandHandler{
		"generate": runGenerate,
		"version":  runVersion,
	}

	// Kong reports commands with positionals as "generate <program-args>".
	name, _, _ := strings.Cut(command, " ")
	if handler, ok := handlers[name]; ok {
		return handler(cli, deps), true
	}
	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, deps Dependencies) int {
	newUI(deps.Out).Info(version.GetVersion())
	return 0
}

// runNoArgs prints a short usage summary.
func runNoArgs(out io.Writer) int {
	ui := newUI(out)
	cmd := cliName()
	ui.Info("Usage:")
	ui.Info(fmt.Sprintf("  %s generate --output <path> --main-class <class> [--classpath <list>]... [-- program args]", cmd))
	ui.Info("")
	ui.Info(fmt.Sprintf("Try: %s generate --help", cmd))
	return 0
}
