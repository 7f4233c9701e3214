// Where: cli/internal/command/generate.go
// What: The generate command.
// Why: Turn build-time flags into a launcher request and write the launcher.
package command

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/poruru/jlaunch/cli/internal/gnlist"
	"github.com/poruru/jlaunch/cli/internal/infra/config"
	"github.com/poruru/jlaunch/cli/internal/infra/envutil"
	"github.com/poruru/jlaunch/cli/internal/infra/fileops"
	"github.com/poruru/jlaunch/cli/internal/infra/ui"
	"github.com/poruru/jlaunch/cli/internal/launcher"
	"github.com/poruru/jlaunch/cli/internal/meta"
)

// GenerateCmd defines the generate command flags.
type GenerateCmd struct {
	Output               string   `short:"o" help:"Output path for the launcher script"`
	MainClass            string   `name:"main-class" help:"Name of the Java class with the main entry point"`
	Classpath            []string `name:"classpath" sep:"none" help:"Classpath for running the program (GN list or colon-separated, repeatable)"`
	NoVerify             bool     `name:"noverify" help:"JVM flag: -noverify"`
	TieredStopAtLevelOne bool     `name:"tiered-stop-at-level-one" help:"JVM flag: -XX:TieredStopAtLevel=1"`
	Directives           []string `name:"directive" help:"Runtime directive by name (noverify, tiered-stop-at-level-one); repeatable"`
	JavaHome             string   `name:"java-home" help:"Java home providing bin/java (default: $JLAUNCH_JAVA_HOME, then $JAVA_HOME)"`
	Interpreter          string   `name:"interpreter" help:"Interpreter path or command; overrides --java-home"`
	Config               string   `name:"config" help:"YAML request file supplying defaults"`
	EnvFile              string   `name:"env-file" help:"Path to .env file loaded before resolving the interpreter"`
	DryRun               bool     `name:"dry-run" help:"Print the launcher to stdout instead of writing it"`
	Verbose              bool     `short:"v" help:"Verbose output"`
	ProgramArgs          []string `arg:"" optional:"" name:"program-args" help:"Arguments always passed to the program (place after --)"`
}

func runGenerate(cli CLI, deps Dependencies) int {
	cmd := cli.Generate

	if cmd.EnvFile != "" {
		if err := godotenv.Load(cmd.EnvFile); err != nil {
			return exitWithError(deps.ErrOut, fmt.Errorf("load env file %s: %w", cmd.EnvFile, err))
		}
	}

	req, err := cmd.request()
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	if cmd.DryRun {
		script, err := launcher.Render(req)
		if err != nil {
			return exitWithError(deps.ErrOut, err)
		}
		if _, err := deps.Out.Write(script.Content); err != nil {
			return exitWithError(deps.ErrOut, err)
		}
		return 0
	}

	if dir := filepath.Dir(req.OutputPath); !fileops.DirExists(dir) {
		return exitWithError(deps.ErrOut, fmt.Errorf("output directory %s: %w", dir, fs.ErrNotExist))
	}

	script, err := deps.Generate(req)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	if cmd.Verbose {
		console := newUI(deps.ErrOut)
		console.Success(fmt.Sprintf("Generated launcher %s", script.Path))
		console.Block("Launcher", []ui.KeyValue{
			{Key: "Main class", Value: req.MainClass},
			{Key: "Interpreter", Value: req.Interpreter},
			{Key: "Classpath", Value: fmt.Sprintf("%d entries", len(req.Classpath))},
			{Key: "Directives", Value: describeDirectives(req.Directives)},
		})
	}
	return 0
}

// request merges the optional request file with the flags. Flags win for
// scalar values; file classpath entries come before flag entries.
func (c GenerateCmd) request() (launcher.Request, error) {
	var file config.RequestFile
	if c.Config != "" {
		loaded, err := config.LoadRequestFile(c.Config)
		if err != nil {
			return launcher.Request{}, err
		}
		file = loaded
	}

	classpath, err := gnlist.Flatten(c.Classpath)
	if err != nil {
		return launcher.Request{}, err
	}

	req := launcher.Request{
		OutputPath:  firstNonEmpty(c.Output, file.Output),
		MainClass:   firstNonEmpty(c.MainClass, file.MainClass),
		Classpath:   append(append([]string{}, file.Classpath...), classpath...),
		ProgramArgs: file.ProgramArgs,
	}
	if len(c.ProgramArgs) > 0 {
		req.ProgramArgs = c.ProgramArgs
	}
	if c.NoVerify || file.NoVerify {
		req.Directives = append(req.Directives, launcher.DirectiveNoVerify)
	}
	if c.TieredStopAtLevelOne || file.TieredStopAtLevelOne {
		req.Directives = append(req.Directives, launcher.DirectiveTieredStopAtLevelOne)
	}
	for _, name := range c.Directives {
		directive, err := launcher.ParseDirective(name)
		if err != nil {
			return launcher.Request{}, err
		}
		req.Directives = append(req.Directives, directive)
	}

	// Any interpreter setting on the command line beats the request file.
	interpreter, javaHome := c.Interpreter, c.JavaHome
	if interpreter == "" && javaHome == "" {
		interpreter, javaHome = file.Interpreter, file.JavaHome
	}
	interpreter, err = resolveInterpreter(interpreter, javaHome)
	if err != nil {
		return launcher.Request{}, err
	}
	req.Interpreter = interpreter
	return req, nil
}

func resolveInterpreter(interpreter, javaHome string) (string, error) {
	if interpreter != "" {
		return interpreter, nil
	}
	if javaHome == "" {
		javaHome = envutil.HostOrGlobalEnv("JAVA_HOME")
	}
	if javaHome == "" {
		return "", fmt.Errorf(
			"%w: no interpreter: pass --interpreter or --java-home, or set %s or JAVA_HOME",
			launcher.ErrInvalidRequest, envutil.HostEnvKey("JAVA_HOME"),
		)
	}
	return filepath.Join(javaHome, meta.JavaBinDir, meta.JavaBinName), nil
}

func describeDirectives(directives []launcher.Directive) string {
	if len(directives) == 0 {
		return "none"
	}
	names := make([]string, 0, len(directives))
	for _, directive := range directives {
		names = append(names, directive.String())
	}
	return strings.Join(names, ", ")
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
