// Where: cli/internal/launcher/renderer.go
// What: Render the launcher template.
// Why: Embed classpath, interpreter and arguments as literals, never as shell text.
package launcher

import (
	"bytes"
	"embed"
	"path/filepath"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/poruru/jlaunch/cli/internal/meta"
)

const javaBinaryTemplate = "java_binary.py.tmpl"

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

type launcherTemplateData struct {
	Generator   string
	Classpath   []string
	ProgramArgs []string
	Interpreter string
	MainClass   string
	Directives  []Directive
}

// Render validates req and renders its launcher without writing anything.
// Classpath entries and the interpreter are rewritten relative to the
// directory that will hold the script.
func Render(req Request) (Script, error) {
	if err := req.Validate(); err != nil {
		return Script{}, err
	}

	runDir := filepath.Dir(req.OutputPath)
	classpath := make([]string, 0, len(req.Classpath))
	for _, entry := range req.Classpath {
		rel, err := Relativize(entry, runDir)
		if err != nil {
			return Script{}, err
		}
		classpath = append(classpath, rel)
	}
	interpreter, err := relativizeInterpreter(req.Interpreter, runDir)
	if err != nil {
		return Script{}, err
	}

	// toJson renders nil slices as null, which is not a Python literal.
	programArgs := append([]string{}, req.ProgramArgs...)

	data := launcherTemplateData{
		Generator:   meta.AppName,
		Classpath:   classpath,
		ProgramArgs: programArgs,
		Interpreter: interpreter,
		MainClass:   req.MainClass,
		Directives:  orderedDirectives(req.Directives),
	}
	content, err := renderTemplate(javaBinaryTemplate, data)
	if err != nil {
		return Script{}, err
	}
	return Script{
		Path:    req.OutputPath,
		Content: content,
		Mode:    ScriptMode,
	}, nil
}

func renderTemplate(name string, data any) ([]byte, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(sprig.TxtFuncMap()).
		ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
