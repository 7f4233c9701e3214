// Where: cli/internal/launcher/request.go
// What: Generation request model and validation.
// Why: Reject incomplete requests before any file is touched.
package launcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ScriptMode is the permission set applied to every generated launcher.
const ScriptMode fs.FileMode = 0o750

// ErrInvalidRequest marks configuration errors in a Request.
var ErrInvalidRequest = errors.New("invalid generation request")

// Request describes one launcher to generate.
// Classpath order is significant and duplicates are kept as given.
type Request struct {
	OutputPath  string
	MainClass   string
	Classpath   []string
	Interpreter string
	Directives  []Directive
	ProgramArgs []string
}

// Script is a rendered launcher.
type Script struct {
	Path    string
	Content []byte
	Mode    fs.FileMode
}

// Validate reports the first configuration problem found in the request.
func (r Request) Validate() error {
	output := strings.TrimSpace(r.OutputPath)
	if output == "" {
		return fmt.Errorf("%w: output path is required", ErrInvalidRequest)
	}
	if strings.HasSuffix(r.OutputPath, string(os.PathSeparator)) {
		return fmt.Errorf("%w: output path %q names a directory", ErrInvalidRequest, r.OutputPath)
	}
	if strings.TrimSpace(r.MainClass) == "" {
		return fmt.Errorf("%w: main class is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(r.Interpreter) == "" {
		return fmt.Errorf("%w: interpreter path is required", ErrInvalidRequest)
	}
	for i, entry := range r.Classpath {
		if strings.TrimSpace(entry) == "" {
			return fmt.Errorf("%w: classpath entry %d is empty", ErrInvalidRequest, i)
		}
	}
	for _, directive := range r.Directives {
		if _, ok := directiveFlags[directive]; !ok {
			return fmt.Errorf("%w: unknown directive %d", ErrInvalidRequest, int(directive))
		}
	}
	return nil
}
