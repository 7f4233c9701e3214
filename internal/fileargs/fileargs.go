// Where: cli/internal/fileargs/fileargs.go
// What: Expand @FileArg(path:key...) references in command-line arguments.
// Why: Build graphs pass large classpaths through files instead of argv.
package fileargs

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/poruru/jlaunch/cli/internal/gnlist"
	"gopkg.in/yaml.v3"
)

// ErrMalformed is returned for references that cannot be resolved.
var ErrMalformed = errors.New("malformed @FileArg")

var fileArgPattern = regexp.MustCompile(`@FileArg\(([^)]*)\)`)

// Expander resolves references. Each document is read at most once.
type Expander struct {
	ReadFile func(string) ([]byte, error)
	cache    map[string]any
}

// NewExpander returns an Expander reading from the local filesystem.
func NewExpander() *Expander {
	return &Expander{ReadFile: os.ReadFile}
}

// Expand is shorthand for NewExpander().Expand(args).
func Expand(args []string) ([]string, error) {
	return NewExpander().Expand(args)
}

// Expand returns args with every reference replaced by its value. List
// values become GN list literals; scalars are inserted as text.
func (e *Expander) Expand(args []string) ([]string, error) {
	result := make([]string, 0, len(args))
	for _, arg := range args {
		expanded, err := e.expandArg(arg)
		if err != nil {
			return nil, err
		}
		result = append(result, expanded)
	}
	return result, nil
}

func (e *Expander) expandArg(arg string) (string, error) {
	matches := fileArgPattern.FindAllStringSubmatchIndex(arg, -1)
	if len(matches) == 0 {
		return arg, nil
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(arg[last:m[0]])
		value, err := e.lookup(arg[m[2]:m[3]])
		if err != nil {
			return "", err
		}
		b.WriteString(value)
		last = m[1]
	}
	b.WriteString(arg[last:])
	return b.String(), nil
}

func (e *Expander) lookup(ref string) (string, error) {
	parts := strings.Split(ref, ":")
	if len(parts) < 2 || parts[0] == "" {
		return "", fmt.Errorf("%w: @FileArg(%s) needs a path and at least one key", ErrMalformed, ref)
	}
	node, err := e.load(parts[0])
	if err != nil {
		return "", err
	}
	for _, key := range parts[1:] {
		object, ok := node.(map[string]any)
		if !ok {
			return "", fmt.Errorf("%w: @FileArg(%s): value before %q is not an object", ErrMalformed, ref, key)
		}
		value, ok := object[key]
		if !ok {
			return "", fmt.Errorf("%w: @FileArg(%s): key %q not found", ErrMalformed, ref, key)
		}
		node = value
	}
	return render(ref, node)
}

func (e *Expander) load(path string) (any, error) {
	if doc, ok := e.cache[path]; ok {
		return doc, nil
	}
	readFile := e.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}
	content, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file arg %s: %w", path, err)
	}
	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("decode file arg %s: %w", path, err)
	}
	if e.cache == nil {
		e.cache = map[string]any{}
	}
	e.cache[path] = doc
	return doc, nil
}

func render(ref string, node any) (string, error) {
	switch value := node.(type) {
	case string:
		return value, nil
	case []any:
		items := make([]string, 0, len(value))
		for _, item := range value {
			text, ok := item.(string)
			if !ok {
				return "", fmt.Errorf("%w: @FileArg(%s): list item %v is not a string", ErrMalformed, ref, item)
			}
			items = append(items, text)
		}
		return gnlist.Format(items), nil
	case nil:
		return "", fmt.Errorf("%w: @FileArg(%s) is null", ErrMalformed, ref)
	case map[string]any:
		return "", fmt.Errorf("%w: @FileArg(%s) is an object", ErrMalformed, ref)
	default:
		return fmt.Sprint(value), nil
	}
}
