// Where: cli/internal/infra/config/request_file.go
// What: Load launcher request files (YAML).
// Why: Let build rules check a request into the tree instead of spelling every flag.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// RequestFile holds defaults for a generate invocation.
type RequestFile struct {
	Output               string   `json:"output,omitempty"`
	MainClass            string   `json:"main_class,omitempty"`
	Classpath            []string `json:"classpath,omitempty"`
	JavaHome             string   `json:"java_home,omitempty"`
	Interpreter          string   `json:"interpreter,omitempty"`
	NoVerify             bool     `json:"noverify,omitempty"`
	TieredStopAtLevelOne bool     `json:"tiered_stop_at_level_one,omitempty"`
	ProgramArgs          []string `json:"program_args,omitempty"`
}

// LoadRequestFile reads, validates and decodes path. Relative paths inside the
// file are resolved against the file's directory.
func LoadRequestFile(path string) (RequestFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return RequestFile{}, err
	}
	file, err := ParseRequestFile(content)
	if err != nil {
		return RequestFile{}, fmt.Errorf("request file %s: %w", path, err)
	}
	file.resolvePaths(filepath.Dir(path))
	return file, nil
}

// ParseRequestFile validates content against the request schema and decodes it.
func ParseRequestFile(content []byte) (RequestFile, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return RequestFile{}, nil
	}
	jsonData, err := validateRequestFile(content)
	if err != nil {
		return RequestFile{}, err
	}
	var file RequestFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return RequestFile{}, fmt.Errorf("decode request file: %w", err)
	}
	return file, nil
}

func (f *RequestFile) resolvePaths(baseDir string) {
	f.Output = resolvePath(baseDir, f.Output)
	f.JavaHome = resolvePath(baseDir, f.JavaHome)
	if f.Interpreter != "" && filepath.Base(f.Interpreter) != f.Interpreter {
		f.Interpreter = resolvePath(baseDir, f.Interpreter)
	}
	for i, entry := range f.Classpath {
		f.Classpath[i] = resolvePath(baseDir, entry)
	}
}

func resolvePath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

func yamlToJSON(content []byte) ([]byte, error) {
	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return nil, fmt.Errorf("convert yaml to json: %w", err)
	}
	return jsonData, nil
}
