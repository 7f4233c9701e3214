package launcher

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Relativize expresses path relative to runDir. Both are resolved against the
// current working directory first, so either may be relative.
func Relativize(path, runDir string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	absDir, err := filepath.Abs(runDir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return "", fmt.Errorf("relativize %s against %s: %w", path, runDir, err)
	}
	return rel, nil
}

// relativizeInterpreter leaves bare command names alone so the launcher can
// still resolve them through PATH. Any other interpreter keeps a separator
// after relativization: one beside the script becomes ./java, never java.
func relativizeInterpreter(path, runDir string) (string, error) {
	if isBareCommand(path) {
		return path, nil
	}
	rel, err := Relativize(path, runDir)
	if err != nil {
		return "", err
	}
	if !strings.ContainsRune(rel, filepath.Separator) {
		rel = "." + string(filepath.Separator) + rel
	}
	return rel, nil
}

func isBareCommand(path string) bool {
	return !filepath.IsAbs(path) && !strings.ContainsRune(path, filepath.Separator) && !strings.Contains(path, "/")
}
