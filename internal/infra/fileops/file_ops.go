// Where: cli/internal/infra/fileops/file_ops.go
// What: Filesystem operations for launcher generation.
// Why: Keep write semantics (atomic replace, explicit mode) in one place.
package fileops

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/moby/sys/atomicwriter"
)

// WriteFileAtomic writes data to a temporary file next to path, applies perm
// and renames it into place. The parent directory must already exist.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("parent is not a directory: %s", dir)
	}
	if info, err := os.Stat(path); err == nil && !info.Mode().IsRegular() {
		return fmt.Errorf("destination is not a regular file: %s", path)
	}
	return atomicwriter.WriteFile(path, data, perm)
}

// DirExists reports whether path names an existing directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
