// Where: cli/internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Keep error lines consistent across commands.
package command

import (
	"fmt"
	"io"
)

// exitWithError prints an error message to the output writer and returns
// exit code 1 for CLI error handling.
func exitWithError(out io.Writer, err error) int {
	newUI(out).Warn(fmt.Sprintf("✗ %v", err))
	return 1
}
