// Where: cli/internal/command/branding.go
// What: CLI naming for usage output.
// Why: Wrappers may install the binary under another name.
package command

import (
	"os"
	"strings"

	"github.com/poruru/jlaunch/cli/internal/meta"
)

func cliName() string {
	name := strings.TrimSpace(os.Getenv("CLI_CMD"))
	if name == "" {
		name = meta.AppName
	}
	return name
}
