// Where: cli/internal/launcher/generate.go
// What: Render and persist a launcher script.
// Why: Readers must only ever see a complete launcher at the output path.
package launcher

import (
	"fmt"

	"github.com/poruru/jlaunch/cli/internal/infra/fileops"
)

// Generate renders req and atomically replaces the file at req.OutputPath.
// Nothing is written when the request is invalid.
func Generate(req Request) (Script, error) {
	script, err := Render(req)
	if err != nil {
		return Script{}, err
	}
	if err := fileops.WriteFileAtomic(script.Path, script.Content, script.Mode); err != nil {
		return Script{}, fmt.Errorf("write launcher %s: %w", script.Path, err)
	}
	return script, nil
}
