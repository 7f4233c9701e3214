package command

import (
	"io"

	"github.com/poruru/jlaunch/cli/internal/infra/ui"
)

func newUI(out io.Writer) ui.UserInterface {
	return ui.New(out)
}
