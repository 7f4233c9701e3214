// Where: cli/internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep naming and environment prefixes in one place.
package meta

const (
	// Project Identity
	AppName   = "jlaunch"
	EnvPrefix = "JLAUNCH"

	// Interpreter layout below a Java home.
	JavaBinDir  = "bin"
	JavaBinName = "java"
)
