// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"
	"strings"

	"github.com/poruru/jlaunch/cli/internal/meta"
)

// HostEnvKey constructs a host-level environment variable name
// by combining the CLI prefix with the given suffix.
// Example: HostEnvKey("JAVA_HOME") returns "JLAUNCH_JAVA_HOME".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + suffix
}

// GetHostEnv retrieves a host-level environment variable.
// Example: GetHostEnv("JAVA_HOME") returns the value of JLAUNCH_JAVA_HOME.
func GetHostEnv(suffix string) string {
	return os.Getenv(HostEnvKey(suffix))
}

// HostOrGlobalEnv prefers the prefixed variable and falls back to the bare one.
// Example: HostOrGlobalEnv("JAVA_HOME") checks JLAUNCH_JAVA_HOME, then JAVA_HOME.
func HostOrGlobalEnv(name string) string {
	if value := strings.TrimSpace(GetHostEnv(name)); value != "" {
		return value
	}
	return strings.TrimSpace(os.Getenv(name))
}
