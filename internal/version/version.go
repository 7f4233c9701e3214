// Where: cli/internal/version/version.go
// What: jlaunch version string for `jlaunch version`.
// Why: Build rules pin jlaunch; the version tells which launcher template a tree was generated with.
package version

import (
	"fmt"
	"runtime/debug"
)

var readBuildInfo = debug.ReadBuildInfo

// GetVersion prefers a release tag (go install ...@v1.2.3). Binaries built
// from a checkout report the 7-char commit, marked "(dirty)" when the
// launcher template or code had local edits. Anything else is "dev".
func GetVersion() string {
	info, ok := readBuildInfo()
	if !ok {
		return "dev"
	}
	if tag := info.Main.Version; tag != "" && tag != "(devel)" {
		return tag
	}
	revision, dirty := vcsState(info.Settings)
	switch {
	case revision == "":
		return "dev"
	case dirty:
		return fmt.Sprintf("%s (dirty)", revision)
	default:
		return revision
	}
}

func vcsState(settings []debug.BuildSetting) (string, bool) {
	var revision string
	var dirty bool
	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	return revision, dirty
}
