// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Report a release tag when one was stamped in, else the VCS revision.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is set at link time with -ldflags "-X .../version.Version=v1.2.3".
var Version = ""

var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns, in order of preference, the stamped Version, the module
// version of an installed binary, or the short VCS revision with a "(dirty)"
// marker. It falls back to "dev".
func GetVersion() string {
	if Version != "" {
		return Version
	}
	info, ok := readBuildInfo()
	if !ok {
		return "dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision string
	var modified bool

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision == "" {
		return "dev"
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
