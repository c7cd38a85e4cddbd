// Package version reports the module version and the VCS revision the
// binary was built from.
package version

import (
	"fmt"
	"runtime/debug"
)

// FromBuildInfo derives a version string from the embedded build info.
func FromBuildInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unavailable"
	}

	version := info.Main.Version
	if version == "" {
		version = "(devel)"
	}

	var vcs, revision, ts string

	for i := range info.Settings {
		switch info.Settings[i].Key {
		case "vcs":
			vcs = info.Settings[i].Value
		case "vcs.revision":
			revision = info.Settings[i].Value
		case "vcs.time":
			ts = info.Settings[i].Value
		default:
			continue
		}
	}

	if revision == "" {
		return version
	}

	if ts == "" {
		return fmt.Sprintf("%s (built from %s revision %s)", version, vcs, revision)
	}

	return fmt.Sprintf("%s (built from %s revision %s at %s)", version, vcs, revision, ts)
}
