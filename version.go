package canvas

import (
	"runtime"
	"runtime/debug"
)

// Version information.
const (
	// VersionMajor is the major version.
	VersionMajor = 0
	// VersionMinor is the minor version.
	VersionMinor = 1
	// VersionPatch is the patch version.
	VersionPatch = 0
	// VersionPrerelease is the prerelease identifier.
	VersionPrerelease = "alpha.1"
)

const versionString = "0.1.0-alpha.1"

// Version returns the engine build identifier, for example
// "0.1.0-alpha.1 (go1.25.0)". When the binary carries module build
// information with a VCS revision, the short revision is appended.
func Version() string {
	v := versionString + " (" + runtime.Version()
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				v += ", " + s.Value[:7]
				break
			}
		}
	}
	return v + ")"
}
