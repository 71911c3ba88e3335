package anlz

import (
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the anlz library.
const Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// VersionInfo describes the build of the library or of a binary using it.
type VersionInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// GetVersionInfo returns version information for the running binary.
//
// GitCommit and BuildTime come from -ldflags when set:
//
//	go build -ldflags="-X github.com/simonhull/anlz.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/anlz.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Otherwise they fall back to the VCS stamp embedded by the go command, and
// to "unknown" when neither is available.
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.GitCommit == "unknown":
			info.GitCommit = s.Value
		case s.Key == "vcs.time" && info.BuildTime == "unknown":
			info.BuildTime = s.Value
		}
	}
	return info
}

// Set via -ldflags.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)
