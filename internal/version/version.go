package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/redjax/weather-cli/internal/version.Version=..." at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	RepoUrl = "https://github.com/redjax/weather-cli"
	Package = "weather-cli"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Program   string
	Version   string
	Commit    string
	Date      string
	RepoUrl   string
	GoVersion string
}

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Current returns the ldflags values. Binaries built with plain
// "go install module@version" have no ldflags, so the module version and VCS
// stamps embedded by the Go toolchain fill the gaps.
func Current() BuildInfo {
	info := BuildInfo{
		Program:   Package,
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		RepoUrl:   RepoUrl,
		GoVersion: runtime.Version(),
	}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}

	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.Commit == "none":
			info.Commit = s.Value
		case s.Key == "vcs.time" && info.Date == "unknown":
			info.Date = s.Value
		}
	}

	return info
}

// UserAgent is sent with every request to the weather service.
func UserAgent() string {
	return fmt.Sprintf("%s/%s", Package, Current().Version)
}
