package version

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
)

// ApplicationName is the human-readable name of the application.
var ApplicationName = "HueKit"

// CommandName is the executable name, taken from os.Args[0].
var CommandName = "huekit"

// Set at build time:
// -ldflags "-X HueKit/internal/version.Version=v1.2.3 -X HueKit/internal/version.Commit=abc1234"
var (
	Version   = "v0.0.0-dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func init() {
	base := filepath.Base(os.Args[0])
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name != "" && !strings.EqualFold(name, ApplicationName) && name != "main" && !strings.HasSuffix(name, ".test") {
		CommandName = name
	}
	fromBuildInfo()
}

// fromBuildInfo fills Commit and BuildDate from the VCS stamp when
// they were not set with -ldflags.
func fromBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if Commit == "none" && len(s.Value) >= 7 {
				Commit = s.Value[:7]
			}
		case "vcs.time":
			if BuildDate == "unknown" {
				BuildDate = s.Value
			}
		}
	}
}
