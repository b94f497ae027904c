// Package version reports what build of crossforge is running.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set through -ldflags at release time. A plain `go build` leaves them
// empty and Get falls back to module build info.
var (
	Version   = ""
	Commit    = ""
	BuildDate = ""
)

// Info describes a single crossforge build.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get assembles build information, preferring ldflags values and
// falling back to what the Go toolchain embedded in the binary.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = s.Value
				}
			case "vcs.time":
				if info.BuildDate == "" {
					info.BuildDate = s.Value
				}
			}
		}
	}

	if info.Version == "" {
		info.Version = "devel"
	}
	return info
}

// String returns just the version number.
func (i Info) String() string {
	return i.Version
}

// Full returns the version with its provenance, for the version command.
func (i Info) Full() string {
	out := i.Version
	if c := shortCommit(i.Commit); c != "" {
		out += "+" + c
	}
	out += fmt.Sprintf(" (%s %s", i.GoVersion, i.Platform)
	if i.BuildDate != "" {
		out += ", built " + i.BuildDate
	}
	return out + ")"
}

func shortCommit(c string) string {
	if len(c) > 12 {
		return c[:12]
	}
	return c
}
