// Package version reports which build of the trainer is running.
package version

import "runtime/debug"

// Version is set at build time, e.g.
// go build -ldflags "-X github.com/vsariola/scopetrainer/version.Version=$(git describe --dirty)"
var Version string

// Hash is the short VCS revision the binary was built from, or empty when
// the build carries no VCS information.
var Hash = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return revision(info.Settings)
}()

// VersionOrHash is what the title bar and the CLI show.
var VersionOrHash = func() string {
	if Version != "" {
		return Version
	}
	return Hash
}()

// revision shortens vcs.revision to at most 7 characters and marks builds of
// modified trees with -dirty.
func revision(settings []debug.BuildSetting) string {
	var rev string
	var dirty bool
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value[:min(7, len(s.Value))]
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev != "" && dirty {
		rev += "-dirty"
	}
	return rev
}
