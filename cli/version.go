package cli

import (
	"runtime/debug"

	"github.com/samber/lo"
)

// Version is overridden at link time:
//
//	go build -ldflags "-X github.com/ka2n/minigrep/cli.Version=v1.0.0" ./cmd/minigrep
var Version = "dev"

type buildInfo struct {
	Version   string
	Revision  string
	Modified  bool
	GoVersion string
}

// readBuildInfo prefers the linked Version, then the module version recorded
// by `go install pkg@version`.
func readBuildInfo(i *debug.BuildInfo) buildInfo {
	settings := lo.Associate(i.Settings, func(s debug.BuildSetting) (string, string) {
		return s.Key, s.Value
	})

	bi := buildInfo{
		Version:   Version,
		Revision:  settings["vcs.revision"],
		Modified:  settings["vcs.modified"] == "true",
		GoVersion: i.GoVersion,
	}
	if bi.Version == "dev" && i.Main.Version != "" && i.Main.Version != "(devel)" {
		bi.Version = i.Main.Version
	}
	return bi
}

// versionAttrs returns log attributes describing the running binary.
func versionAttrs() []any {
	i, ok := debug.ReadBuildInfo()
	if !ok {
		return []any{"version", Version}
	}
	bi := readBuildInfo(i)
	return []any{
		"version", bi.Version,
		"commit", bi.Revision,
		"modified", bi.Modified,
		"go", bi.GoVersion,
	}
}
