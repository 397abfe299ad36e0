package cli

import (
	"runtime/debug"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadBuildInfo(t *testing.T) {
	tests := []struct {
		name    string
		version string
		info    *debug.BuildInfo
		want    buildInfo
	}{
		{
			name:    "VCS stamped build",
			version: "dev",
			info: &debug.BuildInfo{
				GoVersion: "go1.24.2",
				Main:      debug.Module{Path: "github.com/ka2n/minigrep", Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs", Value: "git"},
					{Key: "vcs.revision", Value: "2551069d1c86"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: buildInfo{Version: "dev", Revision: "2551069d1c86", Modified: true, GoVersion: "go1.24.2"},
		},
		{
			name:    "Installed with go install",
			version: "dev",
			info: &debug.BuildInfo{
				GoVersion: "go1.24.2",
				Main:      debug.Module{Path: "github.com/ka2n/minigrep", Version: "v0.2.0"},
			},
			want: buildInfo{Version: "v0.2.0", GoVersion: "go1.24.2"},
		},
		{
			name:    "Linked version wins",
			version: "v1.0.0",
			info: &debug.BuildInfo{
				GoVersion: "go1.24.2",
				Main:      debug.Module{Path: "github.com/ka2n/minigrep", Version: "v0.2.0"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.modified", Value: "false"},
				},
			},
			want: buildInfo{Version: "v1.0.0", GoVersion: "go1.24.2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := Version
			Version = tt.version
			t.Cleanup(func() { Version = orig })

			got := readBuildInfo(tt.info)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("readBuildInfo() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
