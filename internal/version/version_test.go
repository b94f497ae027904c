package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFull(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "release build",
			info: Info{
				Version:   "0.3.0",
				Commit:    "4f2c1a9d8b7e6f5a4c3b2d1e0f9a8b7c6d5e4f3a",
				BuildDate: "2026-08-01T12:00:00Z",
				GoVersion: "go1.25.5",
				Platform:  "linux/amd64",
			},
			want: "0.3.0+4f2c1a9d8b7e (go1.25.5 linux/amd64, built 2026-08-01T12:00:00Z)",
		},
		{
			name: "development build without vcs data",
			info: Info{
				Version:   "devel",
				GoVersion: "go1.25.5",
				Platform:  "linux/amd64",
			},
			want: "devel (go1.25.5 linux/amd64)",
		},
		{
			name: "short commit kept whole",
			info: Info{
				Version:   "0.3.0",
				Commit:    "4f2c1a9",
				GoVersion: "go1.25.5",
				Platform:  "darwin/arm64",
			},
			want: "0.3.0+4f2c1a9 (go1.25.5 darwin/arm64)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Full())
		})
	}
}

func TestGet(t *testing.T) {
	info := Get()

	assert.NotEmpty(t, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.Equal(t, info.Version, info.String())
}
