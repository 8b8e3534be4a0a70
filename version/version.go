package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// SDKID names this SDK in the User-Agent header.
const SDKID = "rest-sdk-go"

var (
	// These variables are set at build time using -ldflags
	Version   = "0.5.2"
	GitCommit = ""
)

// Info represents version information.
type Info struct {
	SDKID     string `json:"sdk_id"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	IsDirty   bool   `json:"is_dirty"`
}

// GetVersionInfo returns the SDK identity and the runtime it runs on.
func GetVersionInfo() *Info {
	info := &Info{
		SDKID:     SDKID,
		Version:   Version,
		GitCommit: GitCommit,
		GoVersion: strings.TrimPrefix(runtime.Version(), "go"),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				if GitCommit == "" {
					info.GitCommit = setting.Value
					if len(info.GitCommit) > 7 {
						info.GitCommit = info.GitCommit[:7]
					}
				}
			case "vcs.modified":
				info.IsDirty = setting.Value == "true"
			}
		}
	}

	return info
}

// UserAgent returns the fixed User-Agent value, e.g.
//
//	RestSDK/rest-sdk-go 0.5.2 (lang=Go; version=1.26.0; os=linux_amd64)
func UserAgent() string {
	info := GetVersionInfo()
	return fmt.Sprintf("RestSDK/%s %s (lang=Go; version=%s; os=%s_%s)",
		info.SDKID, info.Version, info.GoVersion, info.OS, info.Arch)
}
