// Package version provides version information for the application.
package version

import (
	"fmt"
	"runtime"
	"time"
)

// 构建时注入的变量，通过ldflags设置
//
//	go build -ldflags "-X github.com/weisyn/keyaddr/internal/app/version.Version=v0.2.0"
var (
	Version   = "v0.1.0"
	Commit    = "unknown"
	BuildTime = "unknown" // RFC3339
)

// BuildInfo 构建信息
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetVersion 获取版本号
func GetVersion() string {
	return Version
}

// GetBuildInfo 获取完整构建信息
func GetBuildInfo() *BuildInfo {
	return &BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// GetFullVersion 获取完整版本信息（用于 version 命令的文本输出）
func GetFullVersion() string {
	buildInfo := GetBuildInfo()

	versionStr := fmt.Sprintf("keyaddr %s", buildInfo.Version)
	if buildInfo.Commit != "unknown" {
		versionStr += fmt.Sprintf(" (%s)", buildInfo.Commit)
	}

	if buildInfo.BuildTime != "unknown" {
		if parsedTime, err := time.Parse(time.RFC3339, buildInfo.BuildTime); err == nil {
			versionStr += fmt.Sprintf("\n构建时间: %s", parsedTime.Format("2006-01-02 15:04:05 MST"))
		} else {
			versionStr += fmt.Sprintf("\n构建时间: %s", buildInfo.BuildTime)
		}
	}

	versionStr += fmt.Sprintf("\nGo版本: %s", buildInfo.GoVersion)
	versionStr += fmt.Sprintf("\n平台: %s", buildInfo.Platform)

	return versionStr
}
