// Package log 提供日志级别接口定义
//
// 本文件只做级别类型的兼容别名，级别本体定义在 pkg/types。
package log

import "github.com/weisyn/keyaddr/pkg/types"

// LogLevel 兼容别名（迁至 pkg/types）
type LogLevel = types.LogLevel

// 常量别名（向后兼容）
const (
	DebugLevel = types.DebugLevel
	InfoLevel  = types.InfoLevel
	WarnLevel  = types.WarnLevel
	ErrorLevel = types.ErrorLevel
	FatalLevel = types.FatalLevel
)
