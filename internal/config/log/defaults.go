package log

import (
	"go.uber.org/zap/zapcore"
)

// 日志配置默认值
const (
	// defaultLogLevel 默认日志级别
	defaultLogLevel = "info"

	// defaultToConsole 默认输出到控制台
	defaultToConsole = true

	// defaultFilePath 默认写 stderr，保证 CLI 的 stdout 只有结果
	defaultFilePath = "stderr"

	// defaultMaxSize 单个日志文件最大大小(MB)
	defaultMaxSize = 100

	// defaultMaxBackups 最大备份文件数
	defaultMaxBackups = 10

	// defaultMaxAge 日志文件最大保留天数
	defaultMaxAge = 30

	// defaultCompress 默认压缩历史日志
	defaultCompress = true

	// defaultEnableCaller 默认启用调用者信息
	defaultEnableCaller = true

	// defaultEnableStacktrace 默认对Error级别启用堆栈跟踪
	defaultEnableStacktrace = false
)

// 默认的日志级别映射
var defaultLevelMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
	"panic": zapcore.PanicLevel,
	"fatal": zapcore.FatalLevel,
}
