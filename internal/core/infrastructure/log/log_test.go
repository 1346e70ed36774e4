package log

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	logconfig "github.com/weisyn/keyaddr/internal/config/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// newFileLogger 创建只写文件的日志记录器
func newFileLogger(t *testing.T, level string) (*Logger, string) {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "logs", "keyaddr.log")
	cfg := logconfig.NewFromOptions(&logconfig.LogOptions{
		Level:      level,
		FilePath:   logPath,
		ToConsole:  false,
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	})
	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("创建日志记录器失败: %v", err)
	}
	return logger.(*Logger), logPath
}

// readEntries 读取JSON行日志
func readEntries(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("无法读取日志文件: %v", err)
	}
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(string(content)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("日志行不是有效JSON: %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

// TestFileLogLevels 测试文件输出的级别过滤
func TestFileLogLevels(t *testing.T) {
	logger, logPath := newFileLogger(t, WarnLevel)

	logger.Debug("调试日志")
	logger.Info("信息日志")
	logger.Warn("警告日志")
	logger.Errorf("错误日志 %d", 7)
	_ = logger.Sync()

	entries := readEntries(t, logPath)
	if len(entries) != 2 {
		t.Fatalf("期望2条日志，实际 %d", len(entries))
	}
	if entries[0]["message"] != "警告日志" || entries[0]["level"] != "warn" {
		t.Errorf("第一条日志不正确: %v", entries[0])
	}
	if entries[1]["message"] != "错误日志 7" || entries[1]["level"] != "error" {
		t.Errorf("第二条日志不正确: %v", entries[1])
	}
}

// TestStructuredLogging 测试结构化字段
func TestStructuredLogging(t *testing.T) {
	logger, logPath := newFileLogger(t, InfoLevel)

	logger.With("key1", "value1", "key2", 42).Info("结构化日志测试")
	_ = logger.Sync()

	entries := readEntries(t, logPath)
	if len(entries) != 1 {
		t.Fatalf("期望1条日志，实际 %d", len(entries))
	}
	entry := entries[0]
	if entry["key1"] != "value1" {
		t.Errorf("key1 不正确: %v", entry["key1"])
	}
	if v, ok := entry["key2"].(float64); !ok || int(v) != 42 {
		t.Errorf("key2 不正确: %v", entry["key2"])
	}
}

// TestOddArgsDropped 奇数个参数时忽略最后一个
func TestOddArgsDropped(t *testing.T) {
	fields := toZapFields("a", 1, "dangling")
	if len(fields) != 1 || fields[0].Key != "a" {
		t.Errorf("期望只有字段 a，实际 %v", fields)
	}

	fields = toZapFields(3, "x")
	if len(fields) != 1 || fields[0].Key != "3" {
		t.Errorf("非字符串键应转换为字符串，实际 %v", fields)
	}
}

// TestModuleLogger 测试 module 字段
func TestModuleLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	base := NewFromZap(zap.New(core))

	NewModuleLogger(base, "crypto").Info("hello")
	NewModuleZapLogger(base.GetZapLogger(), "api").Info("world")

	entries := recorded.All()
	if len(entries) != 2 {
		t.Fatalf("期望2条日志，实际 %d", len(entries))
	}
	if got := entries[0].ContextMap()["module"]; got != "crypto" {
		t.Errorf("module 字段不正确: %v", got)
	}
	if got := entries[1].ContextMap()["module"]; got != "api" {
		t.Errorf("module 字段不正确: %v", got)
	}

	if NewModuleLogger(nil, "x") != nil {
		t.Error("nil 基础 logger 应返回 nil")
	}
	if NewModuleZapLogger(nil, "x") != nil {
		t.Error("nil 基础 zap logger 应返回 nil")
	}
}

// TestSetLogger 测试设置和切换全局日志记录器
func TestSetLogger(t *testing.T) {
	original := GetLogger()
	defer SetLogger(original)

	core, recorded := observer.New(zapcore.InfoLevel)
	custom := NewFromZap(zap.New(core))
	SetLogger(custom)

	if GetLogger() != custom {
		t.Fatal("SetLogger应将全局日志记录器设置为 custom")
	}

	Info("全局信息")
	Warnf("全局警告 %s", "x")
	Debug("不应出现")
	With("run_id", "r1").Error("带字段")

	if recorded.Len() != 3 {
		t.Fatalf("期望3条日志，实际 %d", recorded.Len())
	}
	if got := recorded.All()[2].ContextMap()["run_id"]; got != "r1" {
		t.Errorf("run_id 字段不正确: %v", got)
	}

	// nil 不替换
	SetLogger(nil)
	if GetLogger() != custom {
		t.Error("SetLogger(nil) 不应替换全局日志记录器")
	}
}

// TestResetDefault 测试重置默认日志记录器
func TestResetDefault(t *testing.T) {
	original := GetLogger()
	defer SetLogger(original)

	custom := NewNop()
	SetLogger(custom)
	ResetDefault()

	if GetLogger() == custom {
		t.Error("ResetDefault应该将全局日志记录器重置为默认配置")
	}
}
