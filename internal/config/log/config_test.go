package log

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/weisyn/keyaddr/pkg/types"
)

func TestDefaults(t *testing.T) {
	cfg := New(nil)
	if cfg.GetLevel() != "info" || cfg.GetZapLevel() != zapcore.InfoLevel {
		t.Errorf("默认级别应为 info，实际 %s", cfg.GetLevel())
	}
	if cfg.GetFilePath() != "stderr" || !cfg.IsConsoleEnabled() {
		t.Errorf("默认应输出到 stderr 控制台")
	}
	if cfg.GetMaxSize() != 100 || cfg.GetMaxBackups() != 10 || cfg.GetMaxAge() != 30 || !cfg.IsCompressionEnabled() {
		t.Errorf("轮转默认值不正确: %+v", cfg.GetOptions())
	}
}

func TestUserOverrides(t *testing.T) {
	t.Run("文件路径关闭控制台", func(t *testing.T) {
		cfg := New(&types.UserLogConfig{FilePath: types.StringPtr("/tmp/keyaddr.log")})
		if cfg.IsConsoleEnabled() {
			t.Error("指定文件路径时默认不应输出到控制台")
		}
	})

	t.Run("显式开启控制台", func(t *testing.T) {
		cfg := New(&types.UserLogConfig{
			FilePath:  types.StringPtr("/tmp/keyaddr.log"),
			ToConsole: types.BoolPtr(true),
		})
		if !cfg.IsConsoleEnabled() {
			t.Error("to_console=true 应生效")
		}
	})

	t.Run("未知级别回退 info", func(t *testing.T) {
		cfg := New(&types.UserLogConfig{Level: types.StringPtr("verbose")})
		if cfg.GetZapLevel() != zapcore.InfoLevel {
			t.Errorf("未知级别应回退 info，实际 %v", cfg.GetZapLevel())
		}
	})

	t.Run("debug", func(t *testing.T) {
		cfg := New(&types.UserLogConfig{Level: types.StringPtr("debug")})
		if cfg.GetZapLevel() != zapcore.DebugLevel {
			t.Errorf("期望 debug，实际 %v", cfg.GetZapLevel())
		}
	})
}

func TestNewFromOptions(t *testing.T) {
	cfg := NewFromOptions(&LogOptions{Level: "warn"})
	if cfg.GetZapLevel() != zapcore.WarnLevel {
		t.Errorf("期望 warn，实际 %v", cfg.GetZapLevel())
	}
	if NewFromOptions(nil).GetLevel() != "info" {
		t.Error("nil 选项应使用默认配置")
	}
}
