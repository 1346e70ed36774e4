// Package types provides configuration type definitions.
package types

// AppConfig 应用程序根配置
// 只包含JSON配置文件解析所需的结构，不包含任何内部字段
// 默认值和完整配置结构在 internal/config/*/defaults.go 和 internal/config/*/config.go 中定义
//
// 🔧 零值陷阱处理：字段一律使用指针
// - nil: 用户未设置，使用系统默认值
// - &value: 用户明确设置，即使是零值（例如 version_byte = 0）也会被采用
type AppConfig struct {
	// 应用名称
	AppName *string `json:"app_name,omitempty"`

	// 日志配置
	Log *UserLogConfig `json:"log,omitempty"`

	// 地址推导配置
	Address *UserAddressConfig `json:"address,omitempty"`

	// HTTP API 配置
	API *UserAPIConfig `json:"api,omitempty"`

	// 批量推导配置
	Batch *UserBatchConfig `json:"batch,omitempty"`
}

// UserLogConfig 用户日志配置
// 只包含JSON配置文件中实际出现的字段
type UserLogConfig struct {
	Level     *string `json:"level,omitempty"`      // 日志级别：debug, info, warn, error, fatal
	FilePath  *string `json:"file_path,omitempty"`  // 日志文件路径（stdout/stderr 表示控制台）
	ToConsole *bool   `json:"to_console,omitempty"` // 是否输出到控制台
}

// UserAddressConfig 用户地址配置
type UserAddressConfig struct {
	// Network 网络名称：mainnet | testnet3 | regtest | signet | simnet
	Network *string `json:"network,omitempty"`

	// VersionByte 显式版本字节，优先级高于 Network
	VersionByte *uint8 `json:"version_byte,omitempty"`

	// KeyDerivation 公钥推导方式：educational | secp256k1
	KeyDerivation *string `json:"key_derivation,omitempty"`

	// Cache 地址解码缓存
	Cache *UserAddressCacheConfig `json:"cache,omitempty"`
}

// UserAddressCacheConfig 地址解码缓存配置
type UserAddressCacheConfig struct {
	Enabled    *bool   `json:"enabled,omitempty"`
	LifeWindow *string `json:"life_window,omitempty"` // 例如 "10m"
	MaxEntries *int    `json:"max_entries,omitempty"`
}

// UserAPIConfig 用户API配置
type UserAPIConfig struct {
	Listen        *string `json:"listen,omitempty"`         // 监听地址，例如 127.0.0.1:8080
	EnableMetrics *bool   `json:"enable_metrics,omitempty"` // 是否暴露 /metrics
}

// UserBatchConfig 用户批量推导配置
type UserBatchConfig struct {
	Workers *int `json:"workers,omitempty"` // 并发数，0 表示 runtime.NumCPU()
}

// BoolPtr 创建bool指针，用于明确表示用户设置了该值
func BoolPtr(v bool) *bool {
	return &v
}

// IntPtr 创建int指针，用于明确表示用户设置了该值
func IntPtr(v int) *int {
	return &v
}

// StringPtr 创建string指针，用于明确表示用户设置了该值
func StringPtr(v string) *string {
	return &v
}

// Uint8Ptr 创建uint8指针，用于明确表示用户设置了该值（包括 0x00）
func Uint8Ptr(v uint8) *uint8 {
	return &v
}
