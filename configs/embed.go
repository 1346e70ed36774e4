package configs

import _ "embed"

// EmbeddedConfigs 嵌入的配置文件内容
type EmbeddedConfigs struct {
	Default []byte
	Serve   []byte
}

// 嵌入的默认配置（在configs目录内直接引用）
//
//go:embed default/config.json
var defaultConfig []byte

//go:embed serve/config.json
var serveConfig []byte

// GetEmbeddedConfigs 获取所有嵌入的配置
func GetEmbeddedConfigs() *EmbeddedConfigs {
	return &EmbeddedConfigs{
		Default: defaultConfig,
		Serve:   serveConfig,
	}
}

// GetDefaultConfig 获取命令行默认配置（解码缓存关闭）
func GetDefaultConfig() []byte {
	return defaultConfig
}

// GetServeConfig 获取 serve 命令默认配置（解码缓存开启）
func GetServeConfig() []byte {
	return serveConfig
}
