// Package address 提供地址推导配置
//
// 版本字节解析顺序：
//  1. 显式 version_byte
//  2. network 对应 chaincfg 参数的 PubKeyHashAddrID
//  3. 默认 mainnet（0x00）
package address

import (
	"fmt"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/weisyn/keyaddr/pkg/types"
)

// AddressOptions 地址推导配置选项
type AddressOptions struct {
	Network       string       `json:"network"`        // 网络名称
	VersionByte   byte         `json:"version_byte"`   // 最终生效的版本字节
	KeyDerivation string       `json:"key_derivation"` // educational | secp256k1
	Cache         CacheOptions `json:"cache"`          // 解码缓存
}

// CacheOptions 解码缓存配置
type CacheOptions struct {
	Enabled    bool          `json:"enabled"`
	LifeWindow time.Duration `json:"life_window"`
	MaxEntries int           `json:"max_entries"`
}

// Config 地址配置实现
type Config struct {
	options *AddressOptions
}

// networks 支持的网络
var networks = map[string]*chaincfg.Params{
	chaincfg.MainNetParams.Name:       &chaincfg.MainNetParams,
	chaincfg.TestNet3Params.Name:      &chaincfg.TestNet3Params,
	chaincfg.RegressionNetParams.Name: &chaincfg.RegressionNetParams,
	chaincfg.SigNetParams.Name:        &chaincfg.SigNetParams,
	chaincfg.SimNetParams.Name:        &chaincfg.SimNetParams,
}

// NetworkParams 按名称查找网络参数（大小写不敏感）
func NetworkParams(name string) (*chaincfg.Params, error) {
	params, ok := networks[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("未知网络: %q", name)
	}
	return params, nil
}

// New 创建地址配置实现
//
// 未知网络名称或非法 life_window 会被忽略并保留默认值，
// 需要严格校验时先调用 Validate。
func New(userConfig *types.UserAddressConfig) *Config {
	options := createDefaultAddressOptions()
	if userConfig != nil {
		applyUserAddressConfig(options, userConfig)
	}
	return &Config{options: options}
}

// Validate 严格校验用户配置
func Validate(userConfig *types.UserAddressConfig) error {
	if userConfig == nil {
		return nil
	}
	if userConfig.Network != nil {
		if _, err := NetworkParams(*userConfig.Network); err != nil {
			return err
		}
	}
	if userConfig.KeyDerivation != nil {
		switch *userConfig.KeyDerivation {
		case KeyDerivationEducational, KeyDerivationSecp256k1:
		default:
			return fmt.Errorf("未知公钥推导方式: %q", *userConfig.KeyDerivation)
		}
	}
	if c := userConfig.Cache; c != nil {
		if c.LifeWindow != nil {
			d, err := time.ParseDuration(*c.LifeWindow)
			if err != nil {
				return fmt.Errorf("解析 cache.life_window 失败: %w", err)
			}
			if d <= 0 {
				return fmt.Errorf("cache.life_window 必须大于0: %s", d)
			}
		}
		if c.MaxEntries != nil && *c.MaxEntries <= 0 {
			return fmt.Errorf("cache.max_entries 必须大于0: %d", *c.MaxEntries)
		}
	}
	return nil
}

// createDefaultAddressOptions 创建默认地址配置
func createDefaultAddressOptions() *AddressOptions {
	return &AddressOptions{
		Network:       defaultNetwork,
		VersionByte:   networks[defaultNetwork].PubKeyHashAddrID,
		KeyDerivation: defaultKeyDerivation,
		Cache: CacheOptions{
			Enabled:    defaultCacheEnabled,
			LifeWindow: defaultCacheLifeWindow,
			MaxEntries: defaultCacheMaxEntries,
		},
	}
}

// applyUserAddressConfig 应用用户地址配置覆盖默认值
func applyUserAddressConfig(options *AddressOptions, userConfig *types.UserAddressConfig) {
	if userConfig.Network != nil {
		if params, err := NetworkParams(*userConfig.Network); err == nil {
			options.Network = params.Name
			options.VersionByte = params.PubKeyHashAddrID
		}
	}
	// 显式版本字节优先
	if userConfig.VersionByte != nil {
		options.VersionByte = *userConfig.VersionByte
	}
	if userConfig.KeyDerivation != nil && *userConfig.KeyDerivation != "" {
		options.KeyDerivation = *userConfig.KeyDerivation
	}
	if c := userConfig.Cache; c != nil {
		if c.Enabled != nil {
			options.Cache.Enabled = *c.Enabled
		}
		if c.LifeWindow != nil {
			if d, err := time.ParseDuration(*c.LifeWindow); err == nil && d > 0 {
				options.Cache.LifeWindow = d
			}
		}
		if c.MaxEntries != nil && *c.MaxEntries > 0 {
			options.Cache.MaxEntries = *c.MaxEntries
		}
	}
}

// GetOptions 获取完整的地址配置选项
func (c *Config) GetOptions() *AddressOptions {
	return c.options
}

// GetVersionByte 获取生效的版本字节
func (c *Config) GetVersionByte() byte {
	return c.options.VersionByte
}

// GetKeyDerivation 获取公钥推导方式
func (c *Config) GetKeyDerivation() string {
	return c.options.KeyDerivation
}
