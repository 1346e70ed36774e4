// Package crypto 提供加密服务工厂实现
package crypto

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/weisyn/keyaddr/internal/core/infrastructure/crypto/address"
	"github.com/weisyn/keyaddr/internal/core/infrastructure/crypto/hash"
	"github.com/weisyn/keyaddr/internal/core/infrastructure/crypto/key"
	"github.com/weisyn/keyaddr/internal/core/infrastructure/crypto/pipeline"
	"github.com/weisyn/keyaddr/internal/core/infrastructure/crypto/secret"
	"github.com/weisyn/keyaddr/internal/core/infrastructure/storage/memory"
	config "github.com/weisyn/keyaddr/pkg/interfaces/config"
	"github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/clock"
	"github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/crypto"
	log "github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/log"
)

// DecodeCacheName 地址解码缓存在指标中的名称
const DecodeCacheName = "address_decode"

// ServiceInput 定义加密服务工厂的输入参数
type ServiceInput struct {
	ConfigProvider config.Provider       `optional:"false"`
	Logger         log.Logger            `optional:"true"`
	Entropy        io.Reader             `optional:"true"` // nil 使用 crypto/rand
	Registerer     prometheus.Registerer `optional:"true"` // nil 不注册指标
	Clock          clock.Clock           `optional:"true"` // nil 使用系统时钟
}

// ServiceOutput 定义加密服务工厂的输出结果
type ServiceOutput struct {
	SecretSource   crypto.SecretSource
	KeyDeriver     crypto.KeyDeriver
	HashManager    crypto.HashManager
	AddressManager crypto.AddressManager
	Pipeline       crypto.Pipeline

	// DecodeCache 未启用时为 nil
	DecodeCache *memory.Store
}

// CreateCryptoServices 创建加密服务
//
// 🏭 **加密服务工厂**：
// 按配置组装 SecretSource → KeyDeriver → HashManager → AddressManager → Pipeline。
//
// 参数：
//   - input: 服务创建所需的输入参数
//
// 返回：
//   - ServiceOutput: 创建的服务实例集合
//   - error: 推导方式未知或缓存创建失败
func CreateCryptoServices(input ServiceInput) (ServiceOutput, error) {
	// 初始化日志（处理可选Logger）
	var logger log.Logger
	if input.Logger != nil {
		logger = input.Logger.With("module", "crypto")
	} else {
		logger = &noopLogger{}
	}

	addressOptions := input.ConfigProvider.GetAddress()
	batchOptions := input.ConfigProvider.GetBatch()

	// 哈希服务
	hashService := hash.NewHashService()

	// 种子来源
	source := secret.NewSource(input.Entropy, hashService)

	// 公钥推导器
	deriver, err := key.NewDeriver(addressOptions.KeyDerivation)
	if err != nil {
		return ServiceOutput{}, fmt.Errorf("创建公钥推导器失败: %w", err)
	}
	logger.Infof("公钥推导方式: %s", deriver.Name())

	// 地址服务（可选解码缓存）
	addressOpts := []address.Option{address.WithLogger(logger)}
	var cache *memory.Store
	if addressOptions.Cache.Enabled {
		cache, err = memory.New(memory.Options{
			Name:         DecodeCacheName,
			LifeWindow:   addressOptions.Cache.LifeWindow,
			MaxEntries:   addressOptions.Cache.MaxEntries,
			MaxEntrySize: 64,
		}, logger)
		if err != nil {
			return ServiceOutput{}, fmt.Errorf("创建地址解码缓存失败: %w", err)
		}
		addressOpts = append(addressOpts, address.WithDecodeCache(cache))
		logger.Infof("地址解码缓存已启用: life_window=%s max_entries=%d",
			addressOptions.Cache.LifeWindow, addressOptions.Cache.MaxEntries)
	}
	addressService := address.NewAddressService(addressOptions.VersionByte, hashService, addressOpts...)
	logger.Infof("地址服务已初始化: network=%s version=0x%02x", addressOptions.Network, addressOptions.VersionByte)

	// 推导流水线
	pipelineService := pipeline.NewService(source, deriver, hashService, addressService,
		pipeline.WithWorkers(batchOptions.Workers),
		pipeline.WithMetrics(pipeline.NewMetrics(input.Registerer)),
		pipeline.WithLogger(logger),
		pipeline.WithClock(input.Clock),
	)

	logger.Debug("✅ 加密模块所有服务初始化完成")

	return ServiceOutput{
		SecretSource:   source,
		KeyDeriver:     deriver,
		HashManager:    hashService,
		AddressManager: addressService,
		Pipeline:       pipelineService,
		DecodeCache:    cache,
	}, nil
}

// noopLogger在module.go中已定义，这里直接使用
