// Package pipeline 提供从 Secret 到地址的完整推导流水线
//
// 🔗 **推导阶段**
//
//	Secret(32) → KeyDeriver → KeyPair → Hash160 → Digest160
//	           → 版本字节 ‖ Digest160 → ‖ 校验和 → Base58 地址
//
// 每一阶段都是纯函数；Service 只持有只读依赖，可被任意多个 goroutine 同时调用。
// Secret 从不写入日志和错误信息，文本/十六进制/助记词入口在推导结束后清零临时种子。
package pipeline

import (
	"errors"
	"fmt"

	batchconfig "github.com/weisyn/keyaddr/internal/config/batch"
	clockimpl "github.com/weisyn/keyaddr/internal/core/infrastructure/clock"
	"github.com/weisyn/keyaddr/internal/core/infrastructure/crypto/key"
	"github.com/weisyn/keyaddr/internal/core/infrastructure/crypto/secret"
	cryptointf "github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/crypto"
	"github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/clock"
	"github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/keyaddr/pkg/types"
)

// Service 推导流水线实现
type Service struct {
	source    cryptointf.SecretSource
	deriver   cryptointf.KeyDeriver
	hasher    cryptointf.HashManager
	addresses cryptointf.AddressManager

	workers int
	metrics *Metrics
	logger  log.Logger
	clock   clock.Clock
}

// 确保Service实现了Pipeline接口
var _ cryptointf.Pipeline = (*Service)(nil)

// Option 可选配置
type Option func(*Service)

// WithWorkers 批量推导的默认并发数
func WithWorkers(workers int) Option {
	return func(s *Service) { s.workers = batchconfig.ResolveWorkers(workers) }
}

// WithMetrics 设置指标
func WithMetrics(metrics *Metrics) Option {
	return func(s *Service) { s.metrics = metrics }
}

// WithLogger 设置日志器
func WithLogger(logger log.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithClock 设置批量耗时统计使用的时钟
func WithClock(c clock.Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// NewService 创建推导流水线
//
// 参数：
//   - source: 种子来源
//   - deriver: 公钥推导器
//   - hasher: 哈希服务
//   - addresses: 地址编码服务（决定版本字节）
func NewService(
	source cryptointf.SecretSource,
	deriver cryptointf.KeyDeriver,
	hasher cryptointf.HashManager,
	addresses cryptointf.AddressManager,
	opts ...Option,
) *Service {
	s := &Service{
		source:    source,
		deriver:   deriver,
		hasher:    hasher,
		addresses: addresses,
		workers:   batchconfig.ResolveWorkers(0),
		clock:     clockimpl.NewSystemClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Deriver 当前使用的公钥推导方式
func (s *Service) Deriver() string {
	return s.deriver.Name()
}

// Derive 对给定 Secret 执行全部阶段
//
// 相同 Secret、相同推导方式、相同版本字节总是得到相同结果。
func (s *Service) Derive(secret types.Secret) (*types.DerivationResult, error) {
	keyPair, err := s.deriver.DeriveKeyPair(secret)
	if err != nil {
		s.metrics.observeFailure(failureReason(err))
		return nil, fmt.Errorf("公钥推导失败: %w", err)
	}

	digest := s.hasher.Hash160(keyPair.Compressed)
	payload := s.addresses.BuildVersionedPayload(s.addresses.Version(), digest)
	checksum := s.addresses.Checksum(payload)

	result := &types.DerivationResult{
		Deriver:      s.deriver.Name(),
		KeyPair:      keyPair,
		Digest160:    digest,
		Payload:      payload,
		Checksum:     checksum,
		AddressBytes: s.addresses.AddressBytes(payload, checksum),
		Address:      s.addresses.EncodeBase58Check(payload, checksum),
	}

	s.metrics.observeDerivation(result.Deriver)
	return result, nil
}

// DeriveFromText 文本 → SHA-256 → Derive
func (s *Service) DeriveFromText(input string) (*types.DerivationResult, error) {
	seed := s.source.SecretFromText(input)
	defer seed.Wipe()
	return s.Derive(seed)
}

// DeriveFromHex 64位十六进制 → Derive
func (s *Service) DeriveFromHex(hexStr string) (*types.DerivationResult, error) {
	seed, err := s.source.SecretFromHex(hexStr)
	if err != nil {
		s.metrics.observeFailure(failureReason(err))
		return nil, err
	}
	defer seed.Wipe()
	return s.Derive(seed)
}

// DeriveFromMnemonic 24词助记词 → Derive
func (s *Service) DeriveFromMnemonic(mnemonic string) (*types.DerivationResult, error) {
	seed, err := s.source.SecretFromMnemonic(mnemonic)
	if err != nil {
		s.metrics.observeFailure(failureReason(err))
		return nil, err
	}
	defer seed.Wipe()
	return s.Derive(seed)
}

// DeriveRandom 随机种子 → Derive
//
// 返回的 Secret 归调用方所有，是否展示、何时清零由调用方决定。
func (s *Service) DeriveRandom() (types.Secret, *types.DerivationResult, error) {
	seed, err := s.source.RandomSecret()
	if err != nil {
		s.metrics.observeFailure(failureReason(err))
		return types.Secret{}, nil, err
	}

	result, err := s.Derive(seed)
	if err != nil {
		seed.Wipe()
		return types.Secret{}, nil, err
	}
	return seed, result, nil
}

// failureReason 将错误映射为指标标签
func failureReason(err error) string {
	switch {
	case errors.Is(err, secret.ErrEntropyFailure):
		return reasonEntropy
	case errors.Is(err, secret.ErrInvalidSecret):
		return reasonInvalidSecret
	case errors.Is(err, secret.ErrInvalidMnemonic):
		return reasonInvalidMnemonic
	case errors.Is(err, key.ErrInvalidScalar):
		return reasonInvalidScalar
	default:
		return reasonDeriver
	}
}
