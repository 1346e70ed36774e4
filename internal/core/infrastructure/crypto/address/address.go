// Package address 提供 Base58Check 地址编码与解码
//
// 📍 **地址推导的最后一步**
//
//	hash160(20) → 版本字节 ‖ hash160 (21) → ‖ 校验和(4) → Base58 文本
//
// 解码检查顺序固定：字符 → 校验和 → 长度 → 版本。
// 已成功解码的地址可写入可选的内存缓存；地址本身是公开数据。
package address

import (
	"errors"
	"fmt"

	"github.com/weisyn/keyaddr/internal/core/infrastructure/crypto/base58"
	"github.com/weisyn/keyaddr/internal/core/infrastructure/crypto/hash"
	cryptointf "github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/crypto"
	"github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/keyaddr/pkg/types"
)

var (
	// ErrInvalidCharacter 地址包含字母表以外的字符
	ErrInvalidCharacter = base58.ErrInvalidCharacter
	// ErrInvalidChecksum 校验和错误
	ErrInvalidChecksum = base58.ErrInvalidChecksum
	// ErrInvalidLength 解码结果不是25字节
	ErrInvalidLength = base58.ErrInvalidLength
	// ErrInvalidVersion 版本字节与期望不符
	ErrInvalidVersion = errors.New("invalid address version")
)

// DecodeCache 解码缓存（地址文本 → 25字节）
type DecodeCache interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// AddressService 地址编码服务
type AddressService struct {
	version byte
	hasher  cryptointf.HashManager
	cache   DecodeCache
	logger  log.Logger
}

// 确保AddressService实现了AddressManager接口
var _ cryptointf.AddressManager = (*AddressService)(nil)

// Option 可选配置
type Option func(*AddressService)

// WithDecodeCache 启用解码缓存
func WithDecodeCache(cache DecodeCache) Option {
	return func(s *AddressService) { s.cache = cache }
}

// WithLogger 设置日志器（仅用于缓存异常）
func WithLogger(logger log.Logger) Option {
	return func(s *AddressService) { s.logger = logger }
}

// NewAddressService 创建新的地址服务实例
//
// 参数：
//   - version: 当前网络的版本字节（主网 0x00）
//   - hasher: 哈希服务（nil 时使用默认实现）
//   - opts: 可选缓存、日志
func NewAddressService(version byte, hasher cryptointf.HashManager, opts ...Option) *AddressService {
	if hasher == nil {
		hasher = hash.NewHashService()
	}
	s := &AddressService{
		version: version,
		hasher:  hasher,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Version 当前网络的版本字节
func (s *AddressService) Version() byte {
	return s.version
}

// BuildVersionedPayload 版本字节 ‖ hash160
func (s *AddressService) BuildVersionedPayload(version byte, digest types.Digest160) types.VersionedPayload {
	var p types.VersionedPayload
	p[0] = version
	copy(p[1:], digest[:])
	return p
}

// Checksum SHA256(SHA256(payload)) 的前4字节
func (s *AddressService) Checksum(payload types.VersionedPayload) types.Checksum {
	var c types.Checksum
	copy(c[:], s.hasher.DoubleSHA256(payload[:])[:types.ChecksumLength])
	return c
}

// AddressBytes payload ‖ checksum
func (s *AddressService) AddressBytes(payload types.VersionedPayload, checksum types.Checksum) types.AddressBytes {
	var a types.AddressBytes
	copy(a[:types.VersionedPayloadLength], payload[:])
	copy(a[types.VersionedPayloadLength:], checksum[:])
	return a
}

// EncodeBase58Check 将 payload ‖ checksum 编码为 Base58 文本
func (s *AddressService) EncodeBase58Check(payload types.VersionedPayload, checksum types.Checksum) types.Address {
	a := s.AddressBytes(payload, checksum)
	return types.Address(base58.Encode(a[:]))
}

// DigestToAddress 使用当前版本字节完成编码
func (s *AddressService) DigestToAddress(digest types.Digest160) (types.AddressBytes, types.Address) {
	payload := s.BuildVersionedPayload(s.version, digest)
	checksum := s.Checksum(payload)
	return s.AddressBytes(payload, checksum), s.EncodeBase58Check(payload, checksum)
}

// Decode 解码地址为25字节二进制形式
//
// 返回：
//   - types.AddressBytes: 25字节
//   - error: ErrInvalidCharacter / ErrInvalidChecksum / ErrInvalidLength
func (s *AddressService) Decode(address string) (types.AddressBytes, error) {
	var out types.AddressBytes

	if cached, ok := s.cacheGet(address); ok {
		copy(out[:], cached)
		return out, nil
	}

	payload, err := base58.CheckDecode(address)
	if err != nil {
		return out, fmt.Errorf("地址解码失败: %w", err)
	}
	if len(payload) != types.VersionedPayloadLength {
		return out, fmt.Errorf("地址解码失败: %w: 期望 %d 字节，实际 %d 字节",
			ErrInvalidLength, types.AddressBytesLength, len(payload)+types.ChecksumLength)
	}

	var p types.VersionedPayload
	copy(p[:], payload)
	out = s.AddressBytes(p, s.Checksum(p))

	s.cacheSet(address, out)
	return out, nil
}

// DecodeVersioned 解码并拆出版本字节与 hash160
func (s *AddressService) DecodeVersioned(address string) (byte, types.Digest160, error) {
	decoded, err := s.Decode(address)
	if err != nil {
		return 0, types.Digest160{}, err
	}
	payload := decoded.Payload()
	return payload.Version(), payload.Digest(), nil
}

// Validate 解码并检查版本字节
func (s *AddressService) Validate(address string, expectedVersion byte) error {
	version, _, err := s.DecodeVersioned(address)
	if err != nil {
		return err
	}
	if version != expectedVersion {
		return fmt.Errorf("%w: 期望 0x%02x，实际 0x%02x", ErrInvalidVersion, expectedVersion, version)
	}
	return nil
}

// cacheGet 缓存异常只记录，不影响解码结果
func (s *AddressService) cacheGet(address string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	value, found, err := s.cache.Get(address)
	if err != nil {
		if s.logger != nil {
			s.logger.Warnf("读取地址缓存失败: %v", err)
		}
		return nil, false
	}
	if !found || len(value) != types.AddressBytesLength {
		return nil, false
	}
	return value, true
}

func (s *AddressService) cacheSet(address string, decoded types.AddressBytes) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(address, decoded[:]); err != nil && s.logger != nil {
		s.logger.Warnf("写入地址缓存失败: %v", err)
	}
}
