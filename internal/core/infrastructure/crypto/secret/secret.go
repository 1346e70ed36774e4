// Package secret 提供32字节私密种子的产生与转换
//
// 🌱 **种子来源**
// - RandomSecret：从注入的熵源读取（默认 crypto/rand.Reader）
// - SecretFromText：文本 UTF-8 字节的单次 SHA-256
// - SecretFromHex：64位十六进制
// - SecretToMnemonic / SecretFromMnemonic：BIP-39 24词备份形式
//
// 🔒 **安全原则**
// - 错误信息中不包含任何输入内容
// - 熵源读取失败时清零已读取的部分字节，不返回、不重试
package secret

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/weisyn/keyaddr/internal/core/infrastructure/crypto/hash"
	cryptointf "github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/crypto"
	"github.com/weisyn/keyaddr/pkg/types"
)

// 错误定义
var (
	// ErrEntropyFailure 熵源无法提供足够字节
	ErrEntropyFailure = errors.New("entropy failure")
	// ErrInvalidSecret 十六进制种子格式错误
	ErrInvalidSecret = errors.New("invalid secret")
	// ErrInvalidMnemonic 助记词无效（单词、校验和或词数）
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
)

// 确保Source实现了cryptointf.SecretSource接口
var _ cryptointf.SecretSource = (*Source)(nil)

// Source 私密种子来源
type Source struct {
	entropy io.Reader
	hasher  cryptointf.HashManager
}

// NewSource 创建种子来源
//
// 参数：
//   - entropy: 熵源，nil 时使用 crypto/rand.Reader
//   - hasher: 哈希服务，nil 时使用默认实现
func NewSource(entropy io.Reader, hasher cryptointf.HashManager) *Source {
	if entropy == nil {
		entropy = rand.Reader
	}
	if hasher == nil {
		hasher = hash.NewHashService()
	}
	return &Source{
		entropy: entropy,
		hasher:  hasher,
	}
}

// RandomSecret 从熵源读取32字节
func (s *Source) RandomSecret() (types.Secret, error) {
	var secret types.Secret
	n, err := io.ReadFull(s.entropy, secret[:])
	if err != nil {
		secret.Wipe()
		return types.Secret{}, fmt.Errorf("%w: 读取熵源失败 (%d/%d 字节): %w", ErrEntropyFailure, n, types.SecretLength, err)
	}
	return secret, nil
}

// SecretFromText 对文本的 UTF-8 字节做一次 SHA-256
func (s *Source) SecretFromText(input string) types.Secret {
	var secret types.Secret
	copy(secret[:], s.hasher.SHA256([]byte(input)))
	return secret
}

// SecretFromHex 解析64位十六进制种子
//
// 接受首尾空白和 0x/0X 前缀。
func (s *Source) SecretFromHex(hexStr string) (types.Secret, error) {
	trimmed := strings.TrimSpace(hexStr)
	trimmed = strings.TrimPrefix(strings.TrimPrefix(trimmed, "0x"), "0X")
	if len(trimmed) != hex.EncodedLen(types.SecretLength) {
		return types.Secret{}, fmt.Errorf("%w: 需要 %d 个十六进制字符，实际 %d", ErrInvalidSecret, hex.EncodedLen(types.SecretLength), len(trimmed))
	}

	var secret types.Secret
	if _, err := hex.Decode(secret[:], []byte(trimmed)); err != nil {
		secret.Wipe()
		return types.Secret{}, fmt.Errorf("%w: 包含非十六进制字符", ErrInvalidSecret)
	}
	return secret, nil
}
