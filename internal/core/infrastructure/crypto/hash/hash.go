// Package hash 提供地址推导所需的哈希计算
//
// 所有函数都是纯函数，不缓存任何输入或结果：
// 输入可能是由 Secret 派生出的数据，不应在进程内存中额外留存。
package hash

import (
	"crypto/sha256"
	"crypto/subtle"

	cryptointf "github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/crypto"
	"github.com/weisyn/keyaddr/pkg/types"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // RIPEMD-160 是地址格式的一部分
)

// 确保HashService实现了cryptointf.HashManager接口
var _ cryptointf.HashManager = (*HashService)(nil)

// HashService 提供哈希计算功能
type HashService struct{}

// NewHashService 创建新的哈希服务
func NewHashService() *HashService {
	return &HashService{}
}

// SHA256 计算SHA-256哈希
//
// 参数:
//   - data: 要计算哈希的数据
//
// 返回:
//   - []byte: 32字节的SHA-256哈希结果
func (s *HashService) SHA256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// RIPEMD160 计算RIPEMD-160哈希
//
// 参数:
//   - data: 要计算哈希的数据
//
// 返回:
//   - []byte: 20字节的RIPEMD-160哈希结果
func (s *HashService) RIPEMD160(data []byte) []byte {
	hasher := ripemd160.New()
	hasher.Write(data)
	return hasher.Sum(nil)
}

// DoubleSHA256 计算双重SHA-256哈希
//
// 返回:
//   - []byte: 32字节的 SHA256(SHA256(data))
func (s *HashService) DoubleSHA256(data []byte) []byte {
	sum := DoubleSHA256Sum(data)
	return sum[:]
}

// DoubleSHA256Sum 返回 SHA256(SHA256(data)) 的定长结果
func DoubleSHA256Sum(data []byte) [sha256.Size]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// Hash160 对压缩公钥计算 RIPEMD160(SHA256(pubkey))
func (s *HashService) Hash160(compressed [types.CompressedPublicKeyLength]byte) types.Digest160 {
	return s.Hash160Bytes(compressed[:])
}

// Hash160Bytes 对任意长度输入计算 RIPEMD160(SHA256(data))
func (s *HashService) Hash160Bytes(data []byte) types.Digest160 {
	var digest types.Digest160
	copy(digest[:], s.RIPEMD160(s.SHA256(data)))
	return digest
}

// ConstantTimeCompare 在常量时间内比较两个哈希值是否相等
//
// 参数:
//   - a: 第一个哈希值
//   - b: 第二个哈希值
//
// 返回:
//   - bool: 如果两个哈希值相等返回true，否则返回false
func ConstantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
