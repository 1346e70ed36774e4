// Package crypto 提供哈希计算接口定义
//
// #️⃣ **哈希计算服务**
// - SHA256：FIPS 180-4
// - RIPEMD160：1996 原始规范
// - DoubleSHA256：Base58Check 校验和
// - Hash160：RIPEMD160(SHA256(x))，压缩公钥 → 20字节摘要
package crypto

import "github.com/weisyn/keyaddr/pkg/types"

// HashManager 定义哈希计算相关接口
type HashManager interface {
	// SHA256 计算SHA-256哈希（32字节）
	SHA256(data []byte) []byte

	// DoubleSHA256 计算双重SHA-256哈希（32字节）
	DoubleSHA256(data []byte) []byte

	// RIPEMD160 计算RIPEMD-160哈希（20字节）
	RIPEMD160(data []byte) []byte

	// Hash160 对33字节压缩公钥计算 RIPEMD160(SHA256(pubkey))
	Hash160(compressed [types.CompressedPublicKeyLength]byte) types.Digest160

	// Hash160Bytes 对任意长度输入计算 RIPEMD160(SHA256(data))
	Hash160Bytes(data []byte) types.Digest160
}
