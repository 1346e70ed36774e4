// Package crypto 提供地址编码接口定义
//
// 📍 **地址编码服务 (Address Encoding Service)**
//
// 版本字节 ‖ hash160 → 追加4字节双SHA256校验和 → Base58 文本
//
// 🎯 **地址格式**
// - 字母表：123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz（不含 0 O I l）
// - 二进制形式：25字节（1 + 20 + 4）
// - 前导零字节 → 前导 '1'
//
// 🛡️ **解码错误**
// - ErrInvalidCharacter：出现字母表以外的字符（先于任何校验和计算）
// - ErrInvalidChecksum：末尾4字节与前缀的双SHA256不符
// - ErrInvalidLength：解码结果不是25字节
// - ErrInvalidVersion：版本字节与期望不符
package crypto

import "github.com/weisyn/keyaddr/pkg/types"

// AddressManager 定义地址编码/解码接口
type AddressManager interface {
	// Version 当前网络的版本字节
	Version() byte

	// BuildVersionedPayload 拼接 版本字节 ‖ hash160，不做任何变换
	BuildVersionedPayload(version byte, digest types.Digest160) types.VersionedPayload

	// Checksum 计算 SHA256(SHA256(payload)) 的前4字节
	Checksum(payload types.VersionedPayload) types.Checksum

	// AddressBytes 拼接 payload ‖ checksum 得到25字节二进制形式
	AddressBytes(payload types.VersionedPayload, checksum types.Checksum) types.AddressBytes

	// EncodeBase58Check 将 payload ‖ checksum 编码为 Base58 文本
	EncodeBase58Check(payload types.VersionedPayload, checksum types.Checksum) types.Address

	// DigestToAddress 使用当前版本字节将 hash160 编码为地址
	DigestToAddress(digest types.Digest160) (types.AddressBytes, types.Address)

	// Decode 解码地址为25字节二进制形式
	// 检查顺序：字符 → 校验和 → 长度
	Decode(address string) (types.AddressBytes, error)

	// DecodeVersioned 解码并拆出版本字节与 hash160
	DecodeVersioned(address string) (byte, types.Digest160, error)

	// Validate 解码并检查版本字节是否等于 expectedVersion
	Validate(address string, expectedVersion byte) error
}
