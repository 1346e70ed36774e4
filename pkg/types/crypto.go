// Package types provides cryptographic type definitions.
package types

import (
	"encoding/hex"
	"fmt"
)

// 固定长度常量
const (
	// SecretLength 私密种子长度（32字节）
	SecretLength = 32
	// UncompressedPublicKeyLength 未压缩公钥长度（0x04 + X + Y）
	UncompressedPublicKeyLength = 65
	// CompressedPublicKeyLength 压缩公钥长度（0x02/0x03 + X）
	CompressedPublicKeyLength = 33
	// Digest160Length hash160 摘要长度
	Digest160Length = 20
	// VersionedPayloadLength 版本字节 + hash160
	VersionedPayloadLength = 1 + Digest160Length
	// ChecksumLength 双SHA256校验和长度
	ChecksumLength = 4
	// AddressBytesLength 地址二进制形式长度
	AddressBytesLength = VersionedPayloadLength + ChecksumLength
)

// 公钥前缀
const (
	PubKeyPrefixUncompressed byte = 0x04
	PubKeyPrefixEven         byte = 0x02
	PubKeyPrefixOdd          byte = 0x03
)

// Secret 32字节私密种子
//
// ⚠️ 不可打印：String/GoString/Format 都只输出占位符，避免被日志或错误信息带出。
// 需要展示时显式调用 Hex()。
type Secret [SecretLength]byte

const redacted = "Secret(***)"

// String 返回脱敏占位符
func (s Secret) String() string { return redacted }

// GoString 返回脱敏占位符（%#v）
func (s Secret) GoString() string { return redacted }

// Format 覆盖所有格式化动词，保证 %x/%v/%s 都不会泄露内容
func (s Secret) Format(f fmt.State, _ rune) {
	_, _ = f.Write([]byte(redacted))
}

// Hex 返回十六进制编码（调用方显式要求展示时使用）
func (s Secret) Hex() string {
	return hex.EncodeToString(s[:])
}

// IsZero 是否全零
func (s Secret) IsZero() bool {
	return s == Secret{}
}

// Wipe 清零
func (s *Secret) Wipe() {
	for i := range s {
		s[i] = 0
	}
}

// KeyPair 公钥的两种序列化形式，完全由 Secret 推导
type KeyPair struct {
	Uncompressed [UncompressedPublicKeyLength]byte
	Compressed   [CompressedPublicKeyLength]byte
}

// X 返回公钥X坐标
func (k KeyPair) X() []byte {
	x := make([]byte, 32)
	copy(x, k.Uncompressed[1:33])
	return x
}

// Y 返回公钥Y坐标
func (k KeyPair) Y() []byte {
	y := make([]byte, 32)
	copy(y, k.Uncompressed[33:65])
	return y
}

// Digest160 RIPEMD160(SHA256(compressed_pubkey))
type Digest160 [Digest160Length]byte

// Hex 十六进制
func (d Digest160) Hex() string { return hex.EncodeToString(d[:]) }

// VersionedPayload 版本字节 ‖ Digest160
type VersionedPayload [VersionedPayloadLength]byte

// Version 版本字节
func (p VersionedPayload) Version() byte { return p[0] }

// Digest 载荷中的 hash160
func (p VersionedPayload) Digest() Digest160 {
	var d Digest160
	copy(d[:], p[1:])
	return d
}

// Checksum SHA256(SHA256(payload))[:4]
type Checksum [ChecksumLength]byte

// Hex 十六进制
func (c Checksum) Hex() string { return hex.EncodeToString(c[:]) }

// AddressBytes 地址的规范二进制形式：VersionedPayload ‖ Checksum
type AddressBytes [AddressBytesLength]byte

// Payload 前21字节
func (a AddressBytes) Payload() VersionedPayload {
	var p VersionedPayload
	copy(p[:], a[:VersionedPayloadLength])
	return p
}

// Checksum 末尾4字节
func (a AddressBytes) Checksum() Checksum {
	var c Checksum
	copy(c[:], a[VersionedPayloadLength:])
	return c
}

// Hex 十六进制
func (a AddressBytes) Hex() string { return hex.EncodeToString(a[:]) }

// Address Base58 文本地址
type Address string

// String 实现 fmt.Stringer
func (a Address) String() string { return string(a) }
