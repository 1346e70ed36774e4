// Package crypto 提供公钥推导接口定义
//
// 🔑 **公钥推导 (Key Derivation)**
//
// Secret(32字节) → KeyPair{未压缩65字节, 压缩33字节}
//
// 两种实现共用同一签名：
// - educational：确定性伪随机展开，只演示公钥的"形状"，不具备任何密码学安全性
// - secp256k1：真实的标量乘法（基点 G），用于需要真实地址的场景
package crypto

import "github.com/weisyn/keyaddr/pkg/types"

// KeyDeriver 定义 Secret 到 KeyPair 的纯函数映射
type KeyDeriver interface {
	// Name 推导方式名称（educational / secp256k1）
	Name() string

	// DeriveKeyPair 推导公钥
	//
	// 相同的 Secret 必须得到相同的 KeyPair（跨进程、跨运行）。
	// educational 实现对任意32字节都成功；secp256k1 实现对零标量或 ≥N 的标量返回错误。
	DeriveKeyPair(secret types.Secret) (types.KeyPair, error)
}
