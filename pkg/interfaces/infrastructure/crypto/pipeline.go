// Package crypto 提供地址推导流水线接口定义
//
// 🔗 **推导流水线**
// SecretSource → KeyDeriver → HashManager.Hash160 → AddressManager
//
// 每一阶段都是纯函数，流水线本身无共享可变状态，可安全并发调用。
package crypto

import (
	"context"

	"github.com/weisyn/keyaddr/pkg/types"
)

// Pipeline 定义从 Secret 到地址的完整推导
type Pipeline interface {
	// Derive 对给定 Secret 执行全部阶段
	Derive(secret types.Secret) (*types.DerivationResult, error)

	// DeriveFromText 文本 → SHA-256 → Derive
	DeriveFromText(input string) (*types.DerivationResult, error)

	// DeriveFromHex 64位十六进制 → Derive
	DeriveFromHex(hexStr string) (*types.DerivationResult, error)

	// DeriveFromMnemonic 24词助记词 → Derive
	DeriveFromMnemonic(mnemonic string) (*types.DerivationResult, error)

	// DeriveRandom 随机种子 → Derive，同时返回种子供调用方决定是否展示
	DeriveRandom() (types.Secret, *types.DerivationResult, error)

	// DeriveBatch 并发推导，结果与输入顺序一致
	// workers <= 0 时使用配置的并发数。
	DeriveBatch(ctx context.Context, secrets []types.Secret, workers int) ([]*types.DerivationResult, error)
}
