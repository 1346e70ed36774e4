// Package key 提供 Secret → KeyPair 的公钥推导实现
//
// 🔑 **两种推导方式**
// - educational：确定性伪随机展开，只演示公钥的"形状"（前缀、X、Y、奇偶性）
// - secp256k1：真实的基点标量乘法
//
// 两者签名一致，下游的 Hash160 / 地址编码无需感知差异。
package key

import (
	"errors"
	"fmt"

	addressconfig "github.com/weisyn/keyaddr/internal/config/address"
	"github.com/weisyn/keyaddr/internal/core/infrastructure/crypto/secp256k1"
	cryptointf "github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/crypto"
)

// 错误定义
var (
	// ErrUnknownDeriver 未知推导方式
	ErrUnknownDeriver = errors.New("unknown key deriver")
	// ErrInvalidScalar 标量为零或越界（仅 secp256k1）
	ErrInvalidScalar = secp256k1.ErrInvalidScalar
)

// 推导方式名称
const (
	ModeEducational = addressconfig.KeyDerivationEducational
	ModeSecp256k1   = addressconfig.KeyDerivationSecp256k1
)

// NewDeriver 按名称创建公钥推导器
//
// 参数：
//   - mode: educational | secp256k1，空字符串等同 educational
//
// 返回：
//   - cryptointf.KeyDeriver: 推导器
//   - error: 未知名称时返回 ErrUnknownDeriver
func NewDeriver(mode string) (cryptointf.KeyDeriver, error) {
	switch mode {
	case "", ModeEducational:
		return NewEducationalDeriver(), nil
	case ModeSecp256k1:
		return NewSecp256k1Deriver(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDeriver, mode)
	}
}

// Modes 返回支持的推导方式
func Modes() []string {
	return []string{ModeEducational, ModeSecp256k1}
}
