package key

import (
	"fmt"

	"github.com/weisyn/keyaddr/internal/core/infrastructure/crypto/secp256k1"
	cryptointf "github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/crypto"
	"github.com/weisyn/keyaddr/pkg/types"
)

var _ cryptointf.KeyDeriver = (*Secp256k1Deriver)(nil)

// Secp256k1Deriver 使用真实的 secp256k1 基点标量乘法推导公钥
type Secp256k1Deriver struct {
	curve *secp256k1.Curve
}

// NewSecp256k1Deriver 创建 secp256k1 推导器
func NewSecp256k1Deriver() *Secp256k1Deriver {
	return &Secp256k1Deriver{curve: secp256k1.NewCurve()}
}

// Name 推导方式名称
func (d *Secp256k1Deriver) Name() string {
	return ModeSecp256k1
}

// DeriveKeyPair 计算 secret·G
//
// 零标量或 ≥N 的标量返回 ErrInvalidScalar；概率上只会出现在构造输入中。
func (d *Secp256k1Deriver) DeriveKeyPair(secret types.Secret) (types.KeyPair, error) {
	unc, comp, err := d.curve.ScalarBaseMult(secret)
	if err != nil {
		return types.KeyPair{}, fmt.Errorf("secp256k1 公钥推导失败: %w", err)
	}
	return types.KeyPair{Uncompressed: unc, Compressed: comp}, nil
}
