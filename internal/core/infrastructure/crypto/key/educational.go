package key

import (
	cryptointf "github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/crypto"
	"github.com/weisyn/keyaddr/pkg/types"
)

// 线性同余发生器参数
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

var _ cryptointf.KeyDeriver = (*EducationalDeriver)(nil)

// EducationalDeriver 教学用公钥推导
//
// ⚠️ 不具备任何密码学安全性：输出可由输入直接反推，仅用于演示公钥结构。
//
// 算法：
//  1. seed = Σ secret[i]·(i+1)，i = 0..31
//  2. 迭代 seed = (seed·9301 + 49297) mod 233280，每次产出 ⌊seed·256/233280⌋
//  3. 前32字节为 X，后32字节为 Y；未压缩 = 0x04‖X‖Y
//  4. 压缩 = (Y 末字节为偶数 ? 0x02 : 0x03)‖X
type EducationalDeriver struct{}

// NewEducationalDeriver 创建教学用推导器
func NewEducationalDeriver() *EducationalDeriver {
	return &EducationalDeriver{}
}

// Name 推导方式名称
func (d *EducationalDeriver) Name() string {
	return ModeEducational
}

// DeriveKeyPair 对任意32字节都成功，error 恒为 nil
func (d *EducationalDeriver) DeriveKeyPair(secret types.Secret) (types.KeyPair, error) {
	var seed uint32
	for i, b := range secret {
		seed += uint32(b) * uint32(i+1)
	}

	var xy [64]byte
	for i := range xy {
		seed = (seed*lcgMultiplier + lcgIncrement) % lcgModulus
		xy[i] = byte(seed * 256 / lcgModulus)
	}

	var kp types.KeyPair
	kp.Uncompressed[0] = types.PubKeyPrefixUncompressed
	copy(kp.Uncompressed[1:], xy[:])

	kp.Compressed[0] = types.PubKeyPrefixEven
	if xy[63]&1 == 1 {
		kp.Compressed[0] = types.PubKeyPrefixOdd
	}
	copy(kp.Compressed[1:], xy[:32])
	return kp, nil
}
