// Package secp256k1 提供 secp256k1 椭圆曲线封装
//
// 🎯 **设计目的**：
// 封装 btcd/btcec 的基点标量乘法，对外只暴露 Secret → 公钥序列化 所需的最小接口。
// 标量范围校验使用 decred secp256k1 的 ModNScalar（常量时间）。
//
// 🔒 **安全原则**：
// - 使用经过验证的密码学库，不手写曲线运算
// - 私钥对象用完立即清零
package secp256k1

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ErrInvalidScalar 标量为零或不小于曲线阶 N
var ErrInvalidScalar = errors.New("invalid secp256k1 scalar")

// Curve 封装 secp256k1 椭圆曲线
type Curve struct{}

// NewCurve 创建新的 secp256k1 曲线实例
func NewCurve() *Curve {
	return &Curve{}
}

// ValidateScalar 校验32字节大端标量位于 [1, N-1]
//
// 返回：
//   - error: *ErrScalarOutOfRange（errors.Is(err, ErrInvalidScalar) 为 true）
func (c *Curve) ValidateScalar(scalar [32]byte) error {
	var s secp.ModNScalar
	overflow := s.SetByteSlice(scalar[:])
	defer s.Zero()

	if overflow {
		return &ErrScalarOutOfRange{Reason: "标量不小于曲线阶 N"}
	}
	if s.IsZero() {
		return &ErrScalarOutOfRange{Reason: "标量为零"}
	}
	return nil
}

// ScalarBaseMult 计算 scalar·G 并返回两种序列化形式
//
// 参数：
//   - scalar: 32字节大端标量
//
// 返回：
//   - uncompressed: 0x04 ‖ X ‖ Y
//   - compressed: 0x02/0x03 ‖ X
//   - error: 标量越界
//
// 📝 **使用示例**：
//
//	unc, comp, err := secp256k1.NewCurve().ScalarBaseMult(secret)
//	if err != nil {
//	    return fmt.Errorf("公钥推导失败: %w", err)
//	}
func (c *Curve) ScalarBaseMult(scalar [32]byte) (uncompressed [65]byte, compressed [33]byte, err error) {
	if err = c.ValidateScalar(scalar); err != nil {
		return uncompressed, compressed, err
	}

	privKey, pubKey := btcec.PrivKeyFromBytes(scalar[:])
	defer privKey.Zero()

	copy(uncompressed[:], pubKey.SerializeUncompressed())
	copy(compressed[:], pubKey.SerializeCompressed())
	return uncompressed, compressed, nil
}

// IsOnCurve 公钥（33或65字节）是否为曲线上的合法点
func (c *Curve) IsOnCurve(pubKey []byte) bool {
	_, err := btcec.ParsePubKey(pubKey)
	return err == nil
}

// 错误类型定义

// ErrScalarOutOfRange 标量越界
type ErrScalarOutOfRange struct {
	Reason string
}

func (e *ErrScalarOutOfRange) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidScalar, e.Reason)
}

func (e *ErrScalarOutOfRange) Unwrap() error {
	return ErrInvalidScalar
}
