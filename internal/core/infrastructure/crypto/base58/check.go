package base58

import (
	"fmt"

	"github.com/weisyn/keyaddr/internal/core/infrastructure/crypto/hash"
)

// ChecksumLength Base58Check 校验和长度
const ChecksumLength = 4

// Checksum 返回 SHA256(SHA256(payload)) 的前4字节
func Checksum(payload []byte) [ChecksumLength]byte {
	sum := hash.DoubleSHA256Sum(payload)
	var c [ChecksumLength]byte
	copy(c[:], sum[:ChecksumLength])
	return c
}

// CheckEncode 追加4字节校验和后编码
func CheckEncode(payload []byte) string {
	c := Checksum(payload)
	buf := make([]byte, 0, len(payload)+ChecksumLength)
	buf = append(buf, payload...)
	buf = append(buf, c[:]...)
	return Encode(buf)
}

// CheckDecode 解码并校验尾部校验和
//
// 返回:
//   - []byte: 去掉校验和后的载荷
//   - error: ErrInvalidCharacter / ErrInvalidLength（不足5字节）/ ErrInvalidChecksum
func CheckDecode(input string) ([]byte, error) {
	decoded, err := Decode(input)
	if err != nil {
		return nil, err
	}
	if len(decoded) < ChecksumLength+1 {
		return nil, fmt.Errorf("%w: 解码后仅 %d 字节", ErrInvalidLength, len(decoded))
	}

	payload := decoded[:len(decoded)-ChecksumLength]
	expected := Checksum(payload)
	if !hash.ConstantTimeCompare(expected[:], decoded[len(decoded)-ChecksumLength:]) {
		return nil, ErrInvalidChecksum
	}
	return payload, nil
}
