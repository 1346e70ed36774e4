package base58

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCharacter 出现字母表以外的字符
	ErrInvalidCharacter = errors.New("invalid base58 character")
	// ErrInvalidChecksum 校验和错误
	ErrInvalidChecksum = errors.New("invalid checksum")
	// ErrInvalidLength 解码长度不足以容纳校验和
	ErrInvalidLength = errors.New("invalid length")
)

// InvalidCharacterError 记录第一个非法字符及其字节偏移
//
// errors.Is(err, ErrInvalidCharacter) 为 true。
type InvalidCharacterError struct {
	Char     rune
	Position int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%s %q at position %d", ErrInvalidCharacter, e.Char, e.Position)
}

// Is 支持 errors.Is 匹配哨兵错误
func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}
