// Package base58 提供比特币字母表的 Base58 / Base58Check 编解码
//
// 📐 **算法**
// - 编码：对字节数组做逐位长除法（反复 divmod 58），不依赖定长整数或 math/big
// - 解码：先校验全部字符，再做乘加还原
// - 前导零字节 ↔ 前导 '1'，与整数值本身的前导零无关
package base58

// Alphabet 比特币 Base58 字母表（顺序敏感，不含 0 O I l）
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const radix = 58

// decodeMap ASCII → 字母表下标，-1 表示非法
var decodeMap [128]int8

func init() {
	for i := range decodeMap {
		decodeMap[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		decodeMap[Alphabet[i]] = int8(i)
	}
}

// Encode 将字节编码为 Base58 文本
//
// 参数:
//   - input: 任意长度字节，空输入返回空字符串
//
// 返回:
//   - string: 每个前导 0x00 字节对应一个前导 '1'
func Encode(input []byte) string {
	zeros := 0
	for zeros < len(input) && input[zeros] == 0 {
		zeros++
	}

	// 被除数副本，逐轮缩短
	num := make([]byte, len(input)-zeros)
	copy(num, input[zeros:])

	// log(256)/log(58) ≈ 1.37
	digits := make([]byte, 0, len(num)*138/100+1)
	for len(num) > 0 {
		rem := 0
		for i := range num {
			acc := rem<<8 | int(num[i])
			num[i] = byte(acc / radix)
			rem = acc % radix
		}
		digits = append(digits, Alphabet[rem])

		for len(num) > 0 && num[0] == 0 {
			num = num[1:]
		}
	}

	out := make([]byte, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		out[i] = Alphabet[0]
	}
	// digits 为低位在前
	for i, d := range digits {
		out[len(out)-1-i] = d
	}
	return string(out)
}

// Decode 将 Base58 文本解码为字节
//
// 所有字符先于任何算术被校验；遇到第一个非法字符返回 *InvalidCharacterError。
func Decode(input string) ([]byte, error) {
	for pos, r := range input {
		if r >= 128 || decodeMap[r] < 0 {
			return nil, &InvalidCharacterError{Char: r, Position: pos}
		}
	}

	zeros := 0
	for zeros < len(input) && input[zeros] == Alphabet[0] {
		zeros++
	}

	// log(58)/log(256) ≈ 0.733，向上取整
	size := (len(input)-zeros)*733/1000 + 1
	b256 := make([]byte, size)
	length := 0
	for i := zeros; i < len(input); i++ {
		carry := int(decodeMap[input[i]])
		j := 0
		for k := size - 1; (carry != 0 || j < length) && k >= 0; k-- {
			carry += radix * int(b256[k])
			b256[k] = byte(carry)
			carry >>= 8
			j++
		}
		length = j
	}

	start := size - length
	for start < size && b256[start] == 0 {
		start++
	}

	out := make([]byte, zeros+size-start)
	copy(out[zeros:], b256[start:])
	return out, nil
}

// IsValid 字符串是否只包含字母表字符
func IsValid(input string) bool {
	for _, r := range input {
		if r >= 128 || decodeMap[r] < 0 {
			return false
		}
	}
	return true
}
