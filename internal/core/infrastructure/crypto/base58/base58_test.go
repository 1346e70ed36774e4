package base58

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/rand"
	"strings"
	"testing"

	btcbase58 "github.com/btcsuite/btcd/btcutil/base58"
	mrtron "github.com/mr-tron/base58"

	"github.com/weisyn/keyaddr/internal/core/infrastructure/crypto/hash"
)

// 参考向量（比特币 base58_encode_decode 测试集）
var vectors = []struct {
	hex     string
	encoded string
}{
	{"", ""},
	{"61", "2g"},
	{"626262", "a3gV"},
	{"636363", "aPEr"},
	{"73696d706c792061206c6f6e6720737472696e67", "2cFupjhnEsSn59qHXstmK2ffpLv2"},
	{"00eb15231dfceb60925886b67d065299925915aeb172c06647", "1NS17iag9jJgTHD1VXjvLCEnZuQ3rJDE9L"},
	{"516b6fcd0f", "ABnLTmg"},
	{"bf4f89001e670274dd", "3SEo3LWLoPntC"},
	{"572e4794", "3EFU7m"},
	{"ecac89cad93923c02321", "EJDM8drfXA6uyA"},
	{"10c8511e", "Rt5zm"},
	{"00000000000000000000", "1111111111"},
}

func TestAlphabet(t *testing.T) {
	if len(Alphabet) != 58 {
		t.Fatalf("字母表长度 = %d, 期望 58", len(Alphabet))
	}
	for _, c := range "0OIl" {
		if strings.ContainsRune(Alphabet, c) {
			t.Errorf("字母表不应包含 %q", c)
		}
	}
}

func TestEncodeVectors(t *testing.T) {
	for _, v := range vectors {
		t.Run(v.encoded, func(t *testing.T) {
			raw, _ := hex.DecodeString(v.hex)
			if got := Encode(raw); got != v.encoded {
				t.Errorf("Encode(%s) = %q, 期望 %q", v.hex, got, v.encoded)
			}

			decoded, err := Decode(v.encoded)
			if err != nil {
				t.Fatalf("Decode(%q) 失败: %v", v.encoded, err)
			}
			if !bytes.Equal(decoded, raw) {
				t.Errorf("Decode(%q) = %x, 期望 %s", v.encoded, decoded, v.hex)
			}
		})
	}
}

// TestAgainstReferenceImplementations 与 btcutil 和 mr-tron 交叉验证
func TestAgainstReferenceImplementations(t *testing.T) {
	rng := rand.New(rand.NewSource(58))

	for i := 0; i < 500; i++ {
		n := rng.Intn(40)
		buf := make([]byte, n)
		rng.Read(buf)
		// 约三分之一的样本带前导零
		for j := 0; j < n && rng.Intn(3) == 0; j++ {
			buf[j] = 0
		}

		encoded := Encode(buf)
		if ref := btcbase58.Encode(buf); encoded != ref {
			t.Fatalf("Encode(%x) = %q, btcutil = %q", buf, encoded, ref)
		}
		if ref := mrtron.Encode(buf); encoded != ref {
			t.Fatalf("Encode(%x) = %q, mr-tron = %q", buf, encoded, ref)
		}

		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(%q) 失败: %v", encoded, err)
		}
		if !bytes.Equal(decoded, buf) {
			t.Fatalf("往返失败: %x → %q → %x", buf, encoded, decoded)
		}
	}
}

func TestLeadingZeros(t *testing.T) {
	for zeros := 0; zeros <= 25; zeros++ {
		buf := make([]byte, 25)
		if zeros < 25 {
			buf[zeros] = 0x2a
		}
		encoded := Encode(buf)

		got := len(encoded) - len(strings.TrimLeft(encoded, "1"))
		if got != zeros {
			t.Errorf("%d 个前导零字节编码出 %d 个前导 '1': %q", zeros, got, encoded)
		}

		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode 失败: %v", err)
		}
		if len(decoded) != 25 || !bytes.Equal(decoded, buf) {
			t.Errorf("前导零往返失败: %x", decoded)
		}
	}
}

func TestDecodeInvalidCharacter(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		char     rune
		position int
	}{
		{"零", "1A0B", '0', 2},
		{"大写O", "O", 'O', 0},
		{"大写I", "abcI", 'I', 3},
		{"小写l", "l111", 'l', 0},
		{"空格", "2g 2g", ' ', 2},
		{"非ASCII", "2gé", 'é', 2},
		{"第一个非法字符", "0OIl", '0', 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.input)
			if !errors.Is(err, ErrInvalidCharacter) {
				t.Fatalf("期望 ErrInvalidCharacter, 实际 %v", err)
			}
			var charErr *InvalidCharacterError
			if !errors.As(err, &charErr) {
				t.Fatalf("期望 *InvalidCharacterError, 实际 %T", err)
			}
			if charErr.Char != tc.char || charErr.Position != tc.position {
				t.Errorf("错误位置 = %q@%d, 期望 %q@%d", charErr.Char, charErr.Position, tc.char, tc.position)
			}
			if IsValid(tc.input) {
				t.Errorf("IsValid(%q) 应为 false", tc.input)
			}
		})
	}
}

func TestCheckEncodeDecode(t *testing.T) {
	// 版本 0x00 + 全零摘要
	payload := make([]byte, 21)
	encoded := CheckEncode(payload)
	if encoded != "1111111111111111111114oLvT2" {
		t.Errorf("CheckEncode(零载荷) = %q", encoded)
	}

	decoded, err := CheckDecode(encoded)
	if err != nil {
		t.Fatalf("CheckDecode 失败: %v", err)
	}
	if !bytes.Equal(decoded, payload) {
		t.Errorf("CheckDecode = %x, 期望 %x", decoded, payload)
	}

	if c := Checksum(payload); hex.EncodeToString(c[:]) != "94a00911" {
		t.Errorf("Checksum(零载荷) = %x", c)
	}
}

func TestChecksumMatchesHashService(t *testing.T) {
	hashService := hash.NewHashService()
	payloads := [][]byte{
		{},
		make([]byte, 21),
		[]byte("correct horse battery staple"),
	}
	for _, payload := range payloads {
		c := Checksum(payload)
		if expected := hashService.DoubleSHA256(payload)[:ChecksumLength]; !bytes.Equal(c[:], expected) {
			t.Errorf("Checksum(%x) = %x, 期望 %x", payload, c, expected)
		}
	}
	t.Logf("✅ 校验和与 HashService.DoubleSHA256 前4字节一致")
}

func TestCheckDecodeErrors(t *testing.T) {
	t.Run("校验和错误", func(t *testing.T) {
		payload, _ := hex.DecodeString("00eb15231dfceb60925886b67d065299925915aeb1")
		c := Checksum(payload)
		raw := append(append([]byte{}, payload...), c[:]...)
		if _, err := CheckDecode(Encode(raw)); err != nil {
			t.Fatalf("原始载荷应通过校验: %v", err)
		}

		raw[len(raw)-1] ^= 0x01
		_, err := CheckDecode(Encode(raw))
		if !errors.Is(err, ErrInvalidChecksum) {
			t.Errorf("期望 ErrInvalidChecksum, 实际 %v", err)
		}
	})

	t.Run("长度不足", func(t *testing.T) {
		_, err := CheckDecode(Encode([]byte{1, 2, 3, 4}))
		if !errors.Is(err, ErrInvalidLength) {
			t.Errorf("期望 ErrInvalidLength, 实际 %v", err)
		}
	})

	t.Run("字符优先于校验和", func(t *testing.T) {
		_, err := CheckDecode("1NS17iag9jJgTHD1VXjvLCEnZuQ3rJDE90")
		if !errors.Is(err, ErrInvalidCharacter) {
			t.Errorf("期望 ErrInvalidCharacter, 实际 %v", err)
		}
	})
}

func BenchmarkEncode25(b *testing.B) {
	buf, _ := hex.DecodeString("00eb15231dfceb60925886b67d065299925915aeb172c06647")
	for i := 0; i < b.N; i++ {
		Encode(buf)
	}
}

func BenchmarkDecode25(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Decode("1NS17iag9jJgTHD1VXjvLCEnZuQ3rJDE9L")
	}
}
