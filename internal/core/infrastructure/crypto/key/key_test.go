package key

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/weisyn/keyaddr/pkg/types"
)

func secretFromText(s string) types.Secret {
	return types.Secret(sha256.Sum256([]byte(s)))
}

func secretFromHex(t *testing.T, s string) types.Secret {
	t.Helper()
	var secret types.Secret
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 32 {
		t.Fatalf("无效种子: %s", s)
	}
	copy(secret[:], b)
	return secret
}

func TestEducationalDeriverVectors(t *testing.T) {
	deriver := NewEducationalDeriver()

	testCases := []struct {
		name         string
		secret       types.Secret
		uncompressed string
		compressed   string
	}{
		{
			"全零种子",
			types.Secret{},
			"0436b58bbdd11060d8f78933aca44d991a9129576bc7c543ddcf86d6e09d1d61f41cbff53d630bedb8a095291fa021f3780a86894e433c5a96fe96e7376ea3544d",
			"0336b58bbdd11060d8f78933aca44d991a9129576bc7c543ddcf86d6e09d1d61f4",
		},
		{
			"correct horse battery staple",
			secretFromText("correct horse battery staple"),
			"04b357e81da7b740d3318545c05868ce24a8c6526e124e251f8237555a11203e1bea9cc21fdc6f28698d70af876319c76b0fb9f1fec762505b2870e0adc7c15cc2",
			"02b357e81da7b740d3318545c05868ce24a8c6526e124e251f8237555a11203e1b",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kp, err := deriver.DeriveKeyPair(tc.secret)
			if err != nil {
				t.Fatalf("DeriveKeyPair 失败: %v", err)
			}
			if got := hex.EncodeToString(kp.Uncompressed[:]); got != tc.uncompressed {
				t.Errorf("未压缩公钥 = %s, 期望 %s", got, tc.uncompressed)
			}
			if got := hex.EncodeToString(kp.Compressed[:]); got != tc.compressed {
				t.Errorf("压缩公钥 = %s, 期望 %s", got, tc.compressed)
			}
		})
	}
}

// TestEducationalDeriverShape 前缀、X 复制、奇偶选择
func TestEducationalDeriverShape(t *testing.T) {
	deriver := NewEducationalDeriver()

	for i := 0; i < 256; i++ {
		var secret types.Secret
		secret[i%32] = byte(i)
		secret[31-i%32] ^= byte(i * 7)

		kp, err := deriver.DeriveKeyPair(secret)
		if err != nil {
			t.Fatalf("DeriveKeyPair 失败: %v", err)
		}
		if kp.Uncompressed[0] != types.PubKeyPrefixUncompressed {
			t.Fatalf("未压缩前缀 = %#x", kp.Uncompressed[0])
		}
		if string(kp.X()) != string(kp.Compressed[1:]) {
			t.Fatal("压缩公钥的 X 应与未压缩公钥一致")
		}
		y := kp.Y()
		want := types.PubKeyPrefixEven
		if y[31]%2 == 1 {
			want = types.PubKeyPrefixOdd
		}
		if kp.Compressed[0] != want {
			t.Fatalf("压缩前缀 = %#x, 期望 %#x", kp.Compressed[0], want)
		}

		again, _ := deriver.DeriveKeyPair(secret)
		if again != kp {
			t.Fatal("相同种子必须得到相同公钥")
		}
	}
}

// TestEducationalDeriverWeightedSum 种子是加权和，不同排列得到不同结果
func TestEducationalDeriverWeightedSum(t *testing.T) {
	deriver := NewEducationalDeriver()

	var a, b types.Secret
	a[0], a[1] = 1, 2
	b[0], b[1] = 2, 1

	kpA, _ := deriver.DeriveKeyPair(a)
	kpB, _ := deriver.DeriveKeyPair(b)
	if kpA == kpB {
		t.Error("字节位置不同的种子应得到不同公钥")
	}

	// 加权和相同 → 结果相同（1·2 = 2·1）
	var c, d types.Secret
	c[0] = 2
	d[1] = 1
	kpC, _ := deriver.DeriveKeyPair(c)
	kpD, _ := deriver.DeriveKeyPair(d)
	if kpC != kpD {
		t.Error("加权和相同的种子应得到相同公钥")
	}
}

func TestSecp256k1Deriver(t *testing.T) {
	deriver := NewSecp256k1Deriver()

	t.Run("参考向量", func(t *testing.T) {
		kp, err := deriver.DeriveKeyPair(secretFromText("correct horse battery staple"))
		if err != nil {
			t.Fatalf("DeriveKeyPair 失败: %v", err)
		}
		want := "0378d430274f8c5ec1321338151e9f27f4c676a008bdf8638d07c0b6be9ab35c71"
		if got := hex.EncodeToString(kp.Compressed[:]); got != want {
			t.Errorf("压缩公钥 = %s, 期望 %s", got, want)
		}
		if string(kp.X()) != string(kp.Compressed[1:]) {
			t.Error("X 坐标不一致")
		}
	})

	t.Run("零标量", func(t *testing.T) {
		_, err := deriver.DeriveKeyPair(types.Secret{})
		if !errors.Is(err, ErrInvalidScalar) {
			t.Errorf("期望 ErrInvalidScalar, 实际 %v", err)
		}
	})

	t.Run("超过曲线阶", func(t *testing.T) {
		secret := secretFromHex(t, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
		_, err := deriver.DeriveKeyPair(secret)
		if !errors.Is(err, ErrInvalidScalar) {
			t.Errorf("期望 ErrInvalidScalar, 实际 %v", err)
		}
	})
}

func TestNewDeriver(t *testing.T) {
	testCases := []struct {
		mode string
		name string
	}{
		{"", ModeEducational},
		{"educational", ModeEducational},
		{"secp256k1", ModeSecp256k1},
	}
	for _, tc := range testCases {
		d, err := NewDeriver(tc.mode)
		if err != nil {
			t.Fatalf("NewDeriver(%q) 失败: %v", tc.mode, err)
		}
		if d.Name() != tc.name {
			t.Errorf("NewDeriver(%q).Name() = %s, 期望 %s", tc.mode, d.Name(), tc.name)
		}
	}

	if _, err := NewDeriver("ed25519"); !errors.Is(err, ErrUnknownDeriver) {
		t.Errorf("期望 ErrUnknownDeriver, 实际 %v", err)
	}
	if len(Modes()) != 2 {
		t.Errorf("Modes() = %v", Modes())
	}
}

func BenchmarkEducationalDeriver(b *testing.B) {
	deriver := NewEducationalDeriver()
	secret := secretFromText("bench")
	for i := 0; i < b.N; i++ {
		_, _ = deriver.DeriveKeyPair(secret)
	}
}

func BenchmarkSecp256k1Deriver(b *testing.B) {
	deriver := NewSecp256k1Deriver()
	secret := secretFromText("bench")
	for i := 0; i < b.N; i++ {
		_, _ = deriver.DeriveKeyPair(secret)
	}
}
