package secret

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
	"github.com/weisyn/keyaddr/pkg/types"
)

// MnemonicWords 32字节种子对应的助记词数量
const MnemonicWords = 24

// SecretToMnemonic 将32字节种子编码为24词 BIP-39 助记词
//
// 这里把 Secret 直接当作 BIP-39 熵，不经过 PBKDF2 种子扩展，
// 助记词只是同一32字节的可抄写形式。
func (s *Source) SecretToMnemonic(secret types.Secret) (string, error) {
	mnemonic, err := bip39.NewMnemonic(secret[:])
	if err != nil {
		return "", fmt.Errorf("生成助记词失败: %w", err)
	}
	return mnemonic, nil
}

// SecretFromMnemonic 从24词助记词还原32字节种子
//
// 大小写和多余空白会被规整。
func (s *Source) SecretFromMnemonic(mnemonic string) (types.Secret, error) {
	words := strings.Fields(strings.ToLower(mnemonic))
	if len(words) != MnemonicWords {
		return types.Secret{}, fmt.Errorf("%w: 需要 %d 个单词，实际 %d", ErrInvalidMnemonic, MnemonicWords, len(words))
	}

	entropy, err := bip39.EntropyFromMnemonic(strings.Join(words, " "))
	if err != nil {
		// bip39 的错误信息可能带出单词本身，这里只保留类别
		if errors.Is(err, bip39.ErrChecksumIncorrect) {
			return types.Secret{}, fmt.Errorf("%w: 校验和错误", ErrInvalidMnemonic)
		}
		return types.Secret{}, fmt.Errorf("%w: 包含不在词表中的单词", ErrInvalidMnemonic)
	}
	defer wipeBytes(entropy)

	if len(entropy) != types.SecretLength {
		return types.Secret{}, fmt.Errorf("%w: 熵长度 %d", ErrInvalidMnemonic, len(entropy))
	}

	var secret types.Secret
	copy(secret[:], entropy)
	return secret, nil
}

func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
