// Package crypto 提供私密种子来源接口定义
//
// 🌱 **种子来源 (Secret Source)**
//
// 32字节 Secret 的两种基本来源：
// - 密码学安全随机数（熵源由调用方注入，便于测试替换）
// - 任意文本的单次 SHA-256
//
// 以及两种辅助形式：64位十六进制、BIP-39 24词助记词。
package crypto

import "github.com/weisyn/keyaddr/pkg/types"

// SecretSource 定义私密种子的产生与转换
type SecretSource interface {
	// RandomSecret 从熵源读取32字节
	//
	// 返回：
	//   - types.Secret: 随机种子
	//   - error: 熵源失败时返回 ErrEntropyFailure（不自动重试）
	RandomSecret() (types.Secret, error)

	// SecretFromText 对文本的 UTF-8 字节做一次 SHA-256
	// 空字符串同样合法。
	SecretFromText(input string) types.Secret

	// SecretFromHex 解析64位十六进制（可带0x前缀）
	SecretFromHex(hexStr string) (types.Secret, error)

	// SecretToMnemonic 将32字节种子编码为24词BIP-39助记词
	SecretToMnemonic(secret types.Secret) (string, error)

	// SecretFromMnemonic 从24词助记词还原32字节种子
	SecretFromMnemonic(mnemonic string) (types.Secret, error)
}
