package address

import "time"

// 地址推导默认配置值
const (
	// defaultNetwork 默认网络，版本字节 0x00
	defaultNetwork = "mainnet"

	// defaultKeyDerivation 默认公钥推导方式
	defaultKeyDerivation = KeyDerivationEducational

	// defaultCacheEnabled 解码缓存默认关闭，由 serve 命令显式开启
	defaultCacheEnabled = false

	// defaultCacheLifeWindow 缓存条目存活时间
	defaultCacheLifeWindow = 10 * time.Minute

	// defaultCacheMaxEntries 预估最大条目数
	defaultCacheMaxEntries = 10000
)

// 公钥推导方式
const (
	KeyDerivationEducational = "educational"
	KeyDerivationSecp256k1   = "secp256k1"
)
