// Package types provides HTTP response type definitions.
package types

// DeriveRequest POST /v1/address/derive 请求体
//
// 四个来源字段必须且只能给出一个；seed_text 允许空字符串。
type DeriveRequest struct {
	SeedText  *string `json:"seed_text,omitempty"`
	SecretHex *string `json:"secret_hex,omitempty"`
	Mnemonic  *string `json:"mnemonic,omitempty"`
	Random    bool    `json:"random,omitempty"`

	// Reveal 在响应中附带种子与助记词
	Reveal bool `json:"reveal,omitempty"`
}

// SourceCount 给出的种子来源数量
func (r *DeriveRequest) SourceCount() int {
	n := 0
	if r.SeedText != nil {
		n++
	}
	if r.SecretHex != nil {
		n++
	}
	if r.Mnemonic != nil {
		n++
	}
	if r.Random {
		n++
	}
	return n
}

// DecodeResponse GET /v1/address/:address 响应
type DecodeResponse struct {
	Address      string `json:"address"`
	Valid        bool   `json:"valid"`
	Version      uint8  `json:"version"`
	Hash160      string `json:"hash160"`
	Checksum     string `json:"checksum"`
	AddressBytes string `json:"address_bytes"`
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status         string `json:"status"`
	Version        string `json:"version"`
	Deriver        string `json:"deriver"`
	AddressVersion uint8  `json:"address_version"`
	Uptime         string `json:"uptime"`
	Timestamp      string `json:"timestamp"`
}
