package types

import "encoding/hex"

// DerivationResult 一次完整推导的全部中间产物
//
// 不包含 Secret 本身；需要展示种子时由调用方通过 NewDerivationView 显式传入。
type DerivationResult struct {
	Deriver      string
	KeyPair      KeyPair
	Digest160    Digest160
	Payload      VersionedPayload
	Checksum     Checksum
	AddressBytes AddressBytes
	Address      Address
}

// DerivationView JSON 展示结构（十六进制字段）
type DerivationView struct {
	Secret                string `json:"secret,omitempty"`
	Mnemonic              string `json:"mnemonic,omitempty"`
	Deriver               string `json:"deriver"`
	UncompressedPublicKey string `json:"uncompressed_public_key"`
	CompressedPublicKey   string `json:"compressed_public_key"`
	Hash160               string `json:"hash160"`
	Version               uint8  `json:"version"`
	VersionedPayload      string `json:"versioned_payload"`
	Checksum              string `json:"checksum"`
	AddressBytes          string `json:"address_bytes"`
	Address               string `json:"address"`
}

// NewDerivationView 构造展示结构
//
// secret 为 nil 时不输出种子字段。
func NewDerivationView(r *DerivationResult, secret *Secret) DerivationView {
	v := DerivationView{
		Deriver:               r.Deriver,
		UncompressedPublicKey: hex.EncodeToString(r.KeyPair.Uncompressed[:]),
		CompressedPublicKey:   hex.EncodeToString(r.KeyPair.Compressed[:]),
		Hash160:               r.Digest160.Hex(),
		Version:               r.Payload.Version(),
		VersionedPayload:      hex.EncodeToString(r.Payload[:]),
		Checksum:              r.Checksum.Hex(),
		AddressBytes:          r.AddressBytes.Hex(),
		Address:               string(r.Address),
	}
	if secret != nil {
		v.Secret = secret.Hex()
	}
	return v
}
