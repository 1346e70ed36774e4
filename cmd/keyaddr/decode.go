package main

import (
	"encoding/hex"
	"errors"

	"github.com/spf13/cobra"

	apitypes "github.com/weisyn/keyaddr/internal/api/http/types"
	"github.com/weisyn/keyaddr/internal/app"
	"github.com/weisyn/keyaddr/internal/core/infrastructure/crypto/address"
	"github.com/weisyn/keyaddr/internal/core/infrastructure/crypto/key"
	"github.com/weisyn/keyaddr/internal/core/infrastructure/crypto/secret"
)

// ValidateResult validate 命令输出
type ValidateResult struct {
	Address string `json:"address"`
	Valid   bool   `json:"valid"`
	Version *uint8 `json:"version,omitempty"`
	Hash160 string `json:"hash160,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

// newDecodeCmd 解码地址
func (c *cli) newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <address>",
		Short: "解码 Base58Check 地址",
		Long: `输出版本字节、hash160、校验和与25字节二进制形式。

非法字符、校验和不匹配、长度不是25字节时返回错误。`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withServices(cmd, func(s *app.Services) error {
				decoded, err := s.AddressManager.Decode(args[0])
				if err != nil {
					return err
				}
				payload := decoded.Payload()
				checksum := decoded.Checksum()
				return c.formatter.Print(apitypes.DecodeResponse{
					Address:      args[0],
					Valid:        true,
					Version:      payload.Version(),
					Hash160:      payload.Digest().Hex(),
					Checksum:     hex.EncodeToString(checksum[:]),
					AddressBytes: decoded.Hex(),
				})
			})
		},
	}
}

// newValidateCmd 校验地址
func (c *cli) newValidateCmd() *cobra.Command {
	var anyVersion bool

	cmd := &cobra.Command{
		Use:   "validate <address>",
		Short: "校验地址（字符集、校验和、长度、版本字节）",
		Long: `总是输出校验结果；地址无效时以状态码1退出。

默认要求版本字节与当前网络一致，--any-version 跳过该项检查。

示例：
  keyaddr validate 1KFjnVBsaigfHzeMCQ5YzuFhKFsJSxArRD
  keyaddr validate mymh5YGrPk7v577xuy3vppU2BFU1LPJbqD --network testnet3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := args[0]
			return c.withServices(cmd, func(s *app.Services) error {
				var err error
				if anyVersion {
					_, err = s.AddressManager.Decode(addr)
				} else {
					err = s.AddressManager.Validate(addr, s.AddressManager.Version())
				}

				result := ValidateResult{Address: addr, Valid: err == nil}
				if err != nil {
					result.Reason = errorReason(err)
					result.Message = err.Error()
				}
				if version, digest, decodeErr := s.AddressManager.DecodeVersioned(addr); decodeErr == nil {
					result.Version = &version
					result.Hash160 = digest.Hex()
				}

				if printErr := c.formatter.Print(result); printErr != nil {
					return printErr
				}
				if !result.Valid {
					return errReported
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&anyVersion, "any-version", false, "不检查版本字节")
	return cmd
}

// errorReason 领域错误 → 错误码（与 HTTP API 一致）
func errorReason(err error) string {
	switch {
	case errors.Is(err, address.ErrInvalidCharacter):
		return apitypes.ErrInvalidCharacter
	case errors.Is(err, address.ErrInvalidChecksum):
		return apitypes.ErrInvalidChecksum
	case errors.Is(err, address.ErrInvalidLength):
		return apitypes.ErrInvalidLength
	case errors.Is(err, address.ErrInvalidVersion):
		return apitypes.ErrInvalidVersion
	case errors.Is(err, secret.ErrInvalidSecret):
		return apitypes.ErrInvalidSecret
	case errors.Is(err, secret.ErrInvalidMnemonic):
		return apitypes.ErrInvalidMnemonic
	case errors.Is(err, key.ErrInvalidScalar):
		return apitypes.ErrInvalidScalar
	case errors.Is(err, secret.ErrEntropyFailure):
		return apitypes.ErrEntropyFailure
	default:
		return apitypes.ErrInternal
	}
}
