// Package handlers 提供HTTP API处理器
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weisyn/keyaddr/internal/api/http/middleware"
	apitypes "github.com/weisyn/keyaddr/internal/api/http/types"
	"github.com/weisyn/keyaddr/internal/core/infrastructure/crypto/address"
	"github.com/weisyn/keyaddr/internal/core/infrastructure/crypto/key"
	"github.com/weisyn/keyaddr/internal/core/infrastructure/crypto/secret"
)

// errorCode 将领域错误映射为错误码和HTTP状态
//
// 错误信息本身不含种子内容，可以原样返回给调用方。
func errorCode(err error) (string, int) {
	switch {
	case errors.Is(err, address.ErrInvalidCharacter):
		return apitypes.ErrInvalidCharacter, http.StatusBadRequest
	case errors.Is(err, address.ErrInvalidChecksum):
		return apitypes.ErrInvalidChecksum, http.StatusBadRequest
	case errors.Is(err, address.ErrInvalidLength):
		return apitypes.ErrInvalidLength, http.StatusBadRequest
	case errors.Is(err, address.ErrInvalidVersion):
		return apitypes.ErrInvalidVersion, http.StatusBadRequest
	case errors.Is(err, secret.ErrInvalidSecret):
		return apitypes.ErrInvalidSecret, http.StatusBadRequest
	case errors.Is(err, secret.ErrInvalidMnemonic):
		return apitypes.ErrInvalidMnemonic, http.StatusBadRequest
	case errors.Is(err, key.ErrInvalidScalar):
		return apitypes.ErrInvalidScalar, http.StatusBadRequest
	case errors.Is(err, secret.ErrEntropyFailure):
		return apitypes.ErrEntropyFailure, http.StatusServiceUnavailable
	default:
		return apitypes.ErrInternal, http.StatusInternalServerError
	}
}

// writeError 写入统一错误响应
func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, apitypes.NewErrorResponse(code, message).
		WithRequestID(middleware.GetRequestID(c)))
}

// writeDomainError 按错误类型写入响应
func writeDomainError(c *gin.Context, err error) {
	code, status := errorCode(err)
	_ = c.Error(err)
	writeError(c, status, code, err.Error())
}
