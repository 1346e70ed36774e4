// Package types provides HTTP error type definitions.
package types

// ErrorResponse 统一错误响应格式
//
//	{"error":"invalid_checksum","message":"...","request_id":"..."}
type ErrorResponse struct {
	Error     string `json:"error"`                // 错误码
	Message   string `json:"message,omitempty"`    // 错误消息
	RequestID string `json:"request_id,omitempty"` // 请求ID
}

// 错误码常量
const (
	// 请求错误
	ErrInvalidRequest = "invalid_request"
	ErrBodyTooLarge   = "request_too_large"

	// 地址解码错误
	ErrInvalidCharacter = "invalid_character"
	ErrInvalidChecksum  = "invalid_checksum"
	ErrInvalidLength    = "invalid_length"
	ErrInvalidVersion   = "invalid_version"

	// 种子/推导错误
	ErrInvalidSecret   = "invalid_secret"
	ErrInvalidMnemonic = "invalid_mnemonic"
	ErrInvalidScalar   = "invalid_scalar"
	ErrEntropyFailure  = "entropy_failure"

	// 服务器错误
	ErrInternal = "internal"
)

// NewErrorResponse 创建错误响应
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error:   code,
		Message: message,
	}
}

// WithRequestID 添加请求ID
func (e *ErrorResponse) WithRequestID(requestID string) *ErrorResponse {
	e.RequestID = requestID
	return e
}
