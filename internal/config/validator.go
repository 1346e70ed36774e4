package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/weisyn/keyaddr/internal/config/address"
	"github.com/weisyn/keyaddr/pkg/types"
)

// ValidationError 配置验证错误
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("配置验证失败 [%s]: %s", e.Field, e.Message)
}

// ValidationErrors 多个验证错误
type ValidationErrors struct {
	Errors []error
}

func (e *ValidationErrors) Error() string {
	msg := "配置验证失败，发现以下问题：\n"
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Unwrap 支持 errors.Is / errors.As 逐个匹配
func (e *ValidationErrors) Unwrap() []error {
	return e.Errors
}

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "panic": true, "fatal": true,
}

// ValidateAppConfig 验证用户配置
//
// New(user) 对非法值静默回退默认值；启动时先调用本函数做 fail-fast，
// 避免"配置写了但没生效"。
//
// 返回：
//   - error: nil 或 *ValidationErrors
func ValidateAppConfig(appConfig *types.AppConfig) error {
	if appConfig == nil {
		return nil
	}
	var errors []error

	if l := appConfig.Log; l != nil && l.Level != nil {
		if !validLogLevels[strings.ToLower(*l.Level)] {
			errors = append(errors, &ValidationError{
				Field:   "log.level",
				Message: fmt.Sprintf("未知日志级别 %q", *l.Level),
			})
		}
	}

	if err := address.Validate(appConfig.Address); err != nil {
		errors = append(errors, &ValidationError{
			Field:   "address",
			Message: err.Error(),
		})
	}

	if a := appConfig.API; a != nil && a.Listen != nil {
		if _, _, err := net.SplitHostPort(*a.Listen); err != nil {
			errors = append(errors, &ValidationError{
				Field:   "api.listen",
				Message: fmt.Sprintf("监听地址格式无效 %q: %v", *a.Listen, err),
			})
		}
	}

	if b := appConfig.Batch; b != nil && b.Workers != nil && *b.Workers < 0 {
		errors = append(errors, &ValidationError{
			Field:   "batch.workers",
			Message: "workers 不能为负数（0 表示 CPU 数）",
		})
	}

	if len(errors) > 0 {
		return &ValidationErrors{Errors: errors}
	}
	return nil
}
