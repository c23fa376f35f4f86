// Package errors 提供统一的错误定义
package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode 错误码类型
type ErrorCode string

// 预定义错误码
const (
	// 通用错误 (1xxx)
	CodeSuccess            ErrorCode = "0"
	CodeUnknown            ErrorCode = "1000"
	CodeInvalidParam       ErrorCode = "1001"
	CodeUnauthorized       ErrorCode = "1002"
	CodeForbidden          ErrorCode = "1003"
	CodeNotFound           ErrorCode = "1004"
	CodeConflict           ErrorCode = "1005"
	CodeTooManyRequests    ErrorCode = "1006"
	CodeInternalError      ErrorCode = "1007"
	CodeServiceUnavailable ErrorCode = "1008"

	// AI 对话错误：本地拒绝 (2xxx)
	CodeEmptyMessage      ErrorCode = "2001"
	CodeMissingCredential ErrorCode = "2002"

	// AI 对话错误：上游服务 (3xxx)
	CodeUpstreamUnauthorized      ErrorCode = "3001"
	CodeUpstreamRateLimited       ErrorCode = "3002"
	CodeUpstreamServerError       ErrorCode = "3003"
	CodeUpstreamTimeout           ErrorCode = "3004"
	CodeNetworkUnreachable        ErrorCode = "3005"
	CodeMalformedUpstreamResponse ErrorCode = "3006"

	// 报告与模板错误 (4xxx)
	CodeUnsupportedChapterType ErrorCode = "4001"
	CodeTemplateNotFound       ErrorCode = "4002"
	CodeTemplateImmutable      ErrorCode = "4003"
	CodeReportNotFound         ErrorCode = "4004"
	CodeFileNotFound           ErrorCode = "4005"
	CodeExportFailed           ErrorCode = "4006"

	// 外部服务错误 (5xxx)
	CodeOCRFailed    ErrorCode = "5001"
	CodeStorageError ErrorCode = "5002"
)

// AppError 应用错误
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Err        error     `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回底层错误
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail 添加详细信息
func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail
	return e
}

// WithError 添加底层错误
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// New 创建新的应用错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

// Wrap 包装错误
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Err:        err,
	}
}

// codeToHTTPStatus 错误码转 HTTP 状态码
func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case CodeSuccess:
		return http.StatusOK
	case CodeInvalidParam, CodeEmptyMessage, CodeMissingCredential, CodeUnsupportedChapterType:
		return http.StatusBadRequest
	case CodeUnauthorized, CodeUpstreamUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden, CodeTemplateImmutable:
		return http.StatusForbidden
	case CodeNotFound, CodeTemplateNotFound, CodeReportNotFound, CodeFileNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeTooManyRequests, CodeUpstreamRateLimited:
		return http.StatusTooManyRequests
	case CodeUpstreamTimeout:
		return http.StatusGatewayTimeout
	case CodeUpstreamServerError, CodeNetworkUnreachable, CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	case CodeMalformedUpstreamResponse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// 预定义错误
var (
	ErrInvalidParam       = New(CodeInvalidParam, "invalid parameter")
	ErrNotFound           = New(CodeNotFound, "resource not found")
	ErrInternalError      = New(CodeInternalError, "internal server error")
	ErrServiceUnavailable = New(CodeServiceUnavailable, "service unavailable")

	ErrEmptyMessage      = New(CodeEmptyMessage, "消息内容不能为空")
	ErrMissingCredential = New(CodeMissingCredential, "请先配置AI服务API Key")

	ErrUpstreamUnauthorized      = New(CodeUpstreamUnauthorized, "API Key无效，请检查配置")
	ErrUpstreamRateLimited       = New(CodeUpstreamRateLimited, "API调用频率超限，请稍后重试")
	ErrUpstreamServerError       = New(CodeUpstreamServerError, "AI服务器错误，请稍后重试")
	ErrUpstreamTimeout           = New(CodeUpstreamTimeout, "AI服务响应超时")
	ErrNetworkUnreachable        = New(CodeNetworkUnreachable, "网络连接失败，请检查网络或API地址配置")
	ErrMalformedUpstreamResponse = New(CodeMalformedUpstreamResponse, "AI服务返回异常数据")

	ErrUnsupportedChapterType = New(CodeUnsupportedChapterType, "暂不支持生成该章节类型")
	ErrTemplateNotFound       = New(CodeTemplateNotFound, "模板不存在")
	ErrTemplateImmutable      = New(CodeTemplateImmutable, "系统预置的基础模板不允许修改或删除")
	ErrReportNotFound         = New(CodeReportNotFound, "报告不存在")
	ErrFileNotFound           = New(CodeFileNotFound, "文件不存在")
)

// IsAppError 检查是否为 AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// AsAppError 将错误转换为 AppError
func AsAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Wrap(err, CodeUnknown, "unknown error")
}

// Is 判断错误是否属于指定错误码
func Is(err error, code ErrorCode) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == code
}
