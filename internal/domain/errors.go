package domain

import (
	"errors"
	"net/http"
)

// 业务错误码（与 HTTP 状态解耦，由边界层映射）
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeConflict   = "CONFLICT"
)

// Error 服务层抛出的三类可恢复失败；其余错误一律按内部错误处理
type Error struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	StatusCode int               `json:"statusCode"`
	Fields     map[string]string `json:"details,omitempty"`
}

func (e *Error) Error() string { return e.Message }

func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg, StatusCode: http.StatusBadRequest}
}

// ValidationFields DTO 校验结果：field → message
func ValidationFields(fields map[string]string) *Error {
	return &Error{
		Code:       CodeValidation,
		Message:    "validation failed",
		StatusCode: http.StatusBadRequest,
		Fields:     fields,
	}
}

func NotFound(entity string) *Error {
	return &Error{Code: CodeNotFound, Message: entity + " not found", StatusCode: http.StatusNotFound}
}

func Conflict(msg string) *Error {
	return &Error{Code: CodeConflict, Message: msg, StatusCode: http.StatusConflict}
}

func IsValidation(err error) bool { return hasCode(err, CodeValidation) }
func IsNotFound(err error) bool   { return hasCode(err, CodeNotFound) }
func IsConflict(err error) bool   { return hasCode(err, CodeConflict) }

func hasCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
