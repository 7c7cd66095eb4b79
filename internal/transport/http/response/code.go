package response

import (
	"errors"
	"net/http"

	"go-gin-shop-api/internal/domain"
)

// 服务层之外的意外失败统一归类
const CodeInternal = "INTERNAL_ERROR"

// FromError 把服务层错误映射为 (HTTP 状态, 包络)。
// 三类领域错误按自带的 StatusCode 透传，其余一律 500。
func FromError(err error) (int, Body) {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.StatusCode, Body{Success: false, Error: &ErrorBody{
			Code:       de.Code,
			Message:    de.Message,
			StatusCode: de.StatusCode,
			Details:    de.Fields,
		}}
	}
	return http.StatusInternalServerError,
		Err(CodeInternal, "internal server error", http.StatusInternalServerError)
}
