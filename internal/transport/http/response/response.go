package response

// Body 统一响应包络：成功带 data（列表带 total），失败带 error
type Body struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Total   *int       `json:"total,omitempty"`
	Message string     `json:"message,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

type ErrorBody struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	StatusCode int               `json:"statusCode"`
	Details    map[string]string `json:"details,omitempty"`
}

func OK(data any) Body {
	return Body{Success: true, Data: data}
}

// List 列表响应，total 为集合总数（分页时不等于 len(data)）
func List(data any, total int) Body {
	return Body{Success: true, Data: data, Total: &total}
}

// WithMessage 成功响应附带提示语（创建/更新）
func WithMessage(data any, msg string) Body {
	return Body{Success: true, Data: data, Message: msg}
}

func Err(code, msg string, statusCode int) Body {
	return Body{Success: false, Error: &ErrorBody{Code: code, Message: msg, StatusCode: statusCode}}
}
