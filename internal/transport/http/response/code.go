package response

import "net/http"

// GenericMsg 出网的兜底文案，内部错误细节一律不暴露
func GenericMsg(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusRequestEntityTooLarge:
		return "request body too large"
	case http.StatusTooManyRequests:
		return "too many requests"
	case http.StatusInternalServerError:
		return "internal server error"
	case http.StatusServiceUnavailable:
		return "server busy"
	case http.StatusGatewayTimeout:
		return "timeout"
	default:
		return http.StatusText(status)
	}
}
