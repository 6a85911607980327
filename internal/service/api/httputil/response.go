package httputil

import (
	"net/http"

	"github.com/darkkaiser/cd-exercise-api/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

// NewError 지정된 상태 코드의 표준 에러를 생성합니다.
func NewError(code int, message string) error {
	return echo.NewHTTPError(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// NewNotFoundError 404 Not Found 에러를 생성합니다
func NewNotFoundError(message string) error {
	return NewError(http.StatusNotFound, message)
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다
func NewTooManyRequestsError(message string) error {
	return NewError(http.StatusTooManyRequests, message)
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다
func NewInternalServerError(message string) error {
	return NewError(http.StatusInternalServerError, message)
}
