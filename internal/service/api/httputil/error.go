package httputil

import (
	"errors"
	"net/http"

	"github.com/darkkaiser/cd-exercise-api/internal/service/api/constants"
	"github.com/darkkaiser/cd-exercise-api/internal/service/api/model/response"
	applog "github.com/darkkaiser/cd-exercise-api/pkg/log"
	"github.com/labstack/echo/v4"
)

// defaultMessages Echo가 생성한 에러의 영문 기본 메시지를 대체할 메시지입니다.
var defaultMessages = map[int]string{
	http.StatusNotFound:              constants.ErrMsgNotFound,
	http.StatusMethodNotAllowed:      constants.ErrMsgMethodNotAllowed,
	http.StatusRequestEntityTooLarge: constants.ErrMsgRequestEntityTooLarge,
	http.StatusTooManyRequests:       constants.ErrMsgTooManyRequests,
}

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 HTTP 에러를 표준 ErrorResponse JSON 형식으로 변환하여 반환합니다.
// 5xx는 Error, 4xx는 Warn 레벨로 기록합니다.
func ErrorHandler(err error, c echo.Context) {
	code, message := resolve(err)

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이미 응답이 전송된 경우 추가 응답을 시도하지 않습니다.
	if c.Response().Committed {
		return
	}

	// HEAD 요청은 본문 없이 헤더만 반환합니다.
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// resolve 에러로부터 응답 상태 코드와 메시지를 결정합니다.
//
// HTTPError가 아닌 에러와 5xx 에러는 내부 정보 노출을 막기 위해 일반 메시지로 변환됩니다.
// Echo가 생성한 영문 기본 메시지(예: "Not Found")는 defaultMessages의 메시지로 대체됩니다.
func resolve(err error) (int, string) {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return http.StatusInternalServerError, constants.ErrMsgInternalServer
	}

	code := he.Code
	if resp, ok := he.Message.(response.ErrorResponse); ok {
		return code, resp.Message
	}
	if code >= http.StatusInternalServerError {
		return code, constants.ErrMsgInternalServer
	}

	msg, _ := he.Message.(string)
	if msg == "" || msg == http.StatusText(code) {
		if m, ok := defaultMessages[code]; ok {
			return code, m
		}
		return code, http.StatusText(code)
	}

	return code, msg
}
