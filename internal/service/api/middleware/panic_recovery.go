package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/darkkaiser/cd-exercise-api/internal/service/api/constants"
	applog "github.com/darkkaiser/cd-exercise-api/pkg/log"
	"github.com/labstack/echo/v4"
)

// PanicRecovery 이후 체인에서 발생한 panic을 Internal 에러로 바꿔 반환합니다.
// 복구 시 스택 트레이스를 ERROR 레벨로 기록하며, 응답(500)은 전역 에러 핸들러가 만듭니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = recoverFrom(c, r)
				}
			}()

			return next(c)
		}
	}
}

func recoverFrom(c echo.Context, r any) error {
	// 연결을 끊기 위한 net/http의 의도된 panic은 서버까지 전달합니다.
	if r == http.ErrAbortHandler {
		panic(r)
	}

	err := NewErrPanicRecovered(r)

	req := c.Request()
	fields := applog.Fields{
		"error":  err,
		"stack":  string(debug.Stack()),
		"method": req.Method,
		"path":   req.URL.Path,
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		fields["request_id"] = id
	}
	applog.WithComponentAndFields(constants.ComponentMiddlewarePanicRecovery, fields).Error(constants.LogMsgPanicRecovered)

	return err
}
