package middleware

import (
	"net/url"
	"strconv"
	"time"

	"github.com/darkkaiser/cd-exercise-api/internal/service/api/constants"
	applog "github.com/darkkaiser/cd-exercise-api/pkg/log"
	"github.com/darkkaiser/cd-exercise-api/pkg/strutil"
	"github.com/labstack/echo/v4"
)

// HTTPLogger 요청마다 한 줄의 접근 로그를 남기는 미들웨어를 반환합니다.
//
// 핸들러가 반환한 에러는 여기서 c.Error로 처리하므로 로그의 status는 클라이언트가 실제로 받은 상태 코드입니다.
// 핸들러가 panic으로 빠져나가도 로그는 남습니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			defer func() {
				applog.WithFields(accessLogFields(c, time.Since(start))).Info(constants.LogMsgHTTPRequest)
			}()

			if err := next(c); err != nil {
				c.Error(err)
			}
			return nil
		}
	}
}

func accessLogFields(c echo.Context, latency time.Duration) applog.Fields {
	req, res := c.Request(), c.Response()

	path := req.URL.Path
	if path == "" {
		path = "/"
	}

	// Content-Length가 없는 요청(chunked 등)은 0으로 기록합니다.
	bytesIn := req.Header.Get(echo.HeaderContentLength)
	if bytesIn == "" {
		bytesIn = "0"
	}

	return applog.Fields{
		"request_id": res.Header().Get(echo.HeaderXRequestID),
		"remote_ip":  c.RealIP(),
		"method":     req.Method,
		"host":       req.Host,
		"path":       path,
		"uri":        maskSensitiveQueryParams(req.RequestURI),
		"protocol":   req.Proto,
		"user_agent": req.UserAgent(),
		"referer":    req.Referer(),

		"status":        res.Status,
		"bytes_in":      bytesIn,
		"bytes_out":     strconv.FormatInt(res.Size, 10),
		"latency":       strconv.FormatInt(latency.Microseconds(), 10),
		"latency_human": latency.String(),
	}
}

// maskSensitiveQueryParams constants.SensitiveQueryParams에 해당하는 쿼리 값을 strutil.Mask로 가립니다.
// 가릴 값이 없거나 URI를 해석할 수 없으면 원본을 그대로 반환합니다.
//
//	"/api/info?token=secret123456789&id=100" -> "/api/info?id=100&token=secr%2A%2A%2A6789"
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.RawQuery == "" {
		return uri
	}

	q := u.Query()
	changed := false
	for _, key := range constants.SensitiveQueryParams {
		if v := q.Get(key); q.Has(key) {
			q.Set(key, strutil.Mask(v))
			changed = true
		}
	}
	if !changed {
		return uri
	}

	u.RawQuery = q.Encode()
	return u.String()
}
