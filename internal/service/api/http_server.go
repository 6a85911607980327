package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/cd-exercise-api/internal/service/api/constants"
	"github.com/darkkaiser/cd-exercise-api/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/cd-exercise-api/internal/service/api/middleware"
	applog "github.com/darkkaiser/cd-exercise-api/pkg/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (기본값: 60초)
	RequestTimeout time.Duration

	// Metrics HTTP 메트릭 수집기. nil이면 메트릭을 수집하지 않습니다.
	Metrics *appmiddleware.Metrics
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다 (순서가 중요합니다):
//
//  1. PanicRecovery - 다른 미들웨어에서 발생한 panic도 복구하도록 가장 먼저 적용
//  2. RequestID - X-Request-ID 헤더 부여. 로깅보다 먼저 적용되어야 로그에 request_id가 포함됨
//  3. ServerHeader - 응답의 Server 헤더 제거
//  4. HTTPLogger - 요청/응답 로깅. RateLimiting/Timeout보다 앞에 두어 429/503도 기록
//  5. Metrics - Prometheus HTTP 메트릭 수집 (설정된 경우)
//  6. RateLimiting - IP별 요청 제한 (20 req/s, 버스트 40)
//  7. BodyLimit - 요청 본문 크기 제한 (128KB, 초과 시 413)
//  8. Timeout - 요청 처리 시간 제한 (기본 60초, 초과 시 503)
//  9. CORS - 허용된 Origin의 크로스 도메인 요청 처리
//  10. Secure - X-Content-Type-Options 등 보안 헤더 추가
//
// 라우트 설정은 포함되지 않으며, 반환된 Echo 인스턴스에 별도로 설정해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 내부 로그를 애플리케이션 로거로 통합합니다.
	e.Logger = appmiddleware.NewLogger(applog.WithComponent(constants.ComponentEcho))

	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = constants.DefaultRequestTimeout
	}

	// 1. Panic 복구
	e.Use(appmiddleware.PanicRecovery())
	// 2. Request ID
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	// 3. Server 헤더 제거
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Del(echo.HeaderServer)
			return next(c)
		}
	})
	// 4. HTTP 로깅
	e.Use(appmiddleware.HTTPLogger())
	// 5. 메트릭
	if cfg.Metrics != nil {
		e.Use(cfg.Metrics.Middleware())
	}
	// 6. Rate Limiting
	e.Use(appmiddleware.RateLimiting(constants.DefaultRateLimitPerSecond, constants.DefaultRateLimitBurst))
	// 7. Body Limit
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	// 8. Timeout
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout:      timeout,
		ErrorMessage: constants.ErrMsgRequestTimeout,
	}))
	// 9. CORS
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	// 10. 보안 헤더
	e.Use(middleware.Secure())

	return e
}
