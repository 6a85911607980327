package api

import (
	"github.com/darkkaiser/cd-exercise-api/internal/service/api/constants"
	healthhandler "github.com/darkkaiser/cd-exercise-api/internal/service/api/handler/health"
	"github.com/darkkaiser/cd-exercise-api/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes API 서비스의 전체 라우트를 등록합니다.
//
//   - 시스템 엔드포인트: /, /api/version, /api/info
//   - 헬스체크 엔드포인트: /health, /health/ready, /health/live
//   - 운영 엔드포인트: /metrics (gatherer가 nil이 아닌 경우), /swagger/*
func RegisterRoutes(e *echo.Echo, sh *system.Handler, hh *healthhandler.Handler, gatherer prometheus.Gatherer) {
	registerSystemRoutes(e, sh)
	registerHealthRoutes(e, hh)
	registerMetricsRoutes(e, gatherer)
	registerSwaggerRoutes(e)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	e.GET(constants.PathRoot, h.WelcomeHandler)
	e.GET(constants.PathAPIVersion, h.VersionHandler)
	e.GET(constants.PathAPIInfo, h.InfoHandler)
}

func registerHealthRoutes(e *echo.Echo, h *healthhandler.Handler) {
	// 후행 슬래시 유무와 관계없이 같은 응답을 반환합니다. (리다이렉트 없음)
	e.GET(constants.PathHealth, h.HealthHandler)
	e.GET(constants.PathHealth+"/", h.HealthHandler)
	e.GET(constants.PathReadiness, h.ReadinessHandler)
	e.GET(constants.PathLiveness, h.LivenessHandler)
}

func registerMetricsRoutes(e *echo.Echo, gatherer prometheus.Gatherer) {
	if gatherer == nil {
		return
	}
	e.GET(constants.PathMetrics, echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

func registerSwaggerRoutes(e *echo.Echo) {
	e.GET(constants.PathSwagger, echoSwagger.EchoWrapHandler(
		// Swagger 문서 JSON 파일 위치 지정
		echoSwagger.URL("/swagger/doc.json"),
		// 딥 링크 활성화 (특정 API로 바로 이동 가능한 URL 지원)
		echoSwagger.DeepLinking(true),
		// 문서 로드 시 태그(Tag) 목록만 펼침 상태로 표시 ("list", "full", "none")
		echoSwagger.DocExpansion("list"),
	))
}
