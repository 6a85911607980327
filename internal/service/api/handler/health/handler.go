// Package health 컨테이너 오케스트레이터(Kubernetes 등)를 위한 헬스체크 엔드포인트 핸들러를 제공합니다.
package health

import (
	"net/http"

	"github.com/darkkaiser/cd-exercise-api/internal/health"
	"github.com/darkkaiser/cd-exercise-api/internal/service/api/constants"
	applog "github.com/darkkaiser/cd-exercise-api/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 헬스체크 엔드포인트 핸들러
type Handler struct {
	reporter *health.Reporter
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(reporter *health.Reporter) *Handler {
	if reporter == nil {
		panic(constants.PanicMsgHealthReporterRequired)
	}

	return &Handler{reporter: reporter}
}

// HealthHandler godoc
// @Summary 헬스체크
// @Description 서버 상태와 가동 시간(초, 소수점 둘째 자리)을 반환합니다.
// @Tags Health
// @Produce json
// @Success 200 {object} health.HealthStatus "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthHandler(c echo.Context) error {
	logRequest(c, constants.LogMsgHealthCheck)

	return c.JSON(http.StatusOK, h.reporter.Health())
}

// ReadinessHandler godoc
// @Summary 준비 상태 점검 (Readiness)
// @Description 트래픽을 받을 준비가 되었는지 확인합니다.
// @Description 모든 점검 항목이 통과하면 200, 하나라도 실패하면 503을 반환합니다.
// @Tags Health
// @Produce json
// @Success 200 {object} health.ReadinessStatus "준비 완료"
// @Failure 503 {object} health.ReadinessStatus "준비되지 않음"
// @Router /health/ready [get]
func (h *Handler) ReadinessHandler(c echo.Context) error {
	logRequest(c, constants.LogMsgReadinessCheck)

	status := h.reporter.Readiness(c.Request().Context())
	if !status.Ready() {
		applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
			"checks": status.Checks,
		}).Warn(constants.LogMsgNotReady)

		return c.JSON(http.StatusServiceUnavailable, status)
	}

	return c.JSON(http.StatusOK, status)
}

// LivenessHandler godoc
// @Summary 생존 상태 점검 (Liveness)
// @Description 프로세스가 살아있는지 확인합니다. 현재 Unix 시각(초)을 함께 반환합니다.
// @Tags Health
// @Produce json
// @Success 200 {object} health.LivenessStatus "생존"
// @Router /health/live [get]
func (h *Handler) LivenessHandler(c echo.Context) error {
	logRequest(c, constants.LogMsgLivenessCheck)

	return c.JSON(http.StatusOK, h.reporter.Liveness())
}

func logRequest(c echo.Context, msg string) {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  c.Path(),
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(msg)
}
