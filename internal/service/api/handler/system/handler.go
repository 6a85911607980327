// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 환영 메시지, 버전 정보, API 정보 등 인증이 필요 없는 시스템 수준의 API를 처리합니다.
package system

import (
	"net/http"
	"runtime"

	"github.com/darkkaiser/cd-exercise-api/internal/config"
	"github.com/darkkaiser/cd-exercise-api/internal/service/api/constants"
	"github.com/darkkaiser/cd-exercise-api/internal/service/api/model/system"
	applog "github.com/darkkaiser/cd-exercise-api/pkg/log"
	"github.com/labstack/echo/v4"
)

// endpoints GET /api/info 응답에 노출되는 공개 엔드포인트 목록입니다.
// 운영용 엔드포인트(/metrics, /swagger)는 포함하지 않습니다.
var endpoints = []system.EndpointInfo{
	{Path: constants.PathRoot, Method: http.MethodGet, Description: "Welcome message"},
	{Path: constants.PathHealth, Method: http.MethodGet, Description: "Health check"},
	{Path: constants.PathReadiness, Method: http.MethodGet, Description: "Readiness check"},
	{Path: constants.PathLiveness, Method: http.MethodGet, Description: "Liveness check"},
	{Path: constants.PathAPIVersion, Method: http.MethodGet, Description: "Version info"},
	{Path: constants.PathAPIInfo, Method: http.MethodGet, Description: "API information"},
}

// Handler 시스템 엔드포인트 핸들러 (환영 메시지, 버전 정보, API 정보)
type Handler struct {
	version     string
	environment string
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(appConfig *config.AppConfig) *Handler {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}

	return &Handler{
		version:     appConfig.Version,
		environment: appConfig.Environment,
	}
}

// WelcomeHandler godoc
// @Summary 환영 메시지
// @Description 서비스 환영 메시지와 현재 버전, 실행 환경을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.WelcomeResponse "환영 메시지"
// @Router / [get]
func (h *Handler) WelcomeHandler(c echo.Context) error {
	logRequest(c, constants.LogMsgWelcome)

	return c.JSON(http.StatusOK, system.WelcomeResponse{
		Message:     constants.WelcomeMessage,
		Version:     h.version,
		Environment: h.environment,
	})
}

// VersionHandler godoc
// @Summary 버전 정보
// @Description 애플리케이션 버전, 실행 환경, Go 버전을 반환합니다.
// @Description 배포된 버전 확인에 사용됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /api/version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	logRequest(c, constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.version,
		Environment: h.environment,
		GoVersion:   runtime.Version(),
	})
}

// InfoHandler godoc
// @Summary API 정보
// @Description 서비스 이름, 설명, 버전과 공개 엔드포인트 목록을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.InfoResponse "API 정보"
// @Router /api/info [get]
func (h *Handler) InfoHandler(c echo.Context) error {
	logRequest(c, constants.LogMsgAPIInfo)

	return c.JSON(http.StatusOK, system.InfoResponse{
		Name:        constants.APIName,
		Description: constants.APIDescription,
		Version:     h.version,
		Endpoints:   append([]system.EndpointInfo(nil), endpoints...),
	})
}

func logRequest(c echo.Context, msg string) {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  c.Path(),
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(msg)
}
